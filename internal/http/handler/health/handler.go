package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Pinger is a dependency whose availability is checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingerFunc func(ctx context.Context) error

func (fn PingerFunc) Ping(ctx context.Context) error {
	return fn(ctx)
}

type Response struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Memory    *Memory           `json:"memory,omitempty"`
}

type Memory struct {
	Total       uint64  `json:"total"`
	Available   uint64  `json:"available"`
	UsedPercent float64 `json:"usedPercent"`
}

type Handler struct {
	mux     *http.ServeMux
	checks  map[string]Pinger
	timeout time.Duration
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(checks map[string]Pinger, timeout time.Duration) *Handler {
	h := &Handler{
		mux:     &http.ServeMux{},
		checks:  checks,
		timeout: timeout,
	}

	h.mux.HandleFunc("GET /{$}", h.getHealthCheck)

	return h
}

func (h *Handler) getHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res := Response{
		Status:    StatusHealthy,
		Timestamp: time.Now().Format(time.RFC3339),
		Checks:    make(map[string]string, len(h.checks)),
	}

	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "health check failed", slog.String("check", name), slogx.Error(err))
			res.Checks[name] = StatusUnhealthy
			res.Status = StatusUnhealthy
			continue
		}

		res.Checks[name] = StatusHealthy
	}

	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		slog.WarnContext(ctx, "could not read host memory", slogx.Error(errors.WithStack(err)))
	} else {
		res.Memory = &Memory{
			Total:       vmem.Total,
			Available:   vmem.Available,
			UsedPercent: vmem.UsedPercent,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if res.Status != StatusHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode health response", slogx.Error(errors.WithStack(err)))
	}
}

var _ http.Handler = &Handler{}
