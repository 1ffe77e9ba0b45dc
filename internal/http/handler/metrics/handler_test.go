package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestHandler(t *testing.T) {
	registry := prometheus.NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_requests_total",
		Help: "Test counter",
	})
	registry.MustRegister(counter)
	counter.Inc()

	type testCase struct {
		Name          string
		Token         string
		Authorization string
		Expected      int
	}

	testCases := []testCase{
		{Name: "open", Expected: http.StatusOK},
		{Name: "missing token", Token: "s3cr3t", Expected: http.StatusUnauthorized},
		{Name: "invalid token", Token: "s3cr3t", Authorization: "Bearer nope", Expected: http.StatusUnauthorized},
		{Name: "valid token", Token: "s3cr3t", Authorization: "Bearer s3cr3t", Expected: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			handler := NewHandler(registry, tc.Token)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.Authorization != "" {
				req.Header.Set("Authorization", tc.Authorization)
			}

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			if e, g := tc.Expected, res.Code; e != g {
				t.Fatalf("status: expected %d, got %d", e, g)
			}

			if tc.Expected != http.StatusOK {
				return
			}

			if body := res.Body.String(); !strings.Contains(body, "test_requests_total 1") {
				t.Errorf("expected counter in %s", body)
			}
		})
	}
}
