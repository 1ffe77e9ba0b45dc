package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestHealthCheck(t *testing.T) {
	type testCase struct {
		Name           string
		Checks         map[string]Pinger
		ExpectedStatus int
		ExpectedChecks map[string]string
	}

	healthy := PingerFunc(func(ctx context.Context) error { return nil })
	unhealthy := PingerFunc(func(ctx context.Context) error { return errors.New("unreachable") })

	testCases := []testCase{
		{
			Name:           "healthy",
			Checks:         map[string]Pinger{"store": healthy, "backend": healthy},
			ExpectedStatus: http.StatusOK,
			ExpectedChecks: map[string]string{"store": StatusHealthy, "backend": StatusHealthy},
		},
		{
			Name:           "backend down",
			Checks:         map[string]Pinger{"store": healthy, "backend": unhealthy},
			ExpectedStatus: http.StatusServiceUnavailable,
			ExpectedChecks: map[string]string{"store": StatusHealthy, "backend": StatusUnhealthy},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			handler := NewHandler(tc.Checks, time.Second)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if res.Code != tc.ExpectedStatus {
				t.Errorf("expected status %d, got %d", tc.ExpectedStatus, res.Code)
			}

			var body Response
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("%+v", err)
			}

			if diff := cmp.Diff(tc.ExpectedChecks, body.Checks); diff != "" {
				t.Errorf("checks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
