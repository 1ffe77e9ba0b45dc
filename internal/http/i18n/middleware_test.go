package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/invopop/ctxi18n/i18n"
)

func TestMiddleware(t *testing.T) {
	type testCase struct {
		Name           string
		AcceptLanguage string
	}

	testCases := []testCase{
		{Name: "default"},
		{Name: "accept language", AcceptLanguage: "en-US,en;q=0.9"},
		{Name: "unknown language", AcceptLanguage: "xx"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var translated string

			handler := Middleware("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				translated = i18n.T(r.Context(), "validation.required")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.AcceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.AcceptLanguage)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if e, g := "This field is required", translated; e != g {
				t.Errorf("expected '%s', got '%s'", e, g)
			}
		})
	}
}
