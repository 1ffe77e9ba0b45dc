package authn

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	"github.com/DDeenis/url-shortener-frontend/internal/http/i18n"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/DDeenis/url-shortener-frontend/internal/store/repository/submission"
	"github.com/DDeenis/url-shortener-frontend/internal/store/testsuite"
	"github.com/gorilla/sessions"
)

var tokenRegex = regexp.MustCompile(`name="_token" value="([^"]+)"`)

type testEnv struct {
	client   *http.Client
	frontend *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch r.URL.Path {
		case "/api/login":
			if payload["password"] != "secret123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
		case "/api/register":
			if payload["username"] == "taken" {
				w.WriteHeader(http.StatusConflict)
				return
			}
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "backend-session"})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":       "1",
			"username": payload["username"],
			"email":    "alice@example.com",
		})
	}))
	t.Cleanup(backend.Close)

	logger := slogx.NewTestLogger(t)

	client, err := api.NewClient(backend.URL, api.WithHTTPClient(backend.Client()), api.WithLogger(logger))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	sessions := session.NewStore(sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")), "test")
	guard := common.NewSubmissionGuard(submission.NewRepository(testsuite.NewStore(t)))

	h := NewHandler(sessions, client, guard, WithLogger(logger))

	var handler http.Handler = http.StripPrefix("/auth", h)
	handler = h.Middleware()(handler)
	handler = session.Middleware(sessions)(handler)
	handler = i18n.Middleware("en")(handler)

	frontend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := httpCtx.SetBaseURL(r.Context(), &url.URL{Path: "/"})
		ctx = httpCtx.SetCurrentURL(ctx, r.URL)
		handler.ServeHTTP(w, r.WithContext(ctx))
	}))
	t.Cleanup(frontend.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	return &testEnv{
		frontend: frontend,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// get returns the status and the body of a page.
func (e *testEnv) get(t *testing.T, path string) (int, string) {
	t.Helper()

	res, err := e.client.Get(e.frontend.URL + path)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	defer res.Body.Close()

	var body strings.Builder
	if _, err := body.ReadFrom(res.Body); err != nil {
		t.Fatalf("%+v", err)
	}

	return res.StatusCode, body.String()
}

func (e *testEnv) post(t *testing.T, path string, values url.Values) (*http.Response, string) {
	t.Helper()

	res, err := e.client.PostForm(e.frontend.URL+path, values)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	defer res.Body.Close()

	var body strings.Builder
	if _, err := body.ReadFrom(res.Body); err != nil {
		t.Fatalf("%+v", err)
	}

	return res, body.String()
}

func extractToken(t *testing.T, body string) string {
	t.Helper()

	matches := tokenRegex.FindStringSubmatch(body)
	if len(matches) != 2 {
		t.Fatalf("could not find submission token in %s", body)
	}

	return matches[1]
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.get(t, "/auth/login")
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	token := extractToken(t, body)

	res, body := env.post(t, "/auth/login", url.Values{"_token": {token}, "username": {"alice"}})
	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if !strings.Contains(body, "This field is required") {
		t.Errorf("expected required error in %s", body)
	}

	token = extractToken(t, body)

	res, body = env.post(t, "/auth/login", url.Values{"_token": {token}, "username": {"alice"}, "password": {"wrong-password"}})
	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if !strings.Contains(body, "Invalid username or password") {
		t.Errorf("expected invalid credentials error in %s", body)
	}

	if strings.Contains(body, "wrong-password") {
		t.Errorf("expected password not to be rendered back in %s", body)
	}

	token = extractToken(t, body)

	credentials := url.Values{"_token": {token}, "username": {"alice"}, "password": {"secret123"}}

	res, _ = env.post(t, "/auth/login", credentials)
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if e, g := "/", res.Header.Get("Location"); e != g {
		t.Errorf("location: expected '%s', got '%s'", e, g)
	}

	_, body = env.get(t, "/auth/login")
	if !strings.Contains(body, "<strong>alice</strong>") {
		t.Errorf("expected user in navbar of %s", body)
	}

	if !strings.Contains(body, "Welcome back!") {
		t.Errorf("expected welcome flash in %s", body)
	}

	res, _ = env.post(t, "/auth/login", credentials)
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("replay status: expected %d, got %d", e, g)
	}

	if e, g := "/auth/login", res.Header.Get("Location"); e != g {
		t.Errorf("replay location: expected '%s', got '%s'", e, g)
	}

	_, body = env.get(t, "/auth/login")
	if !strings.Contains(body, "This form was already submitted") {
		t.Errorf("expected replay flash in %s", body)
	}
}

func TestLoginMissingToken(t *testing.T) {
	env := newTestEnv(t)

	res, _ := env.post(t, "/auth/login", url.Values{"username": {"alice"}, "password": {"secret123"}})
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	_, body := env.get(t, "/auth/login")
	if !strings.Contains(body, "The form could not be verified") {
		t.Errorf("expected missing token flash in %s", body)
	}

	if strings.Contains(body, "<strong>alice</strong>") {
		t.Errorf("expected user not to be logged in, got %s", body)
	}
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	_, body := env.get(t, "/auth/register")
	token := extractToken(t, body)

	res, body := env.post(t, "/auth/register", url.Values{
		"_token":         {token},
		"username":       {"taken"},
		"email":          {"bad"},
		"password":       {"secret123"},
		"repeatPassword": {"secret124"},
	})
	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	for _, expected := range []string{"Email is invalid", "Passwords do not match"} {
		if !strings.Contains(body, expected) {
			t.Errorf("expected '%s' in %s", expected, body)
		}
	}

	token = extractToken(t, body)

	res, body = env.post(t, "/auth/register", url.Values{
		"_token":         {token},
		"username":       {"taken"},
		"email":          {"taken@example.com"},
		"password":       {"secret123"},
		"repeatPassword": {"secret123"},
	})
	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if !strings.Contains(body, "Username already exists") {
		t.Errorf("expected username conflict in %s", body)
	}

	token = extractToken(t, body)

	res, _ = env.post(t, "/auth/register", url.Values{
		"_token":         {token},
		"username":       {"alice"},
		"email":          {"alice@example.com"},
		"password":       {"secret123"},
		"repeatPassword": {"secret123"},
	})
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	_, body = env.get(t, "/auth/register")
	if !strings.Contains(body, "Your account was created") {
		t.Errorf("expected registration flash in %s", body)
	}

	res, _ = env.post(t, "/auth/logout", url.Values{})
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("logout status: expected %d, got %d", e, g)
	}

	_, body = env.get(t, "/auth/login")
	if strings.Contains(body, "<strong>alice</strong>") {
		t.Errorf("expected user to be logged out, got %s", body)
	}
}
