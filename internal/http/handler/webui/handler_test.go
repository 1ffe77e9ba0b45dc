package webui

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/authn"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	"github.com/DDeenis/url-shortener-frontend/internal/http/i18n"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/DDeenis/url-shortener-frontend/internal/store/repository/link"
	"github.com/DDeenis/url-shortener-frontend/internal/store/repository/submission"
	"github.com/DDeenis/url-shortener-frontend/internal/store/testsuite"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var tokenRegex = regexp.MustCompile(`name="_token" value="([^"]+)"`)

type testEnv struct {
	client   *http.Client
	frontend *httptest.Server
	// profileUpdates counts the accepted profile updates of the backend
	profileUpdates *atomic.Int32
}

// unreliableStore is a cookie session store whose saves fail on demand.
type unreliableStore struct {
	*sessions.CookieStore
	fail atomic.Bool
}

func (s *unreliableStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

func (s *unreliableStore) New(r *http.Request, name string) (*sessions.Session, error) {
	decoded, err := s.CookieStore.New(r, name)

	sess := sessions.NewSession(s, name)
	if decoded != nil {
		sess.ID = decoded.ID
		sess.Values = decoded.Values
		sess.Options = decoded.Options
		sess.IsNew = decoded.IsNew
	}

	return sess, err
}

func (s *unreliableStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	if s.fail.Load() {
		return errors.New("session backend unavailable")
	}

	return s.CookieStore.Save(r, w, sess)
}

func newBackend(t *testing.T, profileUpdates *atomic.Int32) *httptest.Server {
	t.Helper()

	decode := func(r *http.Request) map[string]string {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		return payload
	}

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}

	authenticated := func(r *http.Request) bool {
		cookie, err := r.Cookie("sid")
		return err == nil && cookie.Value == "backend-session"
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		payload := decode(r)
		if payload["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "backend-session"})
		writeJSON(w, map[string]any{"id": "1", "username": payload["username"], "email": "alice@example.com"})
	})

	mux.HandleFunc("POST /api/shorten", func(w http.ResponseWriter, r *http.Request) {
		payload := decode(r)
		writeJSON(w, map[string]any{"id": "abc123", "originalUrl": payload["originalUrl"], "redirects": 0})
	})

	mux.HandleFunc("GET /api/url", func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		writeJSON(w, map[string]any{
			"data": []map[string]any{
				{"id": "abc123", "originalUrl": "https://example.com/a/very/long/path", "redirects": 3},
			},
			"meta": map[string]any{"hasNext": false},
		})
	})

	mux.HandleFunc("PUT /api/url/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("PUT /api/profile", func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if decode(r)["username"] == "taken" {
			w.WriteHeader(http.StatusConflict)
			return
		}

		profileUpdates.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("PUT /api/profile/password", func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if decode(r)["currentPassword"] != "secret123" {
			w.WriteHeader(http.StatusConflict)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})

	backend := httptest.NewServer(mux)
	t.Cleanup(backend.Close)

	return backend
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return newTestEnvWithStore(t, sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")))
}

func newTestEnvWithStore(t *testing.T, sessionStore sessions.Store) *testEnv {
	t.Helper()

	profileUpdates := &atomic.Int32{}
	backend := newBackend(t, profileUpdates)
	logger := slogx.NewTestLogger(t)

	client, err := api.NewClient(backend.URL, api.WithHTTPClient(backend.Client()), api.WithLogger(logger))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	store := testsuite.NewStore(t)

	sessions := session.NewStore(sessionStore, "test")
	guard := common.NewSubmissionGuard(submission.NewRepository(store))

	authnHandler := authn.NewHandler(sessions, client, guard, authn.WithLogger(logger))
	webuiHandler := NewHandler(client, link.NewRepository(store), sessions, guard, WithLogger(logger))

	mux := http.NewServeMux()
	mux.Handle("/auth/", http.StripPrefix("/auth", authnHandler))
	mux.Handle("/", webuiHandler)

	var handler http.Handler = mux
	handler = authnHandler.Middleware()(handler)
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
		frontend:       frontend,
		profileUpdates: profileUpdates,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	res, err := e.client.Get(e.frontend.URL + path)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	return res, readBody(t, res)
}

func (e *testEnv) post(t *testing.T, path string, values url.Values) (*http.Response, string) {
	t.Helper()

	res, err := e.client.PostForm(e.frontend.URL+path, values)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	return res, readBody(t, res)
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()

	_, body := e.get(t, "/auth/login")

	res, _ := e.post(t, "/auth/login", url.Values{
		"_token":   {extractToken(t, body)},
		"username": {"alice"},
		"password": {"secret123"},
	})
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("login status: expected %d, got %d", e, g)
	}
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	defer res.Body.Close()

	var body strings.Builder
	if _, err := body.ReadFrom(res.Body); err != nil {
		t.Fatalf("%+v", err)
	}

	return body.String()
}

func extractToken(t *testing.T, body string) string {
	t.Helper()

	matches := tokenRegex.FindStringSubmatch(body)
	if len(matches) != 2 {
		t.Fatalf("could not find submission token in %s", body)
	}

	return matches[1]
}

func TestShortener(t *testing.T) {
	env := newTestEnv(t)

	res, body := env.get(t, "/")
	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	res, body = env.post(t, "/", url.Values{"_token": {extractToken(t, body)}, "originalUrl": {"not a url"}})
	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if !strings.Contains(body, "URL is invalid") {
		t.Errorf("expected url error in %s", body)
	}

	res, _ = env.post(t, "/", url.Values{"_token": {extractToken(t, body)}, "originalUrl": {"https://example.com/a/very/long/path"}})
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	location := res.Header.Get("Location")
	if e, g := "/?link=abc123", location; e != g {
		t.Errorf("location: expected '%s', got '%s'", e, g)
	}

	_, body = env.get(t, location)
	for _, expected := range []string{"/s/abc123", "https://example.com/a/very/long/path"} {
		if !strings.Contains(body, expected) {
			t.Errorf("expected '%s' in %s", expected, body)
		}
	}
}

func TestHistoryRequiresUser(t *testing.T) {
	env := newTestEnv(t)

	res, _ := env.get(t, "/history/")
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if e, g := "/auth/login", res.Header.Get("Location"); e != g {
		t.Errorf("location: expected '%s', got '%s'", e, g)
	}
}

func TestHistory(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	res, body := env.get(t, "/history/")
	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if !strings.Contains(body, "https://example.com/a/very/long/path") {
		t.Errorf("expected link in %s", body)
	}

	res, _ = env.post(t, "/history/abc123/toggle", url.Values{"_token": {extractToken(t, body)}})
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("toggle status: expected %d, got %d", e, g)
	}

	_, body = env.get(t, res.Header.Get("Location"))
	if !strings.Contains(body, "The link status was updated") {
		t.Errorf("expected toggle flash in %s", body)
	}
}

func TestProfilePassword(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	res, body := env.get(t, "/profile/")
	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	res, body = env.post(t, "/profile/password", url.Values{
		"_token":            {extractToken(t, body)},
		"currentPassword":   {"secret123"},
		"newPassword":       {"secret456"},
		"repeatNewPassword": {"secret789"},
	})
	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if !strings.Contains(body, "Passwords do not match") {
		t.Errorf("expected mismatch error in %s", body)
	}

	res, body = env.post(t, "/profile/password", url.Values{
		"_token":            {extractToken(t, body)},
		"currentPassword":   {"not-my-password"},
		"newPassword":       {"secret456"},
		"repeatNewPassword": {"secret456"},
	})
	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if !strings.Contains(body, "Wrong password") {
		t.Errorf("expected wrong password error in %s", body)
	}

	res, _ = env.post(t, "/profile/password", url.Values{
		"_token":            {extractToken(t, body)},
		"currentPassword":   {"secret123"},
		"newPassword":       {"secret456"},
		"repeatNewPassword": {"secret456"},
	})
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	_, body = env.get(t, res.Header.Get("Location"))
	if !strings.Contains(body, "Your password was changed") {
		t.Errorf("expected password flash in %s", body)
	}
}

func TestProfileDetails(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	_, body := env.get(t, "/profile/")

	res, body := env.post(t, "/profile/details", url.Values{
		"_token":   {extractToken(t, body)},
		"username": {"alice2"},
		"email":    {"not-an-email"},
	})
	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if !strings.Contains(body, "Email is invalid") {
		t.Errorf("expected email error in %s", body)
	}

	res, body = env.post(t, "/profile/details", url.Values{
		"_token":   {extractToken(t, body)},
		"username": {"taken"},
		"email":    {"alice@example.com"},
	})
	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if !strings.Contains(body, "Username already exists") {
		t.Errorf("expected username conflict in %s", body)
	}

	res, _ = env.post(t, "/profile/details", url.Values{
		"_token":   {extractToken(t, body)},
		"username": {"alice2"},
		"email":    {"alice2@example.com"},
	})
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	if e, g := "/profile/", res.Header.Get("Location"); e != g {
		t.Errorf("location: expected '%s', got '%s'", e, g)
	}

	_, body = env.get(t, "/profile/")
	for _, expected := range []string{"<strong>alice2</strong>", "Your details were updated"} {
		if !strings.Contains(body, expected) {
			t.Errorf("expected '%s' in %s", expected, body)
		}
	}

	if e, g := int32(1), env.profileUpdates.Load(); e != g {
		t.Errorf("profile updates: expected %d, got %d", e, g)
	}
}

func TestProfileDetailsSessionSaveFailure(t *testing.T) {
	store := &unreliableStore{
		CookieStore: sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")),
	}

	env := newTestEnvWithStore(t, store)
	env.login(t)

	_, body := env.get(t, "/profile/")

	values := url.Values{
		"_token":   {extractToken(t, body)},
		"username": {"alice2"},
		"email":    {"alice2@example.com"},
	}

	store.fail.Store(true)

	res, _ := env.post(t, "/profile/details", values)
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	store.fail.Store(false)

	// The update went through, so the same form must not be accepted twice
	res, _ = env.post(t, "/profile/details", values)
	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("resubmission status: expected %d, got %d", e, g)
	}

	_, body = env.get(t, res.Header.Get("Location"))
	if !strings.Contains(body, "This form was already submitted") {
		t.Errorf("expected replay flash in %s", body)
	}

	if e, g := int32(1), env.profileUpdates.Load(); e != g {
		t.Errorf("profile updates: expected %d, got %d", e, g)
	}
}
