package authprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	perr "meanin/internal/platform/errors"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := New(Options{BaseURL: srv.URL, APIKey: "anon"})
	c.sleep = func(time.Duration) {}
	return c
}

func TestNew_DisabledWithoutURL(t *testing.T) {
	if New(Options{}) != nil {
		t.Fatalf("expected nil client")
	}
}

func TestVerify_OK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != userPath || r.Header.Get("Authorization") != "Bearer tok" || r.Header.Get("apikey") != "anon" {
			t.Errorf("unexpected request %s %v", r.URL.Path, r.Header)
		}
		_, _ = w.Write([]byte(`{"id":"user-1","email":"x@y"}`))
	})
	id, err := c.Verify(context.Background(), "tok")
	if err != nil || id != "user-1" {
		t.Fatalf("got %q %v", id, err)
	}
}

func TestVerify_Rejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := c.Verify(context.Background(), "bad")
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("want unauthorized, got %v", err)
	}
}

func TestVerify_RetriesTransient(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"id":"u2"}`))
	})
	id, err := c.Verify(context.Background(), "tok")
	if err != nil || id != "u2" || calls.Load() != 2 {
		t.Fatalf("got %q %v after %d calls", id, err, calls.Load())
	}
}

func TestVerify_GivesUpUnavailable(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err := c.Verify(context.Background(), "tok")
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
	if calls.Load() != int32(defaultMaxRetry+1) {
		t.Fatalf("want %d calls, got %d", defaultMaxRetry+1, calls.Load())
	}
}

func TestVerify_EmptyID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	if _, err := c.Verify(context.Background(), "tok"); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("want unauthorized, got %v", err)
	}
}
