package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"meanin/internal/adapters/feeds"
	"meanin/internal/adapters/llm"
)

func TestTexts_FallbackWithoutBackends(t *testing.T) {
	s := &seeder{}
	got, src := s.texts(context.Background(), "", 3)
	if src != "fallback" || len(got) != 3 || got[0] != fallbackLines[0] {
		t.Fatalf("got %q from %s", got, src)
	}
	got, _ = s.texts(context.Background(), "", 50)
	if len(got) != len(fallbackLines) {
		t.Fatalf("fallback should cap at %d, got %d", len(fallbackLines), len(got))
	}
}

func TestTexts_PrefersCompletion(t *testing.T) {
	s := &seeder{llm: llm.CompleterFunc(func(context.Context, string) (string, error) {
		return "```json\n{\"lines\": [\"rain day again\", \"Rain day again\", \"new phone who dis\"]}\n```", nil
	})}
	got, src := s.texts(context.Background(), "", 6)
	if src != "llm" || len(got) != 2 || got[1] != "new phone who dis" {
		t.Fatalf("got %q from %s", got, src)
	}
}

func TestTexts_BadFeedFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	s := &seeder{feeds: feeds.New(), llm: llm.CompleterFunc(func(context.Context, string) (string, error) {
		return "", errors.New("quota")
	})}
	_, src := s.texts(context.Background(), srv.URL, 2)
	if src != "fallback" {
		t.Fatalf("want fallback, got %s", src)
	}
}

func TestRun_PostsEachText(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/posts" {
			http.NotFound(w, r)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(in["text"], "boom") {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"status_code":500,"error":"could not create post"}`))
			return
		}
		if in["platform"] != "whatsapp-status" {
			t.Errorf("platform = %q", in["platform"])
		}
		calls.Add(1)
		_, _ = w.Write([]byte(`{"status_code":200,"data":{"slug":"ab12cd34","shareUrl":"http://x/p/ab12cd34"}}`))
	}))
	defer srv.Close()

	s := &seeder{base: srv.URL, client: srv.Client()}
	ok := s.run(context.Background(), []string{"one", "boom", "two"})
	if ok != 2 || calls.Load() != 2 {
		t.Fatalf("ok=%d calls=%d", ok, calls.Load())
	}

	out, err := s.post(context.Background(), "three")
	if err != nil || out.Slug != "ab12cd34" {
		t.Fatalf("post: %+v %v", out, err)
	}
}

func TestCheckAI(t *testing.T) {
	if err := checkAI(context.Background(), nil); err == nil {
		t.Fatal("nil completer must fail")
	}
	ok := llm.CompleterFunc(func(context.Context, string) (string, error) { return `{"status":"ok"}`, nil })
	if err := checkAI(context.Background(), ok); err != nil {
		t.Fatalf("ok reply: %v", err)
	}
	bad := llm.CompleterFunc(func(context.Context, string) (string, error) { return `{"status":"nope"}`, nil })
	if err := checkAI(context.Background(), bad); err == nil {
		t.Fatal("wrong status must fail")
	}
}
