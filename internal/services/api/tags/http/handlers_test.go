package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"meanin/internal/core/tagging"
	phttp "meanin/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type fixed []tagging.Tag

func (f fixed) List(context.Context) []tagging.Tag { return f }

func TestListTags(t *testing.T) {
	r := chi.NewRouter()
	Register(phttp.AdaptChi(r), fixed(tagging.MustLoad().Tags()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var env struct {
		Data struct {
			Tags []map[string]any `json:"tags"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if len(env.Data.Tags) == 0 {
		t.Fatalf("no tags in %s", rec.Body.String())
	}
	first := env.Data.Tags[0]
	if first["slug"] != "love" || first["accentColor"] == nil {
		t.Fatalf("unexpected tag %v", first)
	}
	if _, leaked := first["triggers"]; leaked {
		t.Fatalf("triggers must not be exposed")
	}
}
