package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"meanin/internal/core/tagging"
	"meanin/internal/platform/store/storetest"
	"meanin/internal/services/api/showcase/domain"
	"meanin/internal/services/api/showcase/repo"
)

type tagLookup map[string]tagging.Tag

func (m tagLookup) Get(_ context.Context, slug string) *tagging.Tag {
	if t, ok := m[slug]; ok {
		return &t
	}
	return nil
}

var postRow = []any{"p1", "no cap fr", "no cap", "abc12345", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

func postsCall(db *storetest.DB) storetest.Call {
	for _, c := range db.Calls() {
		if strings.Contains(c.SQL, "public_slug") {
			return c
		}
	}
	return storetest.Call{}
}

func TestShowcase_AllIgnoresCategory(t *testing.T) {
	db := storetest.New().
		Returns("public_slug", postRow).
		Returns("select keyword_text", []any{" no cap "}, []any{"No Cap"}, []any{"rizz"})

	out := New(db, repo.NewPG(), nil).Showcase(context.Background(), domain.Input{Category: "All"})
	if len(out.Posts) != 1 || out.Posts[0].PublicSlug != "abc12345" {
		t.Fatalf("posts %+v", out.Posts)
	}
	if len(out.Categories) != 2 || out.Categories[0] != "no cap" || out.Categories[1] != "rizz" {
		t.Fatalf("categories %v", out.Categories)
	}
	c := postsCall(db)
	if strings.Contains(c.SQL, "lower(keyword_text)") || len(c.Args) != 1 || c.Args[0] != PostLimit {
		t.Fatalf("unexpected filter %q %v", c.SQL, c.Args)
	}
	if out.TagDetail != nil {
		t.Fatalf("no tag, no detail")
	}
}

func TestShowcase_Filters(t *testing.T) {
	db := storetest.New().Returns("public_slug", postRow)
	tags := tagLookup{"shade": {Slug: "shade", Label: "Shade"}}

	out := New(db, repo.NewPG(), tags).Showcase(context.Background(), domain.Input{Category: "No Cap", Tag: "shade"})
	c := postsCall(db)
	if !strings.Contains(c.SQL, "lower(keyword_text) = lower($1)") || !strings.Contains(c.SQL, "tag_slug = $2") {
		t.Fatalf("filters missing: %s", c.SQL)
	}
	if c.Args[0] != "No Cap" || c.Args[1] != "shade" || c.Args[2] != PostLimit {
		t.Fatalf("args %v", c.Args)
	}
	if out.TagDetail == nil || out.TagDetail.Label != "Shade" {
		t.Fatalf("tag detail %+v", out.TagDetail)
	}
}

func TestShowcase_ErrorsDegrade(t *testing.T) {
	boom := errors.New("boom")
	db := storetest.New().Fails("public_slug", boom).Fails("select keyword_text", boom)

	out := New(db, repo.NewPG(), nil).Showcase(context.Background(), domain.Input{})
	if out.Posts == nil || len(out.Posts) != 0 || out.Categories == nil || len(out.Categories) != 0 {
		t.Fatalf("want empty lists, got %+v", out)
	}
}

func TestShowcase_FailedPostsKeepCategories(t *testing.T) {
	db := storetest.New().
		Fails("public_slug", errors.New("boom")).
		Returns("select keyword_text", []any{"rizz"})

	out := New(db, repo.NewPG(), nil).Showcase(context.Background(), domain.Input{})
	if len(out.Posts) != 0 || out.Posts == nil {
		t.Fatalf("posts should degrade to empty, got %+v", out.Posts)
	}
	if len(out.Categories) != 1 || out.Categories[0] != "rizz" {
		t.Fatalf("categories lost after posts failure: %v", out.Categories)
	}
}
