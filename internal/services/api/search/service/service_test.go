package service

import (
	"context"
	"errors"
	"testing"

	"meanin/internal/platform/store/storetest"
	"meanin/internal/services/api/search/repo"
)

func TestSearch_ShortQuerySkipsStore(t *testing.T) {
	db := storetest.New()
	out := New(db, repo.NewPG()).Search(context.Background(), "  a ")
	if out.Results == nil || len(out.Results) != 0 || len(db.Calls()) != 0 {
		t.Fatalf("short query should not hit the store: %+v", out)
	}
}

func TestSearch_Matches(t *testing.T) {
	db := storetest.New().Returns("from posts", []any{"abc12345", "no cap", "no cap fr"})
	out := New(db, repo.NewPG()).Search(context.Background(), " No Cap ")
	if len(out.Results) != 1 || out.Results[0].Slug != "abc12345" {
		t.Fatalf("unexpected %+v", out)
	}
	args := db.Calls()[0].Args
	if args[0] != "%No Cap%" || args[1] != Limit {
		t.Fatalf("args %v", args)
	}
}

func TestSearch_ErrorDegrades(t *testing.T) {
	db := storetest.New().Fails("from posts", errors.New("boom"))
	out := New(db, repo.NewPG()).Search(context.Background(), "rizz")
	if out.Results == nil || len(out.Results) != 0 {
		t.Fatalf("errors should give empty results: %+v", out)
	}
}

func TestSearch_NoMatchIsEmptyList(t *testing.T) {
	out := New(storetest.New(), repo.NewPG()).Search(context.Background(), "rizz")
	if out.Results == nil {
		t.Fatalf("results must be a list")
	}
}
