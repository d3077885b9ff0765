package service

import (
	"context"
	"errors"
	"testing"

	"meanin/internal/platform/store/storetest"
	"meanin/internal/services/terms/domain"
	"meanin/internal/services/terms/repo"
)

func newSvc(db *storetest.DB) *Service { return New(db, repo.NewPG()) }

func TestEnsure_FindsExisting(t *testing.T) {
	db := storetest.New().Returns("where phrase ilike", []any{"t1", "No Cap", "no-cap", domain.StatusPublished})
	got := newSvc(db).Ensure(context.Background(), " no cap ")
	if got == nil || got.ID != "t1" {
		t.Fatalf("want t1, got %+v", got)
	}
	if db.Count("insert into terms") != 0 {
		t.Fatalf("existing term should not be recreated")
	}
	if arg := db.Calls()[0].Args[0]; arg != "%no cap%" {
		t.Fatalf("pattern %v", arg)
	}
}

func TestEnsure_CreatesDraft(t *testing.T) {
	db := storetest.New().On("insert into terms", func(_ string, args []any) ([][]any, error) {
		return [][]any{{"t2", args[0], args[1], args[2]}}, nil
	})
	got := newSvc(db).Ensure(context.Background(), "Main Character")
	if got == nil || got.Slug != "main-character" || got.Status != domain.StatusDraft {
		t.Fatalf("unexpected term %+v", got)
	}
}

func TestEnsure_DegradesToNil(t *testing.T) {
	boom := errors.New("boom")
	if got := newSvc(storetest.New().Fails("ilike", boom)).Ensure(context.Background(), "x"); got != nil {
		t.Fatalf("lookup failure should yield nil")
	}
	if got := newSvc(storetest.New().Fails("insert", boom)).Ensure(context.Background(), "x"); got != nil {
		t.Fatalf("create failure should yield nil")
	}
	if got := newSvc(storetest.New()).Ensure(context.Background(), "  "); got != nil {
		t.Fatalf("blank keyword should yield nil")
	}
}

func TestFindLike_EscapesWildcards(t *testing.T) {
	db := storetest.New()
	if _, err := newSvc(db).FindLike(context.Background(), "100%_real"); err != nil {
		t.Fatal(err)
	}
	if arg := db.Calls()[0].Args[0]; arg != `%100\%\_real%` {
		t.Fatalf("pattern %v", arg)
	}
}

func TestMeaningByTerm(t *testing.T) {
	db := storetest.New().Returns("from term_meanings", []any{"m1", "t1", "short", "", []string{"ex"}, ""})
	m, err := newSvc(db).MeaningByTerm(context.Background(), "t1")
	if err != nil || m == nil || m.ShortDefinition != "short" || len(m.Examples) != 1 {
		t.Fatalf("got %+v %v", m, err)
	}

	m, err = newSvc(storetest.New()).MeaningByTerm(context.Background(), "t1")
	if err != nil || m != nil {
		t.Fatalf("missing meaning should be nil,nil: %+v %v", m, err)
	}
}

func TestInsertMeaning_NullsBlanks(t *testing.T) {
	db := storetest.New().Returns("insert into term_meanings", []any{"m9"})
	id, err := newSvc(db).InsertMeaning(context.Background(), domain.Meaning{TermID: "t1", ShortDefinition: "s"})
	if err != nil || id != "m9" {
		t.Fatalf("got %q %v", id, err)
	}
	args := db.Calls()[0].Args
	if args[2] != nil || args[4] != nil {
		t.Fatalf("blank fields should be NULL: %v", args)
	}
	if ex, ok := args[3].([]string); !ok || ex == nil {
		t.Fatalf("examples should be an empty array, got %#v", args[3])
	}
}
