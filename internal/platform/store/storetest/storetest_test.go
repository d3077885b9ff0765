package storetest

import (
	"context"
	"errors"
	"testing"

	"meanin/internal/platform/store"

	"github.com/jackc/pgx/v5"
)

func TestDB_RoutesAndScans(t *testing.T) {
	db := New().
		Returns("from terms", []any{"id-1", "late night", nil}).
		Fails("insert", errors.New("boom"))
	ctx := context.Background()

	var id, phrase string
	var origin *string
	if err := db.QueryRow(ctx, "select id from terms").Scan(&id, &phrase, &origin); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if id != "id-1" || phrase != "late night" || origin != nil {
		t.Fatalf("got %q %q %v", id, phrase, origin)
	}

	if _, err := db.Exec(ctx, "insert into x"); err == nil {
		t.Fatalf("expected scripted failure")
	}
	if err := db.QueryRow(ctx, "select 1").Scan(&id); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("want ErrNoRows, got %v", err)
	}
	if db.Count("terms") != 1 || len(db.Calls()) != 3 {
		t.Fatalf("calls not recorded: %+v", db.Calls())
	}
}

func TestDB_PointerAndConvert(t *testing.T) {
	db := New().Returns("q", []any{"x", int64(3)})
	var s *string
	var n int
	if err := db.QueryRow(context.Background(), "q").Scan(&s, &n); err != nil {
		t.Fatal(err)
	}
	if s == nil || *s != "x" || n != 3 {
		t.Fatalf("got %v %d", s, n)
	}
}

func TestDB_TxAndMany(t *testing.T) {
	db := New().Returns("list", []any{"a"}, []any{"b"})
	err := db.Tx(context.Background(), func(q store.RowQuerier) error {
		got, err := store.Strings(context.Background(), q, "list")
		if err != nil || len(got) != 2 {
			t.Fatalf("got %v %v", got, err)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	db.TxErr = errors.New("no tx")
	if err := db.Tx(context.Background(), func(store.RowQuerier) error { return nil }); err == nil {
		t.Fatalf("expected tx error")
	}
}
