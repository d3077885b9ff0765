package objstore

import (
	"context"
	"errors"
	"testing"

	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store/storetest"
	kit "meanin/internal/platform/testkit"
)

func TestUpload_ReturnsPublicURLAndEvicts(t *testing.T) {
	db := storetest.New()
	cache := kit.NewMemCache()
	_ = cache.Set(context.Background(), cacheKey("cards", "cards/a.svg"), []byte("old"), 0)

	s := New(db, Options{PublicBase: "https://cdn.example/", Bucket: "cards", Cache: cache})
	url, err := s.Upload(context.Background(), "cards", "cards/a.svg", []byte("<svg/>"), "image/svg+xml")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://cdn.example/cards/a.svg" {
		t.Fatalf("url %q", url)
	}
	if cache.Len() != 0 {
		t.Fatalf("cache entry should be evicted")
	}
	calls := db.Calls()
	if len(calls) != 1 || calls[0].Args[0] != "cards" || calls[0].Args[2] != "image/svg+xml" {
		t.Fatalf("unexpected calls %+v", calls)
	}
}

func TestUpload_Failure(t *testing.T) {
	db := storetest.New().Fails("insert into objects", errors.New("disk full"))
	s := New(db, Options{PublicBase: "http://x", Bucket: "cards"})
	if _, err := s.Upload(context.Background(), "cards", "p", nil, "t"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGet_ReadThroughCache(t *testing.T) {
	db := storetest.New().Returns("from objects", []any{"image/svg+xml", []byte("<svg/>")})
	cache := kit.NewMemCache()
	s := New(db, Options{Bucket: "cards", Cache: cache})

	for i := 0; i < 2; i++ {
		o, err := s.Get(context.Background(), "cards", "cards/a.svg")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if o.ContentType != "image/svg+xml" || string(o.Body) != "<svg/>" {
			t.Fatalf("object %+v", o)
		}
	}
	if n := db.Count("from objects"); n != 1 {
		t.Fatalf("second read should hit the cache, db reads=%d", n)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := New(storetest.New(), Options{})
	if _, err := s.Get(context.Background(), "cards", "nope"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestPublicURL_OtherBucket(t *testing.T) {
	s := New(nil, Options{PublicBase: "http://app", Bucket: "cards"})
	if got := s.PublicURL("avatars", "a.png"); got != "http://app/avatars/a.png" {
		t.Fatalf("got %q", got)
	}
}
