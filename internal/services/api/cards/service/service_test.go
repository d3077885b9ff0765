package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	perr "meanin/internal/platform/errors"
	"meanin/internal/services/api/cards/domain"
)

type memObjects struct {
	data map[string][]byte
	fail error
}

func (m *memObjects) Upload(_ context.Context, bucket, path string, body []byte, _ string) (string, error) {
	if m.fail != nil {
		return "", m.fail
	}
	m.data[bucket+"/"+path] = body
	return "https://cdn.test/" + path, nil
}

func (m *memObjects) Get(_ context.Context, bucket, path string) (domain.Object, error) {
	b, ok := m.data[bucket+"/"+path]
	if !ok {
		return domain.Object{}, perr.ErrNotFound
	}
	return domain.Object{Body: b}, nil
}

type urls struct{}

func (urls) ShareURL(slug string) string { return "https://app.test/p/" + slug }
func (urls) CardURL(slug string) string  { return "https://app.test/cards/" + slug + ".svg" }

func TestCreate_PublishesAndPreviews(t *testing.T) {
	objs := &memObjects{data: map[string][]byte{}}
	s := New(objs, "", urls{})

	out, err := s.Create(context.Background(), domain.CardInput{Slug: " abc ", Text: "hi", Meaning: ""})
	if err != nil {
		t.Fatal(err)
	}
	if out.Slug != "abc" || out.CardURL != "https://cdn.test/cards/abc.svg" || out.ShareURL != "https://app.test/p/abc" {
		t.Fatalf("out %+v", out)
	}
	if out.Preview.Meaning != "Created on MeanIn." {
		t.Fatalf("preview %+v", out.Preview)
	}
	svg, err := s.SVG(context.Background(), "abc")
	if err != nil || !strings.Contains(string(svg), "meanin.com/p/abc") {
		t.Fatalf("stored svg %v", err)
	}
}

func TestCreate_UploadFailureFallsBack(t *testing.T) {
	s := New(&memObjects{fail: errors.New("full")}, "cards", urls{})
	out, err := s.Create(context.Background(), domain.CardInput{Slug: "x", Text: "t", Meaning: "m"})
	if err != nil {
		t.Fatal(err)
	}
	if out.CardURL != "https://app.test/cards/x.svg" {
		t.Fatalf("fallback url %q", out.CardURL)
	}
}

func TestSVG_NotFound(t *testing.T) {
	s := New(&memObjects{data: map[string][]byte{}}, "cards", urls{})
	if _, err := s.SVG(context.Background(), "nope"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}
