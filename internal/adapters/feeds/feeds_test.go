package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const rss = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>t</title>
<item><title>  some   people never learn </title></item>
<item><title>Some people never learn</title></item>
<item><title></title></item>
<item><title>protect my energy</title></item>
<item><title>third</title></item>
</channel></rss>`

func TestParse_DedupAndLimit(t *testing.T) {
	got, err := New().Parse(strings.NewReader(rss), 2)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got[0] != "some people never learn" || got[1] != "protect my energy" {
		t.Fatalf("unexpected titles: %q", got)
	}
}

func TestTitles_FetchesURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rss))
	}))
	defer srv.Close()

	got, err := New().Titles(context.Background(), srv.URL, 10)
	if err != nil {
		t.Fatalf("titles: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 titles, got %q", got)
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := New().Parse(strings.NewReader("not a feed"), 3); err == nil {
		t.Fatalf("expected error")
	}
}
