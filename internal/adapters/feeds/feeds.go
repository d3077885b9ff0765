// Package feeds pulls short texts out of RSS and Atom feeds for seeding.
package feeds

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	perr "meanin/internal/platform/errors"

	"github.com/mmcdole/gofeed"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "meanin-seed/1.0"

	// MaxLen drops titles too long to read as a status line
	MaxLen = 160
)

// Reader fetches and parses feeds
type Reader struct {
	parser *gofeed.Parser
}

// New returns a Reader with its own HTTP client
func New() *Reader {
	p := gofeed.NewParser()
	p.UserAgent = userAgent
	p.Client = &http.Client{Timeout: defaultTimeout}
	return &Reader{parser: p}
}

// Titles returns up to n usable item titles from the feed at url, in feed order
func (r *Reader) Titles(ctx context.Context, url string, n int) ([]string, error) {
	f, err := r.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "fetch feed %s", url)
	}
	return titles(f, n), nil
}

// Parse reads a feed document from rd
func (r *Reader) Parse(rd io.Reader, n int) ([]string, error) {
	f, err := r.parser.Parse(rd)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse feed")
	}
	return titles(f, n), nil
}

func titles(f *gofeed.Feed, n int) []string {
	out := make([]string, 0, n)
	seen := map[string]struct{}{}
	for _, it := range f.Items {
		if len(out) >= n {
			break
		}
		t := strings.Join(strings.Fields(it.Title), " ")
		if t == "" || len([]rune(t)) > MaxLen {
			continue
		}
		k := strings.ToLower(t)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}
