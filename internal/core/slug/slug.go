// Package slug makes public post tokens and URL-safe term slugs
package slug

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	// TokenLen is the length of a public post slug
	TokenLen = 8
	// MaxLen caps term slugs
	MaxLen = 60
	// Checks is how many candidates are verified before one is taken unchecked
	Checks = 5
)

var (
	radix = big.NewInt(int64(len(alphabet)))
	// randIndex is a seam for tests
	randIndex = func() int {
		n, err := rand.Int(rand.Reader, radix)
		if err != nil {
			panic("slug: crypto/rand failed: " + err.Error())
		}
		return int(n.Int64())
	}
)

// Generate returns a random lowercase base36 token of TokenLen chars
func Generate() string {
	var b strings.Builder
	b.Grow(TokenLen)
	for range TokenLen {
		b.WriteByte(alphabet[randIndex()])
	}
	return b.String()
}

// Slugify derives a term slug: accents folded, lowercase, anything outside
// [a-z0-9 -] dropped, whitespace runs to one dash, dash runs collapsed, capped
// at MaxLen. An empty result falls back to Generate.
func Slugify(phrase string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), phrase)
	if err != nil {
		folded = phrase
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	s := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	if len(s) > MaxLen {
		s = s[:MaxLen]
	}
	if s == "" {
		return Generate()
	}
	return s
}

// Taken reports whether a public slug is already used
type Taken func(ctx context.Context, slug string) (bool, error)

// Unique draws up to Checks candidates and returns the first one taken reports
// free. A lookup error counts as free. After Checks collisions a fresh
// candidate is returned without a check, so a collision remains possible.
func Unique(ctx context.Context, taken Taken) string {
	for range Checks {
		c := Generate()
		used, err := taken(ctx, c)
		if err != nil || !used {
			return c
		}
	}
	return Generate()
}
