// Package card renders the shareable 1080x1920 story card for a post.
package card

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"strings"
	"text/template"

	pstrings "meanin/internal/platform/strings"
)

const (
	// MaxText and MaxMeaning cap the runes drawn on the card
	MaxText    = 180
	MaxMeaning = 280

	// ContentType of a rendered card
	ContentType = "image/svg+xml"

	// DefaultAccent colours the Meaning label when no tag palette is given
	DefaultAccent = "#8B5CFF"

	// Placeholder is the meaning drawn when a post has none yet
	Placeholder = "Created on MeanIn."
)

//go:embed card.svg.tmpl
var source string

var tmpl = template.Must(template.New("card").Funcs(template.FuncMap{"x": escape}).Parse(source))

// Card is everything drawn on one card
type Card struct {
	Slug    string
	Text    string
	Meaning string
	// Accent overrides DefaultAccent, usually from the post's tag
	Accent string
}

// Render returns the SVG document for c. Text and meaning are cut to their
// rune caps before escaping so entities are never split.
func Render(c Card) ([]byte, error) {
	c.Text = pstrings.Truncate(strings.TrimSpace(c.Text), MaxText)
	c.Meaning = pstrings.Truncate(strings.TrimSpace(c.Meaning), MaxMeaning)
	if c.Accent == "" {
		c.Accent = DefaultAccent
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MeaningText picks the card line: short definition, else full explanation,
// else Placeholder
func MeaningText(short, full string) string {
	if s := strings.TrimSpace(short); s != "" {
		return s
	}
	if s := strings.TrimSpace(full); s != "" {
		return s
	}
	return Placeholder
}

// Path is the object key of a card inside its bucket
func Path(slug string) string { return "cards/" + slug + ".svg" }

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
