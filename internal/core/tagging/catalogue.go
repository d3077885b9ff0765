// Package tagging assigns a post to one tag of the fixed catalogue.
// Trigger words decide first, then the completion backend picks from the
// closed list of slugs, then General.
package tagging

import (
	_ "embed"
	"fmt"
	"strings"

	"meanin/internal/core/normalize"

	"gopkg.in/yaml.v3"
)

// General is the universal fallback tag
const General = "general"

//go:embed tags.yaml
var embedded []byte

// Tag is one catalogue entry
type Tag struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Label       string   `yaml:"label" json:"label"`
	Description string   `yaml:"description" json:"description,omitempty"`
	BgGradient  string   `yaml:"bg_gradient" json:"bgGradient,omitempty"`
	TextColor   string   `yaml:"text_color" json:"textColor"`
	AccentColor string   `yaml:"accent_color" json:"accentColor"`
	Triggers    []string `yaml:"triggers" json:"-"`
}

type rawCatalogue struct {
	Version int   `yaml:"version"`
	Tags    []Tag `yaml:"tags"`
}

// Catalogue is the ordered tag table plus its compiled trigger matcher
type Catalogue struct {
	tags    []Tag
	index   map[string]int
	matcher *matcher
}

// Load parses the embedded catalogue
func Load() (*Catalogue, error) { return Parse(embedded) }

// MustLoad is Load for process start
func MustLoad() *Catalogue {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a catalogue from YAML. Slugs must be unique and General must be present.
func Parse(b []byte) (*Catalogue, error) {
	var raw rawCatalogue
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("tagging: parse catalogue: %w", err)
	}
	c := &Catalogue{index: make(map[string]int, len(raw.Tags)), matcher: newMatcher()}
	for i, t := range raw.Tags {
		t.Slug = strings.TrimSpace(t.Slug)
		if t.Slug == "" {
			return nil, fmt.Errorf("tagging: tag %d has no slug", i)
		}
		if _, dup := c.index[t.Slug]; dup {
			return nil, fmt.Errorf("tagging: duplicate tag %q", t.Slug)
		}
		c.index[t.Slug] = len(c.tags)
		c.tags = append(c.tags, t)
		for _, trig := range t.Triggers {
			c.matcher.add(normalize.Fold(trig), i)
		}
	}
	if _, ok := c.index[General]; !ok {
		return nil, fmt.Errorf("tagging: catalogue lacks %q", General)
	}
	c.matcher.build()
	return c, nil
}

// Tags returns the entries in priority order
func (c *Catalogue) Tags() []Tag { return append([]Tag(nil), c.tags...) }

// Slugs returns the known slugs in priority order
func (c *Catalogue) Slugs() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.Slug
	}
	return out
}

// Get returns the entry for slug
func (c *Catalogue) Get(slug string) (Tag, bool) {
	i, ok := c.index[slug]
	if !ok {
		return Tag{}, false
	}
	return c.tags[i], true
}

// Known reports whether slug is in the catalogue
func (c *Catalogue) Known(slug string) bool {
	_, ok := c.index[slug]
	return ok
}

// Match returns the highest priority tag with a trigger in any of the texts
func (c *Catalogue) Match(texts ...string) (string, bool) {
	best := -1
	for _, s := range texts {
		if i := c.matcher.first(normalize.Fold(s)); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return c.tags[best].Slug, true
}
