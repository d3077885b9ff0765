package tagging

import (
	"context"
	"regexp"
	"strings"

	"meanin/internal/adapters/llm"
	"meanin/internal/core/chain"
	"meanin/internal/platform/logger"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TagStore persists catalogue rows so posts can reference them
type TagStore interface {
	Exists(ctx context.Context, slug string) (bool, error)
	Upsert(ctx context.Context, t Tag) error
}

// Classifier resolves a post to one tag slug
type Classifier struct {
	cat   *Catalogue
	store TagStore
	llm   llm.Completer
}

// NewClassifier wires the catalogue with an optional store and completion backend
func NewClassifier(cat *Catalogue, store TagStore, c llm.Completer) *Classifier {
	return &Classifier{cat: cat, store: store, llm: c}
}

// Catalogue exposes the table the classifier reads
func (c *Classifier) Catalogue() *Catalogue { return c.cat }

type reply struct {
	Tag string `json:"tag" validate:"notblank,max=60"`
}

// Classify never fails; General is the floor
func (c *Classifier) Classify(ctx context.Context, text, keyword string) string {
	slug, by := chain.First(ctx, General,
		chain.Step("trigger", func(ctx context.Context) (string, bool) {
			s, ok := c.cat.Match(text, keyword)
			if ok {
				c.ensure(ctx, s)
			}
			return s, ok
		}),
		chain.Step("completion", func(ctx context.Context) (string, bool) { return c.complete(ctx, text, keyword) }),
	)
	logger.C(ctx).Debug().Str("tag", slug).Str("by", by).Msg("post classified")
	return slug
}

// ensure upserts the catalogue row when the store lacks it. Store errors are
// logged and the slug is still used.
func (c *Classifier) ensure(ctx context.Context, slug string) {
	if c.store == nil {
		return
	}
	ok, err := c.store.Exists(ctx, slug)
	if err == nil && ok {
		return
	}
	t, _ := c.cat.Get(slug)
	if err := c.store.Upsert(ctx, t); err != nil {
		logger.C(ctx).Warn().Err(err).Str("tag", slug).Msg("tag upsert failed")
	}
}

func (c *Classifier) complete(ctx context.Context, text, keyword string) (string, bool) {
	if c.llm == nil {
		return "", false
	}
	res := llm.Ask[reply](ctx, c.llm, ClosedPrompt(c.cat.Slugs(), text, keyword))
	if !res.Valid {
		logger.C(ctx).Warn().Err(res.Reason).Msg("tag completion rejected")
		return "", false
	}
	slug := strings.ToLower(strings.TrimSpace(res.Value.Tag))
	if !c.cat.Known(slug) {
		return "", false
	}
	c.ensure(ctx, slug)
	return slug, true
}

// ClosedPrompt asks the model to choose one of slugs
func ClosedPrompt(slugs []string, text, keyword string) string {
	return `You classify short status posts for MeanIn.

Pick exactly ONE tag from this list: ` + strings.Join(slugs, ", ") + `
If none fits, answer "general".

Return JSON: {"tag": "slug"}

Post: "` + text + `"
Keyword: "` + keyword + `"`
}

// OpenPrompt lets the model reuse an existing tag or name a new one
func OpenPrompt(existing []string, text, keyword string) string {
	return `You tag short status posts for MeanIn.

Existing tags: ` + strings.Join(existing, ", ") + `
Reuse an existing tag when it fits. Otherwise propose one short new tag (1-2 words).

Return JSON: {"tag": "string"}

Post: "` + text + `"
Keyword: "` + keyword + `"`
}

var nonSlug = regexp.MustCompile(`[^a-z0-9-]+`)

// SlugOf turns a free-form tag label into a slug
func SlugOf(label string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(label)), "-")
	return strings.Trim(s, "-")
}

// LabelOf title-cases a slug for a backfilled tag row
func LabelOf(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	return cases.Title(language.English).String(strings.Join(parts, " "))
}
