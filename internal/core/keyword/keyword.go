// Package keyword picks the phrase of a post that carries its meaning.
// Strategies run in strict order: a known term found in the text, the
// completion backend, then the first words of the text.
package keyword

import (
	"context"
	"strings"

	"meanin/internal/adapters/llm"
	"meanin/internal/core/chain"
	"meanin/internal/platform/logger"
)

// Untitled is returned for text without words
const Untitled = "untitled"

// DefaultSample is how many recent terms are scanned
const DefaultSample = 25

// Terms lists known phrases, newest first
type Terms interface {
	RecentPhrases(ctx context.Context, limit int) ([]string, error)
}

// Extractor runs the strategy chain
type Extractor struct {
	terms  Terms
	llm    llm.Completer
	sample int
}

// New builds an Extractor; a nil Completer skips the model step
func New(terms Terms, c llm.Completer, sample int) *Extractor {
	if sample <= 0 {
		sample = DefaultSample
	}
	return &Extractor{terms: terms, llm: c, sample: sample}
}

type reply struct {
	Keyword string `json:"keyword" validate:"notblank,max=120"`
}

// Extract never fails; the heuristic step always produces a phrase
func (e *Extractor) Extract(ctx context.Context, text string) string {
	kw, by := chain.First(ctx, Heuristic(text),
		chain.Step("known-term", func(ctx context.Context) (string, bool) { return e.known(ctx, text) }),
		chain.Step("completion", func(ctx context.Context) (string, bool) { return e.complete(ctx, text) }),
		chain.Step("heuristic", func(context.Context) (string, bool) { return Heuristic(text), true }),
	)
	logger.C(ctx).Debug().Str("keyword", kw).Str("by", by).Msg("keyword extracted")
	return kw
}

// known returns the first recent phrase, in fetch order, contained in text
func (e *Extractor) known(ctx context.Context, text string) (string, bool) {
	if e.terms == nil {
		return "", false
	}
	phrases, err := e.terms.RecentPhrases(ctx, e.sample)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("recent terms unavailable")
		return "", false
	}
	return MatchKnown(text, phrases)
}

func (e *Extractor) complete(ctx context.Context, text string) (string, bool) {
	if e.llm == nil {
		return "", false
	}
	res := llm.Ask[reply](ctx, e.llm, Prompt(text))
	if !res.Valid {
		logger.C(ctx).Warn().Err(res.Reason).Msg("keyword completion rejected")
		return "", false
	}
	return strings.TrimSpace(res.Value.Keyword), true
}

// MatchKnown returns the first phrase whose lowercase form occurs in the
// lowercase text, verbatim. Blank phrases never match.
func MatchKnown(text string, phrases []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(p)) {
			return p, true
		}
	}
	return "", false
}

// Heuristic joins the first three lowercase words, or fewer when the text is
// shorter, and returns Untitled for text without words
func Heuristic(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return Untitled
	}
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// Prompt asks for the single most meaning-bearing phrase
func Prompt(text string) string {
	return `You are the keyword engine for MeanIn, an app that explains the hidden meaning behind short status posts.

Extract the ONE phrase in the sentence that carries the strongest cultural, emotional, or metaphorical meaning.
- Prefer multi-word expressions over single words.
- Do not invent new slang.
- If nothing stands out, return the most meaningful 1-3 word phrase you can find.

Return JSON: {"keyword": "string"}

Sentence: "` + text + `"`
}
