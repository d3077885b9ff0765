// Package service implements post creation and keyword suggestions
package service

import (
	"context"
	"strings"

	"meanin/internal/core/card"
	"meanin/internal/core/langhint"
	"meanin/internal/core/normalize"
	"meanin/internal/core/slug"
	"meanin/internal/core/tagging"
	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/logger"
	pstrings "meanin/internal/platform/strings"
	cardsdom "meanin/internal/services/api/cards/domain"
	"meanin/internal/services/api/posts/domain"
	"meanin/internal/services/api/posts/repo"
	meaningdom "meanin/internal/services/meaning/domain"
	termdom "meanin/internal/services/terms/domain"
)

// SuggestionLimit caps GET /posts
const SuggestionLimit = 6

// suggestionSample is how many recent keywords are scanned for suggestions
const suggestionSample = 50

// URLs builds public links for a slug
type URLs interface {
	ShareURL(slug string) string
	CardURL(slug string) string
}

// Deps are the collaborators Create drives
type Deps struct {
	Keywords  domain.Keywords
	Terms     termdom.StorePort
	Meanings  meaningdom.ResolverPort
	Tagger    domain.Tagger
	Catalogue *tagging.Catalogue
	Cards     cardsdom.PublisherPort
	URLs      URLs
}

// Service implements domain.ServicePort
type Service struct {
	Repo repo.Repo
	d    Deps
}

// New binds the repo to db and checks the collaborators
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo], d Deps) *Service {
	if db == nil {
		panic("posts.Service requires a non nil Queryer")
	}
	if binder == nil {
		panic("posts.Service requires a non nil Repo binder")
	}
	if d.Keywords == nil || d.Terms == nil || d.Meanings == nil || d.Tagger == nil || d.URLs == nil {
		panic("posts.Service requires keywords, terms, meanings, tagger and urls")
	}
	return &Service{Repo: binder.Bind(db), d: d}
}

// Create runs the posting pipeline. Only the final insert can fail the
// request; every enrichment step degrades to an empty value.
func (s *Service) Create(ctx context.Context, in domain.CreateInput) (domain.CreateOutput, error) {
	text := normalize.Clean(in.Text)
	if text == "" {
		return domain.CreateOutput{}, perr.Validationf("text is required")
	}
	if !domain.ValidPlatform(in.Platform) {
		return domain.CreateOutput{}, perr.Validationf("platform is invalid")
	}
	override := strings.TrimSpace(in.TagSlug)
	if override != "" {
		override = tagging.SlugOf(override)
	}
	log := logger.C(ctx)

	if out, ok := s.dedup(ctx, text, override); ok {
		return out, nil
	}

	kw := s.d.Keywords.Extract(ctx, text)

	var termID string
	if t := s.d.Terms.Ensure(ctx, kw); t != nil {
		termID = t.ID
		s.d.Meanings.Ensure(ctx, t.ID, kw)
	}

	pub := slug.Unique(ctx, s.Repo.SlugTaken)

	tag := override
	if tag == "" {
		tag = s.d.Tagger.Classify(ctx, text, kw)
	}

	_, lang := langhint.Post(text)
	id, err := s.Repo.Insert(ctx, repo.NewPost{
		Text:     text,
		Platform: in.Platform,
		Keyword:  kw,
		TermID:   termID,
		TagSlug:  tag,
		Slug:     pub,
		CardURL:  s.d.URLs.CardURL(pub),
		Lang:     lang,
	})
	if err != nil {
		log.Error().Err(err).Msg("post insert failed")
		return domain.CreateOutput{}, perr.Wrapf(err, perr.ErrorCodeDB, "could not create post")
	}

	cardURL := s.publish(ctx, id, pub, text, termID, tag)
	log.Info().Str("slug", pub).Str("tag", tag).Str("keyword", kw).Msg("post created")

	return domain.CreateOutput{
		Slug:     pub,
		ShareURL: s.d.URLs.ShareURL(pub),
		CardURL:  cardURL,
		Keyword:  kw,
		TagSlug:  tag,
	}, nil
}

// dedup returns the newest post with identical text. An override tag is
// applied to it before returning.
func (s *Service) dedup(ctx context.Context, text, override string) (domain.CreateOutput, bool) {
	e, err := s.Repo.FindByText(ctx, text)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("dedup lookup failed")
		return domain.CreateOutput{}, false
	}
	if e == nil {
		return domain.CreateOutput{}, false
	}
	tag := e.TagSlug
	if override != "" && override != tag {
		if err := s.Repo.SetTag(ctx, e.ID, override); err != nil {
			logger.C(ctx).Warn().Err(err).Str("slug", e.Slug).Msg("tag override failed")
		} else {
			tag = override
		}
	}
	return domain.CreateOutput{
		Slug:     e.Slug,
		ShareURL: s.d.URLs.ShareURL(e.Slug),
		CardURL:  pstrings.FirstNonEmpty(e.CardURL, s.d.URLs.CardURL(e.Slug)),
		Keyword:  e.Keyword,
		TagSlug:  tag,
	}, true
}

// publish renders and uploads the card, falling back to the deterministic URL
func (s *Service) publish(ctx context.Context, id, pub, text, termID, tag string) string {
	fallback := s.d.URLs.CardURL(pub)
	if s.d.Cards == nil {
		return fallback
	}
	log := logger.C(ctx)

	var short, full string
	if termID != "" {
		m, err := s.d.Meanings.Lookup(ctx, termID)
		if err != nil {
			log.Warn().Err(err).Str("term_id", termID).Msg("card meaning lookup failed")
		} else if m != nil {
			short, full = m.ShortDefinition, m.FullExplanation
		}
	}

	accent := card.DefaultAccent
	if s.d.Catalogue != nil {
		if t, ok := s.d.Catalogue.Get(tag); ok && t.AccentColor != "" {
			accent = t.AccentColor
		}
	}

	url, err := s.d.Cards.Publish(ctx, cardsdom.Card{
		Slug:    pub,
		Text:    text,
		Meaning: card.MeaningText(short, full),
		Accent:  accent,
	})
	if err != nil {
		log.Warn().Err(err).Str("slug", pub).Msg("card publish failed")
		return fallback
	}
	if url != fallback {
		if err := s.Repo.SetCardURL(ctx, id, url); err != nil {
			log.Warn().Err(err).Str("slug", pub).Msg("card url update failed")
		}
	}
	return url
}

// Suggestions returns up to SuggestionLimit distinct recent keywords; errors yield an empty list
func (s *Service) Suggestions(ctx context.Context) domain.SuggestionsOutput {
	kws, err := s.Repo.RecentKeywords(ctx, suggestionSample)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("keyword suggestions failed")
		return domain.SuggestionsOutput{Suggestions: []string{}}
	}
	out := pstrings.DistinctFold(kws, SuggestionLimit)
	if out == nil {
		out = []string{}
	}
	return domain.SuggestionsOutput{Suggestions: out}
}
