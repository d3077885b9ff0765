// Package service resolves meanings: the write path run while a post is
// created and the read path run for every decode
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"meanin/internal/adapters/llm"
	"meanin/internal/platform/dispatch"
	"meanin/internal/platform/logger"
	"meanin/internal/platform/store"
	termdom "meanin/internal/services/terms/domain"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL bounds how long a term's meaning is served from the cache
const DefaultCacheTTL = 24 * time.Hour

// Options wires the resolver's collaborators. Only Terms is required.
type Options struct {
	Terms    termdom.StorePort
	LLM      llm.Completer
	Cache    store.Cache
	CacheTTL time.Duration
	Async    *dispatch.Dispatcher
}

// Service implements domain.ResolverPort
type Service struct {
	terms termdom.StorePort
	llm   llm.Completer
	cache store.Cache
	ttl   time.Duration
	async *dispatch.Dispatcher
	group singleflight.Group
}

// New builds the resolver
func New(o Options) *Service {
	if o.Terms == nil {
		panic("meaning.Service requires a term store")
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	return &Service{terms: o.Terms, llm: o.LLM, cache: o.Cache, ttl: o.CacheTTL, async: o.Async}
}

// generated is the reply to meaningPrompt
type generated struct {
	ShortDefinition string   `json:"short_definition" validate:"notblank,max=1000"`
	FullExplanation string   `json:"full_explanation" validate:"max=4000"`
	Examples        []string `json:"examples" validate:"max=10,dive,max=500"`
}

// decoded is the reply to decodePrompt; every field is optional
type decoded struct {
	BaseMeaning       string   `json:"base_meaning" validate:"max=1000"`
	ContextualMeaning string   `json:"contextual_meaning" validate:"max=1000"`
	LocalContext      *string  `json:"local_context" validate:"omitnil,max=500"`
	LocalExample      *string  `json:"local_example" validate:"omitnil,max=500"`
	Origin            *string  `json:"origin" validate:"omitnil,max=2000"`
	RelatedTerms      []string `json:"related_terms" validate:"max=20,dive,max=100"`
}

// Placeholder is the stored short definition when generation is unavailable
func Placeholder(keyword string) string { return `What "` + keyword + `" means in this post.` }

// FallbackBase and FallbackContextual guarantee a non-empty view
func FallbackBase(keyword string) string {
	return `People use "` + keyword + `" to hint at something deeper.`
}

// FallbackContextual is the contextual line of last resort
func FallbackContextual(keyword string) string {
	return `They mean something specific with "` + keyword + `".`
}

// Ensure implements domain.ResolverPort. An existing meaning is never
// overwritten. Concurrent calls for one term share a single generation,
// which outlives the cancellation of whichever caller started it.
func (s *Service) Ensure(ctx context.Context, termID, keyword string) string {
	if termID == "" {
		return ""
	}
	shared := context.WithoutCancel(ctx)
	v, _, _ := s.group.Do("ensure:"+termID, func() (any, error) {
		return s.ensure(shared, termID, keyword), nil
	})
	return v.(string)
}

func (s *Service) ensure(ctx context.Context, termID, keyword string) string {
	log := logger.C(ctx)
	existing, err := s.Lookup(ctx, termID)
	if err != nil {
		log.Warn().Err(err).Str("term_id", termID).Msg("meaning lookup failed")
	}
	if existing != nil {
		return existing.ID
	}

	m := termdom.Meaning{TermID: termID, ShortDefinition: Placeholder(keyword)}
	if res := llm.Ask[generated](ctx, s.llm, meaningPrompt(keyword)); res.Valid {
		m.ShortDefinition = strings.TrimSpace(res.Value.ShortDefinition)
		m.FullExplanation = strings.TrimSpace(res.Value.FullExplanation)
		m.Examples = res.Value.Examples
	} else if s.llm != nil {
		log.Warn().Err(res.Reason).Str("term_id", termID).Msg("meaning generation failed, storing placeholder")
	}

	id, err := s.terms.InsertMeaning(ctx, m)
	if err != nil {
		log.Error().Err(err).Str("term_id", termID).Msg("meaning insert failed")
		return ""
	}
	m.ID = id
	s.remember(ctx, &m)
	return id
}

// Lookup implements domain.ResolverPort: cache first, then the store
func (s *Service) Lookup(ctx context.Context, termID string) (*termdom.Meaning, error) {
	if termID == "" {
		return nil, nil
	}
	if m := s.cached(ctx, termID); m != nil {
		return m, nil
	}
	m, err := s.terms.MeaningByTerm(ctx, termID)
	if err != nil || m == nil {
		return nil, err
	}
	s.remember(ctx, m)
	return m, nil
}

func cacheKey(termID string) string { return "meaning:" + termID }

func (s *Service) cached(ctx context.Context, termID string) *termdom.Meaning {
	if s.cache == nil {
		return nil
	}
	raw, ok, err := s.cache.Get(ctx, cacheKey(termID))
	if err != nil {
		logger.C(ctx).Debug().Err(err).Msg("meaning cache read failed")
		return nil
	}
	if !ok {
		return nil
	}
	var m termdom.Meaning
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return &m
}

func (s *Service) remember(ctx context.Context, m *termdom.Meaning) {
	if s.cache == nil || m == nil || m.TermID == "" {
		return
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(m.TermID), raw, s.ttl); err != nil {
		logger.C(ctx).Debug().Err(err).Msg("meaning cache write failed")
	}
}
