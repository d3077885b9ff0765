package service

import (
	"context"
	"strings"

	"meanin/internal/adapters/llm"
	"meanin/internal/platform/logger"
	pstrings "meanin/internal/platform/strings"
	"meanin/internal/services/meaning/domain"
	termdom "meanin/internal/services/terms/domain"
)

// Resolve implements domain.ResolverPort. Every failure degrades to a fallback.
func (s *Service) Resolve(ctx context.Context, p domain.Post) domain.View {
	keyword := p.Keyword
	if strings.TrimSpace(keyword) == "" {
		keyword = p.Text
	}
	log := logger.C(ctx)

	row := p.Meaning
	var ai decoded

	if row == nil && p.TermID != "" {
		m, err := s.Lookup(ctx, p.TermID)
		if err != nil {
			log.Warn().Err(err).Str("term_id", p.TermID).Msg("meaning lookup failed")
		}
		row = m
		if row == nil {
			ai = s.generateShared(ctx, p, keyword)
			if ai.BaseMeaning != "" {
				row = fromDecoded(p.TermID, ai)
				s.persist(ctx, *row)
			}
		}
	}

	if row == nil {
		ai = s.decode(ctx, p, keyword, "", "")
		row = &termdom.Meaning{
			ShortDefinition: pstrings.FirstNonEmpty(ai.BaseMeaning, FallbackBase(keyword)),
			FullExplanation: pstrings.FirstNonEmpty(ai.ContextualMeaning, FallbackContextual(keyword)),
			Examples:        optional(ai.LocalExample),
			Origin:          deref(ai.Origin),
		}
	}

	if s.llm != nil && (row.Origin == "" || len(row.Examples) == 0 || row.FullExplanation == "") {
		fill := s.decode(ctx, p, keyword, row.ShortDefinition, row.FullExplanation)
		ai = merge(ai, fill)
	}

	v := domain.View{
		BaseMeaning:       pstrings.FirstNonEmpty(row.ShortDefinition, FallbackBase(keyword)),
		ContextualMeaning: pstrings.FirstNonEmpty(row.FullExplanation, FallbackContextual(keyword)),
		LocalContext:      nonBlank(ai.LocalContext),
		Origin:            nonBlank(ptr(row.Origin)),
		RelatedTerms:      ai.RelatedTerms,
		IsDraft:           p.TermStatus == termdom.StatusDraft,
	}
	if len(row.Examples) > 0 && strings.TrimSpace(row.Examples[0]) != "" {
		v.LocalExample = ptr(row.Examples[0])
	} else {
		v.LocalExample = nonBlank(ai.LocalExample)
	}
	if v.Origin == nil {
		v.Origin = nonBlank(ai.Origin)
	}
	if v.RelatedTerms == nil {
		v.RelatedTerms = []string{}
	}
	return v
}

// generateShared collapses concurrent decode generations for one term
func (s *Service) generateShared(ctx context.Context, p domain.Post, keyword string) decoded {
	v, _, _ := s.group.Do("decode:"+p.TermID, func() (any, error) {
		return s.decode(ctx, p, keyword, "", ""), nil
	})
	return v.(decoded)
}

func (s *Service) decode(ctx context.Context, p domain.Post, keyword, definition, explanation string) decoded {
	if s.llm == nil {
		return decoded{}
	}
	res := llm.Ask[decoded](ctx, s.llm, decodePrompt(p.Text, keyword, definition, explanation))
	if !res.Valid {
		logger.C(ctx).Warn().Err(res.Reason).Msg("decode generation rejected")
		return decoded{}
	}
	return res.Value
}

// persist stores a generated meaning off the request path
func (s *Service) persist(ctx context.Context, m termdom.Meaning) {
	save := func(ctx context.Context) error {
		id, err := s.terms.InsertMeaning(ctx, m)
		if err != nil {
			return err
		}
		m.ID = id
		s.remember(ctx, &m)
		return nil
	}
	if s.async != nil {
		s.async.Go(ctx, "meaning.persist", save)
		return
	}
	if err := save(ctx); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("meaning persist failed")
	}
}

func fromDecoded(termID string, d decoded) *termdom.Meaning {
	return &termdom.Meaning{
		TermID:          termID,
		ShortDefinition: strings.TrimSpace(d.BaseMeaning),
		FullExplanation: strings.TrimSpace(d.ContextualMeaning),
		Examples:        optional(d.LocalExample),
		Origin:          deref(d.Origin),
	}
}

// merge overlays the set fields of b onto a
func merge(a, b decoded) decoded {
	if b.BaseMeaning != "" {
		a.BaseMeaning = b.BaseMeaning
	}
	if b.ContextualMeaning != "" {
		a.ContextualMeaning = b.ContextualMeaning
	}
	if b.LocalContext != nil {
		a.LocalContext = b.LocalContext
	}
	if b.LocalExample != nil {
		a.LocalExample = b.LocalExample
	}
	if b.Origin != nil {
		a.Origin = b.Origin
	}
	if b.RelatedTerms != nil {
		a.RelatedTerms = b.RelatedTerms
	}
	return a
}

func optional(p *string) []string {
	if s := deref(p); s != "" {
		return []string{s}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func ptr(s string) *string { return &s }

func nonBlank(p *string) *string {
	if s := deref(p); s != "" {
		return &s
	}
	return nil
}
