// Package service implements the term store on top of the repo
package service

import (
	"context"
	"strings"

	"meanin/internal/core/slug"
	"meanin/internal/modkit/repokit"
	"meanin/internal/platform/logger"
	"meanin/internal/services/terms/domain"
	"meanin/internal/services/terms/repo"
)

// Service implements domain.StorePort
type Service struct {
	Repo repo.Repo
}

// New binds the repo to db
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo]) *Service {
	if db == nil {
		panic("terms.Service requires a non nil Queryer")
	}
	if binder == nil {
		panic("terms.Service requires a non nil Repo binder")
	}
	return &Service{Repo: binder.Bind(db)}
}

// RecentPhrases implements domain.StorePort
func (s *Service) RecentPhrases(ctx context.Context, limit int) ([]string, error) {
	return s.Repo.RecentPhrases(ctx, limit)
}

// FindLike implements domain.StorePort
func (s *Service) FindLike(ctx context.Context, keyword string) (*domain.Term, error) {
	return s.Repo.FindLike(ctx, keyword)
}

// Create inserts a draft term with a slug derived from the phrase
func (s *Service) Create(ctx context.Context, phrase string) (*domain.Term, error) {
	return s.Repo.Insert(ctx, phrase, slug.Slugify(phrase), domain.StatusDraft)
}

// Ensure implements domain.StorePort
func (s *Service) Ensure(ctx context.Context, keyword string) *domain.Term {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	log := logger.C(ctx)
	t, err := s.Repo.FindLike(ctx, keyword)
	if err != nil {
		log.Warn().Err(err).Str("keyword", keyword).Msg("term lookup failed")
		return nil
	}
	if t != nil {
		return t
	}
	t, err = s.Create(ctx, keyword)
	if err != nil {
		log.Warn().Err(err).Str("keyword", keyword).Msg("term create failed")
		return nil
	}
	return t
}

// BumpInterest implements domain.StorePort
func (s *Service) BumpInterest(ctx context.Context, termID string) error {
	return s.Repo.BumpInterest(ctx, termID)
}

// RecordRequest implements domain.StorePort
func (s *Service) RecordRequest(ctx context.Context, termID, source, postSlug string) error {
	return s.Repo.InsertRequest(ctx, termID, source, postSlug)
}

// MeaningByTerm implements domain.StorePort
func (s *Service) MeaningByTerm(ctx context.Context, termID string) (*domain.Meaning, error) {
	return s.Repo.MeaningByTerm(ctx, termID)
}

// InsertMeaning implements domain.StorePort
func (s *Service) InsertMeaning(ctx context.Context, m domain.Meaning) (string, error) {
	return s.Repo.InsertMeaning(ctx, m)
}
