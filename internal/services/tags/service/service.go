// Package service keeps tag rows in step with the embedded catalogue
package service

import (
	"context"

	"meanin/internal/core/tagging"
	"meanin/internal/modkit/repokit"
	"meanin/internal/platform/logger"
	"meanin/internal/services/tags/repo"
)

// Service implements tagging.TagStore plus the read side used by the API
type Service struct {
	Repo repo.Repo
	cat  *tagging.Catalogue
}

// New binds the repo to db; cat backs reads when the table is empty or unreachable
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo], cat *tagging.Catalogue) *Service {
	if db == nil {
		panic("tags.Service requires a non nil Queryer")
	}
	if cat == nil {
		panic("tags.Service requires a catalogue")
	}
	return &Service{Repo: binder.Bind(db), cat: cat}
}

// Exists implements tagging.TagStore
func (s *Service) Exists(ctx context.Context, slug string) (bool, error) {
	return s.Repo.Exists(ctx, slug)
}

// Upsert implements tagging.TagStore
func (s *Service) Upsert(ctx context.Context, t tagging.Tag) error {
	return s.Repo.Upsert(ctx, t)
}

// List returns stored tags, or the catalogue when there are none
func (s *Service) List(ctx context.Context) []tagging.Tag {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("tag list failed, serving catalogue")
	}
	if len(rows) == 0 {
		return s.cat.Tags()
	}
	return rows
}

// Get returns the stored row, else the catalogue entry, else nil
func (s *Service) Get(ctx context.Context, slug string) *tagging.Tag {
	t, err := s.Repo.Get(ctx, slug)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("tag", slug).Msg("tag lookup failed")
	}
	if t != nil {
		return t
	}
	if c, ok := s.cat.Get(slug); ok {
		return &c
	}
	return nil
}

// Seed upserts every catalogue entry
func (s *Service) Seed(ctx context.Context) error {
	for _, t := range s.cat.Tags() {
		if err := s.Repo.Upsert(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// Backfill creates rows for tag slugs posts reference but the table lacks.
// Catalogue entries are copied; unknown slugs get a title-cased label.
func (s *Service) Backfill(ctx context.Context) (int, error) {
	missing, err := s.Repo.Missing(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, slug := range missing {
		t, ok := s.cat.Get(slug)
		if !ok {
			t = tagging.Tag{Slug: slug, Label: tagging.LabelOf(slug)}
		}
		if err := s.Repo.Upsert(ctx, t); err != nil {
			logger.C(ctx).Warn().Err(err).Str("tag", slug).Msg("tag backfill failed")
			continue
		}
		n++
	}
	return n, nil
}
