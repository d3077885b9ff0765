// Package service implements post search
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"meanin/internal/modkit/repokit"
	"meanin/internal/platform/logger"
	"meanin/internal/services/api/search/domain"
	"meanin/internal/services/api/search/repo"
)

const (
	// MinQuery is the shortest query that hits the store
	MinQuery = 2
	// Limit caps the result list
	Limit = 10
)

// Service implements domain.ServicePort
type Service struct {
	Repo repo.Repo
}

// New binds the repo to db
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo]) *Service {
	if db == nil {
		panic("search.Service requires a non nil Queryer")
	}
	if binder == nil {
		panic("search.Service requires a non nil Repo binder")
	}
	return &Service{Repo: binder.Bind(db)}
}

// Search never fails; short queries and store errors give no results
func (s *Service) Search(ctx context.Context, q string) domain.Output {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < MinQuery {
		return domain.Output{Results: []domain.Result{}}
	}
	res, err := s.Repo.Search(ctx, q, Limit)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("q", q).Msg("search failed")
		return domain.Output{Results: []domain.Result{}}
	}
	if res == nil {
		res = []domain.Result{}
	}
	return domain.Output{Results: res}
}
