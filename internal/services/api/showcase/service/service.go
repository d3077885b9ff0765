// Package service assembles the showcase from concurrent reads
package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/logger"
	pstrings "meanin/internal/platform/strings"
	"meanin/internal/services/api/showcase/domain"
	"meanin/internal/services/api/showcase/repo"
)

const (
	// PostLimit caps showcased posts
	PostLimit = 9
	// CategoryLimit caps the category chips
	CategoryLimit = 5
	// categorySample is how many recent keywords feed the chips
	categorySample = 100
)

// Service implements domain.ServicePort
type Service struct {
	Repo repo.Repo
	tags domain.Tags
}

// New binds the repo to db; tags may be nil
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo], tags domain.Tags) *Service {
	if db == nil {
		panic("showcase.Service requires a non nil Queryer")
	}
	if binder == nil {
		panic("showcase.Service requires a non nil Repo binder")
	}
	return &Service{Repo: binder.Bind(db), tags: tags}
}

// Showcase reads posts, categories and the tag detail in parallel. Each part
// degrades to empty on its own failure; the group carries no context, so one
// failed read never cancels the others.
func (s *Service) Showcase(ctx context.Context, in domain.Input) domain.Output {
	category := strings.TrimSpace(in.Category)
	if strings.EqualFold(category, domain.AllCategories) {
		category = ""
	}
	tag := strings.TrimSpace(in.Tag)

	out := domain.Output{Posts: []domain.Post{}, Categories: []string{}}
	var g errgroup.Group

	g.Go(func() error {
		posts, err := s.Repo.Posts(ctx, repo.Filter{Keyword: category, Tag: tag, Limit: PostLimit})
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "showcase posts")
		}
		if posts != nil {
			out.Posts = posts
		}
		return nil
	})
	g.Go(func() error {
		kws, err := s.Repo.RecentKeywords(ctx, categorySample)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "showcase categories")
		}
		out.Categories = pstrings.DistinctFold(kws, CategoryLimit)
		return nil
	})
	if tag != "" && s.tags != nil {
		g.Go(func() error {
			out.TagDetail = s.tags.Get(ctx, tag)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("showcase degraded")
	}
	return out
}
