// Package service assembles the public decode view and records decodes
package service

import (
	"context"
	"strings"
	"time"

	"meanin/internal/core/langhint"
	"meanin/internal/modkit/repokit"
	"meanin/internal/platform/dispatch"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/logger"
	pstrings "meanin/internal/platform/strings"
	"meanin/internal/services/api/decode/domain"
	"meanin/internal/services/api/decode/repo"
	meaningdom "meanin/internal/services/meaning/domain"
	termdom "meanin/internal/services/terms/domain"
)

// MaxDecodedText caps the stored decode summary
const MaxDecodedText = 500

// Async runs side effects off the request path
type Async interface {
	Go(ctx context.Context, name string, fn dispatch.Task) bool
}

// Options wires the service
type Options struct {
	Terms    termdom.StorePort
	Resolver meaningdom.ResolverPort
	// Events is optional
	Events *repo.Events
	// Async nil runs side effects inline
	Async Async
}

// Service implements domain.ServicePort
type Service struct {
	Repo repo.Repo
	opt  Options
	now  func() time.Time
}

// New binds the repo to db
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo], opt Options) *Service {
	if db == nil {
		panic("decode.Service requires a non nil Queryer")
	}
	if binder == nil {
		panic("decode.Service requires a non nil Repo binder")
	}
	if opt.Terms == nil || opt.Resolver == nil {
		panic("decode.Service requires terms and a resolver")
	}
	return &Service{Repo: binder.Bind(db), opt: opt, now: time.Now}
}

// GetView loads the post by public slug, resolves its meaning and logs the decode
func (s *Service) GetView(ctx context.Context, slug, acceptLanguage string) (domain.View, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.View{}, perr.NotFoundf("not found")
	}
	row, err := s.Repo.PostBySlug(ctx, slug)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.View{}, perr.NotFoundf("not found")
		}
		return domain.View{}, err
	}

	meaning := s.opt.Resolver.Resolve(ctx, meaningdom.Post{
		Text:       row.Text,
		Keyword:    row.Keyword,
		TermID:     row.TermID,
		TermStatus: row.TermStatus,
		Meaning:    row.Meaning,
	})

	if row.TermID != "" {
		s.async(ctx, "term.request", func(ctx context.Context) error {
			return s.opt.Terms.RecordRequest(ctx, row.TermID, termdom.SourceViewer, row.Slug)
		})
		s.async(ctx, "term.interest", func(ctx context.Context) error {
			return s.opt.Terms.BumpInterest(ctx, row.TermID)
		})
	}

	lang := langhint.Viewer(acceptLanguage)
	d := repo.Decode{
		PostID:            row.ID,
		DecodedText:       pstrings.Truncate(meaning.BaseMeaning+" "+meaning.ContextualMeaning, MaxDecodedText),
		BaseMeaning:       meaning.BaseMeaning,
		ContextualMeaning: meaning.ContextualMeaning,
		LocalContext:      pstrings.Deref(meaning.LocalContext),
		ViewerLanguage:    lang,
	}
	s.async(ctx, "decode.log", func(ctx context.Context) error { return s.Repo.InsertDecode(ctx, d) })
	if s.opt.Events != nil {
		ev := repo.Event{
			PostID:         row.ID,
			PostSlug:       row.Slug,
			TermID:         row.TermID,
			TagSlug:        row.TagSlug,
			ViewerLanguage: lang,
			At:             s.now(),
		}
		s.async(ctx, "decode.event", func(ctx context.Context) error { return s.opt.Events.Record(ctx, ev) })
	}

	count, err := s.Repo.CountDecodes(ctx, row.ID)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("slug", slug).Msg("decode count failed")
		count = 0
	}

	return domain.View{
		Post: domain.Post{
			Text:        row.Text,
			KeywordText: row.Keyword,
			Platform:    row.Platform,
			Slug:        row.Slug,
			TagSlug:     row.TagSlug,
		},
		Meaning:     meaning,
		DecodeCount: count,
	}, nil
}

func (s *Service) async(ctx context.Context, name string, fn dispatch.Task) {
	if s.opt.Async != nil {
		s.opt.Async.Go(ctx, name, fn)
		return
	}
	if err := fn(ctx); err != nil {
		logger.C(ctx).Warn().Err(err).Str("task", name).Msg("decode side effect failed")
	}
}
