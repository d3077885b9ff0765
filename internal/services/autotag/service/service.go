// Package service tags untagged posts in batches and backfills missing tag rows
package service

import (
	"context"
	"strings"
	"time"

	"meanin/internal/adapters/llm"
	"meanin/internal/core/tagging"
	"meanin/internal/modkit/repokit"
	"meanin/internal/platform/logger"
	"meanin/internal/services/autotag/repo"
)

// DefaultLimit is the batch size of one pass
const DefaultLimit = 25

// Tags is the tag store the tagger reads and extends
type Tags interface {
	List(ctx context.Context) []tagging.Tag
	Upsert(ctx context.Context, t tagging.Tag) error
	Backfill(ctx context.Context) (int, error)
}

// Report summarizes one pass
type Report struct {
	Seen       int `json:"seen"`
	Tagged     int `json:"tagged"`
	Created    int `json:"created"`
	Backfilled int `json:"backfilled"`
}

type suggestion struct {
	Tag string `json:"tag" validate:"required,notblank,max=60"`
}

// Service implements the auto-tag pass
type Service struct {
	Repo repo.Repo
	cat  *tagging.Catalogue
	tags Tags
	llm  llm.Completer
}

// New binds the repo to db; c may be nil
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo], cat *tagging.Catalogue, tags Tags, c llm.Completer) *Service {
	if db == nil {
		panic("autotag.Service requires a non nil Queryer")
	}
	if binder == nil {
		panic("autotag.Service requires a non nil Repo binder")
	}
	if cat == nil || tags == nil {
		panic("autotag.Service requires a catalogue and a tag store")
	}
	return &Service{Repo: binder.Bind(db), cat: cat, tags: tags, llm: c}
}

// Tick tags up to limit untagged posts, then backfills tag rows. Per-post
// failures are logged and skipped; only the initial read fails the pass.
func (s *Service) Tick(ctx context.Context, limit int) (Report, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	log := logger.C(ctx)

	posts, err := s.Repo.Untagged(ctx, limit)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Seen: len(posts)}

	known := newKnown(s.tags.List(ctx))
	for _, p := range posts {
		t := s.suggest(ctx, p, known)
		if !known.has(t.Slug) {
			if err := s.tags.Upsert(ctx, t); err != nil {
				log.Warn().Err(err).Str("tag", t.Slug).Msg("tag create failed")
				continue
			}
			known.add(t)
			rep.Created++
			log.Info().Str("tag", t.Slug).Str("label", t.Label).Msg("tag created")
		}
		if err := s.Repo.SetTag(ctx, p.ID, t.Slug); err != nil {
			log.Warn().Err(err).Str("post", p.ID).Msg("post tag failed")
			continue
		}
		rep.Tagged++
		log.Debug().Str("post", p.ID).Str("tag", t.Slug).Msg("post tagged")
	}

	n, err := s.tags.Backfill(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("tag backfill failed")
	}
	rep.Backfilled = n
	return rep, nil
}

// suggest runs triggers, then the open completion, then general
func (s *Service) suggest(ctx context.Context, p repo.Post, known *knownTags) tagging.Tag {
	if slug, ok := s.cat.Match(p.Keyword, p.Text); ok {
		return s.catalogueTag(slug)
	}
	if s.llm != nil {
		res := llm.Ask[suggestion](ctx, s.llm, tagging.OpenPrompt(known.labels(), p.Text, p.Keyword))
		if res.Valid {
			label := strings.TrimSpace(res.Value.Tag)
			if t, ok := known.find(label); ok {
				return t
			}
			if slug := tagging.SlugOf(label); slug != "" {
				return tagging.Tag{Slug: slug, Label: label}
			}
		} else {
			logger.C(ctx).Debug().Err(res.Reason).Str("post", p.ID).Msg("tag suggestion rejected")
		}
	}
	return s.catalogueTag(tagging.General)
}

func (s *Service) catalogueTag(slug string) tagging.Tag {
	if t, ok := s.cat.Get(slug); ok {
		return t
	}
	return tagging.Tag{Slug: slug, Label: tagging.LabelOf(slug)}
}

// Run ticks every interval until ctx ends. A zero interval runs once.
func (s *Service) Run(ctx context.Context, limit int, every time.Duration) error {
	log := logger.Named("autotag")
	pass := func() error {
		rep, err := s.Tick(ctx, limit)
		if err != nil {
			return err
		}
		log.Info().Int("seen", rep.Seen).Int("tagged", rep.Tagged).Int("created", rep.Created).
			Int("backfilled", rep.Backfilled).Msg("autotag pass done")
		return nil
	}
	if every <= 0 {
		return pass()
	}

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		if err := pass(); err != nil {
			log.Warn().Err(err).Msg("autotag pass failed")
		}
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

// knownTags indexes tags by slug and lowercase label
type knownTags struct {
	order []tagging.Tag
	slugs map[string]struct{}
	names map[string]tagging.Tag
}

func newKnown(tags []tagging.Tag) *knownTags {
	k := &knownTags{slugs: map[string]struct{}{}, names: map[string]tagging.Tag{}}
	for _, t := range tags {
		k.add(t)
	}
	return k
}

func (k *knownTags) add(t tagging.Tag) {
	if k.has(t.Slug) {
		return
	}
	k.order = append(k.order, t)
	k.slugs[t.Slug] = struct{}{}
	k.names[strings.ToLower(t.Slug)] = t
	if t.Label != "" {
		k.names[strings.ToLower(t.Label)] = t
	}
}

func (k *knownTags) has(slug string) bool {
	_, ok := k.slugs[slug]
	return ok
}

func (k *knownTags) find(name string) (tagging.Tag, bool) {
	t, ok := k.names[strings.ToLower(name)]
	return t, ok
}

func (k *knownTags) labels() []string {
	out := make([]string, 0, len(k.order))
	for _, t := range k.order {
		if t.Label != "" {
			out = append(out, t.Label)
		} else {
			out = append(out, t.Slug)
		}
	}
	return out
}
