// Package repo provides postgres access for posts
package repo

import (
	"context"
	"errors"

	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store"
	pstrings "meanin/internal/platform/strings"
)

// Repo defines the repository contract for posts
type Repo interface {
	FindByText(ctx context.Context, text string) (*Existing, error)
	SetTag(ctx context.Context, id, tag string) error
	SlugTaken(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, p NewPost) (string, error)
	SetCardURL(ctx context.Context, id, url string) error
	RecentKeywords(ctx context.Context, limit int) ([]string, error)
}

// Existing is a post found by the dedup check
type Existing struct {
	ID      string
	Slug    string
	Keyword string
	TagSlug string
	CardURL string
}

// NewPost is the row written by Create
type NewPost struct {
	Text     string
	Platform string
	Keyword  string
	TermID   string
	TagSlug  string
	Slug     string
	CardURL  string
	Lang     string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// FindByText returns the newest post with exactly this text, or nil
func (r *queries) FindByText(ctx context.Context, text string) (*Existing, error) {
	const sql = `
select id::text, public_slug, coalesce(keyword_text, ''), coalesce(tag_slug, ''), coalesce(card_url, '')
from posts
where text = $1
order by created_at desc
limit 1
`
	e, err := store.One(ctx, r.q, func(row store.Row) (*Existing, error) {
		var e Existing
		err := row.Scan(&e.ID, &e.Slug, &e.Keyword, &e.TagSlug, &e.CardURL)
		return &e, err
	}, sql, text)
	if errors.Is(err, perr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "find post by text")
	}
	return e, nil
}

func (r *queries) SetTag(ctx context.Context, id, tag string) error {
	_, err := r.q.Exec(ctx, `update posts set tag_slug = $2 where id = $1::uuid`, id, tag)
	return perr.WrapIf(err, perr.ErrorCodeDB, "set post tag")
}

func (r *queries) SlugTaken(ctx context.Context, slug string) (bool, error) {
	return store.Scalar[bool](ctx, r.q, `select exists(select 1 from posts where public_slug = $1)`, slug)
}

func (r *queries) Insert(ctx context.Context, p NewPost) (string, error) {
	const sql = `
insert into posts (text, platform, keyword_text, keyword_term_id, tag_slug, public_slug, card_url, lang)
values ($1, $2, $3, $4::uuid, $5, $6, $7, $8)
returning id::text
`
	id, err := store.Scalar[string](ctx, r.q, sql,
		p.Text,
		p.Platform,
		pstrings.SQLNull(p.Keyword),
		pstrings.SQLNull(p.TermID),
		pstrings.SQLNull(p.TagSlug),
		p.Slug,
		pstrings.SQLNull(p.CardURL),
		pstrings.SQLNull(p.Lang),
	)
	if err != nil {
		return "", perr.FromPostgres(err, "insert post")
	}
	return id, nil
}

func (r *queries) SetCardURL(ctx context.Context, id, url string) error {
	_, err := r.q.Exec(ctx, `update posts set card_url = $2 where id = $1::uuid`, id, url)
	return perr.WrapIf(err, perr.ErrorCodeDB, "set card url")
}

func (r *queries) RecentKeywords(ctx context.Context, limit int) ([]string, error) {
	const sql = `
select keyword_text
from posts
where keyword_text is not null
order by created_at desc
limit $1
`
	return store.Strings(ctx, r.q, sql, limit)
}
