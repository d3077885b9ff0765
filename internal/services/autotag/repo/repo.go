// Package repo reads untagged posts and writes their tags
package repo

import (
	"context"

	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store"
)

// Post is an untagged post
type Post struct {
	ID      string
	Text    string
	Keyword string
}

// Repo defines the repository contract for the auto-tagger
type Repo interface {
	Untagged(ctx context.Context, limit int) ([]Post, error)
	SetTag(ctx context.Context, id, tag string) error
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

// Untagged returns the newest posts without a tag
func (r *queries) Untagged(ctx context.Context, limit int) ([]Post, error) {
	const sql = `
select id::text, text, coalesce(keyword_text, '')
from posts
where tag_slug is null
order by created_at desc
limit $1
`
	out, err := store.Many(ctx, r.q, func(row store.Row) (Post, error) {
		var p Post
		err := row.Scan(&p.ID, &p.Text, &p.Keyword)
		return p, err
	}, sql, limit)
	return out, perr.WrapIf(err, perr.ErrorCodeDB, "list untagged posts")
}

// SetTag only tags posts that are still untagged
func (r *queries) SetTag(ctx context.Context, id, tag string) error {
	_, err := r.q.Exec(ctx, `update posts set tag_slug = $2 where id = $1::uuid and tag_slug is null`, id, tag)
	return perr.WrapIf(err, perr.ErrorCodeDB, "set post tag")
}
