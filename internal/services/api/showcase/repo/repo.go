// Package repo reads showcase posts and categories from postgres
package repo

import (
	"context"
	"fmt"
	"strings"

	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store"
	"meanin/internal/services/api/showcase/domain"
)

// Filter narrows the showcase posts; empty fields are ignored
type Filter struct {
	Keyword string
	Tag     string
	Limit   int
}

// Repo defines the repository contract for the showcase
type Repo interface {
	Posts(ctx context.Context, f Filter) ([]domain.Post, error)
	RecentKeywords(ctx context.Context, limit int) ([]string, error)
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

// Posts returns the newest posts that have a keyword
func (r *queries) Posts(ctx context.Context, f Filter) ([]domain.Post, error) {
	where := []string{"keyword_text is not null"}
	var args []any
	if f.Keyword != "" {
		args = append(args, f.Keyword)
		where = append(where, fmt.Sprintf("lower(keyword_text) = lower($%d)", len(args)))
	}
	if f.Tag != "" {
		args = append(args, f.Tag)
		where = append(where, fmt.Sprintf("tag_slug = $%d", len(args)))
	}
	args = append(args, f.Limit)
	sql := fmt.Sprintf(`
select id::text, text, keyword_text, public_slug, created_at
from posts
where %s
order by created_at desc
limit $%d
`, strings.Join(where, " and "), len(args))

	out, err := store.Many(ctx, r.q, func(row store.Row) (domain.Post, error) {
		var p domain.Post
		err := row.Scan(&p.ID, &p.Text, &p.KeywordText, &p.PublicSlug, &p.CreatedAt)
		return p, err
	}, sql, args...)
	return out, perr.WrapIf(err, perr.ErrorCodeDB, "showcase posts")
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
