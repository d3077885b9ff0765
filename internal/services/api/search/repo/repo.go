// Package repo runs post text search in postgres
package repo

import (
	"context"

	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store"
	pstrings "meanin/internal/platform/strings"
	"meanin/internal/services/api/search/domain"
)

// Repo defines the repository contract for search
type Repo interface {
	Search(ctx context.Context, q string, limit int) ([]domain.Result, error)
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

// Search matches q anywhere in the text or keyword, newest first
func (r *queries) Search(ctx context.Context, q string, limit int) ([]domain.Result, error) {
	const sql = `
select public_slug, coalesce(keyword_text, ''), text
from posts
where text ilike $1 or keyword_text ilike $1
order by created_at desc
limit $2
`
	out, err := store.Many(ctx, r.q, func(row store.Row) (domain.Result, error) {
		var res domain.Result
		err := row.Scan(&res.Slug, &res.Keyword, &res.Text)
		return res, err
	}, sql, pstrings.Contains(q), limit)
	return out, perr.WrapIf(err, perr.ErrorCodeDB, "search posts")
}
