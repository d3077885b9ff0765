// Package repo provides postgres access for tag rows
package repo

import (
	"context"
	"errors"

	"meanin/internal/core/tagging"
	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store"
	pstrings "meanin/internal/platform/strings"
)

// Repo defines the repository contract for tags
type Repo interface {
	Exists(ctx context.Context, slug string) (bool, error)
	Upsert(ctx context.Context, t tagging.Tag) error
	Get(ctx context.Context, slug string) (*tagging.Tag, error)
	List(ctx context.Context) ([]tagging.Tag, error)
	// Missing lists tag slugs used by posts that have no tag row
	Missing(ctx context.Context) ([]string, error)
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

func (r *queries) Exists(ctx context.Context, slug string) (bool, error) {
	ok, err := store.Scalar[bool](ctx, r.q, `select exists(select 1 from tags where slug = $1)`, slug)
	return ok, perr.WrapIf(err, perr.ErrorCodeDB, "tag exists")
}

// Upsert keeps an existing label unless the new one is set
func (r *queries) Upsert(ctx context.Context, t tagging.Tag) error {
	const sql = `
insert into tags (slug, label, description, bg_gradient, text_color, accent_color)
values ($1, $2, $3, $4, coalesce($5, '#F4F4F7'), coalesce($6, '#8B5CFF'))
on conflict (slug) do update
set label        = coalesce(nullif(excluded.label, ''), tags.label),
    description  = coalesce(excluded.description, tags.description),
    bg_gradient  = coalesce(excluded.bg_gradient, tags.bg_gradient)
`
	_, err := r.q.Exec(ctx, sql,
		t.Slug,
		t.Label,
		pstrings.SQLNull(t.Description),
		pstrings.SQLNull(t.BgGradient),
		pstrings.SQLNull(t.TextColor),
		pstrings.SQLNull(t.AccentColor),
	)
	return perr.WrapIf(err, perr.ErrorCodeDB, "upsert tag")
}

const columns = `slug, label, coalesce(description, ''), coalesce(bg_gradient, ''), text_color, accent_color`

func scanTag(row store.Row) (tagging.Tag, error) {
	var t tagging.Tag
	err := row.Scan(&t.Slug, &t.Label, &t.Description, &t.BgGradient, &t.TextColor, &t.AccentColor)
	return t, err
}

// Get returns nil when the slug has no row
func (r *queries) Get(ctx context.Context, slug string) (*tagging.Tag, error) {
	t, err := store.One(ctx, r.q, scanTag, `select `+columns+` from tags where slug = $1`, slug)
	if errors.Is(err, perr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "get tag")
	}
	return &t, nil
}

func (r *queries) List(ctx context.Context) ([]tagging.Tag, error) {
	out, err := store.Many(ctx, r.q, scanTag, `select `+columns+` from tags order by label`)
	return out, perr.WrapIf(err, perr.ErrorCodeDB, "list tags")
}

func (r *queries) Missing(ctx context.Context) ([]string, error) {
	const sql = `
select distinct p.tag_slug
from posts p
left join tags t on t.slug = p.tag_slug
where p.tag_slug is not null and t.slug is null
`
	out, err := store.Strings(ctx, r.q, sql)
	return out, perr.WrapIf(err, perr.ErrorCodeDB, "missing tags")
}
