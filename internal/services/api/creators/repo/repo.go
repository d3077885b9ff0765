// Package repo stores creator profiles in postgres
package repo

import (
	"context"
	"errors"

	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store"
)

// Repo defines the repository contract for creator profiles
type Repo interface {
	// Get returns nil without error when the subject has no profile
	Get(ctx context.Context, subject string) ([]byte, error)
	Save(ctx context.Context, subject string, doc []byte) error
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

func (r *queries) Get(ctx context.Context, subject string) ([]byte, error) {
	doc, err := store.One(ctx, r.q, func(row store.Row) ([]byte, error) {
		var b []byte
		err := row.Scan(&b)
		return b, err
	}, `select creator_profile from profiles where id = $1`, subject)
	if errors.Is(err, perr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "failed to load profile")
	}
	return doc, nil
}

func (r *queries) Save(ctx context.Context, subject string, doc []byte) error {
	const sql = `
insert into profiles (id, creator_profile, updated_at)
values ($1, $2::jsonb, now())
on conflict (id) do update set creator_profile = excluded.creator_profile, updated_at = now()
`
	_, err := r.q.Exec(ctx, sql, subject, string(doc))
	if err != nil {
		return perr.FromPostgres(err, "failed to save profile")
	}
	return nil
}
