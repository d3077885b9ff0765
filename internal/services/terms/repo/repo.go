// Package repo provides postgres access for terms and term meanings
package repo

import (
	"context"
	"errors"

	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store"
	pstrings "meanin/internal/platform/strings"
	"meanin/internal/services/terms/domain"
)

// Repo defines the repository contract for terms
type Repo interface {
	RecentPhrases(ctx context.Context, limit int) ([]string, error)
	FindLike(ctx context.Context, keyword string) (*domain.Term, error)
	Insert(ctx context.Context, phrase, slug, status string) (*domain.Term, error)
	BumpInterest(ctx context.Context, termID string) error
	InsertRequest(ctx context.Context, termID, source, postSlug string) error
	MeaningByTerm(ctx context.Context, termID string) (*domain.Meaning, error)
	InsertMeaning(ctx context.Context, m domain.Meaning) (string, error)
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

func (r *queries) RecentPhrases(ctx context.Context, limit int) ([]string, error) {
	const sql = `select phrase from terms order by created_at desc limit $1`
	return store.Strings(ctx, r.q, sql, limit)
}

func scanTerm(row store.Row) (*domain.Term, error) {
	var t domain.Term
	if err := row.Scan(&t.ID, &t.Phrase, &t.Slug, &t.Status); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindLike returns nil without error when nothing matches
func (r *queries) FindLike(ctx context.Context, keyword string) (*domain.Term, error) {
	const sql = `
select id::text, phrase, slug, status
from terms
where phrase ilike $1
order by created_at desc
limit 1
`
	t, err := store.One(ctx, r.q, scanTerm, sql, pstrings.Contains(keyword))
	if errors.Is(err, perr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "find term")
	}
	return t, nil
}

func (r *queries) Insert(ctx context.Context, phrase, slug, status string) (*domain.Term, error) {
	const sql = `
insert into terms (phrase, slug, status)
values ($1, $2, $3)
returning id::text, phrase, slug, status
`
	t, err := scanTerm(r.q.QueryRow(ctx, sql, phrase, slug, status))
	if err != nil {
		return nil, perr.FromPostgres(err, "insert term")
	}
	return t, nil
}

func (r *queries) BumpInterest(ctx context.Context, termID string) error {
	_, err := r.q.Exec(ctx, `select bump_term_interest($1::uuid)`, termID)
	return perr.WrapIf(err, perr.ErrorCodeDB, "bump term interest")
}

func (r *queries) InsertRequest(ctx context.Context, termID, source, postSlug string) error {
	const sql = `insert into term_requests (term_id, source, post_slug) values ($1::uuid, $2, $3)`
	_, err := r.q.Exec(ctx, sql, termID, source, pstrings.SQLNull(postSlug))
	return perr.WrapIf(err, perr.ErrorCodeDB, "insert term request")
}

// MeaningByTerm returns the oldest meaning of the term, or nil
func (r *queries) MeaningByTerm(ctx context.Context, termID string) (*domain.Meaning, error) {
	const sql = `
select id::text, term_id::text, coalesce(short_definition, ''), coalesce(full_explanation, ''),
       coalesce(examples, '{}'), coalesce(origin, '')
from term_meanings
where term_id = $1::uuid
order by created_at
limit 1
`
	m, err := store.One(ctx, r.q, func(row store.Row) (*domain.Meaning, error) {
		var m domain.Meaning
		err := row.Scan(&m.ID, &m.TermID, &m.ShortDefinition, &m.FullExplanation, &m.Examples, &m.Origin)
		return &m, err
	}, sql, termID)
	if errors.Is(err, perr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "meaning by term")
	}
	return m, nil
}

func (r *queries) InsertMeaning(ctx context.Context, m domain.Meaning) (string, error) {
	const sql = `
insert into term_meanings (term_id, short_definition, full_explanation, examples, origin)
values ($1::uuid, $2, $3, $4, $5)
returning id::text
`
	examples := m.Examples
	if examples == nil {
		examples = []string{}
	}
	id, err := store.Scalar[string](ctx, r.q, sql,
		m.TermID,
		pstrings.SQLNull(m.ShortDefinition),
		pstrings.SQLNull(m.FullExplanation),
		examples,
		pstrings.SQLNull(m.Origin),
	)
	if err != nil {
		return "", perr.FromPostgres(err, "insert meaning")
	}
	return id, nil
}
