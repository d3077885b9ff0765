// Package repo reads decoded posts and appends decode logs
package repo

import (
	"context"
	"time"

	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/store"
	pstrings "meanin/internal/platform/strings"
	termdom "meanin/internal/services/terms/domain"
)

// EventsTable is the ClickHouse mirror of the decode log
const EventsTable = "decode_events"

// EventsDDL creates EventsTable
const EventsDDL = `
CREATE TABLE IF NOT EXISTS decode_events (
  post_id         String,
  post_slug       String,
  term_id         String,
  tag_slug        LowCardinality(String),
  viewer_language LowCardinality(String),
  created_at      DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (created_at, post_slug)
`

// Repo defines the repository contract for decode
type Repo interface {
	PostBySlug(ctx context.Context, slug string) (*Row, error)
	CountDecodes(ctx context.Context, postID string) (int, error)
	InsertDecode(ctx context.Context, d Decode) error
}

// Row is a post joined to its term and the term's first meaning
type Row struct {
	ID       string
	Text     string
	Keyword  string
	Platform string
	Slug     string
	TagSlug  string

	TermID     string
	TermStatus string
	// Meaning is nil when the term has no meaning row
	Meaning *termdom.Meaning
}

// Decode is one decode log entry
type Decode struct {
	PostID            string
	DecodedText       string
	BaseMeaning       string
	ContextualMeaning string
	LocalContext      string
	ViewerLanguage    string
}

// Event is one decode mirrored to the analytics sink
type Event struct {
	PostID         string
	PostSlug       string
	TermID         string
	TagSlug        string
	ViewerLanguage string
	At             time.Time
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

// PostBySlug returns perr.ErrNotFound for an unknown slug
func (r *queries) PostBySlug(ctx context.Context, slug string) (*Row, error) {
	const sql = `
select p.id::text, p.text, coalesce(p.keyword_text, ''), p.platform, p.public_slug, coalesce(p.tag_slug, ''),
       coalesce(t.id::text, ''), coalesce(t.status, ''),
       m.id::text, coalesce(m.short_definition, ''), coalesce(m.full_explanation, ''),
       coalesce(m.examples, '{}'), coalesce(m.origin, '')
from posts p
left join terms t on t.id = p.keyword_term_id
left join lateral (
  select * from term_meanings tm where tm.term_id = t.id order by tm.created_at asc limit 1
) m on true
where p.public_slug = $1
limit 1
`
	row, err := store.One(ctx, r.q, func(row store.Row) (*Row, error) {
		var (
			out       Row
			meaningID *string
			m         termdom.Meaning
		)
		err := row.Scan(&out.ID, &out.Text, &out.Keyword, &out.Platform, &out.Slug, &out.TagSlug,
			&out.TermID, &out.TermStatus,
			&meaningID, &m.ShortDefinition, &m.FullExplanation, &m.Examples, &m.Origin)
		if err != nil {
			return nil, err
		}
		if meaningID != nil {
			m.ID, m.TermID = *meaningID, out.TermID
			out.Meaning = &m
		}
		return &out, nil
	}, sql, slug)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return nil, err
		}
		return nil, perr.FromPostgres(err, "load post")
	}
	return row, nil
}

func (r *queries) CountDecodes(ctx context.Context, postID string) (int, error) {
	return store.Scalar[int](ctx, r.q, `select count(*)::int from decodes where post_id = $1::uuid`, postID)
}

func (r *queries) InsertDecode(ctx context.Context, d Decode) error {
	const sql = `
insert into decodes (post_id, decoded_text, base_meaning, contextual_meaning, local_context, viewer_language)
values ($1::uuid, $2, $3, $4, $5, $6)
`
	_, err := r.q.Exec(ctx, sql,
		d.PostID,
		d.DecodedText,
		pstrings.SQLNull(d.BaseMeaning),
		pstrings.SQLNull(d.ContextualMeaning),
		pstrings.SQLNull(d.LocalContext),
		pstrings.SQLNull(d.ViewerLanguage),
	)
	return perr.WrapIf(err, perr.ErrorCodeDB, "insert decode")
}

// Events mirrors decodes into ClickHouse
type Events struct{ ch store.Clickhouse }

// NewEvents returns nil when ch is nil
func NewEvents(ch store.Clickhouse) *Events {
	if ch == nil {
		return nil
	}
	return &Events{ch: ch}
}

// Record appends one event
func (e *Events) Record(ctx context.Context, ev Event) error {
	return e.ch.Insert(ctx, EventsTable, [][]any{{
		ev.PostID, ev.PostSlug, ev.TermID, ev.TagSlug, ev.ViewerLanguage, ev.At.UTC(),
	}})
}
