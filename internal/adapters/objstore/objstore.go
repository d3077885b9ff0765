// Package objstore keeps small public objects, mainly story cards, in the
// Postgres objects table and builds their public URLs.
package objstore

import (
	"context"
	"errors"
	"strings"
	"time"

	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/logger"
	"meanin/internal/platform/store"
)

// Object is one stored blob
type Object struct {
	Bucket      string
	Path        string
	ContentType string
	Body        []byte
}

// Store reads and writes objects. Cache, when set, fronts Get.
type Store struct {
	q        store.RowQuerier
	cache    store.Cache
	cacheTTL time.Duration
	// publicBase is prefixed to object paths of the public bucket
	publicBase string
	bucket     string
}

// Options configures a Store
type Options struct {
	PublicBase string
	Bucket     string
	Cache      store.Cache
	CacheTTL   time.Duration
}

// New builds a Store over q
func New(q store.RowQuerier, o Options) *Store {
	if o.CacheTTL <= 0 {
		o.CacheTTL = time.Hour
	}
	return &Store{
		q:          q,
		cache:      o.Cache,
		cacheTTL:   o.CacheTTL,
		publicBase: strings.TrimRight(o.PublicBase, "/"),
		bucket:     o.Bucket,
	}
}

// Upload writes body at bucket/path, replacing any previous object, and
// returns its public URL
func (s *Store) Upload(ctx context.Context, bucket, path string, body []byte, contentType string) (string, error) {
	const sql = `
insert into objects (bucket, path, content_type, body)
values ($1, $2, $3, $4)
on conflict (bucket, path) do update
set content_type = excluded.content_type, body = excluded.body, updated_at = now()
`
	if _, err := s.q.Exec(ctx, sql, bucket, path, contentType, body); err != nil {
		return "", perr.FromPostgresf(err, "upload %s/%s", bucket, path)
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, cacheKey(bucket, path)); err != nil {
			logger.C(ctx).Debug().Err(err).Msg("object cache evict failed")
		}
	}
	return s.PublicURL(bucket, path), nil
}

// Get loads bucket/path; a missing object is perr.ErrNotFound
func (s *Store) Get(ctx context.Context, bucket, path string) (Object, error) {
	key := cacheKey(bucket, path)
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			if ct, body, found := strings.Cut(string(raw), "\n"); found {
				return Object{Bucket: bucket, Path: path, ContentType: ct, Body: []byte(body)}, nil
			}
		}
	}

	const sql = `select content_type, body from objects where bucket = $1 and path = $2`
	o, err := store.One(ctx, s.q, func(r store.Row) (Object, error) {
		o := Object{Bucket: bucket, Path: path}
		err := r.Scan(&o.ContentType, &o.Body)
		return o, err
	}, sql, bucket, path)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return Object{}, err
		}
		return Object{}, perr.FromPostgresf(err, "get %s/%s", bucket, path)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, append([]byte(o.ContentType+"\n"), o.Body...), s.cacheTTL); err != nil {
			logger.C(ctx).Debug().Err(err).Msg("object cache fill failed")
		}
	}
	return o, nil
}

// PublicURL is where clients fetch bucket/path. Objects of the public bucket
// are served from the public base; others fall back to bucket-qualified paths.
func (s *Store) PublicURL(bucket, path string) string {
	if bucket == s.bucket || s.bucket == "" {
		return s.publicBase + "/" + path
	}
	return s.publicBase + "/" + bucket + "/" + path
}

func cacheKey(bucket, path string) string { return "obj:" + bucket + ":" + path }
