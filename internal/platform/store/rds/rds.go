// Package rds wraps go-redis as a byte cache
package rds

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the client
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Client is a go-redis client narrowed to cache operations
type Client struct{ c *redis.Client }

// Open connects and pings
func Open(ctx context.Context, cfg Config) (*Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &Client{c: c}, nil
}

// New wraps an existing go-redis client
func New(c *redis.Client) *Client { return &Client{c: c} }

// Get returns the value and whether the key existed
func (r *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set stores val; ttl 0 means no expiry
func (r *Client) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return r.c.Set(ctx, key, val, ttl).Err()
}

// Del removes keys
func (r *Client) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.c.Del(ctx, keys...).Err()
}

// Ping checks the connection
func (r *Client) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

// Close closes the pool
func (r *Client) Close() error { return r.c.Close() }
