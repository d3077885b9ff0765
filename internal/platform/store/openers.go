package store

import (
	"context"
	"fmt"
	"time"

	"meanin/internal/core/version"
	"meanin/internal/platform/logger"
	"meanin/internal/platform/store/ch"
	"meanin/internal/platform/store/pg"
	"meanin/internal/platform/store/rds"
)

// openPG opens the pool and only returns once Postgres answers a ping
func openPG(ctx context.Context, cfg Config, log logger.Logger) (*pgAdapter, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		MinConns: cfg.PG.MinConns,
		Lifetime: cfg.PG.Lifetime,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectAttempts
	if attempts <= 0 {
		attempts = 1
	}
	backoff := 150 * time.Millisecond
	var lastErr error
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		lastErr = p.Pool.Ping(pctx)
		cancel()
		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		log.Warn().Err(lastErr).Int("attempt", i+1).Msg("postgres not ready")
		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, 2*time.Second)
	}
	p.Close()
	return nil, fmt.Errorf("ping failed after %d attempts: %w", attempts, lastErr)
}

func openCH(ctx context.Context, cfg Config) (*chAdapter, error) {
	c, err := ch.Open(ctx, ch.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Tag: version.Info().Version})
	if err != nil {
		return nil, err
	}
	return &chAdapter{inner: c}, nil
}

func openRedis(ctx context.Context, cfg Config) (*rds.Client, error) {
	return rds.Open(ctx, rds.Config{Addr: cfg.RDS.Addr, DB: cfg.RDS.DB})
}
