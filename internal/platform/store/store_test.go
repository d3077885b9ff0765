package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"meanin/internal/platform/config"
)

type fakeCache struct {
	pingErr error
	closed  bool
}

func (f *fakeCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (f *fakeCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (f *fakeCache) Del(context.Context, ...string) error                     { return nil }
func (f *fakeCache) Ping(context.Context) error                               { return f.pingErr }
func (f *fakeCache) Close() error                                             { f.closed = true; return nil }

func TestGuardJoinsFailures(t *testing.T) {
	s := &Store{RDS: &fakeCache{pingErr: errors.New("conn refused")}}
	err := s.Guard(context.Background())
	if err == nil || !strings.Contains(err.Error(), "redis: conn refused") {
		t.Fatalf("Guard = %v", err)
	}

	s = &Store{RDS: &fakeCache{}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("healthy Guard = %v", err)
	}
	if _, ok := s.Pingers()["redis"]; !ok {
		t.Fatal("redis pinger missing")
	}
	if _, ok := s.Pingers()["postgres"]; ok {
		t.Fatal("disabled postgres must not be listed")
	}
}

func TestCloseReleasesBackends(t *testing.T) {
	c := &fakeCache{}
	s := &Store{RDS: c}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !c.closed {
		t.Fatal("cache not closed")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://localhost/meanin")
	t.Setenv("SERVICE_REDIS_ENABLED", "true")
	t.Setenv("SERVICE_REDIS_TTL", "1h")

	cfg := ConfigFromEnv(config.New(), "meanin-api")
	if !cfg.PG.Enabled || cfg.PG.URL != "postgres://localhost/meanin" || cfg.PG.MaxConns != 8 {
		t.Fatalf("pg = %+v", cfg.PG)
	}
	if cfg.CH.Enabled {
		t.Fatal("clickhouse should be opt-in")
	}
	if !cfg.RDS.Enabled || cfg.RDS.TTL != time.Hour || cfg.RDS.Addr != "localhost:6379" {
		t.Fatalf("redis = %+v", cfg.RDS)
	}
	if cfg.CH.Role != "meanin-api" {
		t.Fatalf("role = %q", cfg.CH.Role)
	}
}
