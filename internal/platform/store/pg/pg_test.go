package pg

import (
	"testing"
	"time"
)

func TestPoolConfig(t *testing.T) {
	pcfg, err := poolConfig(Config{
		URL:      "postgres://u:p@localhost:5432/meanin?sslmode=disable",
		MaxConns: 6,
		MinConns: 2,
		Lifetime: 30 * time.Minute,
		AppName:  "meanin-api",
	})
	if err != nil {
		t.Fatal(err)
	}
	if pcfg.MaxConns != 6 || pcfg.MinConns != 2 || pcfg.MaxConnLifetime != 30*time.Minute {
		t.Fatalf("pool sizing not applied: %d %d %v", pcfg.MaxConns, pcfg.MinConns, pcfg.MaxConnLifetime)
	}
	if pcfg.ConnConfig.RuntimeParams["application_name"] != "meanin-api" {
		t.Fatal("application_name missing")
	}
}

func TestPoolConfig_MinAboveMaxIgnored(t *testing.T) {
	pcfg, err := poolConfig(Config{URL: "postgres://localhost/meanin", MaxConns: 2, MinConns: 5})
	if err != nil {
		t.Fatal(err)
	}
	if pcfg.MinConns != 0 {
		t.Fatalf("MinConns = %d", pcfg.MinConns)
	}
}

func TestPoolConfig_BadURL(t *testing.T) {
	if _, err := poolConfig(Config{URL: "::not a dsn"}); err == nil {
		t.Fatal("want parse error")
	}
}
