package config

import (
	"testing"
	"time"

	kit "meanin/internal/platform/testkit"
)

func TestPrefixKey(t *testing.T) {
	pg := New().Prefix("SERVICE_").Prefix("PGSQL_")
	if got := pg.Key("DBURL"); got != "SERVICE_PGSQL_DBURL" {
		t.Fatalf("Key = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("MEANIN_")
	t.Setenv("MEANIN_NAME", "  meanin ")
	if got := c.MustString("NAME"); got != "meanin" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
	kit.MustPanic(t, func() { c.Require("NAME", "MISSING") })
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("X_")
	t.Setenv("X_N", " 8 ")
	t.Setenv("X_BADN", "eight")
	t.Setenv("X_ON", "true")
	t.Setenv("X_TTL", "90s")
	t.Setenv("X_BADTTL", "soon")

	if got := c.MayInt("N", 1); got != 8 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BADN", 3); got != 3 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayInt("NOPE", 4); got != 4 {
		t.Fatalf("MayInt missing = %d", got)
	}
	if !c.MayBool("ON", false) {
		t.Fatal("MayBool want true")
	}
	if got := c.MayDuration("TTL", time.Second); got != 90*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BADTTL", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration invalid = %v", got)
	}
	if got := c.MayString("NOPE", "def"); got != "def" {
		t.Fatalf("MayString = %q", got)
	}
	if c.Has("NOPE") || !c.Has("N") {
		t.Fatal("Has mismatch")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("LLM_")
	t.Setenv("LLM_FALLBACK_MODELS", " a, ,b ,")
	got := c.MayCSV("FALLBACK_MODELS", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("LLM_EMPTY", " , ")
	if got := c.MayCSV("EMPTY", []string{"d"}); len(got) != 1 || got[0] != "d" {
		t.Fatalf("MayCSV blanks = %#v", got)
	}
}

func TestMayBaseURL(t *testing.T) {
	c := New().Prefix("MEANIN_")
	if got := c.MayBaseURL("APP_URL", "http://localhost:3000"); got != "http://localhost:3000" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("MEANIN_APP_URL", "https://meanin.com/")
	if got := c.MayBaseURL("APP_URL", ""); got != "https://meanin.com" {
		t.Fatalf("trimmed = %q", got)
	}
	if got := c.MayBaseURL("CDN_URL", ""); got != "" {
		t.Fatalf("empty = %q", got)
	}
	t.Setenv("MEANIN_CDN_URL", "/relative")
	kit.MustPanic(t, func() { _ = c.MayBaseURL("CDN_URL", "") })
}
