// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"meanin/internal/adapters/llm"
	"meanin/internal/modkit/module"
	"meanin/internal/modkit/repokit"
	"meanin/internal/platform/config"
	"meanin/internal/platform/dispatch"
	"meanin/internal/platform/logger"
	"meanin/internal/platform/net/middleware"
	"meanin/internal/platform/store"
)

// Module is the contract every API module satisfies
type Module = module.Module

// App is the public-facing configuration shared by modules
type App struct {
	// URL is the web origin share links point at
	URL string
	// CDNURL serves card images; empty means URL
	CDNURL string
	Bucket string
	// TermSample bounds how many recent terms keyword matching scans
	TermSample int
}

// AppFromEnv reads MEANIN_* keys
func AppFromEnv(root config.Conf) App {
	c := root.Prefix("MEANIN_")
	return App{
		URL:        c.MayBaseURL("APP_URL", "http://localhost:3000"),
		CDNURL:     c.MayBaseURL("CDN_URL", ""),
		Bucket:     c.MayString("STORAGE_BUCKET", "cards"),
		TermSample: c.MayInt("TERM_SAMPLE", 25),
	}
}

// ShareURL is the public decode page for slug
func (a App) ShareURL(slug string) string { return a.URL + "/p/" + slug }

// PublicBase is the origin public objects are served from
func (a App) PublicBase() string {
	if a.CDNURL != "" {
		return a.CDNURL
	}
	return a.URL
}

// CardURL is the deterministic card location for slug
func (a App) CardURL(slug string) string { return a.PublicBase() + "/cards/" + slug + ".svg" }

// Deps holds core dependencies passed to modules.
// Optional backends are nil when disabled and consumers must check.
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	App App

	PG    repokit.TxRunner
	CH    store.Clickhouse
	Cache store.Cache
	// CacheTTL bounds cached entries written by modules
	CacheTTL time.Duration

	LLM   llm.Completer
	Async *dispatch.Dispatcher
	Auth  middleware.Authenticator

	// Pingers backs the readiness probe
	Pingers map[string]store.Pinger
}
