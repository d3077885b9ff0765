// @title         MeanIn API
// @version       0.1.0
// @description   Post status lines, decode their meaning and share story cards
// @BasePath      /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meanin/internal/adapters/authprovider"
	"meanin/internal/adapters/llm"
	"meanin/internal/core/version"
	"meanin/internal/modkit/httpkit"
	"meanin/internal/modkit/repokit"
	"meanin/internal/platform/config"
	"meanin/internal/platform/dispatch"
	"meanin/internal/platform/logger"
	phttp "meanin/internal/platform/net/http"
	"meanin/internal/platform/net/middleware"
	"meanin/internal/platform/store"
	"meanin/internal/platform/store/migrate"

	"meanin/internal/services/api"
)

func main() {
	lopt := logger.FromEnv()
	if lopt.Service == "" {
		lopt.Service = version.Info().Service
	}
	logger.Init(lopt)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	stCfg := store.ConfigFromEnv(root, "meanin-api")

	if apiCfg.MayBool("MIGRATE", false) {
		st, err := migrate.Up(stCfg.PG.URL)
		if err != nil {
			l.Fatal().Err(err).Msg("migrate up failed")
		}
		l.Info().Uint("version", st.Version).Bool("dirty", st.Dirty).Msg("schema migrated")
	}

	st, err := store.Open(ctx, stCfg, store.WithLogger(*logger.Named("store")))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	completer, err := llm.New(ctx, llm.OptionsFromEnv(root))
	if err != nil {
		l.Fatal().Err(err).Msg("llm client failed")
	}

	async := dispatch.New(dispatch.OptionsFromEnv(apiCfg), *logger.Named("dispatch"))
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := async.Close(cctx); err != nil {
			l.Warn().Err(err).Msg("dispatch drain incomplete")
		}
	}()

	var auth middleware.Authenticator
	if c := authprovider.New(authprovider.OptionsFromEnv(root)); c != nil {
		auth = httpkit.NewBearer(c.Verify)
	} else {
		l.Warn().Msg("AUTH_URL not set, creator endpoints disabled")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			LLM:            completer,
			Async:          async,
			Auth:           auth,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
			RequestTimeout: apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
			LLMConcurrency: apiCfg.MayInt("LLM_CONCURRENCY", 8),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
