// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"meanin/internal/adapters/llm"
	"meanin/internal/core/tagging"
	"meanin/internal/platform/config"
	"meanin/internal/platform/dispatch"
	"meanin/internal/platform/logger"
	phttp "meanin/internal/platform/net/http"
	"meanin/internal/platform/net/middleware"
	"meanin/internal/platform/store"

	"meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	"meanin/internal/modkit/module"
	"meanin/internal/modkit/swaggerkit"

	// registers the OpenAPI document with swag
	_ "meanin/internal/services/api/docs"

	cardsmod "meanin/internal/services/api/cards/module"
	creatorsmod "meanin/internal/services/api/creators/module"
	decodemod "meanin/internal/services/api/decode/module"
	metamod "meanin/internal/services/api/meta/module"
	postsmod "meanin/internal/services/api/posts/module"
	searchmod "meanin/internal/services/api/search/module"
	showcasemod "meanin/internal/services/api/showcase/module"
	tagsapimod "meanin/internal/services/api/tags/module"
	meaningmod "meanin/internal/services/meaning/module"
	tagsmod "meanin/internal/services/tags/module"
	termsmod "meanin/internal/services/terms/module"
)

// Options are the API options
type Options struct {
	// Config is the unprefixed root; modules read their own prefixes
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// LLM is nil when completion is disabled
	LLM   llm.Completer
	Async *dispatch.Dispatcher
	// Auth is nil when the auth provider is not configured
	Auth middleware.Authenticator
	// Catalogue defaults to the embedded tag catalogue
	Catalogue *tagging.Catalogue

	EnableSwagger  bool
	EnableProfiler bool
	AllowedOrigins []string
	RequestTimeout time.Duration
	// LLMConcurrency caps in-flight requests on completion-backed routes; 0 disables the cap
	LLMConcurrency int
}

// Deps builds the shared module dependencies from opt
func Deps(opt Options) modkit.Deps {
	d := modkit.Deps{
		Cfg:   opt.Config,
		App:   modkit.AppFromEnv(opt.Config),
		LLM:   opt.LLM,
		Async: opt.Async,
		Auth:  opt.Auth,
	}
	if opt.Logger != nil {
		d.Log = *opt.Logger
	}
	if opt.Store != nil {
		d.PG = opt.Store.PG
		d.CH = opt.Store.CH
		d.Cache = opt.Store.RDS
		d.Pingers = opt.Store.Pingers()
	}
	d.CacheTTL = opt.Config.Prefix("SERVICE_REDIS_").MayDuration("TTL", 24*time.Hour)
	return d
}

// Modules constructs every module in dependency order: service modules publish
// ports that the HTTP modules consume. llmGate wraps the routes that may wait
// on the completion backend.
func Modules(deps modkit.Deps, cat *tagging.Catalogue, llmGate ...func(http.Handler) http.Handler) []module.Module {
	if cat == nil {
		cat = tagging.MustLoad()
	}
	terms := termsmod.New(deps)
	tags := tagsmod.New(deps, cat)
	meaning := meaningmod.New(deps, module.MustPortsOf[termsmod.Ports](terms).Store)
	cards := cardsmod.New(deps)

	termPorts := module.MustPortsOf[termsmod.Ports](terms)
	tagPorts := module.MustPortsOf[tagsmod.Ports](tags)
	meaningPorts := module.MustPortsOf[meaningmod.Ports](meaning)

	return []module.Module{
		metamod.New(deps),
		terms,
		tags,
		meaning,
		cards,
		postsmod.New(deps, modkit.WithMiddlewares(llmGate...), modkit.WithPorts(postsmod.Ports{
			Terms:   termPorts,
			Meaning: meaningPorts,
			Tags:    tagPorts,
			Cards:   module.MustPortsOf[cardsmod.Ports](cards),
		})),
		decodemod.New(deps, modkit.WithPorts(decodemod.Ports{Terms: termPorts, Meaning: meaningPorts})),
		searchmod.New(deps),
		showcasemod.New(deps, modkit.WithPorts(showcasemod.Ports{Tags: tagPorts})),
		tagsapimod.New(deps, modkit.WithPorts(tagsapimod.Ports{Tags: tagPorts})),
		creatorsmod.New(deps, modkit.WithMiddlewares(llmGate...)),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := Deps(opt)
	var gate []func(http.Handler) http.Handler
	if opt.LLMConcurrency > 0 {
		wait := opt.RequestTimeout
		if wait <= 0 {
			wait = 30 * time.Second
		}
		gate = append(gate, middleware.ThrottleBacklog(opt.LLMConcurrency, 4*opt.LLMConcurrency, wait))
	}
	mods := Modules(deps, opt.Catalogue, gate...)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		AllowedOrigins: opt.AllowedOrigins,
		Timeout:        opt.RequestTimeout,
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	log := logger.Named("api")
	for _, m := range mods {
		log.Debug().Str("module", m.Name()).Msg("module mounted")
	}
}
