// Package module wires post creation into the API using modkit
package module

import (
	"net/http"

	"meanin/internal/core/keyword"
	modkit "meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	str "meanin/internal/platform/strings"
	cardsmod "meanin/internal/services/api/cards/module"
	postshttp "meanin/internal/services/api/posts/http"
	"meanin/internal/services/api/posts/repo"
	"meanin/internal/services/api/posts/service"
	meaningmod "meanin/internal/services/meaning/module"
	tagsmod "meanin/internal/services/tags/module"
	termsmod "meanin/internal/services/terms/module"
)

// Ports consumed from the service modules
type Ports struct {
	Terms   termsmod.Ports
	Meaning meaningmod.Ports
	Tags    tagsmod.Ports
	Cards   cardsmod.Ports
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *service.Service
}

// New constructs the posts module; WithPorts must carry Ports
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("posts"), modkit.WithPrefix("/posts")}, opts...)...)
	p := modkit.MustPorts[Ports](b)

	svc := service.New(deps.PG, repo.NewPG(), service.Deps{
		Keywords:  keyword.New(p.Terms.Store, deps.LLM, deps.App.TermSample),
		Terms:     p.Terms.Store,
		Meanings:  p.Meaning.Resolver,
		Tagger:    p.Tags.Classifier,
		Catalogue: p.Tags.Classifier.Catalogue(),
		Cards:     p.Cards.Publisher,
		URLs:      deps.App,
	})
	return &Module{name: b.Name, prefix: b.Prefix, mws: b.Mw, svc: svc}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(str.MustPrefix(m.prefix), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		postshttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns nil; nothing consumes posts
func (m *Module) Ports() any { return nil }
