// Package module wires the decode view into the API using modkit
package module

import (
	"net/http"

	modkit "meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	str "meanin/internal/platform/strings"
	decodehttp "meanin/internal/services/api/decode/http"
	"meanin/internal/services/api/decode/repo"
	"meanin/internal/services/api/decode/service"
	meaningmod "meanin/internal/services/meaning/module"
	termsmod "meanin/internal/services/terms/module"
)

// Ports consumed from the service modules
type Ports struct {
	Terms   termsmod.Ports
	Meaning meaningmod.Ports
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *service.Service
}

// New constructs the decode module; WithPorts must carry Ports
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("decode"), modkit.WithPrefix("/decode")}, opts...)...)
	p := modkit.MustPorts[Ports](b)

	opt := service.Options{
		Terms:    p.Terms.Store,
		Resolver: p.Meaning.Resolver,
		Events:   repo.NewEvents(deps.CH),
	}
	if deps.Async != nil {
		opt.Async = deps.Async
	}
	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    service.New(deps.PG, repo.NewPG(), opt),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(str.MustPrefix(m.prefix), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		decodehttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns nil; nothing consumes decode
func (m *Module) Ports() any { return nil }
