// Package module wires the showcase into the API using modkit
package module

import (
	"net/http"

	modkit "meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	str "meanin/internal/platform/strings"
	showcasehttp "meanin/internal/services/api/showcase/http"
	"meanin/internal/services/api/showcase/repo"
	"meanin/internal/services/api/showcase/service"
	tagsmod "meanin/internal/services/tags/module"
)

// Ports consumed from the tags module
type Ports struct {
	Tags tagsmod.Ports
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *service.Service
}

// New constructs the showcase module; WithPorts must carry Ports
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("showcase"), modkit.WithPrefix("/showcase")}, opts...)...)
	p := modkit.MustPorts[Ports](b)
	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    service.New(deps.PG, repo.NewPG(), p.Tags.Store),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(str.MustPrefix(m.prefix), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		showcasehttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns nil
func (m *Module) Ports() any { return nil }
