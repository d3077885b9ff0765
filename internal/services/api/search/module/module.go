// Package module wires post search into the API using modkit
package module

import (
	"net/http"

	modkit "meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	str "meanin/internal/platform/strings"
	searchhttp "meanin/internal/services/api/search/http"
	"meanin/internal/services/api/search/repo"
	"meanin/internal/services/api/search/service"
)

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *service.Service
}

// New constructs the search module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("search"), modkit.WithPrefix("/search")}, opts...)...)
	return &Module{name: b.Name, prefix: b.Prefix, mws: b.Mw, svc: service.New(deps.PG, repo.NewPG())}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(str.MustPrefix(m.prefix), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		searchhttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns nil
func (m *Module) Ports() any { return nil }
