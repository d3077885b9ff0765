// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	"meanin/internal/core/version"
	modkit "meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	str "meanin/internal/platform/strings"

	metahttp "meanin/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	name string
	mws  []func(http.Handler) http.Handler
	deps metahttp.Deps
}

// New constructs a meta module. Routes sit at the API root, so any prefix option is ignored.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta")}, opts...)...)
	return &Module{
		name: b.Name,
		mws:  b.Mw,
		deps: metahttp.Deps{
			ServiceName: version.Info().Service,
			StartedAt:   time.Now(),
			Pingers:     deps.Pingers,
		},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(gr httpkit.Router) {
		for _, mw := range m.mws {
			gr.Use(mw)
		}
		metahttp.Register(gr, m.deps)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
