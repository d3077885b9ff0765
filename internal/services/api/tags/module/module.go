// Package module mounts the tag catalogue endpoint using modkit
package module

import (
	"net/http"

	modkit "meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	str "meanin/internal/platform/strings"
	tagshttp "meanin/internal/services/api/tags/http"
	tagsmod "meanin/internal/services/tags/module"
)

// Ports consumed from the tag store module
type Ports struct {
	Tags tagsmod.Ports
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	tags   tagshttp.Lister
}

// New constructs the tags API module; WithPorts must carry Ports
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("tags"), modkit.WithPrefix("/tags")}, opts...)...)
	p := modkit.MustPorts[Ports](b)
	return &Module{name: b.Name, prefix: b.Prefix, mws: b.Mw, tags: p.Tags.Store}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(str.MustPrefix(m.prefix), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		tagshttp.Register(rr, m.tags)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns nil
func (m *Module) Ports() any { return nil }
