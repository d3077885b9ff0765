// Package module publishes the meaning resolver to the posting and decode modules
package module

import (
	"meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	"meanin/internal/services/meaning/domain"
	"meanin/internal/services/meaning/service"
	termdom "meanin/internal/services/terms/domain"
)

// Ports exposed by the meaning module
type Ports struct {
	Resolver domain.ResolverPort
}

// Module has no routes
type Module struct {
	ports Ports
}

// New builds the resolver over the term store
func New(deps modkit.Deps, terms termdom.StorePort) *Module {
	svc := service.New(service.Options{
		Terms:    terms,
		LLM:      deps.LLM,
		Cache:    deps.Cache,
		CacheTTL: deps.CacheTTL,
		Async:    deps.Async,
	})
	return &Module{ports: Ports{Resolver: svc}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "meaning" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
