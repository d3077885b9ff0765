// Package module exposes the term store as a port for other modules
package module

import (
	"meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	"meanin/internal/services/terms/domain"
	"meanin/internal/services/terms/repo"
	"meanin/internal/services/terms/service"
)

// Ports exposed by the terms module
type Ports struct {
	Store domain.StorePort
}

// Module has no routes; it only publishes the store
type Module struct {
	ports Ports
}

// New constructs the terms module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, repo.NewPG())
	return &Module{ports: Ports{Store: svc}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "terms" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
