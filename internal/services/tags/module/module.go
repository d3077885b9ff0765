// Package module exposes tag storage to the classifier and the API
package module

import (
	"meanin/internal/core/tagging"
	"meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	"meanin/internal/services/tags/repo"
	"meanin/internal/services/tags/service"
)

// Ports exposed by the tags module
type Ports struct {
	Store      *service.Service
	Classifier *tagging.Classifier
}

// Module has no routes of its own
type Module struct {
	ports Ports
}

// New wires the tag store and a classifier that writes through it
func New(deps modkit.Deps, cat *tagging.Catalogue) *Module {
	svc := service.New(deps.PG, repo.NewPG(), cat)
	return &Module{ports: Ports{
		Store:      svc,
		Classifier: tagging.NewClassifier(cat, svc, deps.LLM),
	}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "tagstore" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
