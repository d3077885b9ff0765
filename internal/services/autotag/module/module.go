// Package module wires the auto-tag worker from core deps
package module

import (
	"context"

	"meanin/internal/core/tagging"
	"meanin/internal/modkit"
	"meanin/internal/services/autotag/repo"
	"meanin/internal/services/autotag/service"
	tagsrepo "meanin/internal/services/tags/repo"
	tagssvc "meanin/internal/services/tags/service"
)

// Worker runs auto-tag passes
type Worker struct {
	svc *service.Service
	opt Options
}

// New builds the worker over the shared tag store
func New(deps modkit.Deps, cat *tagging.Catalogue, opt Options) *Worker {
	if cat == nil {
		cat = tagging.MustLoad()
	}
	tags := tagssvc.New(deps.PG, tagsrepo.NewPG(), cat)
	return &Worker{svc: service.New(deps.PG, repo.NewPG(), cat, tags, deps.LLM), opt: opt}
}

// Run runs once, or every opt.Every until ctx ends
func (w *Worker) Run(ctx context.Context) error {
	return w.svc.Run(ctx, w.opt.Limit, w.opt.Every)
}

// Tick runs a single pass
func (w *Worker) Tick(ctx context.Context) (service.Report, error) {
	return w.svc.Tick(ctx, w.opt.Limit)
}
