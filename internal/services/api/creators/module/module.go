// Package module wires creator endpoints behind bearer auth using modkit
package module

import (
	"net/http"

	modkit "meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	"meanin/internal/platform/net/middleware"
	str "meanin/internal/platform/strings"
	creatorshttp "meanin/internal/services/api/creators/http"
	"meanin/internal/services/api/creators/repo"
	"meanin/internal/services/api/creators/service"
)

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	auth   middleware.Authenticator
	svc    *service.Service
}

// New constructs the creators module. A nil deps.Auth makes every route answer 503.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("creators"), modkit.WithPrefix("/creators")}, opts...)...)
	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		auth:   deps.Auth,
		svc:    service.New(deps.PG, repo.NewPG(), deps.LLM),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(str.MustPrefix(m.prefix), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		httpkit.Protected(rr, m.auth, func(pr httpkit.Router) {
			creatorshttp.Register(pr, m.svc)
		})
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns nil
func (m *Module) Ports() any { return nil }
