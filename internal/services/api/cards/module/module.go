// Package module wires story cards into the API using modkit
package module

import (
	"context"
	"net/http"

	"meanin/internal/adapters/objstore"
	modkit "meanin/internal/modkit"
	"meanin/internal/modkit/httpkit"
	str "meanin/internal/platform/strings"
	"meanin/internal/services/api/cards/domain"
	cardshttp "meanin/internal/services/api/cards/http"
	cardssvc "meanin/internal/services/api/cards/service"
)

// Ports published for the posts module
type Ports struct {
	Publisher domain.PublisherPort
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *cardssvc.Service
}

// New constructs the cards module over the Postgres object store
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("cards"), modkit.WithPrefix("/cards")}, opts...)...)

	objects := objstore.New(deps.PG, objstore.Options{
		PublicBase: deps.App.PublicBase(),
		Bucket:     deps.App.Bucket,
		Cache:      deps.Cache,
		CacheTTL:   deps.CacheTTL,
	})
	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    cardssvc.New(objectAdapter{objects}, deps.App.Bucket, deps.App),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(str.MustPrefix(m.prefix), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		cardshttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns the publisher other modules render through
func (m *Module) Ports() any { return Ports{Publisher: m.svc} }

// objectAdapter narrows objstore.Store to the domain's ObjectStore
type objectAdapter struct{ s *objstore.Store }

func (a objectAdapter) Upload(ctx context.Context, bucket, path string, body []byte, contentType string) (string, error) {
	return a.s.Upload(ctx, bucket, path, body, contentType)
}

func (a objectAdapter) Get(ctx context.Context, bucket, path string) (domain.Object, error) {
	o, err := a.s.Get(ctx, bucket, path)
	return domain.Object{ContentType: o.ContentType, Body: o.Body}, err
}
