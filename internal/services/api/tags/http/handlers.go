// Package http provides http transport for the tag catalogue
package http

import (
	"context"
	stdhttp "net/http"

	"meanin/internal/core/tagging"
	"meanin/internal/modkit/httpkit"
)

// Lister returns every known tag
type Lister interface {
	List(ctx context.Context) []tagging.Tag
}

// Output is the GET /tags response
type Output struct {
	Tags []tagging.Tag `json:"tags"`
}

// Register mounts tag endpoints
func Register(r httpkit.Router, l Lister) {
	h := &handlers{tags: l}
	httpkit.GetJSON(r, "/", h.list)
}

type handlers struct{ tags Lister }

// swagger:route GET /tags Tags tagsList
// @Summary Tag catalogue with colours
// @Tags Tags
// @Produce json
// @Success 200 {object} Output "ok"
// @Router /tags [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return Output{Tags: h.tags.List(r.Context())}, nil
}
