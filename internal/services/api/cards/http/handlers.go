// Package http provides http transport for story cards
package http

import (
	stdhttp "net/http"

	"meanin/internal/core/card"
	"meanin/internal/modkit/httpkit"
	"meanin/internal/services/api/cards/domain"
)

// Register mounts card endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CardInput](r, "/", h.create)
	r.Get("/{slug}.svg", httpkit.Handle(h.svg))
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /cards Cards cardsCreate
// @Summary Render and store the story card of a post
// @Tags Cards
// @Accept json
// @Produce json
// @Param payload body domain.CardInput true "Card"
// @Success 200 {object} domain.CardOutput "ok"
// @Failure 400 {object} ErrorResponse
// @Router /cards [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CardInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route GET /cards/{slug}.svg Cards cardsSVG
// @Summary Stored story card
// @Tags Cards
// @Produce image/svg+xml
// @Param slug path string true "Post slug"
// @Success 200 {file} file "svg"
// @Failure 404 {object} ErrorResponse
// @Router /cards/{slug}.svg [get]
func (h *handlers) svg(r *stdhttp.Request) httpkit.Response {
	body, err := h.svc.SVG(r.Context(), httpkit.Param(r, "slug"))
	if err != nil {
		return httpkit.Error(err)
	}
	resp := httpkit.Bytes(card.ContentType, body)
	resp.Header.Set("Cache-Control", "public, max-age=300")
	return resp
}
