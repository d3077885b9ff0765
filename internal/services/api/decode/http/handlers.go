// Package http provides http transport for the decode view
package http

import (
	stdhttp "net/http"

	"meanin/internal/modkit/httpkit"
	"meanin/internal/services/api/decode/domain"
)

// Register mounts decode endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/{slug}", h.view)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /decode/{slug} Decode decodeView
// @Summary Public decode view of a post
// @Tags Decode
// @Produce json
// @Param slug path string true "Post slug"
// @Param Accept-Language header string false "Viewer language"
// @Success 200 {object} domain.View "ok"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /decode/{slug} [get]
func (h *handlers) view(r *stdhttp.Request) (any, error) {
	return h.svc.GetView(r.Context(), httpkit.Param(r, "slug"), r.Header.Get("Accept-Language"))
}
