// Package http provides http transport for the showcase
package http

import (
	stdhttp "net/http"

	"meanin/internal/modkit/httpkit"
	"meanin/internal/services/api/showcase/domain"
)

// Register mounts showcase endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/", h.showcase)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /showcase Showcase showcaseList
// @Summary Newest posts, category chips and tag detail
// @Tags Showcase
// @Produce json
// @Param category query string false "Keyword filter; All disables it"
// @Param tag query string false "Tag slug filter"
// @Success 200 {object} domain.Output "ok"
// @Router /showcase [get]
func (h *handlers) showcase(r *stdhttp.Request) (any, error) {
	return h.svc.Showcase(r.Context(), domain.Input{
		Category: httpkit.Query(r, "category"),
		Tag:      httpkit.Query(r, "tag"),
	}), nil
}
