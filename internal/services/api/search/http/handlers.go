// Package http provides http transport for search
package http

import (
	stdhttp "net/http"

	"meanin/internal/modkit/httpkit"
	"meanin/internal/services/api/search/domain"
)

// Register mounts search endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/", h.search)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /search Search searchPosts
// @Summary Search posts by text or keyword
// @Tags Search
// @Produce json
// @Param q query string false "Query, at least 2 characters"
// @Success 200 {object} domain.Output "ok"
// @Router /search [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	return h.svc.Search(r.Context(), httpkit.Query(r, "q")), nil
}
