// Package http provides http transport for posts
package http

import (
	stdhttp "net/http"

	"meanin/internal/modkit/httpkit"
	"meanin/internal/services/api/posts/domain"
)

// Register mounts post endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.GetJSON(r, "/", h.suggestions)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /posts Posts postsCreate
// @Summary Create a post with keyword, tag, meaning and card
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Post"
// @Success 200 {object} domain.CreateOutput "ok"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /posts [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route GET /posts Posts postsSuggestions
// @Summary Recent distinct keywords
// @Tags Posts
// @Produce json
// @Success 200 {object} domain.SuggestionsOutput "ok"
// @Router /posts [get]
func (h *handlers) suggestions(r *stdhttp.Request) (any, error) {
	return h.svc.Suggestions(r.Context()), nil
}
