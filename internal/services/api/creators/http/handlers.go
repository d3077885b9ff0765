// Package http provides http transport for creator endpoints
package http

import (
	stdhttp "net/http"

	"meanin/internal/modkit/httpkit"
	"meanin/internal/platform/net/http/bind"
	"meanin/internal/services/api/creators/domain"
)

// Register mounts creator endpoints; callers wrap them in httpkit.Protected
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetJSON(r, "/profile", h.profile)
	httpkit.PostJSON[domain.SaveInput](r, "/profile", h.save, bind.Options{AllowEmptyBody: true})
	httpkit.PostJSON[domain.PredictInput](r, "/predict", h.predict, bind.Options{AllowEmptyBody: true})
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /creators/profile Creators creatorsProfile
// @Summary Stored creator profile of the caller
// @Tags Creators
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ProfileOutput "ok"
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /creators/profile [get]
func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	sub, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Profile(r.Context(), sub)
}

// swagger:route POST /creators/profile Creators creatorsSave
// @Summary Analyze and store the caller's creator profile
// @Tags Creators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.SaveInput true "Creator expression profile"
// @Success 200 {object} domain.SaveOutput "ok"
// @Failure 401 {object} ErrorResponse
// @Router /creators/profile [post]
func (h *handlers) save(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	sub, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Save(r.Context(), sub, in)
}

// swagger:route POST /creators/predict Creators creatorsPredict
// @Summary Status lines in the caller's voice
// @Tags Creators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.PredictInput false "Seed"
// @Success 200 {object} domain.PredictOutput "ok"
// @Failure 401 {object} ErrorResponse
// @Router /creators/predict [post]
func (h *handlers) predict(r *stdhttp.Request, in domain.PredictInput) (any, error) {
	sub, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Predict(r.Context(), sub, in)
}
