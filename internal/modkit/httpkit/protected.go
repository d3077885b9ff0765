package httpkit

import (
	"net/http"

	perrs "meanin/internal/platform/errors"
	phttp "meanin/internal/platform/net/http"
	"meanin/internal/platform/net/middleware"
)

// Protected groups routes under bearer auth.
// A nil Authenticator answers 503 for the whole group instead of leaving it open.
func Protected(r Router, a middleware.Authenticator, fn func(Router)) {
	r.Group(func(gr Router) {
		if a == nil {
			gr.Use(unavailable)
		} else {
			gr.Use(Auth(a))
		}
		fn(gr)
	})
}

func unavailable(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		phttp.RespondError(w, r, perrs.Unavailablef("auth not configured"))
	})
}
