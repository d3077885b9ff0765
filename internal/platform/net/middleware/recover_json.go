package middleware

import (
	"net/http"
	"runtime/debug"

	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/logger"
)

// WriteError renders err as the project error envelope
type WriteError func(w http.ResponseWriter, r *http.Request, err error)

// RecoverJSON turns a panic into a logged 500 rendered by write
func RecoverJSON(write WriteError) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.C(r.Context()).Error().
					Interface("panic", v).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				write(w, r, perr.PanicErrf("unexpected error"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
