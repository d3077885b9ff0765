package middleware

import (
	"net/http"

	pnet "meanin/internal/platform/net"
)

// Authenticator resolves the caller's subject id from a request
type Authenticator interface {
	Authenticate(r *http.Request) (subject string, err error)
}

// Auth rejects requests the Authenticator refuses and stores the subject on the context
func Auth(a Authenticator, write WriteError) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub, err := a.Authenticate(r)
			if err != nil {
				write(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithUser(r.Context(), sub)))
		})
	}
}
