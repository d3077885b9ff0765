package httpkit

import (
	"net/http"

	perrs "meanin/internal/platform/errors"
	pnet "meanin/internal/platform/net"
)

// User returns the subject the bearer middleware stored on the request
func User(r *http.Request) (string, error) {
	if uid := pnet.UserID(r.Context()); uid != "" {
		return uid, nil
	}
	return "", perrs.Unauthorizedf("missing bearer token")
}
