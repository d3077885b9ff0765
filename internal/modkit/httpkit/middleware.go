package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "meanin/internal/platform/net/http"
	"meanin/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	AllowedOrigins []string
	Timeout        time.Duration
	SlowRequest    time.Duration
}

// CommonStack returns the baseline middleware for the versioned API.
// Order matters: the request id must exist before the logger scope copies it.
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestScope,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.RecoverJSON(phttp.RespondError),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.AllowedOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}

// Auth wires the auth middleware to the platform error writer
func Auth(a middleware.Authenticator) func(http.Handler) http.Handler {
	return middleware.Auth(a, phttp.RespondError)
}
