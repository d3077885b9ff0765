package http

import (
	"net/http"

	"meanin/internal/platform/net/http/bind"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// GetJSON mounts a body-less JSON handler
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// PostJSON mounts a JSON handler that binds T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.Options) {
	r.Post(path, JSONHandler(h, opts...))
}

// MountProfiler serves pprof under prefix (e.g. /debug) when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if enabled {
		r.Handle(prefix+"/*", http.StripPrefix(prefix, chimw.Profiler()))
	}
}
