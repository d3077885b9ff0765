package modkit

import "net/http"

// Option configures a module at construction
type Option func(*buildCfg)

type buildCfg struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	ports  any
}

// WithName names the module for logs
func WithName(name string) Option { return func(c *buildCfg) { c.name = name } }

// WithPrefix sets the mount path under the API root
func WithPrefix(prefix string) Option { return func(c *buildCfg) { c.prefix = prefix } }

// WithMiddlewares appends module-scoped middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts hands the module the ports it consumes from other modules
func WithPorts[T any](p T) Option { return func(c *buildCfg) { c.ports = p } }
