package modkit

import "net/http"

// Built is the resolved option set a module keeps
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
	}
}

// MustPorts asserts the injected ports to T, panicking with the module name when absent
func MustPorts[T any](b Built) T {
	p, ok := b.Ports.(T)
	if !ok {
		panic("modkit: module " + b.Name + " was built without its ports")
	}
	return p
}
