// Package module holds the contract api.Mount iterates over. It sits apart
// from modkit so a module can export its own ports type without an import cycle.
package module

import (
	"fmt"
	"reflect"

	phttp "meanin/internal/platform/net/http"
)

// Module mounts routes and exposes a ports bundle other modules consume
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// PortsOf asserts m's ports bundle to T
func PortsOf[T any](m Module) (T, bool) {
	p, ok := m.Ports().(T)
	return p, ok
}

// MustPortsOf is PortsOf for wiring code, where a mismatch is a programming error
func MustPortsOf[T any](m Module) T {
	p, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s: ports are %T, not %v", m.Name(), m.Ports(), reflect.TypeFor[T]()))
	}
	return p
}
