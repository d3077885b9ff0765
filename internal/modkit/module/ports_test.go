package module

import (
	"testing"

	phttp "meanin/internal/platform/net/http"
	"meanin/internal/platform/testkit"
)

type termsPort interface{ Lookup(string) bool }

type lookup struct{}

func (lookup) Lookup(string) bool { return true }

type stub struct{ ports any }

func (stub) MountRoutes(phttp.Router) {}
func (s stub) Ports() any             { return s.ports }
func (stub) Name() string             { return "terms" }

func TestPortsOf(t *testing.T) {
	if p, ok := PortsOf[termsPort](stub{ports: lookup{}}); !ok || !p.Lookup("x") {
		t.Fatal("expected port")
	}
	if _, ok := PortsOf[termsPort](stub{}); ok {
		t.Fatal("nil ports must not match")
	}
	testkit.MustPanic(t, func() { MustPortsOf[termsPort](stub{ports: 42}) })
}
