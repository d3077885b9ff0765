package version

import "testing"

func TestAs(t *testing.T) {
	b := As("meanin-ctl")
	if b.Service != "meanin-ctl" || b.Version != Info().Version {
		t.Fatalf("As = %+v", b)
	}
	if Info().Service != "meanin-api" {
		t.Fatal("As must not change the default service")
	}
	if got := b.String(); got != "meanin-ctl dev (none, unknown)" {
		t.Fatalf("String = %q", got)
	}
}
