package chain

import (
	"context"
	"testing"
)

func TestFirstShortCircuits(t *testing.T) {
	var ran []string
	step := func(name string, ok bool) Strategy[string] {
		return Step(name, func(context.Context) (string, bool) {
			ran = append(ran, name)
			return name + "-value", ok
		})
	}

	v, by := First(context.Background(), "fallback", step("terms", false), step("llm", true), step("heuristic", true))
	if v != "llm-value" || by != "llm" {
		t.Fatalf("v=%q by=%q", v, by)
	}
	if len(ran) != 2 {
		t.Fatalf("ran = %v", ran)
	}
}

func TestFirstFallback(t *testing.T) {
	v, by := First(context.Background(), "general", Step("never", func(context.Context) (string, bool) { return "", false }))
	if v != "general" || by != "" {
		t.Fatalf("v=%q by=%q", v, by)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, _ := First(ctx, 7, Step("skipped", func(context.Context) (int, bool) { return 1, true }))
	if n != 7 {
		t.Fatalf("cancelled chain ran: %d", n)
	}
}
