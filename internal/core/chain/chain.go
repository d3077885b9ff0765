// Package chain runs ordered fallback strategies and takes the first success
package chain

import "context"

// Strategy is one named step; ok=false passes to the next step
type Strategy[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, bool)
}

// Step builds a Strategy
func Step[T any](name string, run func(ctx context.Context) (T, bool)) Strategy[T] {
	return Strategy[T]{Name: name, Run: run}
}

// First runs steps in order and returns the first successful value with the
// winning step's name. When every step passes it returns fallback and "".
// A cancelled ctx stops the chain early.
func First[T any](ctx context.Context, fallback T, steps ...Strategy[T]) (T, string) {
	for _, s := range steps {
		if ctx.Err() != nil {
			break
		}
		if v, ok := s.Run(ctx); ok {
			return v, s.Name
		}
	}
	return fallback, ""
}
