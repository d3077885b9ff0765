// Package llm is the completion seam. A nil Completer means the backend is not
// configured and every caller must fall through to its next strategy.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"meanin/internal/platform/validate"
)

// Completer sends one prompt and returns the raw reply, expected to be JSON
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a func to Completer
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ErrDisabled is reported when no backend is configured
var ErrDisabled = errors.New("llm: completion backend not configured")

// Result is a reply that was parsed and schema-checked. Downstream code only
// reads Value when Valid is true.
type Result[T any] struct {
	Value T
	Valid bool
	// Reason explains an invalid result, for logs
	Reason error
}

// Invalid builds a rejected result
func Invalid[T any](err error) Result[T] { return Result[T]{Reason: err} }

// Ask completes prompt, decodes the JSON reply into T and validates it with the
// shared validator. Every failure yields an Invalid result rather than an error.
func Ask[T any](ctx context.Context, c Completer, prompt string) Result[T] {
	if c == nil {
		return Invalid[T](ErrDisabled)
	}
	raw, err := c.Complete(ctx, prompt)
	if err != nil {
		return Invalid[T](err)
	}
	var v T
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &v); err != nil {
		return Invalid[T](fmt.Errorf("llm: decode reply: %w", err))
	}
	if err := validate.Struct(v); err != nil {
		return Invalid[T](fmt.Errorf("llm: reply rejected: %w", err))
	}
	return Result[T]{Value: v, Valid: true}
}

// CleanJSON strips markdown fences some models wrap around JSON
func CleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
