package domain

import (
	"context"

	termdom "meanin/internal/services/terms/domain"
)

// ResolverPort creates meanings at post time and assembles them at decode time
type ResolverPort interface {
	// Ensure returns the id of the term's meaning, creating one if needed; "" on failure
	Ensure(ctx context.Context, termID, keyword string) string
	// Lookup returns the stored meaning of a term, or nil
	Lookup(ctx context.Context, termID string) (*termdom.Meaning, error)
	// Resolve never fails
	Resolve(ctx context.Context, p Post) View
}
