package domain

import "context"

// StorePort reads and writes terms and their meanings
type StorePort interface {
	RecentPhrases(ctx context.Context, limit int) ([]string, error)
	FindLike(ctx context.Context, keyword string) (*Term, error)
	Create(ctx context.Context, phrase string) (*Term, error)
	// Ensure finds or creates the term for keyword; failures yield nil
	Ensure(ctx context.Context, keyword string) *Term
	BumpInterest(ctx context.Context, termID string) error
	RecordRequest(ctx context.Context, termID, source, postSlug string) error
	MeaningByTerm(ctx context.Context, termID string) (*Meaning, error)
	InsertMeaning(ctx context.Context, m Meaning) (string, error)
}
