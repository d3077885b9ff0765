package domain

import "context"

// ServicePort defines the posts service contract
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (CreateOutput, error)
	Suggestions(ctx context.Context) SuggestionsOutput
}

// Keywords picks the meaning-bearing phrase of a text
type Keywords interface {
	Extract(ctx context.Context, text string) string
}

// Tagger classifies a post into a tag slug
type Tagger interface {
	Classify(ctx context.Context, text, keyword string) string
}
