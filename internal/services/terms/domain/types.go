// Package domain holds the term and meaning records shared by the posting and decode paths
package domain

// Term statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// SourceViewer marks term requests raised by someone decoding a post
const SourceViewer = "viewer"

// Term is a known phrase
type Term struct {
	ID     string
	Phrase string
	Slug   string
	Status string
}

// Meaning is the stored explanation of a term
type Meaning struct {
	ID              string
	TermID          string
	ShortDefinition string
	FullExplanation string
	Examples        []string
	Origin          string
}
