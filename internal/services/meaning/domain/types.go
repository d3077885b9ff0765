// Package domain holds the decode-time meaning view and its inputs
package domain

import termdom "meanin/internal/services/terms/domain"

// View is the meaning shown to a viewer. BaseMeaning and ContextualMeaning are never empty.
type View struct {
	BaseMeaning       string   `json:"baseMeaning"`
	ContextualMeaning string   `json:"contextualMeaning"`
	LocalContext      *string  `json:"localContext"`
	LocalExample      *string  `json:"localExample"`
	Origin            *string  `json:"origin"`
	RelatedTerms      []string `json:"relatedTerms"`
	IsDraft           bool     `json:"isDraft"`
}

// Post is what the resolver needs to know about the post being decoded
type Post struct {
	Text    string
	Keyword string
	// TermID is empty when the post has no term
	TermID     string
	TermStatus string
	// Meaning is the joined row, nil when the join found none
	Meaning *termdom.Meaning
}
