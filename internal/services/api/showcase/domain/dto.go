// Package domain holds DTOs for the landing-page showcase
package domain

import (
	"context"
	"time"

	"meanin/internal/core/tagging"
)

// AllCategories disables the category filter
const AllCategories = "All"

// Input is the GET /showcase query
type Input struct {
	Category string
	Tag      string
}

// Post is one showcased post
type Post struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	KeywordText string    `json:"keyword_text"`
	PublicSlug  string    `json:"public_slug"`
	CreatedAt   time.Time `json:"created_at"`
}

// Output is the GET /showcase response
type Output struct {
	Posts      []Post       `json:"posts"`
	Categories []string     `json:"categories"`
	TagDetail  *tagging.Tag `json:"tagDetail,omitempty"`
}

// ServicePort defines the showcase contract
type ServicePort interface {
	Showcase(ctx context.Context, in Input) Output
}

// Tags looks up a tag row with catalogue fallback
type Tags interface {
	Get(ctx context.Context, slug string) *tagging.Tag
}
