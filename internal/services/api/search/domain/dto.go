// Package domain holds DTOs for post search
package domain

import "context"

// Result is one matching post
type Result struct {
	Slug    string `json:"slug" example:"k3j9x0qa"`
	Keyword string `json:"keyword" example:"no cap"`
	Text    string `json:"text" example:"no cap this week was wild"`
}

// Output is the GET /search response
type Output struct {
	Results []Result `json:"results"`
}

// ServicePort defines the search contract
type ServicePort interface {
	Search(ctx context.Context, q string) Output
}
