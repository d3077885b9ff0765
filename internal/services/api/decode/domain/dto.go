// Package domain holds DTOs and ports for the public decode view
package domain

import (
	"context"

	meaningdom "meanin/internal/services/meaning/domain"
)

// Post is the public part of a decoded post
type Post struct {
	Text        string `json:"text" example:"per my last email, we are fine"`
	KeywordText string `json:"keywordText" example:"per my last email"`
	Platform    string `json:"platform" example:"whatsapp-status"`
	Slug        string `json:"slug" example:"k3j9x0qa"`
	TagSlug     string `json:"tagSlug" example:"hustle"`
}

// View is the GET /decode/{slug} response
type View struct {
	Post        Post            `json:"post"`
	Meaning     meaningdom.View `json:"meaning"`
	DecodeCount int             `json:"decodeCount" example:"12"`
}

// ServicePort defines the decode service contract
type ServicePort interface {
	GetView(ctx context.Context, slug, acceptLanguage string) (View, error)
}
