// Package domain holds DTOs and ports for post creation and suggestions
package domain

// Platforms a post can target
const (
	PlatformWhatsApp  = "whatsapp-status"
	PlatformInstagram = "instagram-story"
	PlatformTikTok    = "tiktok-story"
)

// ValidPlatform reports whether p is one of the supported platforms
func ValidPlatform(p string) bool {
	switch p {
	case PlatformWhatsApp, PlatformInstagram, PlatformTikTok:
		return true
	}
	return false
}

// CreateInput is the POST /posts body
type CreateInput struct {
	Text     string `json:"text" validate:"notblank,max=2000" example:"per my last email, we are fine"`
	Platform string `json:"platform" validate:"notblank,oneof=whatsapp-status instagram-story tiktok-story" example:"whatsapp-status"`
	// TagSlug overrides the classifier
	TagSlug string `json:"tagSlug,omitempty" validate:"omitempty,max=60" example:"shade"`
}

// CreateOutput is the POST /posts response
type CreateOutput struct {
	Slug     string `json:"slug" example:"k3j9x0qa"`
	ShareURL string `json:"shareUrl" example:"http://localhost:3000/p/k3j9x0qa"`
	CardURL  string `json:"cardUrl" example:"http://localhost:3000/cards/k3j9x0qa.svg"`
	Keyword  string `json:"keyword" example:"per my last email"`
	TagSlug  string `json:"tagSlug" example:"hustle"`
}

// SuggestionsOutput is the GET /posts response
type SuggestionsOutput struct {
	Suggestions []string `json:"suggestions"`
}
