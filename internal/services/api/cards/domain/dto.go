// Package domain holds DTOs and ports for story cards
package domain

// CardInput re-renders the card of a post
type CardInput struct {
	Slug    string `json:"slug" validate:"notblank,max=60" example:"k3j9x0qa"`
	Text    string `json:"text" validate:"max=2000" example:"some people never learn"`
	Meaning string `json:"meaning" validate:"max=4000" example:"A quiet dig at someone who keeps repeating a mistake."`
}

// Preview echoes what was drawn
type Preview struct {
	Text    string `json:"text"`
	Meaning string `json:"meaning"`
}

// CardOutput is the POST /cards response
type CardOutput struct {
	Slug     string  `json:"slug" example:"k3j9x0qa"`
	CardURL  string  `json:"cardUrl" example:"http://localhost:3000/cards/k3j9x0qa.svg"`
	ShareURL string  `json:"shareUrl" example:"http://localhost:3000/p/k3j9x0qa"`
	Preview  Preview `json:"preview"`
}

// Card is a rendered card to draw and store
type Card struct {
	Slug    string
	Text    string
	Meaning string
	Accent  string
}
