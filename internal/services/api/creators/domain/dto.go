// Package domain holds DTOs and ports for creator profiles and predictions
package domain

import (
	"context"
	"encoding/json"
	"time"
)

// ProfileVersion tags the stored profile layout
const ProfileVersion = "v1"

// Analysis is the completion summary of a creator's voice. Summary alone is
// set when the backend is offline or the analysis failed.
type Analysis struct {
	Summary         string              `json:"summary,omitempty"`
	Tone            string              `json:"tone,omitempty"`
	Style           string              `json:"style,omitempty"`
	Themes          []string            `json:"themes,omitempty"`
	Avoid           []string            `json:"avoid,omitempty"`
	MetaphorDensity float64             `json:"metaphor_density,omitempty" validate:"gte=0,lte=1"`
	CrypticLevel    float64             `json:"cryptic_level,omitempty" validate:"gte=0,lte=1"`
	SlangLevel      float64             `json:"slang_level,omitempty" validate:"gte=0,lte=1"`
	References      map[string][]string `json:"references,omitempty"`
}

// Profile is the stored creator_profile document
type Profile struct {
	Version   string          `json:"version"`
	CEP       json.RawMessage `json:"cep"`
	Analyzed  Analysis        `json:"analyzed"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProfileOutput is the GET /creators/profile response; the profile is {} when unset
type ProfileOutput struct {
	CreatorProfile json.RawMessage `json:"creatorProfile" swaggertype:"object"`
}

// SaveInput is the POST /creators/profile body. CEP is the creator's free-form
// expression profile as collected by onboarding.
type SaveInput struct {
	CEP json.RawMessage `json:"cep" swaggertype:"object"`
}

// SaveOutput is the POST /creators/profile response
type SaveOutput struct {
	OK       bool     `json:"ok" example:"true"`
	Analyzed Analysis `json:"analyzed"`
}

// PredictInput is the POST /creators/predict body
type PredictInput struct {
	Seed string `json:"seed" validate:"max=280" example:"mondays"`
}

// PredictOutput is the POST /creators/predict response
type PredictOutput struct {
	SuggestionID string   `json:"suggestionId" example:"5b0c1f0e-8a2b-4b53-9a57-1f3a1c4a9d2e"`
	Suggestions  []string `json:"suggestions"`
}

// ServicePort defines the creators contract; subject is the verified auth id
type ServicePort interface {
	Profile(ctx context.Context, subject string) (ProfileOutput, error)
	Save(ctx context.Context, subject string, in SaveInput) (SaveOutput, error)
	Predict(ctx context.Context, subject string, in PredictInput) (PredictOutput, error)
}
