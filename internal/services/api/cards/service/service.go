// Package service renders story cards and stores them in the card bucket
package service

import (
	"context"
	"strings"

	"meanin/internal/core/card"
	"meanin/internal/platform/logger"
	"meanin/internal/services/api/cards/domain"
)

// URLs builds public links for a slug
type URLs interface {
	ShareURL(slug string) string
	CardURL(slug string) string
}

// Service implements domain.ServicePort
type Service struct {
	objects domain.ObjectStore
	bucket  string
	urls    URLs
}

// New wires the service
func New(objects domain.ObjectStore, bucket string, urls URLs) *Service {
	if objects == nil {
		panic("cards.Service requires an object store")
	}
	if bucket == "" {
		bucket = "cards"
	}
	return &Service{objects: objects, bucket: bucket, urls: urls}
}

// Publish implements domain.PublisherPort
func (s *Service) Publish(ctx context.Context, c domain.Card) (string, error) {
	svg, err := card.Render(card.Card{Slug: c.Slug, Text: c.Text, Meaning: c.Meaning, Accent: c.Accent})
	if err != nil {
		return "", err
	}
	url, err := s.objects.Upload(ctx, s.bucket, card.Path(c.Slug), svg, card.ContentType)
	if err != nil {
		return "", err
	}
	logger.C(ctx).Debug().Str("slug", c.Slug).Int("bytes", len(svg)).Msg("card published")
	return url, nil
}

// Create re-renders a card on demand. Upload failures fall back to the
// deterministic card URL.
func (s *Service) Create(ctx context.Context, in domain.CardInput) (domain.CardOutput, error) {
	slug := strings.TrimSpace(in.Slug)
	meaning := card.MeaningText(in.Meaning, "")
	url, err := s.Publish(ctx, domain.Card{Slug: slug, Text: in.Text, Meaning: meaning})
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("slug", slug).Msg("card publish failed")
		url = s.urls.CardURL(slug)
	}
	return domain.CardOutput{
		Slug:     slug,
		CardURL:  url,
		ShareURL: s.urls.ShareURL(slug),
		Preview:  domain.Preview{Text: in.Text, Meaning: meaning},
	}, nil
}

// SVG implements domain.ServicePort
func (s *Service) SVG(ctx context.Context, slug string) ([]byte, error) {
	o, err := s.objects.Get(ctx, s.bucket, card.Path(slug))
	if err != nil {
		return nil, err
	}
	return o.Body, nil
}
