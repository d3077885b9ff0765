package domain

import "context"

// PublisherPort renders and stores a card, returning its public URL
type PublisherPort interface {
	Publish(ctx context.Context, c Card) (string, error)
}

// ServicePort is the cards API contract
type ServicePort interface {
	PublisherPort
	Create(ctx context.Context, in CardInput) (CardOutput, error)
	// SVG returns the stored card for slug
	SVG(ctx context.Context, slug string) ([]byte, error)
}

// ObjectStore is the storage the service writes through
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, body []byte, contentType string) (string, error)
	Get(ctx context.Context, bucket, path string) (Object, error)
}

// Object is a stored blob
type Object struct {
	ContentType string
	Body        []byte
}
