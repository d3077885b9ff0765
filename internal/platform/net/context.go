// Package net carries request-scoped identity across transports
package net

import (
	"context"

	"meanin/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type userKey struct{}

// WithUser stores the authenticated subject id
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, userID)
}

// UserID returns the subject stored by WithUser
func UserID(ctx context.Context) string {
	s, _ := ctx.Value(userKey{}).(string)
	return s
}

// RequestID returns the chi request id, or the one carried for logging
func RequestID(ctx context.Context) string {
	if id := chimw.GetReqID(ctx); id != "" {
		return id
	}
	return logger.RequestID(ctx)
}
