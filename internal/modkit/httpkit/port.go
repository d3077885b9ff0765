package httpkit

import (
	"context"
	"net/http"

	perrs "meanin/internal/platform/errors"
)

// VerifyFunc resolves a raw bearer token to a subject id
type VerifyFunc func(ctx context.Context, token string) (string, error)

// Bearer implements middleware.Authenticator over a VerifyFunc
type Bearer struct{ verify VerifyFunc }

// NewBearer builds a Bearer authenticator
func NewBearer(fn VerifyFunc) *Bearer { return &Bearer{verify: fn} }

// Authenticate reads Authorization and delegates to the verifier.
// Any verifier failure is reported as an invalid token.
func (b *Bearer) Authenticate(r *http.Request) (string, error) {
	raw, err := JWT(r)
	if err != nil {
		return "", err
	}
	if b.verify == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	sub, err := b.verify(r.Context(), raw)
	if err != nil || sub == "" {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return sub, nil
}
