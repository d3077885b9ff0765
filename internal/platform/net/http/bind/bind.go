// Package bind decodes and validates JSON request bodies
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/validate"
)

// Options controls decoding
type Options struct {
	MaxBytes       int64 // 0 means 64KiB
	AllowUnknown   bool
	AllowEmptyBody bool
}

const defaultMaxBytes = 64 << 10

// ParseJSON decodes r's body into T and validates it.
// Decode failures are ErrorCodeJSON, rule failures ErrorCodeValidation; both map to 400.
func ParseJSON[T any](r *http.Request, opts ...Options) (T, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = defaultMaxBytes
	}

	var dst T
	body := http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	if !o.AllowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&dst); err != nil {
		switch {
		case errors.Is(err, io.EOF) && o.AllowEmptyBody:
			return dst, validate.Struct(dst)
		case errors.Is(err, io.EOF):
			return dst, perr.JSONErrf("empty body")
		default:
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				return dst, perr.JSONErrf("body exceeds %d bytes", o.MaxBytes)
			}
			return dst, perr.Wrap(err, perr.ErrorCodeJSON, "invalid JSON")
		}
	}
	if dec.More() {
		return dst, perr.JSONErrf("unexpected trailing data")
	}
	return dst, validate.Struct(dst)
}
