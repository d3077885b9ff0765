package http

import (
	"net/http"

	"meanin/internal/platform/net/http/bind"
)

// JSONHandler binds and validates T, then wraps fn's result in a 200 envelope.
// fn may return a Response to pick its own status.
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.Options) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody is JSONHandler for requests without a body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
