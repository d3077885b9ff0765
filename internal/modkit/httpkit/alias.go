// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"
	"strings"

	phttp "meanin/internal/platform/net/http"
	"meanin/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Bytes returns a raw 200 body
func Bytes(contentType string, body []byte) Response { return phttp.Bytes(contentType, body) }

// JSON binds and validates T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error), opts ...bind.Options) Handler {
	return phttp.JSONHandler(fn, opts...)
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandlerNoBody(fn) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Param returns a path parameter
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// Query returns a trimmed query parameter
func Query(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// GetJSON registers a body-less GET
func GetJSON(r Router, path string, fn func(*http.Request) (any, error)) { phttp.GetJSON(r, path, fn) }

// PostJSON registers a POST that binds T
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error), opts ...bind.Options) {
	phttp.PostJSON(r, path, fn, opts...)
}
