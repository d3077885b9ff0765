// Package docs registers the API's OpenAPI document with swag under the
// swaggerkit instance name. Regenerate the full schema with
// `swag init -g cmd/meanin-api/main.go --v3.1 -o internal/services/api/docs`.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.1.0",
  "info": {"title": "{{.Title}}", "description": "{{.Description}}", "version": "{{.Version}}"},
  "paths": {
    "/posts": {
      "get": {"tags": ["Posts"], "summary": "Recent distinct keywords", "responses": {"200": {"description": "ok"}}},
      "post": {"tags": ["Posts"], "summary": "Create a post with keyword, tag, meaning and card", "responses": {"200": {"description": "ok"}, "400": {"description": "invalid input"}, "500": {"description": "could not create post"}}}
    },
    "/decode/{slug}": {
      "get": {"tags": ["Decode"], "summary": "Public decode view of a post",
        "parameters": [{"name": "slug", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "ok"}, "404": {"description": "not found"}}}
    },
    "/search": {
      "get": {"tags": ["Search"], "summary": "Search posts by text or keyword",
        "parameters": [{"name": "q", "in": "query", "schema": {"type": "string"}}],
        "responses": {"200": {"description": "ok"}}}
    },
    "/showcase": {
      "get": {"tags": ["Showcase"], "summary": "Newest posts, category chips and tag detail",
        "parameters": [{"name": "category", "in": "query", "schema": {"type": "string"}}, {"name": "tag", "in": "query", "schema": {"type": "string"}}],
        "responses": {"200": {"description": "ok"}}}
    },
    "/tags": {"get": {"tags": ["Tags"], "summary": "Tag catalogue with colours", "responses": {"200": {"description": "ok"}}}},
    "/cards": {"post": {"tags": ["Cards"], "summary": "Render and store the story card of a post", "responses": {"200": {"description": "ok"}}}},
    "/cards/{slug}.svg": {
      "get": {"tags": ["Cards"], "summary": "Stored story card",
        "parameters": [{"name": "slug", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "svg"}, "404": {"description": "not found"}}}
    },
    "/creators/profile": {
      "get": {"tags": ["Creators"], "summary": "Stored creator profile of the caller", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "ok"}, "401": {"description": "unauthorized"}}},
      "post": {"tags": ["Creators"], "summary": "Analyze and store the caller's creator profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "ok"}, "401": {"description": "unauthorized"}}}
    },
    "/creators/predict": {
      "post": {"tags": ["Creators"], "summary": "Status lines in the caller's voice", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "ok"}, "401": {"description": "unauthorized"}}}
    },
    "/health": {"get": {"tags": ["Meta"], "summary": "Liveness", "responses": {"200": {"description": "ok"}}}},
    "/ready": {"get": {"tags": ["Meta"], "summary": "Readiness probe pinging every enabled backend", "responses": {"200": {"description": "ok"}}}},
    "/version": {"get": {"tags": ["Meta"], "summary": "Build and version info", "responses": {"200": {"description": "ok"}}}}
  },
  "components": {
    "securitySchemes": {"BearerAuth": {"type": "http", "scheme": "bearer"}}
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	BasePath:         "/api/v1",
	Title:            "MeanIn API",
	Description:      "Post status lines, decode their meaning and share story cards",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
