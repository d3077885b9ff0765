// Package swaggerkit serves the swag-registered OpenAPI document and its UI
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"meanin/internal/platform/config"

	"github.com/swaggo/swag/v2"
)

// InstanceName is the swag registry key the api docs package registers under
const InstanceName = "api"

// docReader is a seam so tests can inject a document
var docReader = func() (string, error) { return swag.ReadDoc(InstanceName) }

type object = map[string]any

// patch adjusts a decoded document in place
type patch func(doc object)

// patches run in order on every served document
var patches = []patch{
	downgrade,
	servers("/api/v1"),
	titleSuffix,
	errorSchema,
	bearerScheme,
	defaultResponse("400", "Bad Request", 5, "text is required"),
	defaultResponse("500", "Internal Server Error", 1, "unexpected error"),
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := docReader()
		if err != nil {
			http.Error(w, "spec not registered", http.StatusNotFound)
			return
		}
		var doc object
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		for _, p := range patches {
			p(doc)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

// child returns doc[key] as an object, creating it when absent
func child(doc object, key string) object {
	if m, ok := doc[key].(object); ok {
		return m
	}
	m := object{}
	doc[key] = m
	return m
}

// operations calls fn for every operation under paths
func operations(doc object, fn func(op object)) {
	paths, _ := doc["paths"].(object)
	for _, p := range paths {
		item, ok := p.(object)
		if !ok {
			continue
		}
		for _, o := range item {
			if op, ok := o.(object); ok {
				fn(op)
			}
		}
	}
}

// downgrade pins the version the bundled UI renders (3.0.x)
func downgrade(doc object) {
	delete(doc, "swagger")
	if v, _ := doc["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		doc["openapi"] = "3.0.3"
	}
}

func servers(url string) patch {
	return func(doc object) {
		if _, ok := doc["servers"]; !ok {
			doc["servers"] = []any{object{"url": url}}
		}
	}
}

// titleSuffix appends CORE_API_DOCS_TITLE_SUFFIX, e.g. an environment name
func titleSuffix(doc object) {
	v := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", "")
	if v == "" {
		return
	}
	info := child(doc, "info")
	if t, ok := info["title"].(string); ok {
		info["title"] = t + " " + v
	}
}

// errorSchema documents the runtime error envelope
func errorSchema(doc object) {
	schemas := child(child(doc, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	str := object{"type": "string"}
	schemas["ErrorResponse"] = object{
		"type":        "object",
		"description": "Error envelope",
		"properties": object{
			"status_code": object{"type": "integer", "format": "int32"},
			"status":      str,
			"code":        object{"type": "integer", "format": "int32"},
			"error":       str,
			"field":       str,
			"request_id":  str,
		},
		"required": []any{"status_code", "status"},
	}
}

// bearerScheme backs the BearerAuth requirement on creator routes
func bearerScheme(doc object) {
	schemes := child(child(doc, "components"), "securitySchemes")
	if _, ok := schemes["BearerAuth"]; !ok {
		schemes["BearerAuth"] = object{"type": "http", "scheme": "bearer"}
	}
}

// defaultResponse adds an error response with an envelope example to every
// operation that does not declare status itself
func defaultResponse(status, text string, code int, msg string) patch {
	sc, _ := strconv.Atoi(status)
	return func(doc object) {
		resp := object{
			"description": text,
			"content": object{
				"application/json": object{
					"schema": object{"$ref": "#/components/schemas/ErrorResponse"},
					"example": object{
						"status_code": sc,
						"status":      text,
						"code":        code,
						"error":       msg,
						"request_id":  "meanin-api/abc-000001",
					},
				},
			},
		}
		operations(doc, func(op object) {
			rs := child(op, "responses")
			if _, ok := rs[status]; !ok {
				rs[status] = resp
			}
		})
	}
}
