package swaggerkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"meanin/internal/platform/testkit"
)

func TestServeDocJSONPatchesSpec(t *testing.T) {
	testkit.Swap(t, &docReader, func() (string, error) {
		return `{"openapi":"3.1.0","info":{"title":"MeanIn API","version":"1"},"paths":{"/posts":{"post":{"responses":{"200":{"description":"ok"}}}}}}`, nil
	})

	rr := httptest.NewRecorder()
	serveDocJSON()(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatal(err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	if _, ok := spec["servers"]; !ok {
		t.Fatal("servers missing")
	}
	resps := spec["paths"].(map[string]any)["/posts"].(map[string]any)["post"].(map[string]any)["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("response %s missing", code)
		}
	}
}

func TestServeDocJSONUnregistered(t *testing.T) {
	testkit.Swap(t, &docReader, func() (string, error) { return "", errors.New("not registered") })
	rr := httptest.NewRecorder()
	serveDocJSON()(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestServeDocJSONBearerScheme(t *testing.T) {
	testkit.Swap(t, &docReader, func() (string, error) {
		return `{"openapi":"3.0.3","paths":{"/creators/profile":{"get":{"responses":{"401":{"description":"unauthorized"}}}}}}`, nil
	})
	rr := httptest.NewRecorder()
	serveDocJSON()(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))

	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatal(err)
	}
	schemes := spec["components"].(map[string]any)["securitySchemes"].(map[string]any)
	if _, ok := schemes["BearerAuth"]; !ok {
		t.Fatal("BearerAuth scheme missing")
	}
	resps := spec["paths"].(map[string]any)["/creators/profile"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	ex := resps["500"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["example"].(map[string]any)
	if ex["status_code"] != float64(500) {
		t.Fatalf("500 example = %v", ex)
	}
}
