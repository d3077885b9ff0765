package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "meanin/internal/platform/errors"
)

type createPost struct {
	Text     string `json:"text" validate:"notblank"`
	Platform string `json:"platform" validate:"required"`
	TagSlug  string `json:"tagSlug,omitempty"`
}

func req(body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(http.MethodPost, "/posts", http.NoBody)
	}
	return httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
}

func TestParseJSON(t *testing.T) {
	cases := []struct {
		name string
		body string
		opts []Options
		code perr.ErrorCode
		ok   bool
	}{
		{name: "valid", body: `{"text":"We need to talk","platform":"whatsapp-status"}`, ok: true},
		{name: "empty body", body: "", code: perr.ErrorCodeJSON},
		{name: "broken json", body: `{"text":`, code: perr.ErrorCodeJSON},
		{name: "unknown field", body: `{"text":"a","platform":"b","x":1}`, code: perr.ErrorCodeJSON},
		{name: "unknown allowed", body: `{"text":"a","platform":"b","x":1}`, opts: []Options{{AllowUnknown: true}}, ok: true},
		{name: "trailing data", body: `{"text":"a","platform":"b"} {}`, code: perr.ErrorCodeJSON},
		{name: "blank text", body: `{"text":"  ","platform":"b"}`, code: perr.ErrorCodeValidation},
		{name: "too large", body: `{"text":"` + strings.Repeat("a", 100) + `","platform":"b"}`, opts: []Options{{MaxBytes: 16}}, code: perr.ErrorCodeJSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseJSON[createPost](req(tc.body), tc.opts...)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected: %v", err)
				}
				if got.Text == "" {
					t.Fatalf("not decoded: %+v", got)
				}
				return
			}
			if perr.CodeOf(err) != tc.code {
				t.Fatalf("code = %v (%v), want %v", perr.CodeOf(err), err, tc.code)
			}
		})
	}
}

func TestParseJSONEmptyAllowed(t *testing.T) {
	type seed struct {
		Seed string `json:"seed"`
	}
	got, err := ParseJSON[seed](req(""), Options{AllowEmptyBody: true})
	if err != nil || got.Seed != "" {
		t.Fatalf("got %+v, %v", got, err)
	}
}
