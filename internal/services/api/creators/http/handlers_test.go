package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meanin/internal/modkit/httpkit"
	phttp "meanin/internal/platform/net/http"
	"meanin/internal/services/api/creators/domain"

	"github.com/go-chi/chi/v5"
)

type recorder struct {
	domain.ServicePort
	subject string
}

func (r *recorder) Predict(_ context.Context, sub string, _ domain.PredictInput) (domain.PredictOutput, error) {
	r.subject = sub
	return domain.PredictOutput{SuggestionID: "s1", Suggestions: []string{"line"}}, nil
}

func mount(a httpkit.VerifyFunc, svc domain.ServicePort) *chi.Mux {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	if a == nil {
		httpkit.Protected(r, nil, func(pr httpkit.Router) { Register(pr, svc) })
	} else {
		httpkit.Protected(r, httpkit.NewBearer(a), func(pr httpkit.Router) { Register(pr, svc) })
	}
	return mux
}

func predict(mux *chi.Mux, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(stdhttp.MethodPost, "/predict", strings.NewReader(`{"seed":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestPredictRequiresBearer(t *testing.T) {
	svc := &recorder{}
	mux := mount(func(_ context.Context, tok string) (string, error) {
		if tok == "good" {
			return "user-7", nil
		}
		return "", errors.New("expired")
	}, svc)

	if rec := predict(mux, ""); rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("missing token: %d", rec.Code)
	}
	if rec := predict(mux, "bad"); rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("bad token: %d", rec.Code)
	}
	rec := predict(mux, "good")
	if rec.Code != stdhttp.StatusOK || svc.subject != "user-7" {
		t.Fatalf("good token: %d %s subject=%q", rec.Code, rec.Body.String(), svc.subject)
	}
	if !strings.Contains(rec.Body.String(), `"suggestionId":"s1"`) {
		t.Fatalf("body %s", rec.Body.String())
	}
}

func TestUnconfiguredAuthIsUnavailable(t *testing.T) {
	if rec := predict(mount(nil, &recorder{}), "good"); rec.Code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d", rec.Code)
	}
}
