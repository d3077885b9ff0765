// Package service analyzes creator profiles and predicts status lines in their voice
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"meanin/internal/adapters/llm"
	"meanin/internal/modkit/repokit"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/logger"
	pstrings "meanin/internal/platform/strings"
	"meanin/internal/services/api/creators/domain"
	"meanin/internal/services/api/creators/repo"
)

const (
	// MaxSuggestions caps predicted lines
	MaxSuggestions = 6
	// MaxLineLen is the exclusive rune limit of a predicted line
	MaxLineLen = 140
)

// Summaries stored when no analysis could be produced
const (
	SummaryOffline = "AI offline"
	SummaryFailed  = "analysis_failed"
)

// Fallback lines returned when prediction is unavailable
var Fallback = []string{
	"Silence isn't empty. It's where I keep the parts of me you don't see.",
	"We're fine. That's the loudest lie two people can tell together.",
	"Work is loud; purpose is quiet. I'm tuning the static.",
	"If you know the song, you know what I mean. I'm on the verse before the chorus.",
	"Weekends feel like sunlight on the floor, here for a moment and gone if you blink.",
	"Inside jokes age like wine. Ours just got another year older.",
}

var emptyDoc = json.RawMessage(`{}`)

type predicted struct {
	Suggestions []string `json:"suggestions" validate:"required,min=1"`
}

// Service implements domain.ServicePort
type Service struct {
	Repo repo.Repo
	llm  llm.Completer
	now  func() time.Time
	id   func() string
}

// New binds the repo to db; c may be nil
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo], c llm.Completer) *Service {
	if db == nil {
		panic("creators.Service requires a non nil Queryer")
	}
	if binder == nil {
		panic("creators.Service requires a non nil Repo binder")
	}
	return &Service{Repo: binder.Bind(db), llm: c, now: time.Now, id: uuid.NewString}
}

// Profile returns the stored document or {}
func (s *Service) Profile(ctx context.Context, subject string) (domain.ProfileOutput, error) {
	doc, err := s.Repo.Get(ctx, subject)
	if err != nil {
		return domain.ProfileOutput{}, err
	}
	if len(doc) == 0 {
		return domain.ProfileOutput{CreatorProfile: emptyDoc}, nil
	}
	return domain.ProfileOutput{CreatorProfile: doc}, nil
}

// Save analyzes the CEP and replaces the stored profile
func (s *Service) Save(ctx context.Context, subject string, in domain.SaveInput) (domain.SaveOutput, error) {
	cep := in.CEP
	if len(cep) == 0 || string(cep) == "null" {
		cep = emptyDoc
	}
	analyzed := s.analyze(ctx, cep)

	doc, err := json.Marshal(domain.Profile{
		Version:   domain.ProfileVersion,
		CEP:       cep,
		Analyzed:  analyzed,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return domain.SaveOutput{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "cep is not valid json")
	}
	if err := s.Repo.Save(ctx, subject, doc); err != nil {
		return domain.SaveOutput{}, err
	}
	return domain.SaveOutput{OK: true, Analyzed: analyzed}, nil
}

func (s *Service) analyze(ctx context.Context, cep []byte) domain.Analysis {
	if s.llm == nil {
		return domain.Analysis{Summary: SummaryOffline}
	}
	res := llm.Ask[domain.Analysis](ctx, s.llm, analyzePrompt(cep))
	if !res.Valid {
		logger.C(ctx).Warn().Err(res.Reason).Msg("creator analysis failed")
		return domain.Analysis{Summary: SummaryFailed}
	}
	return res.Value
}

// Predict suggests status lines from the stored analysis. Any failure returns Fallback.
func (s *Service) Predict(ctx context.Context, subject string, in domain.PredictInput) (domain.PredictOutput, error) {
	out := domain.PredictOutput{SuggestionID: s.id(), Suggestions: Fallback}
	if s.llm == nil {
		return out, nil
	}
	log := logger.C(ctx)

	analyzed := []byte(emptyDoc)
	if doc, err := s.Repo.Get(ctx, subject); err != nil {
		log.Warn().Err(err).Msg("creator profile lookup failed")
	} else if len(doc) > 0 {
		var p struct {
			Analyzed json.RawMessage `json:"analyzed"`
		}
		if json.Unmarshal(doc, &p) == nil && len(p.Analyzed) > 0 {
			analyzed = p.Analyzed
		}
	}

	res := llm.Ask[predicted](ctx, s.llm, predictPrompt(analyzed, strings.TrimSpace(in.Seed)))
	if !res.Valid {
		log.Warn().Err(res.Reason).Msg("creator prediction failed")
		return out, nil
	}
	if lines := clean(res.Value.Suggestions); len(lines) > 0 {
		out.Suggestions = lines
	}
	return out, nil
}

// clean trims, drops blanks and repeats, caps each line below MaxLineLen and keeps MaxSuggestions
func clean(lines []string) []string {
	out := pstrings.DistinctFold(lines, MaxSuggestions)
	for i, l := range out {
		out[i] = pstrings.Truncate(l, MaxLineLen-1)
	}
	return out
}
