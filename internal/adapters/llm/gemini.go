package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"meanin/internal/platform/config"
	"meanin/internal/platform/logger"

	"google.golang.org/genai"
)

// Options configures the Gemini completer
type Options struct {
	APIKey string
	// Model is tried first, Fallbacks only when Model is rate limited or missing
	Model     string
	Fallbacks []string
	Timeout   time.Duration
}

// OptionsFromEnv reads LLM_* keys
func OptionsFromEnv(root config.Conf) Options {
	c := root.Prefix("LLM_")
	return Options{
		APIKey:    c.MayString("API_KEY", ""),
		Model:     c.MayString("MODEL", "gemini-2.5-flash-lite"),
		Fallbacks: c.MayCSV("FALLBACK_MODELS", nil),
		Timeout:   c.MayDuration("TIMEOUT", 20*time.Second),
	}
}

// generator is the slice of *genai.Models the completer uses
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini completes prompts in JSON mode
type Gemini struct {
	gen     generator
	models  []string
	timeout time.Duration
	log     logger.Logger
}

// New returns nil without error when no API key is set, which disables completion
func New(ctx context.Context, opt Options) (Completer, error) {
	if opt.APIKey == "" {
		logger.Named("llm").Warn().Msg("LLM_API_KEY not set, completion disabled")
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: opt.APIKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return newGemini(client.Models, opt), nil
}

func newGemini(gen generator, opt Options) *Gemini {
	models := append([]string{opt.Model}, opt.Fallbacks...)
	if opt.Timeout <= 0 {
		opt.Timeout = 20 * time.Second
	}
	return &Gemini{gen: gen, models: models, timeout: opt.Timeout, log: *logger.Named("llm")}
}

// Complete sends prompt once per model until one answers. Only rate limit or
// unknown model errors move on to the next model.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temp := float32(0.4)
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      &temp,
	}

	var lastErr error
	for _, model := range g.models {
		if model == "" {
			continue
		}
		resp, err := g.gen.GenerateContent(ctx, model, genai.Text(prompt), cfg)
		if err != nil {
			if switchable(err) {
				g.log.Debug().Err(err).Str("model", model).Msg("model unavailable, trying next")
				lastErr = err
				continue
			}
			return "", err
		}
		if text := replyText(resp); text != "" {
			return text, nil
		}
		lastErr = fmt.Errorf("model %s returned no text", model)
	}
	if lastErr == nil {
		lastErr = errors.New("no model configured")
	}
	return "", fmt.Errorf("llm: all models failed: %w", lastErr)
}

func replyText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

func switchable(err error) bool {
	s := strings.ToLower(err.Error())
	for _, needle := range []string{"429", "rate limit", "exhausted", "404", "not found"} {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
