package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"meanin/internal/adapters/feeds"
	"meanin/internal/adapters/llm"
	"meanin/internal/platform/config"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/logger"
	pstrings "meanin/internal/platform/strings"
)

// fallbackLines are posted when neither a feed nor the completion backend gives texts
var fallbackLines = []string{
	"Moon mission livestream had everyone up past midnight.",
	"NYC just banned dark stores in residential blocks, shoppers are divided.",
	"The new single dropped at midnight and TikTok already has a dance for it.",
	"AI summary news popups are rolling out in mobile browsers this week.",
	"Everyone is screenshotting their screen time wrap-ups again.",
	"Storm alerts turned the city sky orange, no filter needed.",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Post a handful of status lines through the public API",
	Long: `Creates posts through POST /api/v1/posts so the full pipeline runs
(keyword, meaning, tag and card).

Texts come from --feed when given, otherwise from the completion backend,
otherwise from a fixed list of trending-style lines.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().String("base-url", "http://localhost:4000", "API origin")
	seedCmd.Flags().Int("count", 6, "number of posts")
	seedCmd.Flags().String("feed", "", "RSS or Atom feed to take titles from")
}

// headlines is the completion reply shape
type headlines struct {
	Lines []string `json:"lines" validate:"min=1,dive,required,max=160"`
}

func headlinePrompt(n int) string {
	return fmt.Sprintf(`Write %d short social status lines about things trending today.
Each under 140 characters, casual tone, no hashtags.
Return JSON only: {"lines": ["..."]}`, n)
}

// seeder posts texts to a running API
type seeder struct {
	base   string
	client *http.Client
	llm    llm.Completer
	feeds  *feeds.Reader
}

type seeded struct {
	Slug     string `json:"slug"`
	ShareURL string `json:"shareUrl"`
}

// texts picks up to n lines: feed titles, then completion, then fallbackLines
func (s *seeder) texts(ctx context.Context, feedURL string, n int) ([]string, string) {
	log := logger.C(ctx)
	if feedURL != "" && s.feeds != nil {
		got, err := s.feeds.Titles(ctx, feedURL, n)
		if err == nil && len(got) > 0 {
			return got, "feed"
		}
		log.Warn().Err(err).Str("feed", feedURL).Msg("feed unusable, falling back")
	}
	if res := llm.Ask[headlines](ctx, s.llm, headlinePrompt(n)); res.Valid {
		if lines := pstrings.DistinctFold(res.Value.Lines, n); len(lines) > 0 {
			return lines, "llm"
		}
	} else if s.llm != nil {
		log.Warn().Err(res.Reason).Msg("completion unusable, falling back")
	}
	if n > len(fallbackLines) {
		n = len(fallbackLines)
	}
	return fallbackLines[:n], "fallback"
}

func (s *seeder) post(ctx context.Context, text string) (seeded, error) {
	body, err := json.Marshal(map[string]string{"text": text, "platform": "whatsapp-status"})
	if err != nil {
		return seeded{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.base+"/api/v1/posts", bytes.NewReader(body))
	if err != nil {
		return seeded{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return seeded{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "post %q", text)
	}
	defer resp.Body.Close()

	var env struct {
		Error string `json:"error"`
		Data  seeded `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return seeded{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "decode response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return seeded{}, perr.Newf(perr.ErrorCodeUnknown, "api returned %d: %s", resp.StatusCode, env.Error)
	}
	return env.Data, nil
}

// run posts every text and returns how many succeeded
func (s *seeder) run(ctx context.Context, texts []string) int {
	log := logger.C(ctx)
	ok := 0
	for _, t := range texts {
		out, err := s.post(ctx, t)
		if err != nil {
			log.Error().Err(err).Msg("seed post failed")
			continue
		}
		ok++
		log.Info().Str("slug", out.Slug).Str("share_url", out.ShareURL).Msg("seeded")
	}
	return ok
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	base, _ := cmd.Flags().GetString("base-url")
	count, _ := cmd.Flags().GetInt("count")
	feedURL, _ := cmd.Flags().GetString("feed")
	if count <= 0 {
		return fmt.Errorf("--count must be positive")
	}

	completer, err := llm.New(ctx, llm.OptionsFromEnv(config.New()))
	if err != nil {
		return fmt.Errorf("llm client: %w", err)
	}
	s := &seeder{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 60 * time.Second},
		llm:    completer,
		feeds:  feeds.New(),
	}

	texts, source := s.texts(ctx, feedURL, count)
	logger.Named("seed").Info().Str("source", source).Int("count", len(texts)).Msg("seeding")
	if ok := s.run(ctx, texts); ok < len(texts) {
		return fmt.Errorf("seeded %d of %d posts", ok, len(texts))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts\n", len(texts))
	return nil
}
