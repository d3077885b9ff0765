package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"meanin/internal/adapters/llm"
	"meanin/internal/platform/config"
)

var checkAICmd = &cobra.Command{
	Use:   "check-ai",
	Short: "Check that the completion backend answers with valid JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := llm.New(cmd.Context(), llm.OptionsFromEnv(config.New()))
		if err != nil {
			return fmt.Errorf("llm client: %w", err)
		}
		if err := checkAI(cmd.Context(), c); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "completion backend reachable")
		return nil
	},
}

type pong struct {
	Status string `json:"status" validate:"eq=ok"`
}

func checkAI(ctx context.Context, c llm.Completer) error {
	if c == nil {
		return errors.New("LLM_API_KEY is not set")
	}
	res := llm.Ask[pong](ctx, c, `Return JSON only: {"status":"ok"}`)
	if !res.Valid {
		return fmt.Errorf("completion check failed: %w", res.Reason)
	}
	return nil
}
