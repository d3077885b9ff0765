package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meanin/internal/adapters/llm"
	"meanin/internal/modkit"
	"meanin/internal/platform/config"
	"meanin/internal/platform/logger"
	"meanin/internal/platform/store"
	autotagmod "meanin/internal/services/autotag/module"
)

var autotagCmd = &cobra.Command{
	Use:   "autotag",
	Short: "Tag untagged posts and backfill missing tag rows",
	Long: `Tags the newest untagged posts: trigger words first, then the completion
backend (which may coin a new tag), then "general". Afterwards every tag slug
used by a post gets a tags row.

With --every the pass repeats on that interval until interrupted.`,
	RunE: runAutotag,
}

func init() {
	opt := autotagmod.FromConfig(config.New())
	autotagCmd.Flags().Int("limit", opt.Limit, "posts per pass")
	autotagCmd.Flags().Duration("every", opt.Every, "repeat interval, 0 runs once")
}

func runAutotag(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	root := config.New()

	opt := autotagmod.FromConfig(root)
	opt.Limit, _ = cmd.Flags().GetInt("limit")
	opt.Every, _ = cmd.Flags().GetDuration("every")

	s, err := store.Open(ctx, store.ConfigFromEnv(root, serviceName), store.WithLogger(*logger.Named("store")))
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	completer, err := llm.New(ctx, llm.OptionsFromEnv(root))
	if err != nil {
		return fmt.Errorf("llm client: %w", err)
	}

	w := autotagmod.New(modkit.Deps{Cfg: root, PG: s.PG, LLM: completer}, nil, opt)
	return w.Run(ctx)
}
