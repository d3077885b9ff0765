package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"meanin/internal/core/tagging"
	"meanin/internal/platform/config"
	"meanin/internal/platform/logger"
	"meanin/internal/platform/store"
	"meanin/internal/platform/store/migrate"
	decoderepo "meanin/internal/services/api/decode/repo"
	tagsrepo "meanin/internal/services/tags/repo"
	tagssvc "meanin/internal/services/tags/service"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|version]",
	Short: "Apply, roll back or inspect the Postgres schema",
	Long: `Runs the embedded SQL migrations against SERVICE_PGSQL_DBURL.

  up      - apply every pending migration, seed the tag catalogue and,
            when SERVICE_CLICKHOUSE_ENABLED, create the decode_events table
  down    - roll back one migration
  version - print the current schema version`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "version"},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	action := "up"
	if len(args) == 1 {
		action = args[0]
	}
	cfg := store.ConfigFromEnv(config.New(), serviceName)
	log := logger.Named("migrate")

	var (
		st  migrate.Status
		err error
	)
	switch action {
	case "up":
		st, err = migrate.Up(cfg.PG.URL)
	case "down":
		st, err = migrate.Down(cfg.PG.URL)
	default:
		st, err = migrate.Version(cfg.PG.URL)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", action, err)
	}
	log.Info().Str("action", action).Uint("version", st.Version).Bool("dirty", st.Dirty).Msg("schema")
	fmt.Fprintf(cmd.OutOrStdout(), "version %d dirty=%t\n", st.Version, st.Dirty)

	if action != "up" {
		return nil
	}
	return seedSchema(cmd.Context(), cfg)
}

// seedSchema loads the tag catalogue and the analytics table
func seedSchema(ctx context.Context, cfg store.Config) error {
	s, err := store.Open(ctx, cfg, store.WithLogger(*logger.Named("store")))
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := tagssvc.New(s.PG, tagsrepo.NewPG(), tagging.MustLoad()).Seed(ctx); err != nil {
		return fmt.Errorf("seed tags: %w", err)
	}
	if s.CH != nil {
		if err := s.CH.Exec(ctx, decoderepo.EventsDDL); err != nil {
			return fmt.Errorf("clickhouse schema: %w", err)
		}
	}
	logger.Named("migrate").Info().Bool("clickhouse", s.CH != nil).Msg("catalogue seeded")
	return nil
}
