// Command meanin-ctl runs maintenance tasks against the MeanIn store and API
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"meanin/internal/core/version"
	"meanin/internal/platform/logger"
)

const serviceName = "meanin-ctl"

var rootCmd = &cobra.Command{
	Use:   "meanin-ctl",
	Short: "MeanIn maintenance tasks",
	Long: `Maintenance tasks for MeanIn.

Available subcommands:
  migrate  - Apply, roll back or inspect the Postgres schema
  autotag  - Tag untagged posts and backfill missing tag rows
  seed     - Post a handful of status lines through the public API
  check-ai - Verify the completion backend answers`,
	SilenceUsage: true,
	Version:      version.As(serviceName).Version,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.As(serviceName))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, autotagCmd, seedCmd, checkAICmd, versionCmd)
}

func main() {
	lopt := logger.FromEnv()
	if lopt.Service == "" {
		lopt.Service = serviceName
	}
	logger.Init(lopt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
