package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/NewsReport/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "newsreport",
	Short:         "Report popular articles, popular authors and days with many errors",
	Long:          `Reads the news database and prints the three most viewed articles, authors ranked by total views and the days on which more than 1% of requests failed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.Setup()
		if err != nil {
			return err
		}
		return app.Run(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the news schema and report views",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.Setup()
		if err != nil {
			return err
		}
		return app.Migrate(cfg.PG.URL, cfg.Migrations.Path, cfg.PG.ConnAttempts)
	},
}

func main() {
	rootCmd.AddCommand(migrateCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "newsreport:", err)
		stop()
		os.Exit(1)
	}
}
