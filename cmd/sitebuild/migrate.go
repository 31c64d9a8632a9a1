package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitebuild/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Convert published posts from a WordPress export into HTML files",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Close()

		ctx, cancel := app.GracefulShutdown(logger)
		defer cancel()

		stats, err := orch.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		fmt.Printf("Migration complete: %d converted, %d skipped, %d oversized, %d errors\n",
			stats.Converted, stats.Skipped, stats.Oversized, stats.Errors)
		return nil
	},
}
