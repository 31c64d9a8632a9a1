package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitebuild/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the landing page grid whenever a blog post changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Close()

		ctx, cancel := app.GracefulShutdown(logger)
		defer cancel()

		if err := orch.Watch(ctx); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		return nil
	},
}
