package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitebuild/internal/app"
)

var buildCmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Inject header/footer into pages and feature the latest post",
	Long: `Replace {{HEADER}} and {{FOOTER}} placeholders with templates/header.html and templates/footer.html.

Without arguments every .html file under the site root is processed (templates and node_modules are excluded).
The landing page always gets its latest card featured, even without placeholders.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Close()

		ctx, cancel := app.GracefulShutdown(logger)
		defer cancel()

		stats, err := orch.Build(ctx, args)
		if err != nil {
			return fmt.Errorf("build: %w", err)
		}

		fmt.Printf("Build complete: %d processed (%d unchanged), %d skipped, %d missing, %d errors\n",
			stats.Processed, stats.Unchanged, stats.Skipped, stats.Missing, stats.Errors)
		return nil
	},
}
