package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitebuild/internal/app"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the landing page grid from blog post metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Close()

		ctx, cancel := app.GracefulShutdown(logger)
		defer cancel()

		stats, err := orch.UpdateIndex(ctx)
		if err != nil {
			return fmt.Errorf("index: %w", err)
		}

		if !stats.RegionFound {
			fmt.Println("Grid section not found, index left unchanged.")
			return nil
		}
		fmt.Printf("Featured: %s\n", stats.Featured)
		fmt.Printf("Recent posts: %d of %d\n", stats.Recent, stats.Posts)
		if stats.Written {
			fmt.Println("Index page updated.")
		} else {
			fmt.Println("Index page already up to date.")
		}
		return nil
	},
}
