package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var flagListingOutput string

var listingCmd = &cobra.Command{
	Use:   "listing",
	Short: "Generate per-category article listing markup",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Close()

		var w io.Writer = os.Stdout
		if flagListingOutput != "" {
			f, err := os.Create(flagListingOutput)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := orch.Listing(w); err != nil {
			return fmt.Errorf("listing: %w", err)
		}
		return nil
	},
}

func init() {
	listingCmd.Flags().StringVarP(&flagListingOutput, "output", "o", "", "write markup to file instead of stdout")
}
