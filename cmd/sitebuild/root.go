package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitebuild/internal/app"
	"sitebuild/internal/checksum"
	"sitebuild/internal/config"
	"sitebuild/internal/observability"
	"sitebuild/internal/storage/fsstore"
)

var (
	flagConfig string
	flagRoot   string
)

var rootCmd = &cobra.Command{
	Use:           "sitebuild",
	Short:         "Static site build toolkit",
	Long:          "sitebuild injects shared header/footer fragments, features the latest blog post card, regenerates listings, watches blog posts and migrates WordPress exports.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "site root directory (overrides site.root)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(listingCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sitebuild %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// setup загружает конфиг и собирает оркестратор
func setup() (*app.Orchestrator, *observability.Logger, error) {
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if flagRoot != "" {
		cfg.Site.Root = flagRoot
	}

	logger := observability.NewLogger(cfg.Observability.LogPath, cfg.Observability.LogLevel)
	store := fsstore.NewRepository(logger)
	orch := app.NewOrchestrator(cfg, logger, store, checksum.NewGenerator())
	return orch, logger, nil
}
