// Package main provides the CLI entrypoint for the portfolio server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container
	_ "time/tzdata"                            // Time zone data for scratch container

	githubadapter "github.com/pecoelho01/portfolio/internal/adapter/driven/github"
	"github.com/pecoelho01/portfolio/internal/adapter/driven/overrides"
	"github.com/pecoelho01/portfolio/internal/application"
	"github.com/pecoelho01/portfolio/internal/config"
	"github.com/pecoelho01/portfolio/internal/domain/model"
)

// Global configuration and state
var (
	cfg     *config.Config
	logger  *slog.Logger
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio site backed by the GitHub repository list",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()

			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger.Debug("config loaded",
				"github_account", cfg.GitHubAccount,
				"github_api_url", cfg.GitHubAPIURL,
				"listen_addr", cfg.ListenAddr,
				"db_path", cfg.DBPath,
				"overrides_path", cfg.OverridesPath,
				"timezone", cfg.Location,
			)
			return nil
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(serveCmd(), exportCmd(), projectsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// newFeed wires the GitHub client and the override table into a FeedService.
func newFeed() (*application.FeedService, *overrides.Store, error) {
	client, err := githubadapter.NewClient(cfg.GitHubAPIURL)
	if err != nil {
		return nil, nil, err
	}

	store, err := overrides.NewStore(cfg.OverridesPath, logger)
	if err != nil {
		return nil, nil, err
	}

	feed := application.NewFeedService(client, store, cfg.GitHubAccount, application.FeedOptions{
		Limits: model.LimitDefaults{
			Landing: cfg.LandingLimit,
			Other:   cfg.DefaultLimit,
		},
		Location: cfg.Location,
	}, logger)

	return feed, store, nil
}
