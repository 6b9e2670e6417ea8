package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vukan322/devdash/internal/core"
	"github.com/vukan322/devdash/internal/dashboard"
	"github.com/vukan322/devdash/internal/lib/clock"
	"github.com/vukan322/devdash/internal/lib/config"
	"github.com/vukan322/devdash/internal/providers"
	"github.com/vukan322/devdash/internal/providers/demo"
	githubprovider "github.com/vukan322/devdash/internal/providers/github"
	leetcodeprovider "github.com/vukan322/devdash/internal/providers/leetcode"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "devdash",
		Short:         "Developer dashboard aggregating GitHub and LeetCode activity",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (falls back to CONFIG_PATH)")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newFetchCmd(&configPath))
	return root
}

func loadConfig(configPath string) (*config.Config, error) {
	return config.Load(config.ResolvePath(configPath))
}

func setupLogger(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger
	switch env {
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
	return log
}

func newController(cfg *config.Config, log *slog.Logger, useDemo bool) (*dashboard.Controller, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	clk := clock.Local{Location: loc}

	var (
		gh providers.Provider[core.GithubStats]
		lc providers.Provider[core.LeetcodeStats]
	)

	if useDemo {
		log.Info("using demo providers")
		gh = demo.NewGitHub(clk)
		lc = demo.NewLeetCode(clk)
	} else {
		if cfg.Upstream.GitHubToken == "" {
			log.Warn("DEVDASH_GITHUB_TOKEN not set, using unauthenticated GitHub API (rate limited)")
		}
		gh = githubprovider.New(githubprovider.Options{
			BaseURL:   cfg.Upstream.GitHubBaseURL,
			UserAgent: cfg.Upstream.UserAgent,
			Token:     cfg.Upstream.GitHubToken,
			Timeout:   cfg.Upstream.Timeout,
			Clock:     clk,
		})
		lc = leetcodeprovider.New(leetcodeprovider.Options{
			Endpoint:  cfg.Upstream.LeetCodeURL,
			UserAgent: cfg.Upstream.UserAgent,
			Timeout:   cfg.Upstream.Timeout,
			Clock:     clk,
		})
	}

	return dashboard.New(log, gh, lc, clk, cfg.RefreshTimeout), nil
}
