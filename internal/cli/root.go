// Package cli implements the bolao command line: static page builds,
// stats inspection and pool creation from the terminal.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bolao/landing/internal/backend"
	"github.com/bolao/landing/internal/config"
	"github.com/bolao/landing/internal/logging"
	"github.com/bolao/landing/internal/metrics"
	"github.com/bolao/landing/internal/service"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

func Execute() error {
	return newRootCmd().Execute()
}

// app holds what commands talking to the backend share. It is wired
// lazily so "version" works without configuration.
type app struct {
	verbose bool

	cfg    *config.Config
	api    *backend.Client
	logger *slog.Logger
}

func (a *app) wire(cmd *cobra.Command) error {
	if a.api != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	logger := logging.New(cmd.ErrOrStderr(), level, "text")

	api, err := backend.NewClient(cfg.APIBaseURL, backend.NewHTTPClient(cfg.APITimeout))
	if err != nil {
		return fmt.Errorf("configure backend: %w", err)
	}

	a.cfg, a.api, a.logger = cfg, api, logger
	return nil
}

func (a *app) statsLoader() *service.StatsLoader {
	return service.NewStatsLoader(a.api, metrics.NewNoop(), a.logger)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bolao",
		Short:         "Bolão landing page tooling",
		Long:          "bolao builds the bolão landing page from the live backend figures, prints those figures, and creates pools from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log backend calls to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newBuildCmd(a),
		newStatsCmd(a),
		newCreatePoolCmd(a),
	)

	return rootCmd
}
