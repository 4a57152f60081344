package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/sigcast"
	"github.com/aretw0/sigcast/internal/logging"
	"github.com/aretw0/sigcast/internal/presentation/tui"
	"github.com/aretw0/sigcast/pkg/observability"
)

var rootCmd = &cobra.Command{
	Use:           "sigcast",
	Short:         "Sigcast reads, displays and traces typed signal values",
	Long:          `Sigcast exposes the signal cast registry on the command line: parse vector, matrix and scalar literals, load signal bootstrap files and list registered types.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
}

// newEngine builds an engine from the persistent flags. The returned
// prometheus registry collects the engine metrics.
func newEngine(cmd *cobra.Command) (*sigcast.Engine, *prometheus.Registry, error) {
	level, _ := cmd.Flags().GetString("log-level")
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), logging.ParseLevel(level))

	promReg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(promReg)
	if err != nil {
		return nil, nil, err
	}

	eng, err := sigcast.New(sigcast.WithLogger(logger), sigcast.WithMetrics(metrics))
	if err != nil {
		return nil, nil, err
	}
	return eng, promReg, nil
}
