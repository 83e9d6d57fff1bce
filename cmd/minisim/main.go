// Command minisim runs the opinion-dynamics benchmark engine: single runs,
// population sweeps, benchmark suites, and report generation.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "minisim",
		Short: "Deterministic opinion-dynamics benchmark simulator",
		Long: `minisim simulates opinion dynamics over three options: agents interact
pairwise and update preferences through a transition-matrix model driven by a
portable deterministic RNG. The same parameters produce the same results in
every implementation of the benchmark, so measured differences reflect
implementation quality, not algorithm drift.

Stdout carries only machine-readable output (JSON stats, sweep timings,
report tables); logs go to stderr.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log verbosity: debug, info, warn, or error")

	rootCmd.AddCommand(
		newRunCmd(),
		newSweepCmd(),
		newBenchCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	}))
	slog.SetDefault(logger)
}
