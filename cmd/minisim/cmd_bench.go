package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/minisim/internal/analysis"
	"github.com/talgya/minisim/internal/bench"
	"github.com/talgya/minisim/internal/config"
	"github.com/talgya/minisim/internal/persistence"
)

func newBenchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a benchmark suite and record samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(suite.StorePath), 0o755); err != nil {
				return fmt.Errorf("create store directory: %w", err)
			}
			store, err := persistence.Open(suite.StorePath)
			if err != nil {
				return err
			}
			defer store.Close()

			command := suite.EngineCommand
			if len(command) == 0 {
				self, err := os.Executable()
				if err != nil {
					return fmt.Errorf("locate own binary: %w", err)
				}
				command = []string{self}
			}

			harness := &bench.Harness{
				Runner: &bench.Runner{
					Command:        command,
					SampleInterval: time.Duration(suite.SampleIntervalMS) * time.Millisecond,
				},
				Store: store,
				Out:   cmd.OutOrStdout(),
			}
			return harness.RunSuite(cmd.Context(), suite)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bench.yaml", "benchmark suite YAML file")

	return cmd
}

func newReportCmd() *cobra.Command {
	var (
		storePath string
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize recorded samples: medians with 95% bootstrap confidence intervals",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := persistence.Open(storePath)
			if err != nil {
				return err
			}
			defer store.Close()

			groups, err := store.SamplesByScenario()
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				return fmt.Errorf("no samples recorded in %s", storePath)
			}

			summaries := analysis.Summarize(groups, seed)
			fmt.Fprint(cmd.OutOrStdout(), analysis.RenderTable(summaries))
			return nil
		},
	}

	cmd.Flags().StringVar(&storePath, "store", config.DefaultStorePath, "SQLite sample store")
	cmd.Flags().Int64Var(&seed, "seed", 42, "bootstrap resampling seed")

	return cmd
}
