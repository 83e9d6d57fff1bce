package main

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/talgya/minisim/internal/engine"
)

var statsJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func newRunCmd() *cobra.Command {
	var (
		agents     int
		iterations int
		seed       int64
		chunkSize  int
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and print the final stats as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := engine.Run(engine.Params{
				Agents:     agents,
				Iterations: iterations,
				Seed:       seed,
				ChunkSize:  chunkSize,
				Workers:    workers,
			})
			if err != nil {
				return err
			}

			out, err := statsJSON.Marshal(stats)
			if err != nil {
				return fmt.Errorf("encode stats: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().IntVarP(&agents, "agents", "a", 0, "number of agents (> 0)")
	cmd.Flags().IntVarP(&iterations, "iterations", "i", 0, "number of ticks (>= 0)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 42, "RNG seed")
	cmd.Flags().IntVarP(&chunkSize, "chunk-size", "c", 256, "pairs per batch (> 0)")
	cmd.Flags().IntVarP(&workers, "workers", "p", 1, "worker goroutines for the batch step (>= 1)")
	cmd.MarkFlagRequired("agents")
	cmd.MarkFlagRequired("iterations")

	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		from       int
		to         int
		iterations int
		seed       int64
		chunkSize  int
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the simulation across a population range, printing elapsed ms per size",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := engine.Params{
				Iterations: iterations,
				Seed:       seed,
				ChunkSize:  chunkSize,
				Workers:    workers,
			}
			return engine.Sweep(from, to, params, func(ms int64) {
				fmt.Fprintln(cmd.OutOrStdout(), ms)
			})
		},
	}

	cmd.Flags().IntVar(&from, "from", 2, "smallest population size (>= 2)")
	cmd.Flags().IntVar(&to, "to", 0, "largest population size (>= from)")
	cmd.Flags().IntVarP(&iterations, "iterations", "i", 0, "number of ticks per run (>= 0)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 42, "RNG seed, re-used for every size")
	cmd.Flags().IntVarP(&chunkSize, "chunk-size", "c", 256, "pairs per batch (> 0)")
	cmd.Flags().IntVarP(&workers, "workers", "p", 1, "worker goroutines for the batch step (>= 1)")
	cmd.MarkFlagRequired("to")

	return cmd
}
