package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/talgya/minisim/internal/config"
	"github.com/talgya/minisim/internal/persistence"
)

// Harness runs every scenario in a suite through the runner and records the
// resulting samples.
type Harness struct {
	Runner *Runner
	Store  *persistence.DB

	// Out, when set, receives one "elapsed_ms,max_memory_kb,avg_cpu_percent"
	// line per successful invocation, for callers that consume metrics as a
	// stream rather than from the store.
	Out io.Writer
}

// RunSuite executes each scenario the configured number of times. A failed
// invocation is logged and skipped; cancellation aborts the suite.
func (h *Harness) RunSuite(ctx context.Context, suite *config.Suite) error {
	for _, sc := range suite.Scenarios {
		slog.Info("benchmarking scenario",
			"scenario", sc.Name,
			"agents", sc.Agents,
			"iterations", sc.Iterations,
			"workers", sc.Workers,
			"repeats", sc.Repeats,
		)

		for rep := 0; rep < sc.Repeats; rep++ {
			sample, err := h.Runner.Run(ctx, sc)
			if err != nil {
				if ctx.Err() != nil {
					return fmt.Errorf("suite canceled: %w", ctx.Err())
				}
				slog.Warn("sample failed",
					"scenario", sc.Name, "repeat", rep, "error", err)
				continue
			}

			record := persistence.Sample{
				Scenario:      sc.Name,
				Agents:        sc.Agents,
				Iterations:    sc.Iterations,
				Seed:          sc.Seed,
				ChunkSize:     sc.ChunkSize,
				Workers:       sc.Workers,
				WalltimeMS:    sample.ElapsedMS,
				MaxMemoryKB:   sample.MaxMemoryKB,
				AvgCPUPercent: sample.AvgCPUPercent,
			}
			if err := h.Store.InsertSample(record); err != nil {
				return fmt.Errorf("record sample: %w", err)
			}

			if h.Out != nil {
				fmt.Fprintf(h.Out, "%d,%.0f,%.1f\n",
					sample.ElapsedMS, sample.MaxMemoryKB, sample.AvgCPUPercent)
			}

			slog.Info("sample recorded",
				"scenario", sc.Name,
				"repeat", rep,
				"walltime_ms", sample.ElapsedMS,
				"max_memory_kb", sample.MaxMemoryKB,
				"avg_cpu_percent", fmt.Sprintf("%.1f", sample.AvgCPUPercent),
			)
		}
	}
	return nil
}
