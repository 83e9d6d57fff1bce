// Package bench launches engine runs as subprocesses and measures wall time
// and resource usage, producing the per-invocation samples the
// cross-implementation comparison is built on. The engine itself performs no
// self-measurement; everything observable lives here.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"time"

	"github.com/talgya/minisim/internal/config"
)

// ErrEmptyCommand is returned when a runner has no engine command to launch.
var ErrEmptyCommand = errors.New("engine command must not be empty")

// Sample is one measured engine invocation.
type Sample struct {
	ElapsedMS     int64
	MaxMemoryKB   float64
	AvgCPUPercent float64
}

// Runner launches the engine binary with scenario parameters as flags and
// monitors it while it runs.
type Runner struct {
	// Command is the argv prefix for the engine, e.g. ["./minisim"]. The
	// "run" subcommand and scenario flags are appended per invocation.
	Command []string

	// SampleInterval is how often the child's /proc entries are read.
	SampleInterval time.Duration
}

// Run executes one scenario to completion and returns its sample. A child
// killed by context cancellation is a failed sample, reported as an error;
// the harness decides whether to continue the suite.
func (r *Runner) Run(ctx context.Context, sc config.Scenario) (Sample, error) {
	if len(r.Command) == 0 {
		return Sample{}, ErrEmptyCommand
	}

	args := append([]string{}, r.Command[1:]...)
	args = append(args, "run",
		"--agents", strconv.Itoa(sc.Agents),
		"--iterations", strconv.Itoa(sc.Iterations),
		"--seed", strconv.FormatInt(sc.Seed, 10),
		"--chunk-size", strconv.Itoa(sc.ChunkSize),
		"--workers", strconv.Itoa(sc.Workers),
	)

	cmd := exec.CommandContext(ctx, r.Command[0], args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Sample{}, fmt.Errorf("start engine: %w", err)
	}

	interval := r.SampleInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	stop := make(chan struct{})
	resCh := make(chan Resources, 1)
	go func() {
		resCh <- monitor(cmd.Process.Pid, interval, stop)
	}()

	waitErr := cmd.Wait()
	elapsed := time.Since(start)
	close(stop)
	res := <-resCh

	if waitErr != nil {
		if ctx.Err() != nil {
			return Sample{}, fmt.Errorf("engine canceled: %w", ctx.Err())
		}
		return Sample{}, fmt.Errorf("engine exited: %w", waitErr)
	}

	return Sample{
		ElapsedMS:     elapsed.Milliseconds(),
		MaxMemoryKB:   res.MaxMemoryKB,
		AvgCPUPercent: res.AvgCPUPercent,
	}, nil
}
