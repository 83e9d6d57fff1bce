package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/talgya/minisim/internal/agent"
	"github.com/talgya/minisim/internal/rng"
)

// Input validation sentinels. Bad input is rejected before any simulation
// work begins; check with errors.Is.
var (
	ErrAgentCount = errors.New("agent count must be positive")
	ErrIterations = errors.New("iteration count must be non-negative")
	ErrChunkSize  = errors.New("chunk size must be positive")
	ErrWorkers    = errors.New("worker count must be at least 1")
	ErrSweepRange = errors.New("sweep range must satisfy 2 <= min <= max")
)

// Params are the inputs to one simulation run.
type Params struct {
	Agents     int
	Iterations int
	Seed       int64
	ChunkSize  int
	Workers    int
}

func (p Params) validate() error {
	if p.Agents <= 0 {
		return fmt.Errorf("%w: got %d", ErrAgentCount, p.Agents)
	}
	if p.Iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrIterations, p.Iterations)
	}
	if p.ChunkSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrChunkSize, p.ChunkSize)
	}
	if p.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrWorkers, p.Workers)
	}
	return nil
}

// Run executes the full simulation: seed the population from the RNG, then
// per tick generate pairs, run the batch update, replace the population, and
// snapshot. Returns the last snapshot taken; with zero iterations that is
// the post-seeding snapshot.
//
// The generator is owned by the driver for seeding and voting only. Workers
// never touch it: the tick itself is deterministic pure computation, and
// sharing the stream would break cross-implementation parity.
func Run(p Params) (agent.Stats, error) {
	if err := p.validate(); err != nil {
		return agent.Stats{}, err
	}

	g := rng.New(p.Seed)
	pop := agent.SeedPopulation(p.Agents, g)
	stats := agent.Snapshot(pop, g)

	for tick := 0; tick < p.Iterations; tick++ {
		pairs := AllPairs(len(pop))

		// End-of-tick barrier: UpdateTick returns only when every batch has
		// completed, so tick t+1 always sees the fully aggregated population.
		next, err := UpdateTick(pop, pairs, p.ChunkSize, p.Workers)
		if err != nil {
			return agent.Stats{}, fmt.Errorf("tick %d: %w", tick, err)
		}
		pop = next
		stats = agent.Snapshot(pop, g)
	}

	return stats, nil
}

// Sweep runs the whole simulation once per population size from minAgents to
// maxAgents inclusive, each with a fresh identically-seeded generator, and
// emits the elapsed wall-clock milliseconds per run in increasing size
// order. Snapshots are discarded; this exists to characterize scaling cost.
func Sweep(minAgents, maxAgents int, p Params, emit func(elapsedMS int64)) error {
	if minAgents < 2 || maxAgents < minAgents {
		return fmt.Errorf("%w: got min %d, max %d", ErrSweepRange, minAgents, maxAgents)
	}

	for n := minAgents; n <= maxAgents; n++ {
		run := p
		run.Agents = n

		start := time.Now()
		if _, err := Run(run); err != nil {
			return fmt.Errorf("sweep at %d agents: %w", n, err)
		}
		elapsed := time.Since(start).Milliseconds()

		slog.Debug("sweep run complete", "agents", n, "elapsed_ms", elapsed)
		emit(elapsed)
	}
	return nil
}
