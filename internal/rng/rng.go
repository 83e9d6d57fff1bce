// Package rng provides the portable 64-bit linear congruential generator
// shared by every implementation of the benchmark. The constants are part of
// the cross-implementation contract: every engine must produce the same
// uniform stream for the same seed, bit for bit.
package rng

// Knuth MMIX multiplier and increment.
const (
	multiplier uint64 = 6364136223846793005
	increment  uint64 = 1442695040888963407
)

// twoPow64 is 2^64, the divisor mapping states onto [0, 1).
const twoPow64 float64 = 1 << 64

// LCG is a deterministic pseudo-random generator. It is not safe for
// concurrent use; callers needing independent streams hold separate
// instances. There is no save/restore beyond re-seeding.
type LCG struct {
	state uint64
}

// New creates a generator from an integer seed. Negative seeds wrap to the
// equivalent positive state mod 2^64, matching the reference semantics.
func New(seed int64) *LCG {
	return &LCG{state: uint64(seed)}
}

// Next advances the state and returns it. Overflow is well-defined modular
// arithmetic, not a fault.
func (g *LCG) Next() uint64 {
	g.state = g.state*multiplier + increment
	return g.state
}

// Uniform draws the next value in [0, 1).
func (g *LCG) Uniform() float64 {
	return float64(g.Next()) / twoPow64
}
