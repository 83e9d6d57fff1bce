// Package agent provides the opinion-dynamics agent model and the per-tick
// population statistics snapshot.
package agent

import (
	"math"

	"github.com/talgya/minisim/internal/rng"
)

// Agent is one member of the population. Values are immutable per tick: the
// engine replaces agents wholesale rather than mutating them in place.
type Agent struct {
	// Resistance is the propensity to keep the current dominant option (rho).
	Resistance float64 `json:"resistance"`

	// Persuasion is the propensity to shift a partner's opinion (pi).
	Persuasion float64 `json:"persuasion"`

	// Preferences is probability mass over the three options. Non-negative,
	// sums to 1.
	Preferences [3]float64 `json:"preferences"`
}

// SeedPopulation draws n agents from the generator in index order, three
// draws per agent: resistance, persuasion, then the initial first-option
// preference p. Preferences start as [p, 1-p, 0]. The draw order is part of
// the reproducibility contract.
func SeedPopulation(n int, g *rng.LCG) []Agent {
	pop := make([]Agent, n)
	for i := range pop {
		rho := g.Uniform()
		pi := g.Uniform()
		p := g.Uniform()
		pop[i] = Agent{
			Resistance:  rho,
			Persuasion:  pi,
			Preferences: [3]float64{p, 1 - p, 0},
		}
	}
	return pop
}

// Round3 rounds to 3 decimal places, half away from zero. Applied at the
// fixed points the model defines so different floating-point paths converge
// on identical reported values.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
