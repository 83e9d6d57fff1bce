// Package model implements the pairwise transition-matrix interaction: two
// agents "talk" and each walks away with an updated preference triple.
//
// Everything here is pure computation over value copies, so Talk may run
// concurrently from any number of workers.
package model

import "github.com/talgya/minisim/internal/agent"

// uniformTriple is the fallback when a normalization hits non-positive mass.
var uniformTriple = [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}

// Talk runs one interaction between alice and bob against their current
// values and returns the two post-interaction preference triples. Each
// component is rounded to 3 decimals exactly once, before the final
// normalization; that ordering is part of the reproducibility contract.
func Talk(alice, bob agent.Agent) (alicePrefs, bobPrefs [3]float64) {
	// Joint 3x3 preference mass, flattened row-major.
	var v [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[i*3+j] = alice.Preferences[i] * bob.Preferences[j]
		}
	}

	t := transitionMatrix(alice, bob)

	// r = v . T over the 9 joint states.
	var r [9]float64
	for j := 0; j < 9; j++ {
		var sum float64
		for k := 0; k < 9; k++ {
			sum += v[k] * t[k][j]
		}
		r[j] = sum
	}

	// Reshaped 3x3: alice takes row sums, bob takes column sums.
	var aliceVec, bobVec [3]float64
	for i := 0; i < 3; i++ {
		aliceVec[i] = agent.Round3(r[i*3] + r[i*3+1] + r[i*3+2])
		bobVec[i] = agent.Round3(r[i] + r[3+i] + r[6+i])
	}

	return normalizeTriple(aliceVec), normalizeTriple(bobVec)
}

// transitionMatrix builds the 9x9 transition over joint option states.
// States not covered by the nine disagreement rules are no-ops (identity).
func transitionMatrix(alice, bob agent.Agent) [9][9]float64 {
	aliceProbs := choiceProbabilities(alice.Resistance, bob.Persuasion)
	bobProbs := choiceProbabilities(bob.Resistance, alice.Persuasion)

	var t [9][9]float64
	for i := 0; i < 9; i++ {
		t[i][i] = 1
	}

	applyDisagreements(&t, 1, 2, aliceProbs, bobProbs)
	// The reference stream was generated with bob's probabilities in both
	// operand positions for the (2,1) state; parity wins over symmetry.
	applyDisagreements(&t, 2, 1, bobProbs, bobProbs)

	return t
}

// applyDisagreements fills the transition row for joint state (va, vb): both
// keep, one adopts the partner's option, one defects to the third option,
// both defect, and the mixed cases in between.
func applyDisagreements(t *[9][9]float64, va, vb int, a, b [3]float64) {
	row := locate(va, vb)
	t[row][locate(va, vb)] = a[0] * b[0]
	t[row][locate(va, va)] = a[0] * b[1]
	t[row][locate(vb, vb)] = a[1] * b[0]
	t[row][locate(vb, va)] = a[1] * b[1]
	t[row][locate(va, 3)] = a[0] * b[2]
	t[row][locate(3, vb)] = a[2] * b[0]
	t[row][locate(3, 3)] = a[2] * b[2]
	t[row][locate(vb, 3)] = a[1] * b[2]
	t[row][locate(3, va)] = a[2] * b[1]
}

// locate maps a joint option pair (1-based) to its flattened state index.
func locate(va, vb int) int {
	return (va-1)*3 + (vb - 1)
}

// choiceProbabilities derives the keep/change/alt triple for an agent facing
// a partner with the given persuasion, normalized to sum to 1.
func choiceProbabilities(resistance, persuasion float64) [3]float64 {
	keep := resistance * (1 - persuasion)
	change := (1 - resistance) * persuasion
	alt := resistance * persuasion
	return normalizeTriple([3]float64{keep, change, alt})
}

// normalizeTriple scales the triple to sum to 1, substituting the uniform
// triple when the mass is degenerate.
func normalizeTriple(t [3]float64) [3]float64 {
	total := t[0] + t[1] + t[2]
	if total <= 0 {
		return uniformTriple
	}
	return [3]float64{t[0] / total, t[1] / total, t[2] / total}
}
