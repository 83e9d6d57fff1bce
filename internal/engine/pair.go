// Package engine drives the simulation: pairing generation, the batched
// interaction step with optional worker fan-out, and the tick loop.
package engine

// Pair is an unordered agent index pair, I < J. Indices are identities into
// the population for the lifetime of a run.
type Pair struct {
	I int
	J int
}

// AllPairs returns every unordered pair over n agents in row-major order:
// all partners for agent 0, then agent 1, and so on. Deterministic and
// total. The batch engine accepts any pair sequence, so an alternate
// topology generator can substitute without touching the update path.
func AllPairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}
	return pairs
}
