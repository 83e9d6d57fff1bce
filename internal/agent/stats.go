package agent

import "github.com/talgya/minisim/internal/rng"

// Stats is the reportable per-tick population summary. It is derived once
// per tick and never mutated after construction.
type Stats struct {
	TotalAgents        int          `json:"total_agents"`
	VoteResults        map[int]int  `json:"vote_results"`
	AveragePreferences [3]float64   `json:"average_preferences"`
	AgentPreferences   [][3]float64 `json:"agent_preferences"`
}

// Snapshot summarizes a population: per-agent preferences rounded to 3
// decimals, their component-wise mean, and a sampled vote tally. The tally
// consumes one uniform draw per agent in index order from the driver's
// generator; it is informational and never feeds back into interactions.
func Snapshot(pop []Agent, g *rng.LCG) Stats {
	prefs := make([][3]float64, len(pop))
	for i, a := range pop {
		prefs[i] = [3]float64{
			Round3(a.Preferences[0]),
			Round3(a.Preferences[1]),
			Round3(a.Preferences[2]),
		}
	}

	avg := averagePreferences(prefs)

	// Votes compare against the unrounded preference mass, cumulatively.
	votes := make(map[int]int)
	for _, a := range pop {
		u := g.Uniform()
		switch {
		case u <= a.Preferences[0]:
			votes[0]++
		case u <= a.Preferences[0]+a.Preferences[1]:
			votes[1]++
		default:
			votes[2]++
		}
	}

	return Stats{
		TotalAgents:        len(pop),
		VoteResults:        votes,
		AveragePreferences: avg,
		AgentPreferences:   prefs,
	}
}

func averagePreferences(prefs [][3]float64) [3]float64 {
	if len(prefs) == 0 {
		return [3]float64{}
	}
	var sum [3]float64
	for _, p := range prefs {
		sum[0] += p[0]
		sum[1] += p[1]
		sum[2] += p[2]
	}
	n := float64(len(prefs))
	return [3]float64{
		Round3(sum[0] / n),
		Round3(sum[1] / n),
		Round3(sum[2] / n),
	}
}
