package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RunCmd_PrintsStatsAsOneJSONLine(t *testing.T) {
	cmd := newRunCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--agents", "2", "--iterations", "1", "--seed", "42", "--chunk-size", "256"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)

	var stats struct {
		TotalAgents        int            `json:"total_agents"`
		VoteResults        map[string]int `json:"vote_results"`
		AveragePreferences []float64      `json:"average_preferences"`
		AgentPreferences   [][]float64    `json:"agent_preferences"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &stats))

	assert.Equal(t, 2, stats.TotalAgents)
	require.Len(t, stats.AgentPreferences, 2)
	votes := 0
	for _, count := range stats.VoteResults {
		votes += count
	}
	assert.Equal(t, 2, votes)
	for _, prefs := range stats.AgentPreferences {
		require.Len(t, prefs, 3)
		sum := 0.0
		for _, p := range prefs {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-3)
	}
}

func Test_RunCmd_RejectsInvalidInput(t *testing.T) {
	cmd := newRunCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--agents", "0", "--iterations", "1"})

	assert.Error(t, cmd.Execute())
}

func Test_SweepCmd_PrintsOneTimingPerSize(t *testing.T) {
	cmd := newSweepCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--from", "2", "--to", "5", "--iterations", "1", "--seed", "1", "--chunk-size", "64"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		var ms int64
		require.NoError(t, json.Unmarshal([]byte(line), &ms))
		assert.GreaterOrEqual(t, ms, int64(0))
	}
}
