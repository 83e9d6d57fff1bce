package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/minisim/internal/config"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_Load_FullSuite(t *testing.T) {
	path := writeSuite(t, `
store_path: /tmp/bench.db
sample_interval_ms: 50
scenarios:
  - name: small
    agents: 100
    iterations: 10
    seed: 7
    chunk_size: 128
    workers: 4
    repeats: 3
`)

	suite, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/bench.db", suite.StorePath)
	assert.Equal(t, 50, suite.SampleIntervalMS)
	require.Len(t, suite.Scenarios, 1)

	sc := suite.Scenarios[0]
	assert.Equal(t, "small", sc.Name)
	assert.Equal(t, 100, sc.Agents)
	assert.Equal(t, 10, sc.Iterations)
	assert.Equal(t, int64(7), sc.Seed)
	assert.Equal(t, 128, sc.ChunkSize)
	assert.Equal(t, 4, sc.Workers)
	assert.Equal(t, 3, sc.Repeats)
}

func Test_Load_AppliesDefaults(t *testing.T) {
	path := writeSuite(t, `
scenarios:
  - agents: 50
    iterations: 5
`)

	suite, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultStorePath, suite.StorePath)
	assert.Equal(t, config.DefaultSampleIntervalMS, suite.SampleIntervalMS)

	sc := suite.Scenarios[0]
	assert.Equal(t, "a50-i5-c256-p1", sc.Name)
	assert.Equal(t, int64(config.DefaultSeed), sc.Seed)
	assert.Equal(t, config.DefaultChunkSize, sc.ChunkSize)
	assert.Equal(t, config.DefaultWorkers, sc.Workers)
	assert.Equal(t, config.DefaultRepeats, sc.Repeats)
}

func Test_Load_RejectsEmptySuite(t *testing.T) {
	path := writeSuite(t, "store_path: x.db\n")

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrNoScenarios)
}

func Test_Load_RejectsInvalidScenario(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero_agents", "scenarios:\n  - agents: 0\n    iterations: 1\n"},
		{"negative_iterations", "scenarios:\n  - agents: 10\n    iterations: -1\n"},
		{"negative_chunk", "scenarios:\n  - agents: 10\n    iterations: 1\n    chunk_size: -5\n"},
		{"negative_workers", "scenarios:\n  - agents: 10\n    iterations: 1\n    workers: -2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeSuite(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
