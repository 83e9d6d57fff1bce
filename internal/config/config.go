// Package config loads the benchmark suite definition from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied to absent suite fields.
const (
	DefaultStorePath        = "data/benchmarks.db"
	DefaultSampleIntervalMS = 100
	DefaultRepeats          = 5
	DefaultSeed             = 42
	DefaultChunkSize        = 256
	DefaultWorkers          = 1
)

// ErrNoScenarios is returned when a suite defines nothing to run.
var ErrNoScenarios = errors.New("suite defines no scenarios")

// Suite is a benchmark suite: where to record samples, how often to sample
// child-process resources, and the scenarios to run.
type Suite struct {
	// StorePath is the SQLite file benchmark samples are recorded to.
	StorePath string `yaml:"store_path"`

	// SampleIntervalMS is the resource-sampling interval for child
	// processes, in milliseconds.
	SampleIntervalMS int `yaml:"sample_interval_ms"`

	// EngineCommand overrides the engine binary invocation (argv prefix).
	// Empty means the harness re-invokes its own executable.
	EngineCommand []string `yaml:"engine_command,omitempty"`

	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one benchmarked engine configuration.
type Scenario struct {
	Name       string `yaml:"name"`
	Agents     int    `yaml:"agents"`
	Iterations int    `yaml:"iterations"`
	Seed       int64  `yaml:"seed"`
	ChunkSize  int    `yaml:"chunk_size"`
	Workers    int    `yaml:"workers"`

	// Repeats is how many samples to record for this scenario.
	Repeats int `yaml:"repeats"`
}

// Load reads and validates a suite file, applying defaults for absent
// fields.
func Load(path string) (*Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(raw, &suite); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}

	suite.applyDefaults()
	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

func (s *Suite) applyDefaults() {
	if s.StorePath == "" {
		s.StorePath = DefaultStorePath
	}
	if s.SampleIntervalMS <= 0 {
		s.SampleIntervalMS = DefaultSampleIntervalMS
	}
	for i := range s.Scenarios {
		sc := &s.Scenarios[i]
		if sc.Seed == 0 {
			sc.Seed = DefaultSeed
		}
		if sc.ChunkSize == 0 {
			sc.ChunkSize = DefaultChunkSize
		}
		if sc.Workers == 0 {
			sc.Workers = DefaultWorkers
		}
		if sc.Repeats == 0 {
			sc.Repeats = DefaultRepeats
		}
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("a%d-i%d-c%d-p%d", sc.Agents, sc.Iterations, sc.ChunkSize, sc.Workers)
		}
	}
}

// Validate applies the same input rules the engine enforces, so a bad suite
// fails before any subprocess is launched.
func (s *Suite) Validate() error {
	if len(s.Scenarios) == 0 {
		return ErrNoScenarios
	}
	for _, sc := range s.Scenarios {
		if sc.Agents <= 0 {
			return fmt.Errorf("scenario %q: agents must be positive, got %d", sc.Name, sc.Agents)
		}
		if sc.Iterations < 0 {
			return fmt.Errorf("scenario %q: iterations must be non-negative, got %d", sc.Name, sc.Iterations)
		}
		if sc.ChunkSize <= 0 {
			return fmt.Errorf("scenario %q: chunk size must be positive, got %d", sc.Name, sc.ChunkSize)
		}
		if sc.Workers < 1 {
			return fmt.Errorf("scenario %q: workers must be at least 1, got %d", sc.Name, sc.Workers)
		}
		if sc.Repeats < 1 {
			return fmt.Errorf("scenario %q: repeats must be at least 1, got %d", sc.Name, sc.Repeats)
		}
	}
	return nil
}
