// Package persistence provides SQLite-based storage of benchmark samples.
package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection for benchmark sample storage.
type DB struct {
	conn *sqlx.DB
}

// Sample is one recorded benchmark measurement: the scenario parameters the
// engine was launched with and the metrics observed.
type Sample struct {
	ID            string  `db:"id"`
	RecordedAt    string  `db:"recorded_at"` // RFC 3339
	Scenario      string  `db:"scenario"`
	Agents        int     `db:"agents"`
	Iterations    int     `db:"iterations"`
	Seed          int64   `db:"seed"`
	ChunkSize     int     `db:"chunk_size"`
	Workers       int     `db:"workers"`
	WalltimeMS    int64   `db:"walltime_ms"`
	MaxMemoryKB   float64 `db:"max_memory_kb"`
	AvgCPUPercent float64 `db:"avg_cpu_percent"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS samples (
		id TEXT PRIMARY KEY,
		recorded_at TEXT NOT NULL,
		scenario TEXT NOT NULL,
		agents INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		chunk_size INTEGER NOT NULL,
		workers INTEGER NOT NULL,
		walltime_ms INTEGER NOT NULL,
		max_memory_kb REAL NOT NULL,
		avg_cpu_percent REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_samples_scenario ON samples(scenario);
	CREATE INDEX IF NOT EXISTS idx_samples_recorded ON samples(recorded_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// InsertSample records one measurement. A zero ID gets a fresh UUID and a
// zero RecordedAt gets the current time.
func (db *DB) InsertSample(s Sample) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.RecordedAt == "" {
		s.RecordedAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := db.conn.NamedExec(`INSERT INTO samples
		(id, recorded_at, scenario, agents, iterations, seed, chunk_size,
		 workers, walltime_ms, max_memory_kb, avg_cpu_percent)
		VALUES (:id, :recorded_at, :scenario, :agents, :iterations, :seed,
		 :chunk_size, :workers, :walltime_ms, :max_memory_kb, :avg_cpu_percent)`, s)
	if err != nil {
		return fmt.Errorf("insert sample %s: %w", s.ID, err)
	}
	return nil
}

// SamplesByScenario returns every recorded sample grouped by scenario name,
// ordered by recording time within each group.
func (db *DB) SamplesByScenario() (map[string][]Sample, error) {
	var samples []Sample
	err := db.conn.Select(&samples,
		"SELECT * FROM samples ORDER BY scenario, recorded_at")
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}

	groups := make(map[string][]Sample)
	for _, s := range samples {
		groups[s.Scenario] = append(groups[s.Scenario], s)
	}
	return groups, nil
}

// ScenarioSamples returns the samples for one scenario.
func (db *DB) ScenarioSamples(scenario string) ([]Sample, error) {
	var samples []Sample
	err := db.conn.Select(&samples,
		"SELECT * FROM samples WHERE scenario = ? ORDER BY recorded_at", scenario)
	if err != nil {
		return nil, fmt.Errorf("query samples for %q: %w", scenario, err)
	}
	return samples, nil
}
