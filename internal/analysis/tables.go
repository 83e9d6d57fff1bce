package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/minisim/internal/persistence"
	"github.com/talgya/minisim/internal/rng"
)

// MetricSummary is a median with its bootstrap confidence bounds.
type MetricSummary struct {
	Median float64
	Lo     float64
	Hi     float64
}

// ScenarioSummary aggregates one scenario's samples across all repeats.
type ScenarioSummary struct {
	Scenario string
	Runs     int
	Walltime MetricSummary
	Memory   MetricSummary
	CPU      MetricSummary
}

// Summarize computes per-scenario medians and 95% bootstrap confidence
// intervals over grouped samples, sorted by scenario name.
func Summarize(groups map[string][]persistence.Sample, seed int64) []ScenarioSummary {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	g := rng.New(seed)
	summaries := make([]ScenarioSummary, 0, len(names))
	for _, name := range names {
		samples := groups[name]

		walltime := make([]float64, len(samples))
		memory := make([]float64, len(samples))
		cpu := make([]float64, len(samples))
		for i, s := range samples {
			walltime[i] = float64(s.WalltimeMS)
			memory[i] = s.MaxMemoryKB
			cpu[i] = s.AvgCPUPercent
		}

		summaries = append(summaries, ScenarioSummary{
			Scenario: name,
			Runs:     len(samples),
			Walltime: summarizeMetric(walltime, g),
			Memory:   summarizeMetric(memory, g),
			CPU:      summarizeMetric(cpu, g),
		})
	}
	return summaries
}

func summarizeMetric(values []float64, g *rng.LCG) MetricSummary {
	lo, hi := BootstrapCI(values, DefaultResamples, 0.95, g)
	return MetricSummary{Median: Median(values), Lo: lo, Hi: hi}
}

// RenderTable formats summaries as a markdown table. Memory is rendered
// human-readably; walltime and CPU keep their raw units.
func RenderTable(summaries []ScenarioSummary) string {
	var b strings.Builder
	b.WriteString("| Scenario | Runs | Walltime (ms) | Memory | CPU (%) |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n",
			s.Scenario,
			s.Runs,
			formatMetric(s.Walltime, formatMS),
			formatMetric(s.Memory, formatKB),
			formatMetric(s.CPU, formatPct),
		)
	}
	return b.String()
}

func formatMetric(m MetricSummary, format func(float64) string) string {
	return fmt.Sprintf("%s [%s, %s]", format(m.Median), format(m.Lo), format(m.Hi))
}

func formatMS(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

func formatKB(v float64) string {
	return humanize.IBytes(uint64(v * 1024))
}

func formatPct(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
