// Package analysis computes medians and bootstrap confidence intervals over
// recorded benchmark samples and renders the comparison report.
package analysis

import (
	"sort"

	"github.com/talgya/minisim/internal/rng"
)

// DefaultResamples is the bootstrap resample count used for reports.
const DefaultResamples = 10_000

// Median returns the median of values; the mean of the middle two for even
// lengths. Returns 0 for an empty slice.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// BootstrapCI estimates a confidence interval for the median by resampling
// with replacement. The resample indices come from the portable generator so
// a report is reproducible for a given seed.
func BootstrapCI(values []float64, resamples int, confidence float64, g *rng.LCG) (lo, hi float64) {
	n := len(values)
	if n == 0 {
		return 0, 0
	}
	if n == 1 {
		return values[0], values[0]
	}

	medians := make([]float64, resamples)
	sample := make([]float64, n)
	for i := 0; i < resamples; i++ {
		for j := 0; j < n; j++ {
			idx := int(g.Uniform() * float64(n))
			if idx >= n {
				idx = n - 1
			}
			sample[j] = values[idx]
		}
		medians[i] = Median(sample)
	}
	sort.Float64s(medians)

	alpha := 1 - confidence
	lo = percentile(medians, alpha/2*100)
	hi = percentile(medians, (1-alpha/2)*100)
	return lo, hi
}

// percentile computes the q-th percentile (0–100) of sorted values with
// linear interpolation between ranks.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := q / 100 * float64(n-1)
	low := int(rank)
	if low >= n-1 {
		return sorted[n-1]
	}
	frac := rank - float64(low)
	return sorted[low] + frac*(sorted[low+1]-sorted[low])
}
