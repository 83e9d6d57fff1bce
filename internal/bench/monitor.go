package bench

import "time"

// userHZ is the kernel clock tick rate assumed for /proc CPU accounting.
// Linux has reported 100 through this interface since 2.6 regardless of the
// actual scheduler HZ.
const userHZ = 100

// Resources is what the monitor observed for one child process: peak
// resident memory and average CPU utilization across non-idle samples.
type Resources struct {
	MaxMemoryKB   float64
	AvgCPUPercent float64
}

// monitor samples a process at the given interval until stop is closed or
// the process disappears from /proc. On platforms without /proc it returns
// zero metrics, matching the harness contract that resource figures are
// best-effort while wall time is authoritative.
func monitor(pid int, interval time.Duration, stop <-chan struct{}) Resources {
	var res Resources
	var cpuSum float64
	var cpuSamples int

	prevTicks, _ := readCPUTicks(pid)
	prevTime := time.Now()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			if cpuSamples > 0 {
				res.AvgCPUPercent = cpuSum / float64(cpuSamples)
			}
			return res
		case <-ticker.C:
			rss, ok := readRSSKB(pid)
			if !ok {
				// Process gone; the final Wait owns the exit status.
				if cpuSamples > 0 {
					res.AvgCPUPercent = cpuSum / float64(cpuSamples)
				}
				return res
			}
			if rss > res.MaxMemoryKB {
				res.MaxMemoryKB = rss
			}

			if ticks, ok := readCPUTicks(pid); ok {
				now := time.Now()
				elapsed := now.Sub(prevTime).Seconds()
				if elapsed > 0 && ticks >= prevTicks {
					pct := float64(ticks-prevTicks) / userHZ / elapsed * 100
					// Idle samples are excluded from the average, like the
					// reference harness.
					if pct > 0 {
						cpuSum += pct
						cpuSamples++
					}
				}
				prevTicks = ticks
				prevTime = now
			}
		}
	}
}
