package bench

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// parseVmRSSKB extracts the resident set size in KB from the content of
// /proc/<pid>/status.
func parseVmRSSKB(status string) (float64, bool) {
	for _, line := range strings.Split(status, "\n") {
		rest, ok := strings.CutPrefix(line, "VmRSS:")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 1 {
			return 0, false
		}
		kb, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, false
		}
		return kb, true
	}
	return 0, false
}

// parseCPUTicks extracts utime+stime from the content of /proc/<pid>/stat.
// The comm field is parenthesized and may itself contain spaces or parens,
// so fields are counted from the last closing paren: utime and stime are the
// 14th and 15th fields of the full line.
func parseCPUTicks(stat string) (uint64, bool) {
	end := strings.LastIndexByte(stat, ')')
	if end < 0 || end+2 > len(stat) {
		return 0, false
	}
	fields := strings.Fields(stat[end+2:])
	// fields[0] is the state; utime and stime are fields[11] and fields[12].
	if len(fields) < 13 {
		return 0, false
	}
	utime, err := strconv.ParseUint(fields[11], 10, 64)
	if err != nil {
		return 0, false
	}
	stime, err := strconv.ParseUint(fields[12], 10, 64)
	if err != nil {
		return 0, false
	}
	return utime + stime, true
}

// readRSSKB samples the current resident set size of a live process.
func readRSSKB(pid int) (float64, bool) {
	raw, err := os.ReadFile(fmt.Sprintf("/proc/%d/status", pid))
	if err != nil {
		return 0, false
	}
	return parseVmRSSKB(string(raw))
}

// readCPUTicks samples the accumulated CPU ticks of a live process.
func readCPUTicks(pid int) (uint64, bool) {
	raw, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return 0, false
	}
	return parseCPUTicks(string(raw))
}
