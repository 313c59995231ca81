// Package report renders probe snapshots for human consumption, converting
// raw cycle counts into wall-clock durations and derived throughput using
// the calibrated cycles-per-second scalar.
package report

import (
	"fmt"
	"io"

	"github.com/hyp3rd/hyperprobe"
)

// Consumer returns a snapshot consumer writing one block per probe to w.
// freq supplies the cycles-per-second scalar and is read at visit time, so
// passing hyperprobe.Frequency picks up the calibrated value even when the
// consumer is built before calibration finishes:
//
//	defer hyperprobe.Init(report.Consumer(os.Stderr, hyperprobe.Frequency)).Close()
func Consumer(w io.Writer, freq func() uint64) func(hyperprobe.Profile) {
	return func(profile hyperprobe.Profile) {
		cyclesPerSec := freq()
		if cyclesPerSec == 0 {
			cyclesPerSec = 1
		}

		fmt.Fprintf(w, "--- %s ---\n", profile.Name)
		fmt.Fprintf(w, "samples: %d\n", profile.Samples)
		fmt.Fprintf(w, "min: %s\n", formatStat(profile.CyclesMin, profile.BytesMin, cyclesPerSec))
		fmt.Fprintf(w, "max: %s\n", formatStat(profile.CyclesMax, profile.BytesMax, cyclesPerSec))
		fmt.Fprintf(w, "avg: %s\n", formatStat(profile.CyclesAvg, profile.BytesAvg, cyclesPerSec))
		fmt.Fprintln(w)
	}
}

// formatStat renders one (cycles, bytes) pair as raw cycles, scaled
// duration, and scaled throughput. Zero-duration and zero-byte pairs render
// as zero throughput rather than dividing by zero.
func formatStat(cycles, bytes, cyclesPerSec uint64) string {
	seconds := float64(cycles) / float64(cyclesPerSec)

	rate := 0.0
	if seconds > 0 {
		rate = float64(bytes) / seconds
	}

	return fmt.Sprintf("%d (%s) %s", cycles, formatDuration(seconds), formatRate(rate))
}

func formatDuration(seconds float64) string {
	switch {
	case seconds > 1:
		return fmt.Sprintf("%.2f s", seconds)
	case seconds > 1e-3:
		return fmt.Sprintf("%.2f ms", seconds*1e3)
	case seconds > 1e-6:
		return fmt.Sprintf("%.2f us", seconds*1e6)
	default:
		return fmt.Sprintf("%.2f ns", seconds*1e9)
	}
}

func formatRate(bytesPerSec float64) string {
	switch {
	case bytesPerSec > 1e9:
		return fmt.Sprintf("%.2f GB/s", bytesPerSec*1e-9)
	case bytesPerSec > 1e6:
		return fmt.Sprintf("%.2f MB/s", bytesPerSec*1e-6)
	case bytesPerSec > 1e3:
		return fmt.Sprintf("%.2f KB/s", bytesPerSec*1e-3)
	default:
		return fmt.Sprintf("%.2f B/s", bytesPerSec)
	}
}
