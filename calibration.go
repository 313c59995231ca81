package hyperprobe

import (
	"sync/atomic"
	"time"

	"github.com/hyp3rd/hyperprobe/internal/clock"
	"github.com/hyp3rd/hyperprobe/internal/constants"
)

// The cycles-per-second scalar is process-wide state: written at most once,
// by the calibration winner, and read atomically everywhere else. It is
// consumed only when converting cycle counts for human or wire consumption;
// statistics accumulation is always cycle-based and unaffected by it.
var (
	frequency  atomic.Uint64
	calibrated atomic.Bool
)

func init() {
	frequency.Store(constants.DefaultFrequency)
}

// EnsureCalibrated derives the cycles-per-second conversion scalar by
// racing the cycle counter against the monotonic wall clock across
// interval (the default 10ms when interval is not positive).
//
// It is idempotent and callable concurrently: exactly one caller performs
// the measurement, every other caller returns immediately without waiting
// for the winner. Readers that win that race observe the documented default
// of one cycle per nanosecond until the winner's store lands.
func EnsureCalibrated(interval time.Duration) {
	if !calibrated.CompareAndSwap(false, true) {
		return
	}

	if interval <= 0 {
		interval = constants.DefaultCalibrationInterval
	}

	wallBegin := clock.WallNanos()
	cycleBegin := clock.Cycles()

	time.Sleep(interval)

	wallEnd := clock.WallNanos()
	cycleEnd := clock.Cycles()

	// A failed wall clock reads as zero on both samples; keep the default
	// scalar rather than divide by zero.
	if wallEnd <= wallBegin || cycleEnd <= cycleBegin {
		return
	}

	wallDelta := wallEnd - wallBegin
	cycleDelta := cycleEnd - cycleBegin

	frequency.Store(cycleDelta * constants.DefaultFrequency / wallDelta)
}

// Frequency returns the calibrated cycles-per-second scalar, or the default
// of one cycle per nanosecond if no caller has completed calibration yet.
func Frequency() uint64 {
	return frequency.Load()
}
