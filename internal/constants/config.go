// Package constants defines default configuration values for the hyperprobe
// system: how many distinct probes the registry can hold and how long the
// one-time frequency calibration races the cycle counter against the wall
// clock.
package constants

import "time"

const (
	// DefaultCapacity is the default number of distinct probes the registry
	// can hold. Registration beyond the configured capacity is a fatal
	// configuration error, so size this for the whole process.
	DefaultCapacity = 0x1000

	// DefaultCalibrationInterval is the interval the frequency calibrator
	// sleeps between its two clock samples. Longer intervals give a more
	// accurate cycles-per-second scalar at the cost of a slower first Init.
	DefaultCalibrationInterval = 10 * time.Millisecond

	// DefaultFrequency is the cycles-per-second scalar assumed before the
	// calibration winner has stored a measured value: one cycle per
	// nanosecond.
	DefaultFrequency = 1_000_000_000
)
