package hyperprobe

import (
	"time"

	"github.com/hyp3rd/hyperprobe/internal/constants"
)

// Config wraps the configuration options used to set up a Profiler and the
// registry behind it.
type Config struct {
	// Capacity is the maximum number of distinct probes the registry can
	// hold. Ignored when Registry is set explicitly.
	Capacity int
	// CalibrationInterval is the sleep used by the one-time frequency
	// calibration.
	CalibrationInterval time.Duration
	// ManagementAddr, when non-empty, enables the management HTTP server on
	// the given address.
	ManagementAddr string
	// Registry is the registry the profiler serves. Defaults to the
	// process-wide registry backing NewProbe.
	Registry *Registry
	// ManagementOptions configure the management HTTP server.
	ManagementOptions []ManagementHTTPOption
}

// NewConfig returns a Config with default values: the default registry,
// the default capacity, and the default 10ms calibration interval.
func NewConfig() *Config {
	return &Config{
		Capacity:            constants.DefaultCapacity,
		CalibrationInterval: constants.DefaultCalibrationInterval,
		Registry:            defaultRegistry,
	}
}

// ApplyOptions applies the given options to the config.
func ApplyOptions(cfg *Config, options ...Option) {
	for _, option := range options {
		option(cfg)
	}
}
