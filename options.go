package hyperprobe

import "time"

// Option is a function type used to configure a Profiler.
type Option func(*Config)

// WithCapacity sets the maximum number of distinct probes the profiler's
// registry can hold. It causes NewProfiler to build a dedicated registry
// instead of serving the process-wide one.
func WithCapacity(capacity int) Option {
	return func(cfg *Config) {
		cfg.Capacity = capacity
		cfg.Registry = nil
	}
}

// WithCalibrationInterval sets the sleep interval used by the one-time
// frequency calibration.
func WithCalibrationInterval(interval time.Duration) Option {
	return func(cfg *Config) {
		cfg.CalibrationInterval = interval
	}
}

// WithRegistry makes the profiler serve an explicit registry rather than
// the process-wide default.
func WithRegistry(registry *Registry) Option {
	return func(cfg *Config) {
		cfg.Registry = registry
	}
}

// WithManagementHTTP enables the management HTTP server on addr (pass
// "127.0.0.1:0" for an ephemeral port).
func WithManagementHTTP(addr string, opts ...ManagementHTTPOption) Option {
	return func(cfg *Config) {
		cfg.ManagementAddr = addr
		cfg.ManagementOptions = opts
	}
}
