package hyperprobe

import (
	"context"

	"github.com/hyp3rd/ewrap"
)

// Profiler is the Service implementation over a probe registry. It owns the
// optional management HTTP server and is the composition root for
// middleware; the measurement hot path never goes through it.
type Profiler struct {
	registry *Registry
	mgmt     *ManagementHTTPServer
}

// NewProfiler builds a profiler from the given options, kicks off the
// one-time frequency calibration, and starts the management HTTP server
// when an address was configured.
func NewProfiler(ctx context.Context, options ...Option) (*Profiler, error) {
	cfg := NewConfig()
	ApplyOptions(cfg, options...)

	registry := cfg.Registry
	if registry == nil {
		var err error

		registry, err = NewRegistry(cfg.Capacity)
		if err != nil {
			return nil, ewrap.Wrap(err, "profiler registry")
		}
	}

	EnsureCalibrated(cfg.CalibrationInterval)

	profiler := &Profiler{registry: registry}

	if cfg.ManagementAddr != "" {
		profiler.mgmt = NewManagementHTTPServer(cfg.ManagementAddr, cfg.ManagementOptions...)

		err := profiler.mgmt.Start(ctx, profiler)
		if err != nil {
			return nil, ewrap.Wrap(err, "management http")
		}
	}

	return profiler, nil
}

// Registry returns the registry the profiler serves.
func (p *Profiler) Registry() *Registry {
	return p.registry
}

// Visit hands a snapshot of every registered probe to consumer, in
// registration order.
func (p *Profiler) Visit(_ context.Context, consumer func(Profile)) error {
	return p.registry.VisitAll(consumer)
}

// Profiles returns a snapshot of every registered probe, in registration
// order.
func (p *Profiler) Profiles(_ context.Context) []Profile {
	profiles := make([]Profile, 0, p.registry.Count())

	_ = p.registry.VisitAll(func(profile Profile) {
		profiles = append(profiles, profile)
	})

	return profiles
}

// Snapshot returns the statistics of the probe registered under name.
func (p *Profiler) Snapshot(_ context.Context, name string) (Profile, error) {
	return p.registry.Snapshot(name)
}

// Frequency returns the calibrated cycles-per-second scalar.
func (p *Profiler) Frequency() uint64 {
	return Frequency()
}

// Capacity returns the registry's maximum number of distinct probes.
func (p *Profiler) Capacity() int {
	return p.registry.Capacity()
}

// Count returns the number of registered probes.
func (p *Profiler) Count(_ context.Context) int {
	return p.registry.Count()
}

// ManagementHTTPAddress returns the bound management address, or an empty
// string when the management server is disabled or not started.
func (p *Profiler) ManagementHTTPAddress() string {
	if p.mgmt == nil {
		return ""
	}

	return p.mgmt.Address()
}

// Stop shuts down the management HTTP server, if one is running. Probe
// statistics are unaffected: the registry lives for the process lifetime.
func (p *Profiler) Stop(ctx context.Context) error {
	if p.mgmt == nil {
		return nil
	}

	return p.mgmt.Shutdown(ctx)
}
