package hyperprobe

import (
	"github.com/hyp3rd/hyperprobe/internal/clock"
)

// readCycles is indirected so tests can inject a misbehaving cycle counter.
var readCycles = clock.Cycles

// Region is a single in-flight measurement of a probe's code region,
// created by Probe.Start. End must run exactly once on every exit path of
// the measured region, which the deferred one-liner guarantees:
//
//	defer p.Start(n).End()
type Region struct {
	probe *Probe
	start uint64
	bytes uint64
}

// End computes the elapsed cycle count and folds the sample into the
// probe's statistics. A reading where the end timestamp is not past the
// start (counter wrap or non-monotonic read) is routine jitter, not a
// fault, and the sample is dropped silently.
func (r Region) End() {
	end := readCycles()
	if end > r.start {
		r.probe.fold(end-r.start, r.bytes)
	}
}
