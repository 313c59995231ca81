package hyperprobe

import (
	"math/bits"
	"sync/atomic"

	"github.com/hyp3rd/ewrap"
)

// Profile is a point-in-time copy of one probe's accumulated statistics.
// The min and max pairs are the (cycles, bytes) samples with the lowest and
// highest cycles-per-byte ratio observed so far; the averages are truncated
// incremental integer means.
type Profile struct {
	Name      string `json:"name"`
	CyclesMin uint64 `json:"cyclesMin"`
	CyclesMax uint64 `json:"cyclesMax"`
	CyclesAvg uint64 `json:"cyclesAvg"`
	BytesMin  uint64 `json:"bytesMin"`
	BytesMax  uint64 `json:"bytesMax"`
	BytesAvg  uint64 `json:"bytesAvg"`
	Samples   uint64 `json:"samples"`
}

// Probe accumulates running statistics for one named code region. Declare
// one probe per region, typically at package level, and wrap each execution
// with:
//
//	defer p.Start(uint64(len(buf))).End()
//
// A probe joins its registry lazily, the first time it fires. The zero
// Probe is not usable; create probes with NewProbe or Registry.NewProbe.
type Probe struct {
	profile    Profile
	registry   *Registry
	lock       atomic.Bool // spinlock guarding profile
	registered atomic.Bool // one-shot registration latch
}

// NewProbe returns a probe bound to the default registry.
func NewProbe(name string) *Probe {
	return defaultRegistry.NewProbe(name)
}

// Name returns the probe's immutable identifying name.
func (p *Probe) Name() string {
	return p.profile.Name
}

// Start begins one measurement of the probe's region, declaring the number
// of bytes this invocation processes. The first fire registers the probe
// into its registry; if the registry is already at capacity, Start panics
// with ErrRegistryFull, since that is a static configuration mismatch the
// caller must fix.
func (p *Probe) Start(bytes uint64) Region {
	if p.registered.CompareAndSwap(false, true) {
		err := p.registry.register(p)
		if err != nil {
			panic(ewrap.Wrap(err, p.profile.Name))
		}
	}

	return Region{probe: p, bytes: bytes, start: readCycles()}
}

// fold merges one (cycles, bytes) sample into the running statistics. A
// zero-cycle sample carries no timing information and is discarded rather
// than corrupting the throughput ratios.
//
// Min and max replacement is decided by cross multiplication in 128 bits,
// so the hot path performs no division and no floating point. Ties go to
// the newest sample, and the zero-valued baseline of a fresh record loses
// to the first real sample through the same comparison.
func (p *Probe) fold(cycles, bytes uint64) {
	if cycles == 0 {
		return
	}

	p.spin()

	pr := &p.profile

	// cycles/bytes <= CyclesMin/BytesMin, cross-multiplied.
	if mulLE(cycles, pr.BytesMin, pr.CyclesMin, bytes) {
		pr.CyclesMin, pr.BytesMin = cycles, bytes
	}

	// cycles/bytes >= CyclesMax/BytesMax, cross-multiplied.
	if mulLE(pr.CyclesMax, bytes, cycles, pr.BytesMax) {
		pr.CyclesMax, pr.BytesMax = cycles, bytes
	}

	pr.CyclesAvg = (pr.CyclesAvg*pr.Samples + cycles) / (pr.Samples + 1)
	pr.BytesAvg = (pr.BytesAvg*pr.Samples + bytes) / (pr.Samples + 1)
	pr.Samples++

	p.unlock()
}

// Snapshot returns a consistent copy of the probe's statistics, taken under
// the same spinlock the fold path uses.
func (p *Probe) Snapshot() Profile {
	p.spin()
	profile := p.profile
	p.unlock()

	return profile
}

// spin acquires the probe's spinlock. Every critical section it guards is
// O(1) and allocation free, so a plain CAS busy-wait with no backoff stays
// safe to take on a latency-sensitive hot path.
func (p *Probe) spin() {
	for !p.lock.CompareAndSwap(false, true) { //nolint:revive // busy-wait
	}
}

func (p *Probe) unlock() {
	p.lock.Store(false)
}

// mulLE reports whether a*b <= c*d, computing both products in 128 bits so
// large cycle and byte counts cannot overflow the comparison.
func mulLE(a, b, c, d uint64) bool {
	hi1, lo1 := bits.Mul64(a, b)

	hi2, lo2 := bits.Mul64(c, d)
	if hi1 != hi2 {
		return hi1 < hi2
	}

	return lo1 <= lo2
}
