package hyperprobe

import (
	"sync/atomic"

	"github.com/hyp3rd/hyperprobe/internal/constants"
	"github.com/hyp3rd/hyperprobe/internal/sentinel"
)

// Registry is a fixed-capacity, append-only table of the probes that have
// fired at least once. Slots are assigned in first-fire order by a single
// atomic counter and are never mutated after they are filled, so visiting
// takes no global lock and registration never blocks a measurement.
type Registry struct {
	slots []atomic.Pointer[Probe]
	next  atomic.Uint64
}

// NewRegistry creates a registry that can hold up to capacity distinct
// probes. Capacity is configuration: when more distinct probes fire than
// the registry was sized for, registration fails with ErrRegistryFull.
func NewRegistry(capacity int) (*Registry, error) {
	if capacity <= 0 {
		return nil, sentinel.ErrInvalidCapacity
	}

	return &Registry{slots: make([]atomic.Pointer[Probe], capacity)}, nil
}

// NewProbe returns a probe bound to this registry. The probe joins the
// registry the first time it fires, not at creation.
func (r *Registry) NewProbe(name string) *Probe {
	return &Probe{profile: Profile{Name: name}, registry: r}
}

// Register adds p to the registry eagerly, before its first fire. Racing
// Register with first fires is safe: whichever side wins the probe's
// one-shot latch performs the single registration. Registering a probe
// created by another registry's NewProbe is a programming error.
func (r *Registry) Register(p *Probe) error {
	if !p.registered.CompareAndSwap(false, true) {
		return nil
	}

	return r.register(p)
}

// register claims the next free slot for p. It runs exactly once per probe,
// on the winner of the probe's registration latch.
func (r *Registry) register(p *Probe) error {
	ix := r.next.Add(1) - 1
	if ix >= uint64(len(r.slots)) {
		return sentinel.ErrRegistryFull
	}

	r.slots[ix].Store(p)

	return nil
}

// Capacity returns the maximum number of distinct probes the registry can
// hold.
func (r *Registry) Capacity() int {
	return len(r.slots)
}

// Count returns the number of occupied slots.
func (r *Registry) Count() int {
	n := r.next.Load()
	if n > uint64(len(r.slots)) {
		n = uint64(len(r.slots))
	}

	return int(n)
}

// VisitAll hands a snapshot of every registered probe to consumer, in
// registration order. The occupied count is read once up front, so a
// registration concurrent with the visit is simply not visited, and a slot
// whose pointer store has not landed yet is skipped. Best effort, not
// transactional.
func (r *Registry) VisitAll(consumer func(Profile)) error {
	if consumer == nil {
		return sentinel.ErrNilConsumer
	}

	n := r.Count()
	for i := range n {
		p := r.slots[i].Load()
		if p == nil {
			continue
		}

		consumer(p.Snapshot())
	}

	return nil
}

// Snapshot returns the current statistics of the probe registered under
// name, or ErrProbeNotFound.
func (r *Registry) Snapshot(name string) (Profile, error) {
	if name == "" {
		return Profile{}, sentinel.ErrParamCannotBeEmpty
	}

	n := r.Count()
	for i := range n {
		p := r.slots[i].Load()
		if p == nil {
			continue
		}

		if p.profile.Name == name {
			return p.Snapshot(), nil
		}
	}

	return Profile{}, sentinel.ErrProbeNotFound
}

// defaultRegistry backs probes declared with the package-level NewProbe.
var defaultRegistry = mustRegistry(constants.DefaultCapacity)

func mustRegistry(capacity int) *Registry {
	r, err := NewRegistry(capacity)
	if err != nil {
		panic(err)
	}

	return r
}

// DefaultRegistry returns the process-wide registry used by NewProbe.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// DefaultVisit hands a snapshot of every probe in the default registry to
// consumer, in registration order.
func DefaultVisit(consumer func(Profile)) error {
	return defaultRegistry.VisitAll(consumer)
}
