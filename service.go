package hyperprobe

import (
	"context"
)

// Service is the read side of a probe registry: enumeration and lookup of
// accumulated statistics. It exists so middleware can be layered around
// snapshot export without touching the measurement hot path.
type Service interface {
	// Visit hands a snapshot of every registered probe to consumer, in
	// registration order.
	Visit(ctx context.Context, consumer func(Profile)) error
	// Profiles returns a snapshot of every registered probe, in
	// registration order.
	Profiles(ctx context.Context) []Profile
	// Snapshot returns the statistics of the probe registered under name.
	Snapshot(ctx context.Context, name string) (Profile, error)
	// Frequency returns the calibrated cycles-per-second scalar.
	Frequency() uint64
	// Capacity returns the registry's maximum number of distinct probes.
	Capacity() int
	// Count returns the number of registered probes.
	Count(ctx context.Context) int
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}
