// Package sentinel provides standardized error definitions for the
// hyperprobe system. It centralizes the error types used across the
// profiler components, ensuring consistent error handling and messaging.
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrInvalidCapacity is returned when a registry is created with a
	// capacity that is zero or negative.
	ErrInvalidCapacity = ewrap.New("capacity must be positive")

	// ErrRegistryFull is returned when more distinct probes fire than the
	// registry was sized for. It indicates a static configuration mismatch
	// and is treated as fatal on the lazy registration path.
	ErrRegistryFull = ewrap.New("probe registry is full")

	// ErrProbeNotFound is returned when no registered probe matches the
	// requested name.
	ErrProbeNotFound = ewrap.New("probe not found")

	// ErrNilConsumer is returned when a nil snapshot consumer is supplied.
	ErrNilConsumer = ewrap.New("nil snapshot consumer")

	// ErrNilSink is returned when a nil sink is attached to an exporter.
	ErrNilSink = ewrap.New("nil sink")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrMgmtHTTPShutdownTimeout is returned when the management HTTP server
	// fails to shut down before the context deadline.
	ErrMgmtHTTPShutdownTimeout = ewrap.New("management http shutdown timeout")
)
