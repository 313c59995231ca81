// Package export delivers probe snapshots to pluggable sinks. It is the
// programmatic counterpart of the shutdown report: callers needing earlier
// or periodic export run an Exporter against the profiler service.
package export

import (
	"context"
	"io"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hyperprobe"
	"github.com/hyp3rd/hyperprobe/internal/sentinel"
	"github.com/hyp3rd/hyperprobe/libs/serializer"
)

// Sink receives one snapshot per registered probe during an export run.
// Write may be called concurrently.
type Sink interface {
	Write(profile hyperprobe.Profile) error
}

// WriterSink serializes each snapshot and appends it, newline separated, to
// an io.Writer.
type WriterSink struct {
	mu  sync.Mutex
	w   io.Writer
	ser serializer.Serializer
}

// NewWriterSink creates a sink writing serialized snapshots to w.
func NewWriterSink(w io.Writer, ser serializer.Serializer) (*WriterSink, error) {
	if w == nil || ser == nil {
		return nil, sentinel.ErrNilSink
	}

	return &WriterSink{w: w, ser: ser}, nil
}

// Write serializes profile and appends it to the underlying writer.
func (s *WriterSink) Write(profile hyperprobe.Profile) error {
	data, err := s.ser.Marshal(profile)
	if err != nil {
		return ewrap.Wrap(err, "encode snapshot")
	}

	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.w.Write(data)
	if err != nil {
		return ewrap.Wrap(err, "write snapshot")
	}

	return nil
}

// Exporter fans one visit's snapshots out to every attached sink on a
// worker pool.
type Exporter struct {
	svc     hyperprobe.Service
	sinks   []Sink
	workers int
}

// NewExporter creates an exporter delivering svc's snapshots to sinks with
// the given worker count.
func NewExporter(svc hyperprobe.Service, workers int, sinks ...Sink) (*Exporter, error) {
	if svc == nil {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "service")
	}

	if len(sinks) == 0 {
		return nil, sentinel.ErrNilSink
	}

	for _, sink := range sinks {
		if sink == nil {
			return nil, sentinel.ErrNilSink
		}
	}

	return &Exporter{svc: svc, sinks: sinks, workers: workers}, nil
}

// Export visits every registered probe once and delivers each snapshot to
// every sink. It returns the first delivery error, after all deliveries
// have completed.
func (e *Exporter) Export(ctx context.Context) error {
	pool := NewWorkerPool(e.workers)

	err := e.svc.Visit(ctx, func(profile hyperprobe.Profile) {
		for _, sink := range e.sinks {
			pool.Enqueue(func() error {
				return sink.Write(profile)
			})
		}
	})

	pool.Shutdown()

	if err != nil {
		return ewrap.Wrap(err, "export visit")
	}

	for deliveryErr := range pool.Errors() {
		if deliveryErr != nil {
			return ewrap.Wrap(deliveryErr, "export delivery")
		}
	}

	return nil
}
