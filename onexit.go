package hyperprobe

import (
	"sync"

	"github.com/hyp3rd/hyperprobe/internal/sentinel"
)

// OnExit exports every registered probe's statistics when released. It is
// the default trigger for statistics export: hold one for the life of the
// process and close it on the way out.
//
//	defer hyperprobe.Init(report.Consumer(os.Stderr, hyperprobe.Frequency)).Close()
//
// Callers needing earlier or periodic export use Service.Visit or
// DefaultVisit directly.
type OnExit struct {
	consumer func(Profile)
	registry *Registry
	once     sync.Once
}

// Init kicks off the one-time frequency calibration and returns an OnExit
// guard holding consumer. Options select the registry to export and the
// calibration interval; the management HTTP surface belongs to NewProfiler,
// not Init.
func Init(consumer func(Profile), options ...Option) *OnExit {
	cfg := NewConfig()
	ApplyOptions(cfg, options...)

	registry := cfg.Registry
	if registry == nil {
		registry = defaultRegistry
	}

	EnsureCalibrated(cfg.CalibrationInterval)

	return &OnExit{consumer: consumer, registry: registry}
}

// Close visits every registered probe with the held consumer, in
// registration order. The visit runs exactly once no matter how many times
// Close is called.
func (o *OnExit) Close() error {
	var err error

	o.once.Do(func() {
		if o.consumer == nil {
			err = sentinel.ErrNilConsumer

			return
		}

		err = o.registry.VisitAll(o.consumer)
	})

	return err
}
