// Package middleware contains service middlewares for hyperprobe.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/hyperprobe"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with logrus, and Uber's Zap (high-performance), but should work with any other logger that matches the interface.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// LoggingMiddleware logs every service call and the time it took. It wraps
// the export side only; probe measurement never passes through it.
type LoggingMiddleware struct {
	next   hyperprobe.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next hyperprobe.Service, logger Logger) hyperprobe.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Visit logs the time it takes to visit all registered probes.
func (mw LoggingMiddleware) Visit(ctx context.Context, consumer func(hyperprobe.Profile)) error {
	defer func(begin time.Time) {
		mw.logger.Infof("method Visit took: %s", time.Since(begin))
	}(time.Now())

	err := mw.next.Visit(ctx, consumer)
	if err != nil {
		mw.logger.Errorf("Visit failed: %v", err)
	}

	return err
}

// Profiles logs the time it takes to snapshot all registered probes.
func (mw LoggingMiddleware) Profiles(ctx context.Context) []hyperprobe.Profile {
	defer func(begin time.Time) {
		mw.logger.Infof("method Profiles took: %s", time.Since(begin))
	}(time.Now())

	return mw.next.Profiles(ctx)
}

// Snapshot logs the probe lookup.
func (mw LoggingMiddleware) Snapshot(ctx context.Context, name string) (hyperprobe.Profile, error) {
	defer func(begin time.Time) {
		mw.logger.Infof("method Snapshot took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("Snapshot method called with name: %s", name)

	profile, err := mw.next.Snapshot(ctx, name)
	if err != nil {
		mw.logger.Errorf("Snapshot failed for %s: %v", name, err)
	}

	return profile, err
}

// Frequency returns the calibrated cycles-per-second scalar.
func (mw LoggingMiddleware) Frequency() uint64 { return mw.next.Frequency() }

// Capacity returns the registry capacity.
func (mw LoggingMiddleware) Capacity() int { return mw.next.Capacity() }

// Count returns the number of registered probes.
func (mw LoggingMiddleware) Count(ctx context.Context) int { return mw.next.Count(ctx) }
