package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/hyperprobe"
	"github.com/hyp3rd/hyperprobe/internal/telemetry/attrs"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  hyperprobe.Service
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next hyperprobe.Service, meter metric.Meter) (hyperprobe.Service, error) {
	calls, err := meter.Int64Counter("hyperprobe.calls")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("hyperprobe.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, calls: calls, durations: durations}, nil
}

// Visit implements Service.Visit with metrics.
func (mw *OTelMetricsMiddleware) Visit(ctx context.Context, consumer func(hyperprobe.Profile)) error {
	start := time.Now()

	visited := 0
	err := mw.next.Visit(ctx, func(profile hyperprobe.Profile) {
		visited++

		consumer(profile)
	})

	mw.rec(ctx, "Visit", start, attribute.Int(attrs.AttrProbeCount, visited))

	return err
}

// Profiles implements Service.Profiles with metrics.
func (mw *OTelMetricsMiddleware) Profiles(ctx context.Context) []hyperprobe.Profile {
	start := time.Now()
	profiles := mw.next.Profiles(ctx)
	mw.rec(ctx, "Profiles", start, attribute.Int(attrs.AttrProbeCount, len(profiles)))

	return profiles
}

// Snapshot implements Service.Snapshot with metrics.
func (mw *OTelMetricsMiddleware) Snapshot(ctx context.Context, name string) (hyperprobe.Profile, error) {
	start := time.Now()
	profile, err := mw.next.Snapshot(ctx, name)
	mw.rec(ctx, "Snapshot", start,
		attribute.String(attrs.AttrProbeName, name),
		attribute.Bool(attrs.AttrFound, err == nil))

	return profile, err
}

// Frequency returns the calibrated cycles-per-second scalar.
func (mw *OTelMetricsMiddleware) Frequency() uint64 { return mw.next.Frequency() }

// Capacity returns the registry capacity.
func (mw *OTelMetricsMiddleware) Capacity() int { return mw.next.Capacity() }

// Count returns the number of registered probes.
func (mw *OTelMetricsMiddleware) Count(ctx context.Context) int { return mw.next.Count(ctx) }

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware) rec(ctx context.Context, method string, start time.Time, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String("method", method)}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start).Milliseconds()), metric.WithAttributes(base...))
}
