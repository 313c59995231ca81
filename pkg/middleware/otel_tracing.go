package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/hyperprobe"
	"github.com/hyp3rd/hyperprobe/internal/telemetry/attrs"
)

// OTelTracingMiddleware wraps hyperprobe.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   hyperprobe.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next hyperprobe.Service, tracer trace.Tracer, opts ...OTelTracingOption) hyperprobe.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Visit implements Service.Visit with tracing.
func (mw OTelTracingMiddleware) Visit(ctx context.Context, consumer func(hyperprobe.Profile)) error {
	ctx, span := mw.startSpan(ctx, "hyperprobe.Visit")
	defer span.End()

	visited := 0

	err := mw.next.Visit(ctx, func(profile hyperprobe.Profile) {
		visited++

		consumer(profile)
	})

	span.SetAttributes(attribute.Int(attrs.AttrProbeCount, visited))

	if err != nil {
		span.RecordError(err)
	}

	return err
}

// Profiles implements Service.Profiles with tracing.
func (mw OTelTracingMiddleware) Profiles(ctx context.Context) []hyperprobe.Profile {
	ctx, span := mw.startSpan(ctx, "hyperprobe.Profiles")
	defer span.End()

	profiles := mw.next.Profiles(ctx)
	span.SetAttributes(attribute.Int(attrs.AttrProbeCount, len(profiles)))

	return profiles
}

// Snapshot implements Service.Snapshot with tracing.
func (mw OTelTracingMiddleware) Snapshot(ctx context.Context, name string) (hyperprobe.Profile, error) {
	ctx, span := mw.startSpan(ctx, "hyperprobe.Snapshot", attribute.String(attrs.AttrProbeName, name))
	defer span.End()

	profile, err := mw.next.Snapshot(ctx, name)
	span.SetAttributes(attribute.Bool(attrs.AttrFound, err == nil))

	if err != nil {
		span.RecordError(err)
	}

	return profile, err
}

// Frequency returns the calibrated cycles-per-second scalar.
func (mw OTelTracingMiddleware) Frequency() uint64 { return mw.next.Frequency() }

// Capacity returns the registry capacity.
func (mw OTelTracingMiddleware) Capacity() int { return mw.next.Capacity() }

// Count returns the number of registered probes.
func (mw OTelTracingMiddleware) Count(ctx context.Context) int { return mw.next.Count(ctx) }

func (mw OTelTracingMiddleware) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	all := append(append([]attribute.KeyValue{}, mw.commonAttrs...), attributes...)

	return mw.tracer.Start(ctx, name, trace.WithAttributes(all...))
}
