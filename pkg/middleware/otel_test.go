package middleware

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/hyp3rd/hyperprobe"
)

func TestOTelMetricsMiddleware_PassThrough(t *testing.T) {
	meter := metricnoop.NewMeterProvider().Meter("test")

	svc, err := NewOTelMetricsMiddleware(newService(t, "metered"), meter)
	if err != nil {
		t.Fatalf("NewOTelMetricsMiddleware error: %v", err)
	}

	ctx := context.Background()

	visited := 0
	if err = svc.Visit(ctx, func(hyperprobe.Profile) { visited++ }); err != nil {
		t.Fatalf("Visit error: %v", err)
	}

	if visited != 1 {
		t.Errorf("visited = %d, want 1", visited)
	}

	profiles := svc.Profiles(ctx)
	if len(profiles) != 1 || profiles[0].Name != "metered" {
		t.Errorf("profiles = %+v", profiles)
	}

	if _, err = svc.Snapshot(ctx, "metered"); err != nil {
		t.Errorf("Snapshot error: %v", err)
	}

	if svc.Count(ctx) != 1 || svc.Frequency() == 0 {
		t.Error("pass-through accessors disagree with the wrapped service")
	}
}

func TestOTelTracingMiddleware_PassThrough(t *testing.T) {
	tracer := tracenoop.NewTracerProvider().Tracer("test")

	svc := NewOTelTracingMiddleware(newService(t, "traced"), tracer,
		WithCommonAttributes(attribute.String("service.name", "hyperprobe-test")))

	ctx := context.Background()

	if err := svc.Visit(ctx, func(hyperprobe.Profile) {}); err != nil {
		t.Fatalf("Visit error: %v", err)
	}

	snapshot, err := svc.Snapshot(ctx, "traced")
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}

	if snapshot.Name != "traced" {
		t.Errorf("snapshot name = %q, want traced", snapshot.Name)
	}

	if _, err = svc.Snapshot(ctx, "missing"); err == nil {
		t.Fatal("Snapshot(missing) returned nil error")
	}

	if len(svc.Profiles(ctx)) != 1 || svc.Capacity() != 8 {
		t.Error("pass-through accessors disagree with the wrapped service")
	}
}
