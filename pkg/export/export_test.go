package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hyp3rd/hyperprobe"
	"github.com/hyp3rd/hyperprobe/internal/sentinel"
	"github.com/hyp3rd/hyperprobe/libs/serializer"
)

func newProfilerWithProbes(t *testing.T, names ...string) *hyperprobe.Profiler {
	t.Helper()

	profiler, err := hyperprobe.NewProfiler(context.Background(), hyperprobe.WithCapacity(8))
	if err != nil {
		t.Fatalf("NewProfiler error: %v", err)
	}

	for _, name := range names {
		region := profiler.Registry().NewProbe(name).Start(32)

		sink := uint64(0)
		for i := uint64(0); i < 2048; i++ {
			sink += i
		}

		_ = sink

		region.End()
	}

	return profiler
}

func TestExporter_DeliversEverySnapshot(t *testing.T) {
	profiler := newProfilerWithProbes(t, "alpha", "beta")

	ser, err := serializer.New("json")
	if err != nil {
		t.Fatalf("serializer error: %v", err)
	}

	var buf bytes.Buffer

	sink, err := NewWriterSink(&buf, ser)
	if err != nil {
		t.Fatalf("NewWriterSink error: %v", err)
	}

	exporter, err := NewExporter(profiler, 4, sink)
	if err != nil {
		t.Fatalf("NewExporter error: %v", err)
	}

	if err = exporter.Export(context.Background()); err != nil {
		t.Fatalf("Export error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("exported %d lines, want 2: %q", len(lines), buf.String())
	}

	var profile hyperprobe.Profile
	if err = ser.Unmarshal([]byte(lines[0]), &profile); err != nil {
		t.Fatalf("Unmarshal exported line error: %v", err)
	}

	if profile.Name != "alpha" && profile.Name != "beta" {
		t.Errorf("exported profile name = %q", profile.Name)
	}
}

type failingSink struct{}

func (failingSink) Write(hyperprobe.Profile) error {
	return errors.New("sink unavailable")
}

func TestExporter_SurfacesDeliveryError(t *testing.T) {
	profiler := newProfilerWithProbes(t, "gamma")

	exporter, err := NewExporter(profiler, 2, failingSink{})
	if err != nil {
		t.Fatalf("NewExporter error: %v", err)
	}

	if err = exporter.Export(context.Background()); err == nil {
		t.Fatal("Export returned nil, want delivery error")
	}
}

func TestNewExporter_Validation(t *testing.T) {
	profiler := newProfilerWithProbes(t)

	_, err := NewExporter(profiler, 1)
	if !errors.Is(err, sentinel.ErrNilSink) {
		t.Errorf("NewExporter with no sinks error = %v, want ErrNilSink", err)
	}

	_, err = NewExporter(profiler, 1, nil)
	if !errors.Is(err, sentinel.ErrNilSink) {
		t.Errorf("NewExporter with nil sink error = %v, want ErrNilSink", err)
	}

	_, err = NewExporter(nil, 1, failingSink{})
	if !errors.Is(err, sentinel.ErrParamCannotBeEmpty) {
		t.Errorf("NewExporter with nil service error = %v, want ErrParamCannotBeEmpty", err)
	}
}

func TestNewWriterSink_Validation(t *testing.T) {
	ser, err := serializer.New("json")
	if err != nil {
		t.Fatalf("serializer error: %v", err)
	}

	if _, err = NewWriterSink(nil, ser); !errors.Is(err, sentinel.ErrNilSink) {
		t.Errorf("NewWriterSink(nil writer) error = %v, want ErrNilSink", err)
	}

	if _, err = NewWriterSink(&bytes.Buffer{}, nil); !errors.Is(err, sentinel.ErrNilSink) {
		t.Errorf("NewWriterSink(nil serializer) error = %v, want ErrNilSink", err)
	}
}
