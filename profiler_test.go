package hyperprobe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/hyperprobe"
	"github.com/hyp3rd/hyperprobe/internal/sentinel"
)

func fire(p *hyperprobe.Probe, bytes uint64) {
	region := p.Start(bytes)

	sink := uint64(0)
	for i := uint64(0); i < 2048; i++ {
		sink += i
	}

	_ = sink

	region.End()
}

func TestProfiler_Service(t *testing.T) {
	ctx := context.Background()

	profiler, err := hyperprobe.NewProfiler(ctx, hyperprobe.WithCapacity(4))
	assert.Nil(t, err)

	reg := profiler.Registry()
	fire(reg.NewProbe("encode"), 1024)
	fire(reg.NewProbe("decode"), 512)

	assert.Equal(t, 4, profiler.Capacity())
	assert.Equal(t, 2, profiler.Count(ctx))
	assert.True(t, profiler.Frequency() > 0)

	profiles := profiler.Profiles(ctx)
	assert.Equal(t, 2, len(profiles))
	assert.Equal(t, "encode", profiles[0].Name)
	assert.Equal(t, "decode", profiles[1].Name)
	assert.True(t, profiles[0].Samples == 1)

	snapshot, err := profiler.Snapshot(ctx, "decode")
	assert.Nil(t, err)
	assert.Equal(t, "decode", snapshot.Name)
	assert.True(t, snapshot.BytesMin == 512)

	_, err = profiler.Snapshot(ctx, "missing")
	assert.True(t, errors.Is(err, sentinel.ErrProbeNotFound))

	visited := 0
	err = profiler.Visit(ctx, func(hyperprobe.Profile) { visited++ })
	assert.Nil(t, err)
	assert.Equal(t, 2, visited)

	assert.Nil(t, profiler.Stop(ctx))
}

func TestProfiler_ExplicitRegistry(t *testing.T) {
	ctx := context.Background()

	reg, err := hyperprobe.NewRegistry(2)
	assert.Nil(t, err)

	profiler, err := hyperprobe.NewProfiler(ctx, hyperprobe.WithRegistry(reg))
	assert.Nil(t, err)

	fire(reg.NewProbe("shared"), 1)

	assert.Equal(t, 1, profiler.Count(ctx))
	assert.Equal(t, 2, profiler.Capacity())
}

func TestProfiler_InvalidCapacity(t *testing.T) {
	_, err := hyperprobe.NewProfiler(context.Background(), hyperprobe.WithCapacity(-1))
	assert.True(t, errors.Is(err, sentinel.ErrInvalidCapacity))
}
