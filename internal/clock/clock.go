// Package clock provides the two time sources the profiler is built on: a
// hardware cycle counter read on every probe entry and exit, and a monotonic
// wall clock used only while calibrating the cycle counter against real time.
//
// The cycle counter is architecture specific (RDTSC on amd64, CNTVCT_EL0 on
// arm64) with a monotonic-nanosecond fallback on other targets, where one
// "cycle" is simply one nanosecond.
package clock

import (
	_ "unsafe" // for go:linkname
)

// Cycles returns a monotonically non-decreasing hardware cycle count. It is
// cheap enough to call on every probe entry and exit.
func Cycles() uint64 {
	return cycles()
}

// WallNanos returns monotonic nanoseconds since an arbitrary epoch, immune
// to system clock adjustments. It returns 0 rather than an error if the
// underlying clock cannot be read.
func WallNanos() uint64 {
	ns := nanotime()
	if ns < 0 {
		return 0
	}

	return uint64(ns)
}

//go:linkname nanotime runtime.nanotime
func nanotime() int64
