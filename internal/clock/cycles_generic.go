//go:build !amd64 && !arm64

package clock

// cycles falls back to the monotonic wall clock on targets without an
// accessible cycle counter, so one cycle equals one nanosecond there.
func cycles() uint64 {
	return WallNanos()
}
