//go:build arm64

package clock

// cycles reads the virtual counter register (CNTVCT_EL0).
// Implemented in cycles_arm64.s.
//
//go:noescape
func cycles() uint64
