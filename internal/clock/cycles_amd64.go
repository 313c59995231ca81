//go:build amd64

package clock

// cycles reads the CPU timestamp counter via RDTSC.
// Implemented in cycles_amd64.s.
//
//go:noescape
func cycles() uint64
