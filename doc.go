// Package hyperprobe is an in-process instrumentation layer. A named probe
// records elapsed cycles and a byte count each time its code region runs,
// folds the sample into running min/max/avg throughput statistics without
// heap allocation, and joins a fixed-capacity registry on its first fire.
// The registry can be enumerated at shutdown through the OnExit guard, on
// demand through a Service, or over the management HTTP surface.
package hyperprobe
