// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrProbeName is the name of the probe a service call operated on.
	AttrProbeName = "probe.name"
	// AttrProbeCount is the number of probe snapshots produced by a call.
	AttrProbeCount = "probes.count"
	// AttrSamples is the sample count carried by a snapshot.
	AttrSamples = "samples.count"
	// AttrFound records whether a snapshot lookup hit a registered probe.
	AttrFound = "found"
)
