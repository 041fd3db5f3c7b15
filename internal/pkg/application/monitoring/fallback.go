package monitoring

type FallbackKind int

const (
	FallbackBattery FallbackKind = iota
	FallbackSensorSignal
	FallbackGatewaySignal
)

// Fallback produces a stable synthetic value for a metric the provider did
// not report, so the same asset renders the same battery or signal figure on
// every refresh and across restarts. The value is derived from the asset ID
// alone with a linear-congruential step; no randomness, no external state.
// It must never replace a value the provider actually supplied.
func Fallback(id string, kind FallbackKind) int {
	seed := 0
	for _, r := range id {
		seed += int(r)
	}

	v := (seed*9301 + 49297) % 233280
	f := float64(v) / 233280.0

	switch kind {
	case FallbackSensorSignal:
		// dBm-like, [-85,-45)
		return -85 + int(f*40)
	case FallbackGatewaySignal:
		// gateways sit closer to mains power and antennas, [-60,-30)
		return -60 + int(f*30)
	default:
		// battery percentage, [15,95)
		return 15 + int(f*80)
	}
}
