package monitoring

import (
	"time"

	"github.com/vineetparikh-rph/temprx360/pkg/types"
)

const (
	onlineWithin  = 10 * time.Minute
	warningWithin = 60 * time.Minute
)

// Classify derives a connectivity status from how recently an asset was seen.
// A missing last-seen timestamp is offline. The thresholds are fixed design
// constants and apply identically to sensors and gateways.
func Classify(lastSeen *time.Time, now time.Time) types.ConnectivityStatus {
	if lastSeen == nil {
		return types.StatusOffline
	}

	age := now.Sub(*lastSeen)

	switch {
	case age < onlineWithin:
		return types.StatusOnline
	case age < warningWithin:
		return types.StatusWarning
	default:
		return types.StatusOffline
	}
}
