package sensorbridge

import (
	"context"
	"time"

	"github.com/vineetparikh-rph/temprx360/pkg/types"
)

// NewDemo returns a bridge that serves a small fixed fleet without talking to
// the provider. Demo mode is only ever selected explicitly through
// configuration, never as a fallback when the real provider fails.
func NewDemo(now func() time.Time) Client {
	if now == nil {
		now = time.Now
	}
	return &demoClient{now: now}
}

type demoClient struct {
	now func() time.Time
}

func (d *demoClient) ListSensors(_ context.Context) (map[string]types.ProviderSensorRecord, error) {
	now := d.now().UTC()
	recent := now.Add(-2 * time.Minute)
	stale := now.Add(-45 * time.Minute)
	battery := 87

	return map[string]types.ProviderSensorRecord{
		"demo-sensor-1": {
			ID:           "demo-sensor-1",
			Name:         "GFP Cold Storage",
			LastSeen:     &recent,
			BatteryLevel: &battery,
		},
		"demo-sensor-2": {
			ID:       "demo-sensor-2",
			Name:     "GFP Fridge",
			LastSeen: &stale,
		},
		"demo-sensor-3": {
			ID:   "demo-sensor-3",
			Name: "GSP Cold Storage",
		},
	}, nil
}

func (d *demoClient) ListGateways(_ context.Context) (map[string]types.ProviderGatewayRecord, error) {
	now := d.now().UTC()
	recent := now.Add(-1 * time.Minute)

	return map[string]types.ProviderGatewayRecord{
		"demo-gw-1": {
			ID:       "demo-gw-1",
			Name:     "GFP-Gateway",
			LastSeen: &recent,
		},
		"demo-gw-2": {
			ID:       "demo-gw-2",
			Name:     "GSP Gateway",
			LastSeen: &recent,
		},
	}, nil
}

func (d *demoClient) GetReadings(_ context.Context, sensorIDs []string, from, to time.Time) (map[string][]types.Reading, error) {
	now := d.now().UTC()

	temp := func(v float64) *float64 { return &v }

	demo := map[string][]types.Reading{
		"demo-sensor-1": {
			{Timestamp: now.Add(-10 * time.Minute), Temperature: temp(4.1), Humidity: temp(41.0)},
			{Timestamp: now.Add(-2 * time.Minute), Temperature: temp(4.4), Humidity: temp(40.2)},
		},
		"demo-sensor-2": {
			{Timestamp: now.Add(-45 * time.Minute), Temperature: temp(9.6), Humidity: temp(38.5)},
		},
	}

	readings := map[string][]types.Reading{}
	for _, id := range sensorIDs {
		rs, ok := demo[id]
		if !ok {
			continue
		}
		inWindow := make([]types.Reading, 0, len(rs))
		for _, r := range rs {
			if r.Timestamp.Before(from) || r.Timestamp.After(to) {
				continue
			}
			inWindow = append(inWindow, r)
		}
		readings[id] = inWindow
	}

	return readings, nil
}
