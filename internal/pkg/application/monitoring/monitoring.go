package monitoring

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/sensorbridge"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/storage"
	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("temprx360/monitoring")

// DefaultReadingWindow is how far back the aggregator looks for the current
// reading of each assigned sensor.
const DefaultReadingWindow = time.Hour

//go:generate moq -rm -out sensormonitor_mock.go . SensorMonitor
type SensorMonitor interface {
	Aggregate(ctx context.Context, principal types.Principal) ([]types.EnrichedSensorView, error)
}

//go:generate moq -rm -out sitestore_mock.go . SiteStore
type SiteStore interface {
	QuerySites(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Site], error)
	QueryAssignments(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.SensorAssignment], error)
}

type monitor struct {
	store  SiteStore
	bridge sensorbridge.Client
	window time.Duration
}

func New(store SiteStore, bridge sensorbridge.Client) SensorMonitor {
	return &monitor{
		store:  store,
		bridge: bridge,
		window: DefaultReadingWindow,
	}
}

// Aggregate joins the caller's visible assignments with fresh provider data
// and returns one enriched view per assignment. Provider outages surface as
// sensorbridge.ErrProviderUnavailable; fallback generation is applied to
// battery and signal metadata only, never to readings.
func (m *monitor) Aggregate(ctx context.Context, principal types.Principal) ([]types.EnrichedSensorView, error) {
	var err error
	ctx, span := tracer.Start(ctx, "aggregate-sensor-views")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	scope := principal.Scope()

	assignments, err := m.store.QueryAssignments(ctx, storage.WithActive(true), storage.WithScope(scope))
	if err != nil {
		return nil, fmt.Errorf("could not load assignments: %w", err)
	}

	// a caller without assignments is valid and sees an empty fleet
	if len(assignments.Data) == 0 {
		return []types.EnrichedSensorView{}, nil
	}

	sites, err := m.store.QuerySites(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load sites: %w", err)
	}

	siteByID := lo.KeyBy(sites.Data, func(s types.Site) string { return s.ID })

	var sensors map[string]types.ProviderSensorRecord
	var gateways map[string]types.ProviderGatewayRecord

	// the sensor and gateway listings are independent of each other
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sensors, err = m.bridge.ListSensors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		gateways, err = m.bridge.ListGateways(gctx)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	sensorIDs := lo.Map(assignments.Data, func(a types.SensorAssignment, _ int) string {
		return a.ProviderSensorID
	})

	readings, err := m.bridge.GetReadings(ctx, sensorIDs, now.Add(-m.window), now)
	if err != nil {
		return nil, err
	}

	views := make([]types.EnrichedSensorView, 0, len(assignments.Data))

	for _, a := range assignments.Data {
		view := types.EnrichedSensorView{
			AssignmentID:     a.ID,
			ProviderSensorID: a.ProviderSensorID,
			LocationType:     a.LocationType,
			Status:           types.StatusOffline,
		}

		if site, ok := siteByID[a.SiteID]; ok {
			s := site
			view.Site = &s
		} else {
			log.Debug("assignment references unknown site", "assignment_id", a.ID, "site_id", a.SiteID)
		}

		record, known := sensors[a.ProviderSensorID]
		if known {
			view.Name = record.Name
			view.LastSeen = record.LastSeen
		}

		latest := latestReading(readings[a.ProviderSensorID])
		view.Reading = latest

		// no reading inside the window means offline no matter how lively
		// the gateway looks
		if latest != nil && known {
			view.Status = Classify(record.LastSeen, now)
		}

		view.BatteryLevel = Fallback(a.ProviderSensorID, FallbackBattery)
		view.SignalStrength = Fallback(a.ProviderSensorID, FallbackSensorSignal)
		if known && record.BatteryLevel != nil {
			view.BatteryLevel = *record.BatteryLevel
		}
		if known && record.SignalStrength != nil {
			view.SignalStrength = *record.SignalStrength
		}

		if view.Site != nil {
			if gw := ResolveGateway(*view.Site, gateways); gw != nil {
				signal := Fallback(gw.ID, FallbackGatewaySignal)
				if gw.SignalStrength != nil {
					signal = *gw.SignalStrength
				}

				view.Gateway = &types.GatewayView{
					ID:             gw.ID,
					Name:           gw.Name,
					Status:         Classify(gw.LastSeen, now),
					SignalStrength: signal,
				}
			}
		}

		views = append(views, view)
	}

	sort.Slice(views, func(i, j int) bool {
		ci, cj := "", ""
		if views[i].Site != nil {
			ci = views[i].Site.Code
		}
		if views[j].Site != nil {
			cj = views[j].Site.Code
		}
		if ci != cj {
			return ci < cj
		}
		return views[i].ProviderSensorID < views[j].ProviderSensorID
	})

	return views, nil
}

func latestReading(readings []types.Reading) *types.Reading {
	if len(readings) == 0 {
		return nil
	}

	latest := readings[0]
	for _, r := range readings[1:] {
		if r.Timestamp.After(latest.Timestamp) {
			latest = r
		}
	}

	return &latest
}
