package alerts

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/monitoring"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/storage"
	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestEvaluateCreatesCriticalAlertOnLargeBreach(t *testing.T) {
	is, ctx, store, messenger := testSetup(t)

	svc := New(store, nil, messenger, DefaultPolicy())

	temp := 12.5
	view := sensorView("prov-1001", &temp, nil)

	err := svc.Evaluate(ctx, view, DefaultPolicy())
	is.NoErr(err)

	is.Equal(1, len(store.AddAlertCalls()))

	alert := store.AddAlertCalls()[0].Alert
	is.Equal("prov-1001", alert.SensorID)
	is.Equal(types.AlertTypeTemperature, alert.AlertType)
	is.Equal(types.SeverityCritical, alert.Severity) // 4.5 over max is past the critical tier
	is.Equal(12.5, *alert.CurrentValue)
	is.Equal(8.0, *alert.ThresholdValue)

	is.Equal(1, len(messenger.PublishOnTopicCalls()))
	is.Equal("alerts.alertCreated", messenger.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestEvaluateCreatesWarningAlertOnSmallBreach(t *testing.T) {
	is, ctx, store, messenger := testSetup(t)

	svc := New(store, nil, messenger, DefaultPolicy())

	temp := 9.1
	err := svc.Evaluate(ctx, sensorView("prov-1001", &temp, nil), DefaultPolicy())
	is.NoErr(err)

	is.Equal(1, len(store.AddAlertCalls()))
	is.Equal(types.SeverityWarning, store.AddAlertCalls()[0].Alert.Severity)
}

func TestEvaluateUndercoolingUsesMinAsThreshold(t *testing.T) {
	is, ctx, store, _ := testSetup(t)

	svc := New(store, nil, &messaging.MsgContextMock{PublishOnTopicFunc: publishOK}, DefaultPolicy())

	temp := 0.5
	err := svc.Evaluate(ctx, sensorView("prov-1001", &temp, nil), DefaultPolicy())
	is.NoErr(err)

	is.Equal(1, len(store.AddAlertCalls()))
	is.Equal(2.0, *store.AddAlertCalls()[0].Alert.ThresholdValue)
}

func TestEvaluateInRangeCreatesNothing(t *testing.T) {
	is, ctx, store, messenger := testSetup(t)

	svc := New(store, nil, messenger, DefaultPolicy())

	temp := 5.0
	humidity := 60.0
	err := svc.Evaluate(ctx, sensorView("prov-1001", &temp, &humidity), DefaultPolicy())
	is.NoErr(err)

	is.Equal(0, len(store.AddAlertCalls()))
	is.Equal(0, len(messenger.PublishOnTopicCalls()))
}

func TestEvaluateSiteOverrideWins(t *testing.T) {
	is, ctx, store, messenger := testSetup(t)

	policy := DefaultPolicy()
	policy.SiteOverrides = map[string]SiteThresholds{
		"GFP": {Temperature: &ThresholdRange{Min: -25.0, Max: -15.0}},
	}

	svc := New(store, nil, messenger, policy)

	// in range for the default fridge band, breaching for the freezer override
	temp := 5.0
	err := svc.Evaluate(ctx, sensorView("prov-1001", &temp, nil), policy)
	is.NoErr(err)

	is.Equal(1, len(store.AddAlertCalls()))
	is.Equal(-15.0, *store.AddAlertCalls()[0].Alert.ThresholdValue)
}

func TestEvaluateDuplicateOpenAlertIsDropped(t *testing.T) {
	is, ctx, _, messenger := testSetup(t)

	store := &AlertStoreMock{
		AddAlertFunc: func(ctx context.Context, alert types.Alert) error {
			return storage.ErrSingleOpenAlert
		},
	}

	svc := New(store, nil, messenger, DefaultPolicy())

	temp := 12.5
	err := svc.Evaluate(ctx, sensorView("prov-1001", &temp, nil), DefaultPolicy())
	is.NoErr(err)

	// dropped duplicates publish no event
	is.Equal(0, len(messenger.PublishOnTopicCalls()))
}

func TestCreateForOpenPairReturnsConflict(t *testing.T) {
	is, ctx, _, messenger := testSetup(t)

	store := &AlertStoreMock{
		AddAlertFunc: func(ctx context.Context, alert types.Alert) error {
			return storage.ErrSingleOpenAlert
		},
	}

	svc := New(store, nil, messenger, DefaultPolicy())

	// a manual create for a pair with an open alert must not report success
	_, err := svc.Create(ctx, userPrincipal("site-gfp"), types.Alert{SiteID: "site-gfp", SensorID: "prov-1001", AlertType: types.AlertTypeTemperature})
	is.True(errors.Is(err, storage.ErrSingleOpenAlert))
	is.Equal(0, len(messenger.PublishOnTopicCalls()))
}

func TestCreateRequiresAdminForSitelessAlerts(t *testing.T) {
	is, ctx, store, messenger := testSetup(t)

	svc := New(store, nil, messenger, DefaultPolicy())

	_, err := svc.Create(ctx, userPrincipal("site-gfp"), types.Alert{AlertType: types.AlertTypeConnectivity})
	is.True(errors.Is(err, ErrForbidden))

	_, err = svc.Create(ctx, adminPrincipal(), types.Alert{AlertType: types.AlertTypeConnectivity})
	is.NoErr(err)
}

func TestCreateRestrictsNonAdminToScope(t *testing.T) {
	is, ctx, store, messenger := testSetup(t)

	svc := New(store, nil, messenger, DefaultPolicy())

	_, err := svc.Create(ctx, userPrincipal("site-gfp"), types.Alert{SiteID: "site-wph", AlertType: types.AlertTypeTemperature})
	is.True(errors.Is(err, ErrForbidden))
	is.Equal(0, len(store.AddAlertCalls()))

	created, err := svc.Create(ctx, userPrincipal("site-gfp"), types.Alert{SiteID: "site-gfp", AlertType: types.AlertTypeTemperature})
	is.NoErr(err)
	is.True(created.ID != "")
	is.Equal(types.SeverityInfo, created.Severity)
	is.True(!created.ObservedAt.IsZero())
}

func TestResolveHappyPath(t *testing.T) {
	is, ctx, _, messenger := testSetup(t)

	store := &AlertStoreMock{
		GetAlertFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
			return types.Alert{ID: "alert-1", SiteID: "site-gfp", AlertType: types.AlertTypeTemperature}, nil
		},
		ResolveAlertFunc: func(ctx context.Context, alertID, resolvedBy, note string) error {
			return nil
		},
	}

	svc := New(store, nil, messenger, DefaultPolicy())

	err := svc.Resolve(ctx, userPrincipal("site-gfp"), "alert-1", "supervisor@example.com", "compressor replaced")
	is.NoErr(err)

	is.Equal(1, len(store.ResolveAlertCalls()))
	is.Equal("supervisor@example.com", store.ResolveAlertCalls()[0].ResolvedBy)

	is.Equal(1, len(messenger.PublishOnTopicCalls()))
	is.Equal("alerts.alertResolved", messenger.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestResolveUnknownAlertReturnsNotFound(t *testing.T) {
	is, ctx, _, messenger := testSetup(t)

	store := &AlertStoreMock{
		GetAlertFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
			return types.Alert{}, storage.ErrNoRows
		},
	}

	svc := New(store, nil, messenger, DefaultPolicy())

	err := svc.Resolve(ctx, adminPrincipal(), "no-such-alert", "supervisor", "")
	is.True(errors.Is(err, ErrAlertNotFound))
}

func TestResolveAlreadyResolvedPropagates(t *testing.T) {
	is, ctx, _, messenger := testSetup(t)

	store := &AlertStoreMock{
		GetAlertFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
			return types.Alert{ID: "alert-1", SiteID: "site-gfp", Resolved: true}, nil
		},
		ResolveAlertFunc: func(ctx context.Context, alertID, resolvedBy, note string) error {
			return storage.ErrAlreadyResolved
		},
	}

	svc := New(store, nil, messenger, DefaultPolicy())

	err := svc.Resolve(ctx, adminPrincipal(), "alert-1", "supervisor", "")
	is.True(errors.Is(err, storage.ErrAlreadyResolved))
	is.Equal(0, len(messenger.PublishOnTopicCalls()))
}

func TestResolveOutsideScopeIsForbidden(t *testing.T) {
	is, ctx, _, messenger := testSetup(t)

	store := &AlertStoreMock{
		GetAlertFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
			return types.Alert{ID: "alert-1", SiteID: "site-wph"}, nil
		},
	}

	svc := New(store, nil, messenger, DefaultPolicy())

	err := svc.Resolve(ctx, userPrincipal("site-gfp"), "alert-1", "tech", "")
	is.True(errors.Is(err, ErrForbidden))
	is.Equal(0, len(store.ResolveAlertCalls()))
}

func TestCheckAllSensorsRaisesConnectivityAlerts(t *testing.T) {
	is, ctx, store, messenger := testSetup(t)

	temp := 5.0
	monitor := &monitoring.SensorMonitorMock{
		AggregateFunc: func(ctx context.Context, principal types.Principal) ([]types.EnrichedSensorView, error) {
			online := sensorView("prov-1001", &temp, nil)
			online.Status = types.StatusOnline

			dark := sensorView("prov-1002", nil, nil)
			dark.Reading = nil
			dark.Status = types.StatusOffline

			return []types.EnrichedSensorView{online, dark}, nil
		},
	}

	svc := New(store, monitor, messenger, DefaultPolicy())

	err := svc.CheckAllSensors(ctx)
	is.NoErr(err)

	is.Equal(1, len(store.AddAlertCalls()))

	alert := store.AddAlertCalls()[0].Alert
	is.Equal(types.AlertTypeConnectivity, alert.AlertType)
	is.Equal("prov-1002", alert.SensorID)
	is.Equal(types.SeverityWarning, alert.Severity)
}

func TestCheckAllSensorsPropagatesMonitorError(t *testing.T) {
	is, ctx, store, messenger := testSetup(t)

	boom := errors.New("provider down")
	monitor := &monitoring.SensorMonitorMock{
		AggregateFunc: func(ctx context.Context, principal types.Principal) ([]types.EnrichedSensorView, error) {
			return nil, boom
		},
	}

	svc := New(store, monitor, messenger, DefaultPolicy())

	err := svc.CheckAllSensors(ctx)
	is.True(errors.Is(err, boom))
}

func TestQueryAppendsCallerScope(t *testing.T) {
	is, ctx, _, messenger := testSetup(t)

	store := &AlertStoreMock{
		QueryAlertsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{}, nil
		},
	}

	svc := New(store, nil, messenger, DefaultPolicy())

	_, err := svc.Query(ctx, userPrincipal("site-gfp"), storage.WithResolved(false))
	is.NoErr(err)

	c := &storage.Condition{}
	for _, fn := range store.QueryAlertsCalls()[0].Conditions {
		c = fn(c)
	}
	is.Equal([]string{"site-gfp"}, c.SiteIDs)
}

func TestNewPolicyAppliesDefaults(t *testing.T) {
	is := is.New(t)

	policy, err := NewPolicy(readCloser("criticalBreach: 5.0\n"))
	is.NoErr(err)
	is.Equal(5.0, policy.CriticalBreach)
	is.Equal(8.0, policy.Temperature.Max) // unset fields keep defaults
}

func sensorView(sensorID string, temp, humidity *float64) types.EnrichedSensorView {
	return types.EnrichedSensorView{
		AssignmentID:     "a-" + sensorID,
		ProviderSensorID: sensorID,
		Site:             &types.Site{ID: "site-gfp", Code: "GFP", Name: "Greenfield Pharmacy"},
		Status:           types.StatusOnline,
		Reading: &types.Reading{
			Timestamp:   time.Now().UTC(),
			Temperature: temp,
			Humidity:    humidity,
		},
	}
}

func adminPrincipal() types.Principal {
	return types.Principal{Subject: "admin", Role: types.RoleAdministrator}
}

func userPrincipal(siteIDs ...string) types.Principal {
	return types.Principal{Subject: "tech", Role: types.RoleUser, SiteIDs: siteIDs}
}

func publishOK(ctx context.Context, message messaging.TopicMessage) error {
	return nil
}

func readCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func testSetup(t *testing.T) (*is.I, context.Context, *AlertStoreMock, *messaging.MsgContextMock) {
	store := &AlertStoreMock{
		AddAlertFunc: func(ctx context.Context, alert types.Alert) error {
			return nil
		},
	}

	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: publishOK,
	}

	return is.New(t), context.Background(), store, messenger
}
