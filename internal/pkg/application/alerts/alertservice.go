package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/monitoring"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/storage"
	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("temprx360/alerts")

var (
	ErrAlertNotFound = fmt.Errorf("alert not found")
	ErrForbidden     = fmt.Errorf("forbidden")
)

var (
	evaluationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "temprx_alert_evaluations_total",
		Help: "Total number of sensor view evaluations.",
	})
	alertsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temprx_alerts_created_total",
			Help: "Total number of alerts created.",
		},
		[]string{"type", "severity"},
	)
	alertsResolvedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "temprx_alerts_resolved_total",
		Help: "Total number of alerts resolved.",
	})
)

func init() {
	prometheus.MustRegister(evaluationsTotal, alertsCreatedTotal, alertsResolvedTotal)
}

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Evaluate(ctx context.Context, view types.EnrichedSensorView, policy ThresholdPolicy) error
	Create(ctx context.Context, principal types.Principal, alert types.Alert) (types.Alert, error)
	Resolve(ctx context.Context, principal types.Principal, alertID, resolvedBy, note string) error
	CheckAllSensors(ctx context.Context) error
	Query(ctx context.Context, principal types.Principal, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	Summary(ctx context.Context, principal types.Principal) (types.AlertSummary, error)
}

//go:generate moq -rm -out alertstore_mock.go . AlertStore
type AlertStore interface {
	AddAlert(ctx context.Context, alert types.Alert) error
	ResolveAlert(ctx context.Context, alertID, resolvedBy, note string) error
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	AlertSummary(ctx context.Context, conditions ...storage.ConditionFunc) (types.AlertSummary, error)
}

type alertSvc struct {
	storage   AlertStore
	monitor   monitoring.SensorMonitor
	messenger messaging.MsgContext
	policy    ThresholdPolicy
}

func New(s AlertStore, m monitoring.SensorMonitor, messenger messaging.MsgContext, policy ThresholdPolicy) AlertService {
	return &alertSvc{
		storage:   s,
		monitor:   m,
		messenger: messenger,
		policy:    policy,
	}
}

// Evaluate checks the current reading of a single sensor view against the
// threshold policy and opens an alert per breached reading type. A second
// breach for an already open (sensor, type) pair is silently dropped by the
// store, so evaluating the same sensor twice never doubles alerts.
func (svc *alertSvc) Evaluate(ctx context.Context, view types.EnrichedSensorView, policy ThresholdPolicy) error {
	evaluationsTotal.Inc()

	if view.Reading == nil {
		return nil
	}

	siteCode := ""
	siteID := ""
	if view.Site != nil {
		siteCode = view.Site.Code
		siteID = view.Site.ID
	}

	check := func(alertType string, value *float64, unit string) error {
		if value == nil {
			return nil
		}

		band, ok := policy.RangeFor(alertType, siteCode)
		if !ok {
			return nil
		}

		var magnitude float64
		var threshold float64

		switch {
		case *value > band.Max:
			magnitude = *value - band.Max
			threshold = band.Max
		case *value < band.Min:
			magnitude = band.Min - *value
			threshold = band.Min
		default:
			return nil
		}

		alert := types.Alert{
			ID:             uuid.NewString(),
			SensorID:       view.ProviderSensorID,
			SiteID:         siteID,
			AlertType:      alertType,
			Severity:       policy.Severity(magnitude),
			Message:        fmt.Sprintf("%s %.1f%s outside allowed range [%.1f, %.1f]", alertType, *value, unit, band.Min, band.Max),
			CurrentValue:   value,
			ThresholdValue: &threshold,
			ObservedAt:     view.Reading.Timestamp,
		}

		return svc.addIfNotOpen(ctx, alert)
	}

	if err := check(types.AlertTypeTemperature, view.Reading.Temperature, "°C"); err != nil {
		return err
	}

	return check(types.AlertTypeHumidity, view.Reading.Humidity, "%RH")
}

// Create adds a manually raised alert. Administrators may raise alerts for
// any site, or without a site at all; other callers are restricted to sites
// in their scope. Unlike the automatic evaluation paths an already open
// (sensor, type) pair is a conflict here and surfaces as
// storage.ErrSingleOpenAlert.
func (svc *alertSvc) Create(ctx context.Context, principal types.Principal, alert types.Alert) (types.Alert, error) {
	if alert.SiteID == "" {
		if !principal.IsAdministrator() {
			return types.Alert{}, ErrForbidden
		}
	} else if !principal.Scope().Allows(alert.SiteID) {
		return types.Alert{}, ErrForbidden
	}

	if alert.AlertType == "" {
		return types.Alert{}, fmt.Errorf("no alert type is set on alert")
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.Severity == 0 {
		alert.Severity = types.SeverityInfo
	}
	if alert.ObservedAt.IsZero() {
		alert.ObservedAt = time.Now().UTC()
	}

	if err := svc.add(ctx, alert); err != nil {
		return types.Alert{}, err
	}

	return alert, nil
}

// addIfNotOpen treats an already open (sensor, type) pair as a no-op, so the
// evaluation paths can run repeatedly without doubling alerts.
func (svc *alertSvc) addIfNotOpen(ctx context.Context, alert types.Alert) error {
	err := svc.add(ctx, alert)
	if errors.Is(err, storage.ErrSingleOpenAlert) {
		logging.GetFromContext(ctx).Debug("alert already open", "sensor_id", alert.SensorID, "alert_type", alert.AlertType)
		return nil
	}
	return err
}

func (svc *alertSvc) add(ctx context.Context, alert types.Alert) error {
	err := svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return err
	}

	alertsCreatedTotal.WithLabelValues(alert.AlertType, alert.Severity.String()).Inc()

	return svc.messenger.PublishOnTopic(ctx, &AlertCreated{
		Alert:     alert,
		Timestamp: alert.ObservedAt,
	})
}

// Resolve marks an open alert as handled, recording who resolved it and why.
// Resolution is one way; resolving an already resolved alert fails with
// storage.ErrAlreadyResolved.
func (svc *alertSvc) Resolve(ctx context.Context, principal types.Principal, alertID, resolvedBy, note string) error {
	var err error
	ctx, span := tracer.Start(ctx, "resolve-alert")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlertNotFound
		}
		return err
	}

	if alert.SiteID == "" {
		if !principal.IsAdministrator() {
			err = ErrForbidden
			return err
		}
	} else if !principal.Scope().Allows(alert.SiteID) {
		err = ErrForbidden
		return err
	}

	err = svc.storage.ResolveAlert(ctx, alertID, resolvedBy, note)
	if err != nil {
		return err
	}

	alertsResolvedTotal.Inc()

	err = svc.messenger.PublishOnTopic(ctx, &AlertResolved{
		ID:         alertID,
		ResolvedBy: resolvedBy,
		Timestamp:  time.Now().UTC(),
	})

	return err
}

// CheckAllSensors evaluates the latest reading of every assigned sensor and
// raises connectivity alerts for sensors that have gone dark. Overlapping
// runs are safe since deduplication happens in the store.
func (svc *alertSvc) CheckAllSensors(ctx context.Context) error {
	var err error
	ctx, span := tracer.Start(ctx, "check-all-sensors")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	views, err := svc.monitor.Aggregate(ctx, types.SystemPrincipal)
	if err != nil {
		return err
	}

	var errs []error

	for _, view := range views {
		if e := svc.Evaluate(ctx, view, svc.policy); e != nil {
			log.Error("evaluation failed", "provider_sensor_id", view.ProviderSensorID, "err", e.Error())
			errs = append(errs, e)
			continue
		}

		if view.Status == types.StatusOffline {
			siteID := ""
			if view.Site != nil {
				siteID = view.Site.ID
			}

			alert := types.Alert{
				ID:         uuid.NewString(),
				SensorID:   view.ProviderSensorID,
				SiteID:     siteID,
				AlertType:  types.AlertTypeConnectivity,
				Severity:   types.SeverityWarning,
				Message:    fmt.Sprintf("sensor %s has not reported within the monitoring window", view.ProviderSensorID),
				ObservedAt: time.Now().UTC(),
			}

			if e := svc.addIfNotOpen(ctx, alert); e != nil {
				errs = append(errs, e)
			}
		}
	}

	err = errors.Join(errs...)
	return err
}

func (svc *alertSvc) Query(ctx context.Context, principal types.Principal, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
	conditions = append(conditions, storage.WithScope(principal.Scope()))

	alerts, err := svc.storage.QueryAlerts(ctx, conditions...)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (svc *alertSvc) Summary(ctx context.Context, principal types.Principal) (types.AlertSummary, error) {
	summary, err := svc.storage.AlertSummary(ctx, storage.WithScope(principal.Scope()))
	if err != nil {
		return types.AlertSummary{}, err
	}

	return summary, nil
}
