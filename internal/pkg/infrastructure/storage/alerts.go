package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/jackc/pgx/v5"
)

// AddAlert inserts a new open alert. The partial unique index on
// (sensor_id, alert_type) WHERE NOT resolved makes the check-then-create
// atomic: when a concurrent insert already created an open alert for the
// same pair, ON CONFLICT DO NOTHING drops this one and ErrSingleOpenAlert
// is returned. Alerts without a sensor never collide (NULLs are distinct).
func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" {
		return ErrNoID
	}

	var sensorID, siteID *string
	if alert.SensorID != "" {
		sensorID = &alert.SensorID
	}
	if alert.SiteID != "" {
		siteID = &alert.SiteID
	}

	args := pgx.NamedArgs{
		"alert_id":        alert.ID,
		"sensor_id":       sensorID,
		"site_id":         siteID,
		"alert_type":      alert.AlertType,
		"severity":        int(alert.Severity),
		"message":         alert.Message,
		"current_value":   alert.CurrentValue,
		"threshold_value": alert.ThresholdValue,
		"observed_at":     alert.ObservedAt,
	}

	tag, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, sensor_id, site_id, alert_type, severity, message, current_value, threshold_value, observed_at)
		VALUES (@alert_id, @sensor_id, @site_id, @alert_type, @severity, @message, @current_value, @threshold_value, @observed_at)
		ON CONFLICT (sensor_id, alert_type) WHERE NOT resolved DO NOTHING
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSingleOpenAlert
	}

	return nil
}

// ResolveAlert marks an open alert resolved. The conditional update reports
// whether a row actually changed, so a second resolution attempt is
// detectable as ErrAlreadyResolved instead of silently succeeding twice.
func (s *Storage) ResolveAlert(ctx context.Context, alertID, resolvedBy, note string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET resolved = TRUE, resolved_at = CURRENT_TIMESTAMP, resolved_by = @resolved_by, resolved_note = @resolved_note
		WHERE alert_id = @alert_id AND resolved = FALSE
	`, pgx.NamedArgs{
		"alert_id":      alertID,
		"resolved_by":   resolvedBy,
		"resolved_note": note,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 1 {
		return nil
	}

	var resolved bool
	err = s.pool.QueryRow(ctx, `
		SELECT resolved FROM alerts WHERE alert_id = @alert_id
	`, pgx.NamedArgs{"alert_id": alertID}).Scan(&resolved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoRows
		}
		return err
	}

	if resolved {
		return ErrAlreadyResolved
	}

	return ErrStoreFailed
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT alert_id, sensor_id, site_id, alert_type, severity, message, current_value, threshold_value, resolved, resolved_at, resolved_by, resolved_note, observed_at
		FROM alerts
		%s
	`, where)

	row := s.pool.QueryRow(ctx, query, args)

	alert, err := scanAlert(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "observed_at"
		condition.sortOrder = "DESC"
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var offsetLimit string

	if condition.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", condition.Offset())
	}

	if condition.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", condition.Limit())
	}

	var count int64

	query := fmt.Sprintf(`
		SELECT alert_id, sensor_id, site_id, alert_type, severity, message, current_value, threshold_value, resolved, resolved_at, resolved_by, resolved_note, observed_at, count(*) OVER () AS count
		FROM alerts
		%s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), offsetLimit)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}
	defer rows.Close()

	alerts := make([]types.Alert, 0)

	for rows.Next() {
		alert, err := scanAlertRow(rows, &count)
		if err != nil {
			return types.Collection[types.Alert]{}, err
		}
		alerts = append(alerts, alert)
	}

	if rows.Err() != nil {
		return types.Collection[types.Alert]{}, rows.Err()
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}

// AlertSummary returns alert counts grouped by severity and resolution state.
func (s *Storage) AlertSummary(ctx context.Context, conditions ...ConditionFunc) (types.AlertSummary, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT severity, resolved, count(*)
		FROM alerts
		%s
		GROUP BY severity, resolved
	`, where)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.AlertSummary{}, err
	}

	summary := types.AlertSummary{
		Open:     map[string]uint64{},
		Resolved: map[string]uint64{},
	}

	var severity int
	var resolved bool
	var count int64

	_, err = pgx.ForEachRow(rows, []any{&severity, &resolved, &count}, func() error {
		key := types.AlertSeverity(severity).String()
		if resolved {
			summary.Resolved[key] += uint64(count)
		} else {
			summary.Open[key] += uint64(count)
		}
		return nil
	})
	if err != nil {
		return types.AlertSummary{}, err
	}

	return summary, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (types.Alert, error) {
	return scanAlertColumns(row, nil)
}

func scanAlertRow(row rowScanner, count *int64) (types.Alert, error) {
	return scanAlertColumns(row, count)
}

func scanAlertColumns(row rowScanner, count *int64) (types.Alert, error) {
	var alertID, alertType, message string
	var sensorID, siteID, resolvedBy, resolvedNote *string
	var severity int
	var currentValue, thresholdValue *float64
	var resolved bool
	var resolvedAt *time.Time
	var observedAt time.Time

	dest := []any{&alertID, &sensorID, &siteID, &alertType, &severity, &message, &currentValue, &thresholdValue, &resolved, &resolvedAt, &resolvedBy, &resolvedNote, &observedAt}
	if count != nil {
		dest = append(dest, count)
	}

	err := row.Scan(dest...)
	if err != nil {
		return types.Alert{}, err
	}

	alert := types.Alert{
		ID:             alertID,
		AlertType:      alertType,
		Severity:       types.AlertSeverity(severity),
		Message:        message,
		CurrentValue:   currentValue,
		ThresholdValue: thresholdValue,
		Resolved:       resolved,
		ResolvedAt:     resolvedAt,
		ObservedAt:     observedAt,
	}

	if sensorID != nil {
		alert.SensorID = *sensorID
	}
	if siteID != nil {
		alert.SiteID = *siteID
	}
	if resolvedBy != nil {
		alert.ResolvedBy = *resolvedBy
	}
	if resolvedNote != nil {
		alert.ResolvedNote = *resolvedNote
	}

	return alert, nil
}
