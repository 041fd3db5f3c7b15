package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AddAssignment stores a new sensor assignment. The partial unique index on
// active assignments guarantees at most one active binding per provider
// sensor, so a duplicate surfaces as ErrAlreadyExists instead of a second row.
func (s *Storage) AddAssignment(ctx context.Context, a types.SensorAssignment) error {
	if a.ID == "" || a.ProviderSensorID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"assignment_id":      a.ID,
		"provider_sensor_id": a.ProviderSensorID,
		"site_id":            a.SiteID,
		"location_type":      a.LocationType,
		"active":             a.Active,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO sensor_assignments (assignment_id, provider_sensor_id, site_id, location_type, active)
		VALUES (@assignment_id, @provider_sensor_id, @site_id, @location_type, @active)
	`, args)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}

	return nil
}

// SetAssignmentActive soft-enables or -disables an assignment without
// deleting history.
func (s *Storage) SetAssignmentActive(ctx context.Context, assignmentID string, active bool) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE sensor_assignments
		SET active = @active, modified_on = CURRENT_TIMESTAMP
		WHERE assignment_id = @assignment_id
	`, pgx.NamedArgs{
		"assignment_id": assignmentID,
		"active":        active,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetAssignment(ctx context.Context, conditions ...ConditionFunc) (types.SensorAssignment, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var assignmentID, providerSensorID, siteID, locationType string
	var active bool
	var createdOn time.Time

	query := fmt.Sprintf(`
		SELECT assignment_id, provider_sensor_id, site_id, location_type, active, created_on
		FROM sensor_assignments
		%s
		ORDER BY created_on DESC
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&assignmentID, &providerSensorID, &siteID, &locationType, &active, &createdOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.SensorAssignment{}, ErrNoRows
		}
		return types.SensorAssignment{}, err
	}

	return types.SensorAssignment{
		ID:               assignmentID,
		ProviderSensorID: providerSensorID,
		SiteID:           siteID,
		LocationType:     locationType,
		Active:           active,
		CreatedOn:        createdOn,
	}, nil
}

func (s *Storage) QueryAssignments(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.SensorAssignment], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "site_id"
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

	var assignmentID, providerSensorID, siteID, locationType string
	var active bool
	var createdOn time.Time
	var count int64

	query := fmt.Sprintf(`
		SELECT assignment_id, provider_sensor_id, site_id, location_type, active, created_on, count(*) OVER () AS count
		FROM sensor_assignments
		%s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), offsetLimit)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.SensorAssignment]{}, err
	}

	assignments := make([]types.SensorAssignment, 0)

	_, err = pgx.ForEachRow(rows, []any{&assignmentID, &providerSensorID, &siteID, &locationType, &active, &createdOn, &count}, func() error {
		assignments = append(assignments, types.SensorAssignment{
			ID:               assignmentID,
			ProviderSensorID: providerSensorID,
			SiteID:           siteID,
			LocationType:     locationType,
			Active:           active,
			CreatedOn:        createdOn,
		})
		return nil
	})
	if err != nil {
		return types.Collection[types.SensorAssignment]{}, err
	}

	return types.Collection[types.SensorAssignment]{
		Data:       assignments,
		Count:      uint64(len(assignments)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}
