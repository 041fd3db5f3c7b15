package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

// SeedSites loads sites from a semicolon separated file with the header
// code;name. Existing codes are left untouched.
func SeedSites(ctx context.Context, s *Storage, reader io.ReadCloser) error {
	defer reader.Close()

	r := csv.NewReader(reader)
	r.Comma = ';'

	rows, err := r.ReadAll()
	if err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)

	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}

		code := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if code == "" {
			continue
		}

		_, err := s.GetSite(ctx, WithSiteCode(code))
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNoRows) {
			return err
		}

		err = s.AddSite(ctx, types.Site{
			ID:   uuid.NewString(),
			Code: code,
			Name: name,
		})
		if err != nil && !errors.Is(err, ErrAlreadyExists) {
			log.Error("could not seed site", "code", code, "err", err.Error())
			return err
		}

		log.Info("seeded new site", "code", code)
	}

	return nil
}

// SeedAssignments loads sensor assignments from a semicolon separated file
// with the header provider_sensor_id;site_code;location_type;active. Sensors
// that already have an active assignment are skipped.
func SeedAssignments(ctx context.Context, s *Storage, reader io.ReadCloser) error {
	defer reader.Close()

	r := csv.NewReader(reader)
	r.Comma = ';'

	rows, err := r.ReadAll()
	if err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)

	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}

		sensorID := strings.TrimSpace(row[0])
		siteCode := strings.TrimSpace(row[1])
		locationType := strings.TrimSpace(row[2])

		active := true
		if len(row) > 3 {
			if b, err := strconv.ParseBool(strings.TrimSpace(row[3])); err == nil {
				active = b
			}
		}

		if sensorID == "" || siteCode == "" {
			continue
		}

		site, err := s.GetSite(ctx, WithSiteCode(siteCode))
		if err != nil {
			if errors.Is(err, ErrNoRows) {
				return fmt.Errorf("assignment references unknown site code %s", siteCode)
			}
			return err
		}

		err = s.AddAssignment(ctx, types.SensorAssignment{
			ID:               uuid.NewString(),
			ProviderSensorID: sensorID,
			SiteID:           site.ID,
			LocationType:     locationType,
			Active:           active,
		})
		if err != nil {
			if errors.Is(err, ErrAlreadyExists) {
				log.Debug("sensor already assigned", "provider_sensor_id", sensorID)
				continue
			}
			log.Error("could not seed assignment", "provider_sensor_id", sensorID, "err", err.Error())
			return err
		}

		log.Info("seeded new assignment", "provider_sensor_id", sensorID, "site_code", siteCode)
	}

	return nil
}
