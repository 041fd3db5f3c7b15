package sensorbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// ErrProviderUnavailable signals that the telemetry provider could not be
// reached or answered with an error. Callers must treat this as distinct from
// "sensor offline" and never substitute fabricated readings for it.
var ErrProviderUnavailable = errors.New("telemetry provider unavailable")

//go:generate moq -rm -out client_mock.go . Client
type Client interface {
	ListSensors(ctx context.Context) (map[string]types.ProviderSensorRecord, error)
	ListGateways(ctx context.Context) (map[string]types.ProviderGatewayRecord, error)
	GetReadings(ctx context.Context, sensorIDs []string, from, to time.Time) (map[string][]types.Reading, error)
}

var tracer = otel.Tracer("temprx360/sensor-bridge")

type client struct {
	baseURL    string
	token      string
	httpClient http.Client
}

func New(baseURL, token string) Client {
	return &client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   strings.TrimSpace(token),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   15 * time.Second,
		},
	}
}

type sensorRecord struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	LastSeen       *string `json:"lastSeen,omitempty"`
	BatteryLevel   *int    `json:"batteryLevel,omitempty"`
	SignalStrength *int    `json:"signalStrength,omitempty"`
}

type gatewayRecord struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	LastSeen       *string `json:"lastSeen,omitempty"`
	SignalStrength *int    `json:"signalStrength,omitempty"`
}

type readingRecord struct {
	Timestamp   string   `json:"timestamp"`
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
}

func (c *client) ListSensors(ctx context.Context) (map[string]types.ProviderSensorRecord, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-sensors")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var records []sensorRecord
	err = c.get(ctx, "/api/v1/sensors", &records)
	if err != nil {
		return nil, err
	}

	sensors := make(map[string]types.ProviderSensorRecord, len(records))
	for _, r := range records {
		if r.ID == "" {
			continue
		}
		sensors[r.ID] = types.ProviderSensorRecord{
			ID:             r.ID,
			Name:           r.Name,
			LastSeen:       parseTimestamp(r.LastSeen),
			BatteryLevel:   r.BatteryLevel,
			SignalStrength: r.SignalStrength,
		}
	}

	return sensors, nil
}

func (c *client) ListGateways(ctx context.Context) (map[string]types.ProviderGatewayRecord, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-gateways")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var records []gatewayRecord
	err = c.get(ctx, "/api/v1/gateways", &records)
	if err != nil {
		return nil, err
	}

	gateways := make(map[string]types.ProviderGatewayRecord, len(records))
	for _, r := range records {
		if r.ID == "" {
			continue
		}
		gateways[r.ID] = types.ProviderGatewayRecord{
			ID:             r.ID,
			Name:           r.Name,
			LastSeen:       parseTimestamp(r.LastSeen),
			SignalStrength: r.SignalStrength,
		}
	}

	return gateways, nil
}

func (c *client) GetReadings(ctx context.Context, sensorIDs []string, from, to time.Time) (map[string][]types.Reading, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-readings")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if len(sensorIDs) == 0 {
		return map[string][]types.Reading{}, nil
	}

	q := url.Values{}
	q.Set("sensors", strings.Join(sensorIDs, ","))
	q.Set("from", from.UTC().Format(time.RFC3339))
	q.Set("to", to.UTC().Format(time.RFC3339))

	var payload map[string][]readingRecord
	err = c.get(ctx, "/api/v1/readings?"+q.Encode(), &payload)
	if err != nil {
		return nil, err
	}

	readings := make(map[string][]types.Reading, len(payload))
	for id, records := range payload {
		rs := make([]types.Reading, 0, len(records))
		for _, r := range records {
			ts := parseTimestamp(&r.Timestamp)
			if ts == nil {
				continue
			}
			rs = append(rs, types.Reading{
				Timestamp:   *ts,
				Temperature: r.Temperature,
				Humidity:    r.Humidity,
			})
		}
		readings[id] = rs
	}

	return readings, nil
}

func (c *client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrProviderUnavailable, err.Error())
	}

	err = json.Unmarshal(body, result)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrProviderUnavailable, err.Error())
	}

	return nil
}

func parseTimestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}

	t = t.UTC()
	return &t
}
