package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// MonitoringClient is a typed client for the monitoring service API, meant
// for other services that need sensor views or alert state without going
// through the database.
type MonitoringClient interface {
	GetSensorViews(ctx context.Context) ([]types.EnrichedSensorView, error)
	GetOpenAlerts(ctx context.Context) (types.Collection[types.Alert], error)
}

type monitoringClient struct {
	url   string
	token string

	httpClient http.Client
}

var tracer = otel.Tracer("temprx360-client")

func New(serviceURL, token string) MonitoringClient {
	return &monitoringClient{
		url:   serviceURL,
		token: token,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *monitoringClient) GetSensorViews(ctx context.Context) ([]types.EnrichedSensorView, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-sensor-views")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Debug("fetching sensor views")

	body, err := c.get(ctx, c.url+"/api/v0/sensors")
	if err != nil {
		return nil, err
	}

	views := []types.EnrichedSensorView{}
	err = json.Unmarshal(body, &views)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return views, nil
}

func (c *monitoringClient) GetOpenAlerts(ctx context.Context) (types.Collection[types.Alert], error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-open-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := c.get(ctx, c.url+"/api/v0/alerts?resolved=false")
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	alerts := types.Collection[types.Alert]{}
	err = json.Unmarshal(body, &alerts)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (c *monitoringClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
