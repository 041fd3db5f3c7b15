package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/alerts"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/monitoring"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/router"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/storage"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/presentation/api"
	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/matryer/is"
)

func TestHealthEndpoint(t *testing.T) {
	r, _, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", "")

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestSensorsRequireAuthentication(t *testing.T) {
	r, _, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/sensors", "")

	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestSensorsWithValidToken(t *testing.T) {
	r, tokenAuth, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	_, token, err := tokenAuth.Encode(map[string]any{"sub": "admin", "role": "admin"})
	is.NoErr(err)

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/sensors", token)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(len(body) > 0)
}

func TestFlagDefaultsCanBeOverriddenByEnv(t *testing.T) {
	is := is.New(t)

	t.Setenv("SERVICE_PORT", "9999")

	_, flags := parseExternalConfig(context.Background(), defaultFlags())
	is.Equal("9999", flags[servicePort])
}

func setupTest(t *testing.T) (*chi.Mux, *jwtauth.JWTAuth, *is.I) {
	is := is.New(t)
	ctx := context.Background()

	monitor := &monitoring.SensorMonitorMock{
		AggregateFunc: func(ctx context.Context, principal types.Principal) ([]types.EnrichedSensorView, error) {
			return []types.EnrichedSensorView{}, nil
		},
	}
	alertSvc := &alerts.AlertServiceMock{}
	registry := &api.SiteRegistryMock{
		QuerySitesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Site], error) {
			return types.Collection[types.Site]{}, nil
		},
	}

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)

	r := router.New("testService")
	_, err := api.RegisterHandlers(ctx, r, tokenAuth, monitor, alertSvc, registry)
	is.NoErr(err)

	return r, tokenAuth, is
}

func testRequest(is *is.I, ts *httptest.Server, method, path, token string) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)

	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}
