package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/alerts"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/monitoring"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/sensorbridge"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/storage"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/presentation/api/auth"
	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/matryer/is"
)

func TestQuerySensorsHandler(t *testing.T) {
	is, log := testSetup(t)

	monitor := &monitoring.SensorMonitorMock{
		AggregateFunc: func(ctx context.Context, principal types.Principal) ([]types.EnrichedSensorView, error) {
			return []types.EnrichedSensorView{
				{AssignmentID: "a-1", ProviderSensorID: "prov-1001", Status: types.StatusOnline},
			}, nil
		},
	}

	res := httptest.NewRecorder()
	querySensorsHandler(log, monitor).ServeHTTP(res, requestAs(adminPrincipal(), http.MethodGet, "/api/v0/sensors", ""))

	is.Equal(http.StatusOK, res.Code)
	is.Equal("application/json", res.Header().Get("Content-Type"))

	var views []types.EnrichedSensorView
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &views))
	is.Equal(1, len(views))
	is.Equal("prov-1001", views[0].ProviderSensorID)

	// the caller's principal reaches the aggregator untouched
	is.Equal("admin", monitor.AggregateCalls()[0].Principal.Subject)
}

func TestQuerySensorsHandlerMapsProviderOutageTo502(t *testing.T) {
	is, log := testSetup(t)

	monitor := &monitoring.SensorMonitorMock{
		AggregateFunc: func(ctx context.Context, principal types.Principal) ([]types.EnrichedSensorView, error) {
			return nil, sensorbridge.ErrProviderUnavailable
		},
	}

	res := httptest.NewRecorder()
	querySensorsHandler(log, monitor).ServeHTTP(res, requestAs(adminPrincipal(), http.MethodGet, "/api/v0/sensors", ""))

	is.Equal(http.StatusBadGateway, res.Code)
}

func TestResolveAlertHandlerStatusMapping(t *testing.T) {
	is, log := testSetup(t)

	for _, tc := range []struct {
		err      error
		expected int
	}{
		{nil, http.StatusNoContent},
		{alerts.ErrAlertNotFound, http.StatusNotFound},
		{alerts.ErrForbidden, http.StatusForbidden},
		{storage.ErrAlreadyResolved, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	} {
		svc := &alerts.AlertServiceMock{
			ResolveFunc: func(ctx context.Context, principal types.Principal, alertID, resolvedBy, note string) error {
				return tc.err
			},
		}

		res := httptest.NewRecorder()
		req := requestAs(adminPrincipal(), http.MethodPatch, "/api/v0/alerts/alert-1", `{"resolvedBy":"supervisor","note":"handled"}`)

		resolveAlertHandler(log, svc).ServeHTTP(res, req)
		is.Equal(tc.expected, res.Code)
	}
}

func TestResolveAlertHandlerRequiresResolvedBy(t *testing.T) {
	is, log := testSetup(t)

	svc := &alerts.AlertServiceMock{}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodPatch, "/api/v0/alerts/alert-1", `{"note":"missing the who"}`)

	resolveAlertHandler(log, svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
	is.Equal(0, len(svc.ResolveCalls()))
}

func TestCreateAlertHandler(t *testing.T) {
	is, log := testSetup(t)

	svc := &alerts.AlertServiceMock{
		CreateFunc: func(ctx context.Context, principal types.Principal, alert types.Alert) (types.Alert, error) {
			alert.ID = "alert-1"
			return alert, nil
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodPost, "/api/v0/alerts", `{"alertType":"connectivity","message":"manual check requested"}`)

	createAlertHandler(log, svc).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)

	var created types.Alert
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &created))
	is.Equal("alert-1", created.ID)
}

func TestCreateAlertHandlerMapsForbidden(t *testing.T) {
	is, log := testSetup(t)

	svc := &alerts.AlertServiceMock{
		CreateFunc: func(ctx context.Context, principal types.Principal, alert types.Alert) (types.Alert, error) {
			return types.Alert{}, alerts.ErrForbidden
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(userPrincipal(), http.MethodPost, "/api/v0/alerts", `{"alertType":"connectivity"}`)

	createAlertHandler(log, svc).ServeHTTP(res, req)

	is.Equal(http.StatusForbidden, res.Code)
}

func TestCreateAlertHandlerMapsOpenAlertToConflict(t *testing.T) {
	is, log := testSetup(t)

	svc := &alerts.AlertServiceMock{
		CreateFunc: func(ctx context.Context, principal types.Principal, alert types.Alert) (types.Alert, error) {
			return types.Alert{}, storage.ErrSingleOpenAlert
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodPost, "/api/v0/alerts", `{"sensorID":"prov-1001","siteID":"site-gfp","alertType":"temperature"}`)

	createAlertHandler(log, svc).ServeHTTP(res, req)

	is.Equal(http.StatusConflict, res.Code)
}

func TestQueryAlertsHandlerParsesFilters(t *testing.T) {
	is, log := testSetup(t)

	svc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, principal types.Principal, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{Data: []types.Alert{}}, nil
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodGet, "/api/v0/alerts?resolved=false&type=temperature&limit=10", "")

	queryAlertsHandler(log, svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	c := &storage.Condition{}
	for _, fn := range svc.QueryCalls()[0].Conditions {
		c = fn(c)
	}
	is.Equal("temperature", c.AlertType)
}

func TestQueryAlertsHandlerParsesSortParams(t *testing.T) {
	is, log := testSetup(t)

	svc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, principal types.Principal, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{Data: []types.Alert{}}, nil
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodGet, "/api/v0/alerts?sort=severity&desc=true", "")

	queryAlertsHandler(log, svc).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	c := &storage.Condition{}
	for _, fn := range svc.QueryCalls()[0].Conditions {
		c = fn(c)
	}
	is.Equal("severity", c.SortBy())
	is.Equal("DESC", c.SortOrder())
}

func TestQueryAlertsHandlerRejectsBadResolvedParam(t *testing.T) {
	is, log := testSetup(t)

	svc := &alerts.AlertServiceMock{}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodGet, "/api/v0/alerts?resolved=banana", "")

	queryAlertsHandler(log, svc).ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestCheckAllSensorsHandlerIsAdminOnly(t *testing.T) {
	is, log := testSetup(t)

	svc := &alerts.AlertServiceMock{
		CheckAllSensorsFunc: func(ctx context.Context) error {
			return nil
		},
	}

	res := httptest.NewRecorder()
	checkAllSensorsHandler(log, svc).ServeHTTP(res, requestAs(userPrincipal(), http.MethodPost, "/api/v0/alerts/check", ""))
	is.Equal(http.StatusForbidden, res.Code)
	is.Equal(0, len(svc.CheckAllSensorsCalls()))

	res = httptest.NewRecorder()
	checkAllSensorsHandler(log, svc).ServeHTTP(res, requestAs(adminPrincipal(), http.MethodPost, "/api/v0/alerts/check", ""))
	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(1, len(svc.CheckAllSensorsCalls()))
}

func TestCreateSiteHandler(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{
		AddSiteFunc: func(ctx context.Context, site types.Site) error {
			return nil
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodPost, "/api/v0/sites", `{"code":"GFP","name":"Greenfield Pharmacy"}`)

	createSiteHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(registry.AddSiteCalls()))
	is.True(registry.AddSiteCalls()[0].Site.ID != "") // an ID is assigned on create
}

func TestCreateSiteHandlerConflictOnDuplicateCode(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{
		AddSiteFunc: func(ctx context.Context, site types.Site) error {
			return storage.ErrAlreadyExists
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodPost, "/api/v0/sites", `{"code":"GFP","name":"Greenfield Pharmacy"}`)

	createSiteHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusConflict, res.Code)
}

func TestUpdateSiteHandlerRenames(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{
		UpdateSiteFunc: func(ctx context.Context, site types.Site) error {
			return nil
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodPatch, "/api/v0/sites/site-gfp", `{"name":"Greenfield Pharmacy North"}`)

	updateSiteHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal("Greenfield Pharmacy North", registry.UpdateSiteCalls()[0].Site.Name)
}

func TestUpdateSiteHandlerUnknownSiteIs404(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{
		UpdateSiteFunc: func(ctx context.Context, site types.Site) error {
			return storage.ErrNoRows
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodPatch, "/api/v0/sites/no-such-site", `{"name":"Orphaned"}`)

	updateSiteHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestUpdateSiteHandlerIsAdminOnly(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{}

	res := httptest.NewRecorder()
	req := requestAs(userPrincipal(), http.MethodPatch, "/api/v0/sites/site-gfp", `{"name":"Renamed"}`)

	updateSiteHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusForbidden, res.Code)
	is.Equal(0, len(registry.UpdateSiteCalls()))
}

func TestCreateAssignmentHandlerIsAdminOnly(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{
		AddAssignmentFunc: func(ctx context.Context, a types.SensorAssignment) error {
			return nil
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(userPrincipal(), http.MethodPost, "/api/v0/assignments", `{"providerSensorID":"prov-1001","siteID":"site-gfp"}`)

	createAssignmentHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusForbidden, res.Code)
	is.Equal(0, len(registry.AddAssignmentCalls()))
}

func TestGetAssignmentHandlerScopesLookup(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{
		GetAssignmentFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.SensorAssignment, error) {
			return types.SensorAssignment{ID: "a-1", ProviderSensorID: "prov-1001", SiteID: "site-gfp"}, nil
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(userPrincipal(), http.MethodGet, "/api/v0/assignments/a-1", "")

	getAssignmentHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	var a types.SensorAssignment
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &a))
	is.Equal("prov-1001", a.ProviderSensorID)

	// lookups only see sites the caller is granted
	c := &storage.Condition{}
	for _, fn := range registry.GetAssignmentCalls()[0].Conditions {
		c = fn(c)
	}
	is.Equal([]string{"site-gfp"}, c.SiteIDs)
}

func TestGetAssignmentHandlerUnknownIs404(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{
		GetAssignmentFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.SensorAssignment, error) {
			return types.SensorAssignment{}, storage.ErrNoRows
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodGet, "/api/v0/assignments/no-such-assignment", "")

	getAssignmentHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestQueryAssignmentsHandlerFiltersByProviderSensor(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{
		QueryAssignmentsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.SensorAssignment], error) {
			return types.Collection[types.SensorAssignment]{Data: []types.SensorAssignment{}}, nil
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodGet, "/api/v0/assignments?providerSensorID=prov-1001", "")

	queryAssignmentsHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	c := &storage.Condition{}
	for _, fn := range registry.QueryAssignmentsCalls()[0].Conditions {
		c = fn(c)
	}
	is.Equal("prov-1001", c.ProviderSensorID)
}

func TestPatchAssignmentHandlerDeactivates(t *testing.T) {
	is, log := testSetup(t)

	registry := &SiteRegistryMock{
		SetAssignmentActiveFunc: func(ctx context.Context, assignmentID string, active bool) error {
			return nil
		},
	}

	res := httptest.NewRecorder()
	req := requestAs(adminPrincipal(), http.MethodPatch, "/api/v0/assignments/a-1", `{"active":false}`)

	patchAssignmentHandler(log, registry).ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(false, registry.SetAssignmentActiveCalls()[0].Active)
}

func adminPrincipal() types.Principal {
	return types.Principal{Subject: "admin", Role: types.RoleAdministrator}
}

func userPrincipal() types.Principal {
	return types.Principal{Subject: "tech", Role: types.RoleUser, SiteIDs: []string{"site-gfp"}}
}

func requestAs(principal types.Principal, method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(auth.WithPrincipal(req.Context(), principal))
}

func testSetup(t *testing.T) (*is.I, *slog.Logger) {
	return is.New(t), slog.New(slog.NewTextHandler(io.Discard, nil))
}
