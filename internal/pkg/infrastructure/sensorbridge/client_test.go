package sensorbridge

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestListSensors(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v1/sensors", r.URL.Path)
		is.Equal("Bearer token-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"prov-1001","name":"GFP Cold Storage","lastSeen":"2025-01-01T12:00:00Z","batteryLevel":88},
			{"id":"prov-1002","name":"GSP Fridge"},
			{"name":"record without id"}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "token-123")

	sensors, err := c.ListSensors(ctx)
	is.NoErr(err)
	is.Equal(2, len(sensors))

	s := sensors["prov-1001"]
	is.Equal("GFP Cold Storage", s.Name)
	is.True(s.LastSeen != nil)
	is.Equal(88, *s.BatteryLevel)

	is.True(sensors["prov-1002"].LastSeen == nil)
	is.True(sensors["prov-1002"].BatteryLevel == nil)
}

func TestListGateways(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v1/gateways", r.URL.Path)
		w.Write([]byte(`[{"id":"gw-1","name":"GFP-Gateway","signalStrength":-42}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")

	gateways, err := c.ListGateways(ctx)
	is.NoErr(err)
	is.Equal(1, len(gateways))
	is.Equal(-42, *gateways["gw-1"].SignalStrength)
}

func TestGetReadings(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v1/readings", r.URL.Path)
		is.Equal("prov-1001,prov-1002", r.URL.Query().Get("sensors"))

		w.Write([]byte(`{
			"prov-1001":[
				{"timestamp":"2025-01-01T11:58:00Z","temperature":4.2,"humidity":40.1},
				{"timestamp":"not-a-timestamp","temperature":99.0}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")

	to := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	readings, err := c.GetReadings(ctx, []string{"prov-1001", "prov-1002"}, to.Add(-time.Hour), to)
	is.NoErr(err)
	is.Equal(1, len(readings["prov-1001"]))
	is.Equal(4.2, *readings["prov-1001"][0].Temperature)
}

func TestGetReadingsWithoutIDsShortCircuits(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	c := New("http://localhost:0", "")

	readings, err := c.GetReadings(ctx, nil, time.Now().Add(-time.Hour), time.Now())
	is.NoErr(err)
	is.Equal(0, len(readings))
}

func TestProviderErrorIsTyped(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "")

	_, err := c.ListSensors(ctx)
	is.True(errors.Is(err, ErrProviderUnavailable))
}

func TestDemoBridgeIsStable(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewDemo(func() time.Time { return now })

	s1, err := d.ListSensors(ctx)
	is.NoErr(err)
	s2, err := d.ListSensors(ctx)
	is.NoErr(err)
	is.Equal(s1, s2)

	readings, err := d.GetReadings(ctx, []string{"demo-sensor-1"}, now.Add(-time.Hour), now)
	is.NoErr(err)
	is.Equal(2, len(readings["demo-sensor-1"]))
}
