package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOSRMRouteSerializesLngLat(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		gotQuery = map[string]string{
			"overview":   r.URL.Query().Get("overview"),
			"geometries": r.URL.Query().Get("geometries"),
		}
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [
				{"distance": 1500.5, "duration": 420.1, "geometry": {"type": "LineString", "coordinates": [[20,10],[40,30]]}},
				{"distance": 1800.0, "duration": 500.0, "geometry": {"type": "LineString", "coordinates": []}}
			]
		}`))
	}))
	defer server.Close()

	c := NewOSRMClient(server.URL, 12*time.Second, zap.NewNop())

	route, err := c.Route(context.Background(),
		"driving",
		models.Coordinate{Lat: 10, Lng: 20},
		models.Coordinate{Lat: 30, Lng: 40})
	require.NoError(t, err)

	// Longitude first. Swapping the order routes to the wrong place
	// without any error from the provider.
	assert.Equal(t, "/route/v1/driving/20,10;40,30", gotPath)
	assert.Equal(t, "smartweather-smarttravel/1.0", gotUserAgent)
	assert.Equal(t, map[string]string{"overview": "simplified", "geometries": "geojson"}, gotQuery)

	// Only the first candidate survives.
	assert.Equal(t, 1500.5, route.Distance)
	assert.Equal(t, 420.1, route.Duration)
	assert.JSONEq(t, `{"type":"LineString","coordinates":[[20,10],[40,30]]}`, string(route.Geometry))
}

func TestOSRMRouteFractionalCoordinates(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"code": "Ok", "routes": [{"distance": 1, "duration": 1, "geometry": {}}]}`))
	}))
	defer server.Close()

	c := NewOSRMClient(server.URL, 12*time.Second, zap.NewNop())

	_, err := c.Route(context.Background(),
		"walking",
		models.Coordinate{Lat: 16.8524, Lng: 74.5815},
		models.Coordinate{Lat: 18.52, Lng: 73.85})
	require.NoError(t, err)
	assert.Equal(t, "/route/v1/walking/74.5815,16.8524;73.85,18.52", gotPath)
}

func TestOSRMRouteNoRoute(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "error code", body: `{"code": "NoRoute", "routes": []}`},
		{name: "ok but empty", body: `{"code": "Ok", "routes": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewOSRMClient(server.URL, 12*time.Second, zap.NewNop())

			_, err := c.Route(context.Background(), "driving", models.Coordinate{}, models.Coordinate{})
			assert.ErrorIs(t, err, ErrNoRoute)
		})
	}
}

func TestOSRMRouteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := NewOSRMClient(server.URL, 20*time.Millisecond, zap.NewNop())

	_, err := c.Route(context.Background(), "driving", models.Coordinate{}, models.Coordinate{})
	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}

func TestOSRMRouteUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewOSRMClient(server.URL, 12*time.Second, zap.NewNop())

	_, err := c.Route(context.Background(), "driving", models.Coordinate{}, models.Coordinate{})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}
