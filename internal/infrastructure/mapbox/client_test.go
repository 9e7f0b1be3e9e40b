package mapbox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fare-quote-service/internal/config"
	"github.com/fare-quote-service/internal/domain"
	apperrors "github.com/fare-quote-service/internal/pkg/errors"
)

func testConfig(baseURL string) *config.MapboxConfig {
	return &config.MapboxConfig{
		AccessToken:    "test_token",
		BaseURL:        baseURL,
		DrivingProfile: "mapbox/driving",
		RequestTimeout: 30,
	}
}

var testWaypoints = []domain.Coordinate{
	{Lat: 51.5074, Lng: -0.1278},
	{Lat: 51.4700, Lng: -0.4543},
}

func TestClient_GetRoute(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request converts units", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "/directions/v5/mapbox/driving/")
			assert.Equal(t, "test_token", r.URL.Query().Get("access_token"))
			assert.Equal(t, "false", r.URL.Query().Get("overview"))

			w.Header().Set("Content-Type", "application/json")
			// 16093.44 m = 10 miles, 1800 s = 30 minutes
			w.Write([]byte(`{"code":"Ok","routes":[{"distance":16093.44,"duration":1800}]}`))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		estimate, err := client.GetRoute(context.Background(), testWaypoints)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, estimate.DistanceMiles, 1e-9)
		assert.InDelta(t, 30.0, estimate.DurationMinutes, 1e-9)
	})

	t.Run("first route wins when provider returns alternatives", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"Ok","routes":[{"distance":3218.688,"duration":600},{"distance":4828.032,"duration":540}]}`))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		estimate, err := client.GetRoute(context.Background(), testWaypoints)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, estimate.DistanceMiles, 1e-9)
	})

	t.Run("NoRoute code maps to route-not-found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		estimate, err := client.GetRoute(context.Background(), testWaypoints)
		assert.Nil(t, estimate)
		assert.Equal(t, apperrors.ErrNoRouteFound, err)
	})

	t.Run("other non-OK code is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"InvalidInput","routes":[]}`))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		_, err := client.GetRoute(context.Background(), testWaypoints)
		require.Error(t, err)
		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "ROUTE_PROVIDER_ERROR", appErr.Code)
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	})

	t.Run("non-200 status is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		_, err := client.GetRoute(context.Background(), testWaypoints)
		require.Error(t, err)
		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "ROUTE_PROVIDER_ERROR", appErr.Code)
		assert.Equal(t, http.StatusUnauthorized, appErr.Details["status_code"])
	})

	t.Run("OK code with empty routes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"Ok","routes":[]}`))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		_, err := client.GetRoute(context.Background(), testWaypoints)
		assert.Equal(t, apperrors.ErrNoRouteFound, err)
	})

	t.Run("fewer than two waypoints", func(t *testing.T) {
		client := NewDirectionsClient(testConfig("http://localhost"), logger)

		_, err := client.GetRoute(context.Background(), testWaypoints[:1])
		require.Error(t, err)
		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("waypoint count over provider limit", func(t *testing.T) {
		client := NewDirectionsClient(testConfig("http://localhost"), logger)

		many := make([]domain.Coordinate, 26)
		for i := range many {
			many[i] = domain.Coordinate{Lat: 51.5, Lng: -0.1}
		}

		_, err := client.GetRoute(context.Background(), many)
		require.Error(t, err)
		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}
