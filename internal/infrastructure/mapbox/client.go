package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fare-quote-service/internal/config"
	"github.com/fare-quote-service/internal/domain"
	"github.com/fare-quote-service/internal/domain/repository"
	apperrors "github.com/fare-quote-service/internal/pkg/errors"
)

const (
	metersPerMile = 1609.344

	// Лимит Mapbox Directions на количество точек в одном запросе
	maxWaypoints = 25
)

// directionsResponse - формат ответа Mapbox Directions API
type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // метры
		Duration float64 `json:"duration"` // секунды
	} `json:"routes"`
}

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	profile     string
	logger      *zap.Logger
}

// NewDirectionsClient создает новый клиент для Mapbox Directions API
func NewDirectionsClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.RouteRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		profile:     cfg.DrivingProfile,
		logger:      logger,
	}
}

// GetRoute возвращает дистанцию (мили) и длительность (минуты) кратчайшего
// проезжаемого пути через упорядоченные точки [подача, ...остановки, высадка]
func (c *client) GetRoute(ctx context.Context, waypoints []domain.Coordinate) (*domain.RouteEstimate, error) {
	if len(waypoints) < 2 {
		return nil, apperrors.ErrValidation.WithMessage("route requires at least two waypoints")
	}
	if len(waypoints) > maxWaypoints {
		return nil, apperrors.ErrValidation.WithMessage(
			fmt.Sprintf("route exceeds provider limit of %d waypoints", maxWaypoints))
	}

	coordinates := make([]string, len(waypoints))
	for i, p := range waypoints {
		coordinates[i] = fmt.Sprintf("%f,%f", p.Lng, p.Lat)
	}

	reqURL := fmt.Sprintf("%s/directions/v5/%s/%s?overview=false&access_token=%s",
		c.baseURL,
		c.profile,
		strings.Join(coordinates, ";"),
		c.accessToken,
	)

	c.logger.Debug("Calling Mapbox Directions API",
		zap.Int("waypoints_count", len(waypoints)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, apperrors.ErrRouteProvider.WithMessage(fmt.Sprintf("failed to create request: %v", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, apperrors.ErrRouteProvider.WithMessage(fmt.Sprintf("failed to execute request: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.ErrRouteProvider.WithDetails(map[string]interface{}{
			"status_code": resp.StatusCode,
		})
	}

	var dirResp directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dirResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, apperrors.ErrRouteProvider.WithMessage(fmt.Sprintf("failed to decode response: %v", err))
	}

	// NoRoute / NoSegment - между точками нет проезжаемого пути
	if dirResp.Code != "Ok" {
		c.logger.Warn("Mapbox API returned non-OK code", zap.String("code", dirResp.Code))
		if dirResp.Code == "NoRoute" || dirResp.Code == "NoSegment" {
			return nil, apperrors.ErrNoRouteFound
		}
		return nil, apperrors.ErrRouteProvider.WithDetails(map[string]interface{}{
			"code": dirResp.Code,
		})
	}

	if len(dirResp.Routes) == 0 {
		return nil, apperrors.ErrNoRouteFound
	}

	route := dirResp.Routes[0]
	estimate := &domain.RouteEstimate{
		DistanceMiles:   route.Distance / metersPerMile,
		DurationMinutes: route.Duration / 60.0,
	}

	c.logger.Debug("Mapbox Directions API call successful",
		zap.Float64("distance_miles", estimate.DistanceMiles),
		zap.Float64("duration_minutes", estimate.DurationMinutes))

	return estimate, nil
}
