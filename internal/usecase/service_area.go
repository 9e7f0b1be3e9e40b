package usecase

import (
	"go.uber.org/zap"

	"github.com/fare-quote-service/internal/domain"
	apperrors "github.com/fare-quote-service/internal/pkg/errors"
)

// ServiceAreaGate - проверка допуска перед тарификацией: подача и высадка
// должны лежать внутри операционной границы оператора
type ServiceAreaGate struct {
	boundary domain.BoundingBox
	logger   *zap.Logger
}

func NewServiceAreaGate(boundary domain.BoundingBox, logger *zap.Logger) *ServiceAreaGate {
	return &ServiceAreaGate{
		boundary: boundary,
		logger:   logger,
	}
}

// IsRouteServiceable проверяет обслуживаемость маршрута.
// При отказе возвращает ошибку с кодом LOCATION_NOT_SERVICEABLE.
func (g *ServiceAreaGate) IsRouteServiceable(pickup, dropoff domain.Coordinate) error {
	if !g.boundary.Contains(pickup) {
		g.logger.Info("Pickup outside service area",
			zap.Float64("lat", pickup.Lat),
			zap.Float64("lng", pickup.Lng))
		return apperrors.ErrLocationNotServiceable.WithMessage(
			"Pickup location is outside the operating area")
	}
	if !g.boundary.Contains(dropoff) {
		g.logger.Info("Dropoff outside service area",
			zap.Float64("lat", dropoff.Lat),
			zap.Float64("lng", dropoff.Lng))
		return apperrors.ErrLocationNotServiceable.WithMessage(
			"Dropoff location is outside the operating area")
	}
	return nil
}
