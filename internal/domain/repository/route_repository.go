package repository

import (
	"context"

	"github.com/fare-quote-service/internal/domain"
)

// RouteRepository определяет методы внешнего провайдера маршрутов.
// Провайдер возвращает суммарную дистанцию и длительность кратчайшего
// проезжаемого пути через упорядоченный список точек.
type RouteRepository interface {
	// GetRoute возвращает оценку маршрута по упорядоченным точкам
	// [подача, ...остановки, высадка]
	GetRoute(ctx context.Context, waypoints []domain.Coordinate) (*domain.RouteEstimate, error)
}
