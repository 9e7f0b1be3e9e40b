package repository

import (
	"context"
	"time"

	"github.com/fare-quote-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetRoute получает оценку маршрута из кеша по точкам
	GetRoute(ctx context.Context, waypoints []domain.Coordinate) (*domain.RouteEstimate, error)

	// SetRoute сохраняет оценку маршрута в кеше
	SetRoute(ctx context.Context, waypoints []domain.Coordinate, estimate *domain.RouteEstimate, ttl time.Duration) error
}
