package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fare-quote-service/internal/domain"
	"github.com/fare-quote-service/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(rds *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: rds.Client(),
		logger: rds.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetRoute получает оценку маршрута из кеша по упорядоченным точкам
func (r *cacheRepository) GetRoute(ctx context.Context, waypoints []domain.Coordinate) (*domain.RouteEstimate, error) {
	data, err := r.Get(ctx, routeKey(waypoints))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var estimate domain.RouteEstimate
	if err := json.Unmarshal(data, &estimate); err != nil {
		r.logger.Error("Failed to unmarshal route estimate from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal route estimate: %w", err)
	}

	return &estimate, nil
}

// SetRoute сохраняет оценку маршрута в кеше
func (r *cacheRepository) SetRoute(
	ctx context.Context,
	waypoints []domain.Coordinate,
	estimate *domain.RouteEstimate,
	ttl time.Duration,
) error {
	data, err := json.Marshal(estimate)
	if err != nil {
		r.logger.Error("Failed to marshal route estimate", zap.Error(err))
		return fmt.Errorf("marshal route estimate: %w", err)
	}

	return r.Set(ctx, routeKey(waypoints), data, ttl)
}

// routeKey строит ключ кеша по упорядоченному списку точек.
// Координаты округляются до 5 знаков (~1 метр), чтобы близкие
// повторные запросы попадали в одну запись.
func routeKey(waypoints []domain.Coordinate) string {
	parts := make([]string, len(waypoints))
	for i, p := range waypoints {
		parts[i] = fmt.Sprintf("%.5f,%.5f", p.Lat, p.Lng)
	}
	return "route:" + strings.Join(parts, ";")
}
