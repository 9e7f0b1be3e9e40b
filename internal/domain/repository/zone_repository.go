package repository

import (
	"github.com/fare-quote-service/internal/domain"
)

// ZoneRepository определяет методы реестра геозон и аэропортов.
// Каталог статический, загружается один раз при старте.
type ZoneRepository interface {
	// AirportsNear возвращает все аэропорты, граница которых содержит точку.
	// Непустой region ограничивает поиск аэропортами региона
	// (региональный индекс, без сканирования всего каталога).
	AirportsNear(point domain.Coordinate, region string) []*domain.Airport

	// ZonesForRoute возвращает зоны, в которые попадает хотя бы одна
	// из выборочных точек маршрута. Точечная выборка, не пересечение
	// с полилинией - задокументированное ограничение.
	ZonesForRoute(samples []domain.Coordinate) []*domain.Zone

	// Zones возвращает весь каталог зон
	Zones() []*domain.Zone

	// Airports возвращает весь каталог аэропортов
	Airports() []*domain.Airport
}
