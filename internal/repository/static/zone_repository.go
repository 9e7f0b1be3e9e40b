package static

import (
	"github.com/fare-quote-service/internal/domain"
	"github.com/fare-quote-service/internal/domain/repository"
)

// zoneRepository - реестр геозон и аэропортов в памяти с индексом
// по регионам. Не мутируется после создания, безопасен для
// конкурентного чтения.
type zoneRepository struct {
	zones    []*domain.Zone
	airports []*domain.Airport

	// регион -> аэропорты региона, чтобы искать за O(размер региона)
	airportsByRegion map[string][]*domain.Airport
}

// NewZoneRepository создает реестр по переданным каталогам
func NewZoneRepository(zones []*domain.Zone, airports []*domain.Airport) repository.ZoneRepository {
	byRegion := make(map[string][]*domain.Airport)
	for _, a := range airports {
		byRegion[a.Region] = append(byRegion[a.Region], a)
	}

	return &zoneRepository{
		zones:            zones,
		airports:         airports,
		airportsByRegion: byRegion,
	}
}

// NewDefaultZoneRepository создает реестр с тарифом оператора
func NewDefaultZoneRepository() repository.ZoneRepository {
	return NewZoneRepository(DefaultZones(), DefaultAirports())
}

func (r *zoneRepository) AirportsNear(point domain.Coordinate, region string) []*domain.Airport {
	candidates := r.airports
	if region != "" {
		candidates = r.airportsByRegion[region]
	}

	var found []*domain.Airport
	for _, a := range candidates {
		if a.Boundary.Contains(point) {
			found = append(found, a)
		}
	}
	return found
}

func (r *zoneRepository) ZonesForRoute(samples []domain.Coordinate) []*domain.Zone {
	var found []*domain.Zone
	for _, z := range r.zones {
		for _, p := range samples {
			if z.Boundary.Contains(p) {
				found = append(found, z)
				break
			}
		}
	}
	return found
}

func (r *zoneRepository) Zones() []*domain.Zone {
	return r.zones
}

func (r *zoneRepository) Airports() []*domain.Airport {
	return r.airports
}
