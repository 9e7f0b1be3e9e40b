package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fare-quote-service/internal/domain"
)

var (
	heathrowPoint   = domain.Coordinate{Lat: 51.4700, Lng: -0.4543}
	manchesterPoint = domain.Coordinate{Lat: 53.3588, Lng: -2.2727}
	centralLondon   = domain.Coordinate{Lat: 51.5074, Lng: -0.1278}
)

func TestZoneRepository_AirportsNear(t *testing.T) {
	repo := NewDefaultZoneRepository()

	t.Run("point inside airport boundary", func(t *testing.T) {
		found := repo.AirportsNear(heathrowPoint, "london")
		require.Len(t, found, 1)
		assert.Equal(t, "heathrow", found[0].ID)
	})

	t.Run("region index excludes other regions", func(t *testing.T) {
		found := repo.AirportsNear(manchesterPoint, "london")
		assert.Empty(t, found)
	})

	t.Run("empty region searches the whole catalog", func(t *testing.T) {
		found := repo.AirportsNear(manchesterPoint, "")
		require.Len(t, found, 1)
		assert.Equal(t, "manchester", found[0].ID)
	})

	t.Run("point outside any airport", func(t *testing.T) {
		found := repo.AirportsNear(centralLondon, "london")
		assert.Empty(t, found)
	})
}

func TestZoneRepository_ZonesForRoute(t *testing.T) {
	repo := NewDefaultZoneRepository()

	t.Run("sample inside congestion zone", func(t *testing.T) {
		samples := []domain.Coordinate{
			{Lat: 51.5500, Lng: -0.3000}, // outside
			{Lat: 51.5100, Lng: -0.1200}, // inside the congestion zone
		}

		found := repo.ZonesForRoute(samples)
		require.Len(t, found, 1)
		assert.Equal(t, "congestion-charge", found[0].ID)
	})

	t.Run("zone reported once for multiple samples inside", func(t *testing.T) {
		samples := []domain.Coordinate{
			{Lat: 51.5100, Lng: -0.1200},
			{Lat: 51.5000, Lng: -0.1100},
		}

		found := repo.ZonesForRoute(samples)
		assert.Len(t, found, 1)
	})

	t.Run("no samples inside any zone", func(t *testing.T) {
		samples := []domain.Coordinate{
			{Lat: 51.9000, Lng: -0.9000},
		}

		found := repo.ZonesForRoute(samples)
		assert.Empty(t, found)
	})
}

func TestZoneRepository_Catalogs(t *testing.T) {
	repo := NewDefaultZoneRepository()

	assert.Len(t, repo.Zones(), 3)
	assert.Len(t, repo.Airports(), 6)
}
