package static

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fare-quote-service/internal/domain"
)

func TestVehicleRepository_Lookup(t *testing.T) {
	repo := NewDefaultVehicleRepository()

	t.Run("catalog order is preserved", func(t *testing.T) {
		vehicles := repo.List()
		require.Len(t, vehicles, 5)
		assert.Equal(t, "saloon", vehicles[0].ID)
		assert.Equal(t, "minibus", vehicles[4].ID)
	})

	t.Run("lookup by id", func(t *testing.T) {
		v := repo.GetByID("mpv")
		require.NotNil(t, v)
		assert.Equal(t, "MPV 6 Seater", v.Name)
		assert.Equal(t, 6, v.Capacity.Passengers)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		assert.Nil(t, repo.GetByID("limousine"))
	})
}

func TestVehicleRepository_EquipmentFees(t *testing.T) {
	repo := NewDefaultVehicleRepository()

	fees := repo.EquipmentFees()
	assert.Equal(t, 5.00, fees.BabySeat)
	assert.Equal(t, 10.00, fees.Wheelchair)
	assert.Equal(t, 6.00, fees.ExtraPassenger)
}

func TestVehicleRepository_Surcharges(t *testing.T) {
	repo := NewDefaultVehicleRepository()
	table := repo.Surcharges()

	t.Run("weekday peaks are charged", func(t *testing.T) {
		assert.Equal(t, 2.50, table.Amount(domain.GroupWeekday, domain.PeriodPeakMedium, "saloon"))
		assert.Equal(t, 6.00, table.Amount(domain.GroupWeekday, domain.PeriodPeakHigh, "minibus"))
	})

	t.Run("weekday night has no surcharge", func(t *testing.T) {
		assert.Equal(t, 0.0, table.Amount(domain.GroupWeekday, domain.PeriodNonPeak, "saloon"))
	})

	t.Run("weekend night is charged", func(t *testing.T) {
		// Friday counts as weekend under the operator policy
		friday := time.Date(2026, 3, 6, 2, 0, 0, 0, time.Local)
		assert.Equal(t, 3.00, table.AmountAt(friday, "saloon"))
	})
}
