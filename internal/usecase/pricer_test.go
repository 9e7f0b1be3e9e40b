package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fare-quote-service/internal/domain"
	apperrors "github.com/fare-quote-service/internal/pkg/errors"
)

func testSaloon() *domain.VehicleType {
	return &domain.VehicleType{
		ID:                "saloon",
		Name:              "Saloon",
		Capacity:          domain.Capacity{Passengers: 4, Luggage: 2},
		MinimumFare:       16.40,
		AdditionalStopFee: 5.00,
		Slabs: []domain.DistanceSlab{
			{UpToMiles: 4, Rate: 3.95},
			{UpToMiles: 11, Rate: 3.30},
			{UpToMiles: 20, Rate: 2.80},
			{UpToMiles: 40, Rate: 2.45},
			{UpToMiles: 90, Rate: 2.20},
			{UpToMiles: 300, Rate: 1.95},
		},
		OpenEndedRate: 1.80,
		Hourly:        domain.HourlyTiers{ShortHire: 30.00, LongHire: 25.00},
	}
}

func testEquipmentFees() domain.EquipmentFeeSchedule {
	return domain.EquipmentFeeSchedule{
		BabySeat:       5.00,
		ChildSeat:      5.00,
		BoosterSeat:    4.50,
		Wheelchair:     10.00,
		ExtraPassenger: 6.00,
		ExtraLuggage:   3.00,
	}
}

// Monday 03:00, weekday non-peak, no surcharge cell in any test table
var quietMonday = time.Date(2026, 3, 2, 3, 0, 0, 0, time.Local)

func emptySurcharges() *domain.SurchargeTable {
	return domain.NewSurchargeTable(nil)
}

func oneWayContext(distanceMiles float64, stops int) *tripContext {
	return &tripContext{
		req: &domain.TripRequest{
			BookingType: domain.BookingOneWay,
			PickupTime:  quietMonday,
			Passengers:  domain.PassengerCounts{Count: 2, Luggage: 1},
			NumVehicles: 1,
			OneWay:      &domain.OneWayDetails{},
		},
		outbound: &legContext{
			route: &domain.RouteEstimate{DistanceMiles: distanceMiles},
			stops: stops,
			at:    quietMonday,
		},
		equipment:  testEquipmentFees(),
		surcharges: emptySurcharges(),
		currency:   "GBP",
		discount:   0.10,
	}
}

func TestPricerFor(t *testing.T) {
	for _, bt := range []domain.BookingType{domain.BookingOneWay, domain.BookingHourly, domain.BookingReturn} {
		p, err := pricerFor(bt)
		assert.NoError(t, err)
		assert.NotNil(t, p)
	}

	_, err := pricerFor(domain.BookingType("charter"))
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "UNSUPPORTED_BOOKING_TYPE", appErr.Code)
}

func TestOneWayPricer(t *testing.T) {
	v := testSaloon()

	t.Run("slab rate applies to the whole distance", func(t *testing.T) {
		tc := oneWayContext(12, 0)

		result, err := oneWayPricer{}.Price(v, tc)
		require.NoError(t, err)

		// 12 miles falls into the 11-20 slab, 12 * 2.80
		assert.InDelta(t, 33.60, result.Breakdown.DistanceCharge, 1e-9)
		assert.Equal(t, 33.0, result.TotalAmount)
		assert.Equal(t, "GBP", result.Currency)
		assert.Empty(t, result.Messages)
	})

	t.Run("minimum fare is a floor, not an addition", func(t *testing.T) {
		tc := oneWayContext(3, 0)

		result, err := oneWayPricer{}.Price(v, tc)
		require.NoError(t, err)

		// 3 * 3.95 = 11.85, lifted to the 16.40 minimum
		assert.InDelta(t, 11.85, result.Breakdown.DistanceCharge, 1e-9)
		assert.Equal(t, 16.40, result.Breakdown.MinimumFareFloor)
		assert.Equal(t, 16.0, result.TotalAmount)
		assert.Contains(t, result.Messages, "Minimum fare applied")
	})

	t.Run("stop fees count toward the minimum fare comparison", func(t *testing.T) {
		tc := oneWayContext(3, 2)

		result, err := oneWayPricer{}.Price(v, tc)
		require.NoError(t, err)

		// 11.85 + 2 * 5.00 = 21.85, above the minimum
		assert.InDelta(t, 10.00, result.Breakdown.StopFee, 1e-9)
		assert.Equal(t, 0.0, result.Breakdown.MinimumFareFloor)
		assert.Equal(t, 21.0, result.TotalAmount)
	})

	t.Run("airport and zone fees are added after the floor", func(t *testing.T) {
		tc := oneWayContext(12, 0)
		tc.outbound.pickupAirports = []*domain.Airport{{ID: "heathrow", Name: "London Heathrow", PickupFee: 7.50}}
		tc.outbound.dropoffAirports = []*domain.Airport{{ID: "gatwick", Name: "London Gatwick", DropoffFee: 5.00}}
		tc.outbound.activeZones = []*domain.Zone{{ID: "congestion-charge", Fee: 15.00}}

		result, err := oneWayPricer{}.Price(v, tc)
		require.NoError(t, err)

		assert.InDelta(t, 12.50, result.Breakdown.AirportFee, 1e-9)
		assert.InDelta(t, 15.00, result.Breakdown.SpecialZoneFee, 1e-9)
		// floor(33.60 + 12.50 + 15.00)
		assert.Equal(t, 61.0, result.TotalAmount)
	})

	t.Run("exempt vehicle skips the zone fee", func(t *testing.T) {
		tc := oneWayContext(12, 0)
		tc.outbound.activeZones = []*domain.Zone{
			{ID: "congestion-charge", Fee: 15.00, ExemptVehicles: []string{"saloon"}},
		}

		result, err := oneWayPricer{}.Price(v, tc)
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Breakdown.SpecialZoneFee)
	})

	t.Run("time surcharge from the matrix", func(t *testing.T) {
		tc := oneWayContext(12, 0)
		tc.surcharges = domain.NewSurchargeTable(map[domain.SurchargeKey]float64{
			{Group: domain.GroupWeekday, Period: domain.PeriodPeakHigh, Vehicle: "saloon"}: 4.00,
		})
		tc.outbound.at = time.Date(2026, 3, 2, 17, 0, 0, 0, time.Local) // Monday 17:00

		result, err := oneWayPricer{}.Price(v, tc)
		require.NoError(t, err)

		assert.Equal(t, 4.00, result.Breakdown.TimeSurcharge)
		assert.Equal(t, 37.0, result.TotalAmount)
	})

	t.Run("total is rounded down then multiplied per vehicle", func(t *testing.T) {
		tc := oneWayContext(12, 0)
		tc.req.NumVehicles = 3

		result, err := oneWayPricer{}.Price(v, tc)
		require.NoError(t, err)
		assert.Equal(t, 99.0, result.TotalAmount)
	})
}

func TestHourlyPricer(t *testing.T) {
	v := testSaloon()

	hourlyContext := func(hours float64) *tripContext {
		return &tripContext{
			req: &domain.TripRequest{
				BookingType: domain.BookingHourly,
				PickupTime:  quietMonday,
				Passengers:  domain.PassengerCounts{Count: 2, Luggage: 1},
				NumVehicles: 1,
				Hourly:      &domain.HourlyDetails{Hours: hours},
			},
			outbound:   &legContext{at: quietMonday},
			equipment:  testEquipmentFees(),
			surcharges: emptySurcharges(),
			currency:   "GBP",
		}
	}

	t.Run("short hire tier", func(t *testing.T) {
		result, err := hourlyPricer{}.Price(v, hourlyContext(4))
		require.NoError(t, err)

		assert.InDelta(t, 120.0, result.Breakdown.HourlyCharge, 1e-9)
		assert.Equal(t, 120.0, result.TotalAmount)
		assert.Empty(t, result.Messages)
	})

	t.Run("long hire tier", func(t *testing.T) {
		result, err := hourlyPricer{}.Price(v, hourlyContext(8))
		require.NoError(t, err)

		assert.InDelta(t, 200.0, result.Breakdown.HourlyCharge, 1e-9)
		assert.Equal(t, 200.0, result.TotalAmount)
	})

	t.Run("floor of twice the minimum fare", func(t *testing.T) {
		pricey := testSaloon()
		pricey.MinimumFare = 50.00

		result, err := hourlyPricer{}.Price(pricey, hourlyContext(3))
		require.NoError(t, err)

		// 3 * 30 = 90 is below the 100.00 floor
		assert.Equal(t, 100.0, result.Breakdown.MinimumFareFloor)
		assert.Equal(t, 100.0, result.TotalAmount)
		assert.Contains(t, result.Messages, "Minimum fare applied")
	})

	t.Run("no airport or zone fees on hourly hire", func(t *testing.T) {
		tc := hourlyContext(4)
		result, err := hourlyPricer{}.Price(v, tc)
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.Breakdown.AirportFee)
		assert.Equal(t, 0.0, result.Breakdown.SpecialZoneFee)
	})
}

func TestReturnPricer(t *testing.T) {
	v := testSaloon()

	t.Run("wait-and-return doubles the leg and charges half-rate waiting", func(t *testing.T) {
		tc := &tripContext{
			req: &domain.TripRequest{
				BookingType: domain.BookingReturn,
				PickupTime:  quietMonday,
				Passengers:  domain.PassengerCounts{Count: 2, Luggage: 1},
				NumVehicles: 1,
				Return: &domain.ReturnDetails{
					ReturnType: domain.ReturnWaitAndReturn,
					WaitHours:  2,
				},
			},
			outbound: &legContext{
				route: &domain.RouteEstimate{DistanceMiles: 12.5},
				at:    quietMonday,
			},
			equipment:  testEquipmentFees(),
			surcharges: emptySurcharges(),
			currency:   "GBP",
			discount:   0.10,
		}

		result, err := returnPricer{}.Price(v, tc)
		require.NoError(t, err)

		// leg 12.5 * 2.80 = 35.00, wait 2h at 25.00 / 2 = 25.00
		// combined 35*2 + 25 = 95.00, minus 10% = 85.50, floored to 85
		assert.InDelta(t, 25.00, result.Breakdown.WaitCharge, 1e-9)
		assert.InDelta(t, -9.50, result.Breakdown.ReturnDiscount, 1e-6)
		assert.Equal(t, 85.0, result.TotalAmount)
	})

	t.Run("later-date legs carry their own surcharges", func(t *testing.T) {
		surcharges := domain.NewSurchargeTable(map[domain.SurchargeKey]float64{
			{Group: domain.GroupWeekday, Period: domain.PeriodPeakHigh, Vehicle: "saloon"}: 4.00,
			{Group: domain.GroupWeekend, Period: domain.PeriodNonPeak, Vehicle: "saloon"}:  3.00,
		})

		mondayEvening := time.Date(2026, 3, 2, 17, 0, 0, 0, time.Local)
		saturdayNight := time.Date(2026, 3, 7, 2, 0, 0, 0, time.Local)

		tc := &tripContext{
			req: &domain.TripRequest{
				BookingType: domain.BookingReturn,
				PickupTime:  mondayEvening,
				Passengers:  domain.PassengerCounts{Count: 2, Luggage: 1},
				NumVehicles: 1,
				Return: &domain.ReturnDetails{
					ReturnType: domain.ReturnLaterDate,
					ReturnLeg:  &domain.OneWayDetails{},
				},
			},
			outbound: &legContext{
				route: &domain.RouteEstimate{DistanceMiles: 12},
				at:    mondayEvening,
			},
			returnLeg: &legContext{
				route: &domain.RouteEstimate{DistanceMiles: 12},
				at:    saturdayNight,
			},
			equipment:  testEquipmentFees(),
			surcharges: surcharges,
			currency:   "GBP",
			discount:   0.10,
		}

		result, err := returnPricer{}.Price(v, tc)
		require.NoError(t, err)

		// each leg 33.60, surcharges 4.00 + 3.00
		// combined 74.20, minus 10% = 66.78, floored to 66
		assert.InDelta(t, 67.20, result.Breakdown.DistanceCharge, 1e-9)
		assert.InDelta(t, 7.00, result.Breakdown.TimeSurcharge, 1e-9)
		assert.Equal(t, 66.0, result.TotalAmount)
	})

	t.Run("unknown return type", func(t *testing.T) {
		tc := &tripContext{
			req: &domain.TripRequest{
				BookingType: domain.BookingReturn,
				NumVehicles: 1,
				Return:      &domain.ReturnDetails{ReturnType: domain.ReturnType("open-ended")},
			},
			outbound: &legContext{
				route: &domain.RouteEstimate{DistanceMiles: 12},
				at:    quietMonday,
			},
			equipment:  testEquipmentFees(),
			surcharges: emptySurcharges(),
		}

		_, err := returnPricer{}.Price(v, tc)
		assert.Error(t, err)
	})
}

func TestEquipmentFee(t *testing.T) {
	v := testSaloon()
	fees := testEquipmentFees()

	tests := []struct {
		name     string
		pax      domain.PassengerCounts
		expected float64
	}{
		{
			name:     "no equipment and within capacity",
			pax:      domain.PassengerCounts{Count: 4, Luggage: 2},
			expected: 0,
		},
		{
			name:     "seats are always charged",
			pax:      domain.PassengerCounts{Count: 2, BabySeat: 1, BoosterSeat: 1},
			expected: 9.50,
		},
		{
			name:     "wheelchair is always charged",
			pax:      domain.PassengerCounts{Count: 1, Wheelchair: 1},
			expected: 10.00,
		},
		{
			name:     "only the overflow above capacity is charged",
			pax:      domain.PassengerCounts{Count: 6, Luggage: 3},
			expected: 2*6.00 + 1*3.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, equipmentFee(v, tt.pax, fees), 1e-9)
		})
	}
}

func TestFinalize(t *testing.T) {
	assert.Equal(t, 85.0, finalize(85.5, 1))
	assert.Equal(t, 171.0, finalize(85.5, 2))
	assert.Equal(t, 120.0, finalize(120.0, 1))
}
