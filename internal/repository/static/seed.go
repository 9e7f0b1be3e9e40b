package static

import (
	"time"

	"github.com/fare-quote-service/internal/domain"
)

// Тариф оператора. Каталоги собираются один раз при старте процесса
// и дальше только читаются.

// DefaultZones возвращает каталог платных зон
func DefaultZones() []*domain.Zone {
	return []*domain.Zone{
		{
			ID:   "congestion-charge",
			Name: "London Congestion Charge Zone",
			Boundary: domain.BoundingBox{
				North: 51.5310,
				South: 51.4870,
				East:  -0.0760,
				West:  -0.1640,
			},
			Fee: 15.00,
			Hours: &domain.OperatingHours{
				Days: []time.Weekday{
					time.Monday, time.Tuesday, time.Wednesday,
					time.Thursday, time.Friday,
				},
				StartHour: 7,
				EndHour:   18,
			},
		},
		{
			ID:   "dartford-crossing",
			Name: "Dartford Crossing",
			Boundary: domain.BoundingBox{
				North: 51.4760,
				South: 51.4550,
				East:  0.2720,
				West:  0.2480,
			},
			Fee: 2.50,
		},
		{
			ID:   "blackwall-tunnel",
			Name: "Blackwall Tunnel",
			Boundary: domain.BoundingBox{
				North: 51.5120,
				South: 51.4940,
				East:  0.0100,
				West:  -0.0140,
			},
			Fee: 4.00,
			Hours: &domain.OperatingHours{
				Days: []time.Weekday{
					time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
					time.Friday, time.Saturday, time.Sunday,
				},
				StartHour: 6,
				EndHour:   22,
			},
		},
	}
}

// DefaultAirports возвращает каталог аэропортов со сборами
func DefaultAirports() []*domain.Airport {
	return []*domain.Airport{
		{
			ID:     "heathrow",
			Name:   "London Heathrow",
			Region: "london",
			Boundary: domain.BoundingBox{
				North: 51.4830,
				South: 51.4440,
				East:  -0.4120,
				West:  -0.4920,
			},
			PickupFee:  7.50,
			DropoffFee: 5.00,
		},
		{
			ID:     "gatwick",
			Name:   "London Gatwick",
			Region: "london",
			Boundary: domain.BoundingBox{
				North: 51.1660,
				South: 51.1380,
				East:  -0.1450,
				West:  -0.2050,
			},
			PickupFee:  8.00,
			DropoffFee: 5.00,
		},
		{
			ID:     "stansted",
			Name:   "London Stansted",
			Region: "london",
			Boundary: domain.BoundingBox{
				North: 51.9050,
				South: 51.8710,
				East:  0.2600,
				West:  0.2100,
			},
			PickupFee:  7.00,
			DropoffFee: 7.00,
		},
		{
			ID:     "luton",
			Name:   "London Luton",
			Region: "london",
			Boundary: domain.BoundingBox{
				North: 51.8870,
				South: 51.8680,
				East:  -0.3500,
				West:  -0.3940,
			},
			PickupFee:  5.00,
			DropoffFee: 4.00,
		},
		{
			ID:     "london-city",
			Name:   "London City Airport",
			Region: "london",
			Boundary: domain.BoundingBox{
				North: 51.5090,
				South: 51.4990,
				East:  0.0680,
				West:  0.0420,
			},
			PickupFee:  5.60,
			DropoffFee: 3.50,
		},
		{
			ID:     "manchester",
			Name:   "Manchester Airport",
			Region: "manchester",
			Boundary: domain.BoundingBox{
				North: 53.3720,
				South: 53.3480,
				East:  -2.2500,
				West:  -2.3050,
			},
			PickupFee:  6.00,
			DropoffFee: 4.50,
		},
	}
}

// DefaultVehicles возвращает каталог классов машин. Дистанционный тариф
// полосовой: одна ставка за милю на весь путь, полосы упорядочены
// по возрастанию, последняя полоса "300+" открытая.
func DefaultVehicles() []*domain.VehicleType {
	return []*domain.VehicleType{
		{
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
		},
		{
			ID:                "estate",
			Name:              "Estate",
			Capacity:          domain.Capacity{Passengers: 4, Luggage: 4},
			MinimumFare:       18.90,
			AdditionalStopFee: 5.00,
			Slabs: []domain.DistanceSlab{
				{UpToMiles: 4, Rate: 4.35},
				{UpToMiles: 11, Rate: 3.65},
				{UpToMiles: 20, Rate: 3.10},
				{UpToMiles: 40, Rate: 2.70},
				{UpToMiles: 90, Rate: 2.40},
				{UpToMiles: 300, Rate: 2.15},
			},
			OpenEndedRate: 2.00,
			Hourly:        domain.HourlyTiers{ShortHire: 33.00, LongHire: 27.50},
		},
		{
			ID:                "mpv",
			Name:              "MPV 6 Seater",
			Capacity:          domain.Capacity{Passengers: 6, Luggage: 4},
			MinimumFare:       24.50,
			AdditionalStopFee: 6.00,
			Slabs: []domain.DistanceSlab{
				{UpToMiles: 4, Rate: 5.20},
				{UpToMiles: 11, Rate: 4.40},
				{UpToMiles: 20, Rate: 3.75},
				{UpToMiles: 40, Rate: 3.25},
				{UpToMiles: 90, Rate: 2.90},
				{UpToMiles: 300, Rate: 2.60},
			},
			OpenEndedRate: 2.40,
			Hourly:        domain.HourlyTiers{ShortHire: 39.00, LongHire: 32.50},
		},
		{
			ID:                "executive",
			Name:              "Executive",
			Capacity:          domain.Capacity{Passengers: 3, Luggage: 2},
			MinimumFare:       28.00,
			AdditionalStopFee: 7.50,
			Slabs: []domain.DistanceSlab{
				{UpToMiles: 4, Rate: 5.95},
				{UpToMiles: 11, Rate: 5.00},
				{UpToMiles: 20, Rate: 4.30},
				{UpToMiles: 40, Rate: 3.75},
				{UpToMiles: 90, Rate: 3.35},
				{UpToMiles: 300, Rate: 3.00},
			},
			OpenEndedRate: 2.80,
			Hourly:        domain.HourlyTiers{ShortHire: 45.00, LongHire: 37.50},
		},
		{
			ID:                "minibus",
			Name:              "Minibus 8 Seater",
			Capacity:          domain.Capacity{Passengers: 8, Luggage: 8},
			MinimumFare:       32.00,
			AdditionalStopFee: 8.00,
			Slabs: []domain.DistanceSlab{
				{UpToMiles: 4, Rate: 6.50},
				{UpToMiles: 11, Rate: 5.50},
				{UpToMiles: 20, Rate: 4.70},
				{UpToMiles: 40, Rate: 4.10},
				{UpToMiles: 90, Rate: 3.65},
				{UpToMiles: 300, Rate: 3.30},
			},
			OpenEndedRate: 3.05,
			Hourly:        domain.HourlyTiers{ShortHire: 51.00, LongHire: 42.50},
		},
	}
}

// DefaultEquipmentFees возвращает прейскурант на оборудование
func DefaultEquipmentFees() domain.EquipmentFeeSchedule {
	return domain.EquipmentFeeSchedule{
		BabySeat:       5.00,
		ChildSeat:      5.00,
		BoosterSeat:    4.50,
		Wheelchair:     10.00,
		ExtraPassenger: 6.00,
		ExtraLuggage:   3.00,
	}
}

// DefaultSurcharges возвращает матрицу временных надбавок.
// Отсутствующие ячейки (например, ночь в будни) означают надбавку 0.
func DefaultSurcharges() *domain.SurchargeTable {
	entries := map[domain.SurchargeKey]float64{}

	weekdayMedium := map[string]float64{
		"saloon": 2.50, "estate": 2.50, "mpv": 3.00, "executive": 3.50, "minibus": 4.00,
	}
	weekdayHigh := map[string]float64{
		"saloon": 4.00, "estate": 4.00, "mpv": 4.50, "executive": 5.50, "minibus": 6.00,
	}
	weekendNonPeak := map[string]float64{
		"saloon": 3.00, "estate": 3.00, "mpv": 3.50, "executive": 4.00, "minibus": 4.50,
	}
	weekendMedium := map[string]float64{
		"saloon": 4.50, "estate": 4.50, "mpv": 5.00, "executive": 6.00, "minibus": 6.50,
	}
	weekendHigh := map[string]float64{
		"saloon": 6.50, "estate": 6.50, "mpv": 7.00, "executive": 8.00, "minibus": 9.00,
	}

	fill := func(group domain.WeekdayGroup, period domain.TimePeriod, amounts map[string]float64) {
		for vehicle, amount := range amounts {
			entries[domain.SurchargeKey{Group: group, Period: period, Vehicle: vehicle}] = amount
		}
	}

	fill(domain.GroupWeekday, domain.PeriodPeakMedium, weekdayMedium)
	fill(domain.GroupWeekday, domain.PeriodPeakHigh, weekdayHigh)
	fill(domain.GroupWeekend, domain.PeriodNonPeak, weekendNonPeak)
	fill(domain.GroupWeekend, domain.PeriodPeakMedium, weekendMedium)
	fill(domain.GroupWeekend, domain.PeriodPeakHigh, weekendHigh)

	return domain.NewSurchargeTable(entries)
}
