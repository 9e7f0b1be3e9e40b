package usecase

import (
	"math"
	"time"

	"github.com/fare-quote-service/internal/domain"
	apperrors "github.com/fare-quote-service/internal/pkg/errors"
)

// legContext - разрешённый контекст одной ноги поездки: маршрут,
// аэропорты на концах, активные платные зоны по пути и локальное
// время подачи для надбавок
type legContext struct {
	route           *domain.RouteEstimate
	stops           int
	pickupAirports  []*domain.Airport
	dropoffAirports []*domain.Airport
	activeZones     []*domain.Zone
	at              time.Time
}

// tripContext собирается оркестратором один раз на запрос и читается
// стратегиями для каждого класса машины
type tripContext struct {
	req        *domain.TripRequest
	outbound   *legContext
	returnLeg  *legContext // только для later-date
	equipment  domain.EquipmentFeeSchedule
	surcharges *domain.SurchargeTable
	currency   string
	discount   float64 // доля скидки туда-обратно
}

// bookingPricer - стратегия тарификации одного типа поездки.
// Реализации чистые: одна и та же арифметика для каждого класса,
// без обращений к сети.
type bookingPricer interface {
	Price(v *domain.VehicleType, tc *tripContext) (*domain.FareResult, error)
}

// pricerFor возвращает стратегию по дискриминанту поездки
func pricerFor(bookingType domain.BookingType) (bookingPricer, error) {
	switch bookingType {
	case domain.BookingOneWay:
		return oneWayPricer{}, nil
	case domain.BookingHourly:
		return hourlyPricer{}, nil
	case domain.BookingReturn:
		return returnPricer{}, nil
	default:
		return nil, apperrors.ErrUnsupportedBookingType.WithDetails(map[string]interface{}{
			"booking_type": string(bookingType),
		})
	}
}

// legFares - промежуточные суммы одной ноги до надбавок и оборудования
type legFares struct {
	distanceCharge float64
	stopFee        float64
	fare           float64 // база после применения минимального тарифа
	airportFee     float64
	zoneFee        float64
	floored        bool
}

// priceLeg считает одну ногу: полосовая ставка на всю дистанцию,
// плата за остановки, минимальный тариф как пол для суммы базы
// (не добавка сверху), затем сборы аэропортов и зон
func priceLeg(v *domain.VehicleType, leg *legContext) legFares {
	distance := leg.route.DistanceMiles

	out := legFares{
		distanceCharge: v.SlabRate(distance) * distance,
		stopFee:        float64(leg.stops) * v.AdditionalStopFee,
	}

	out.fare = out.distanceCharge + out.stopFee
	if out.fare < v.MinimumFare {
		out.fare = v.MinimumFare
		out.floored = true
	}

	for _, a := range leg.pickupAirports {
		out.airportFee += a.PickupFee
	}
	for _, a := range leg.dropoffAirports {
		out.airportFee += a.DropoffFee
	}

	for _, z := range leg.activeZones {
		if !z.Exempts(v.ID) {
			out.zoneFee += z.Fee
		}
	}

	return out
}

// equipmentFee считает единый для всех типов поездок сбор за оборудование
// и переполнение вместимости: кресла и коляски всегда по прейскуранту,
// пассажиры и багаж - только сверх вместимости класса
func equipmentFee(v *domain.VehicleType, pax domain.PassengerCounts, fees domain.EquipmentFeeSchedule) float64 {
	total := float64(pax.BabySeat)*fees.BabySeat +
		float64(pax.ChildSeat)*fees.ChildSeat +
		float64(pax.BoosterSeat)*fees.BoosterSeat +
		float64(pax.Wheelchair)*fees.Wheelchair

	if extra := pax.Count - v.Capacity.Passengers; extra > 0 {
		total += float64(extra) * fees.ExtraPassenger
	}
	if extra := pax.Luggage - v.Capacity.Luggage; extra > 0 {
		total += float64(extra) * fees.ExtraLuggage
	}

	return total
}

// finalize округляет итог вниз до целой единицы валюты и умножает
// на число машин: стоимость на машину не варьируется
func finalize(total float64, numVehicles int) float64 {
	return math.Floor(total) * float64(numVehicles)
}

type oneWayPricer struct{}

func (oneWayPricer) Price(v *domain.VehicleType, tc *tripContext) (*domain.FareResult, error) {
	leg := priceLeg(v, tc.outbound)

	surcharge := tc.surcharges.AmountAt(tc.outbound.at, v.ID)
	equipment := equipmentFee(v, tc.req.Passengers, tc.equipment)

	total := leg.fare + surcharge + leg.airportFee + leg.zoneFee + equipment

	result := &domain.FareResult{
		VehicleID: v.ID,
		Currency:  tc.currency,
		Breakdown: domain.FareBreakdown{
			DistanceCharge: leg.distanceCharge,
			StopFee:        leg.stopFee,
			TimeSurcharge:  surcharge,
			AirportFee:     leg.airportFee,
			SpecialZoneFee: leg.zoneFee,
			EquipmentFee:   equipment,
		},
		TotalAmount: finalize(total, tc.req.NumVehicles),
	}

	if leg.floored {
		result.Breakdown.MinimumFareFloor = v.MinimumFare
		result.Messages = append(result.Messages, "Minimum fare applied")
	}

	return result, nil
}

type hourlyPricer struct{}

func (hourlyPricer) Price(v *domain.VehicleType, tc *tripContext) (*domain.FareResult, error) {
	hours := tc.req.Hourly.Hours

	charge := hours * v.HourlyRate(hours)

	// Пол почасовой аренды - двойной минимальный тариф класса
	floor := 2 * v.MinimumFare
	fare := charge
	floored := false
	if fare < floor {
		fare = floor
		floored = true
	}

	surcharge := tc.surcharges.AmountAt(tc.outbound.at, v.ID)
	equipment := equipmentFee(v, tc.req.Passengers, tc.equipment)

	// Сборы аэропортов и зон для почасовых поездок не начисляются:
	// водитель остаётся с пассажиром, разовые проезды не предоплачиваются
	total := fare + surcharge + equipment

	result := &domain.FareResult{
		VehicleID: v.ID,
		Currency:  tc.currency,
		Breakdown: domain.FareBreakdown{
			HourlyCharge:  charge,
			TimeSurcharge: surcharge,
			EquipmentFee:  equipment,
		},
		TotalAmount: finalize(total, tc.req.NumVehicles),
	}

	if floored {
		result.Breakdown.MinimumFareFloor = floor
		result.Messages = append(result.Messages, "Minimum fare applied")
	}

	return result, nil
}

type returnPricer struct{}

func (returnPricer) Price(v *domain.VehicleType, tc *tripContext) (*domain.FareResult, error) {
	details := tc.req.Return

	out := priceLeg(v, tc.outbound)
	outLegTotal := out.fare + out.airportFee + out.zoneFee

	equipment := equipmentFee(v, tc.req.Passengers, tc.equipment)

	breakdown := domain.FareBreakdown{
		DistanceCharge: out.distanceCharge,
		StopFee:        out.stopFee,
		AirportFee:     out.airportFee,
		SpecialZoneFee: out.zoneFee,
		EquipmentFee:   equipment,
	}
	var messages []string
	if out.floored {
		breakdown.MinimumFareFloor = v.MinimumFare
		messages = append(messages, "Minimum fare applied")
	}

	var combined float64
	switch details.ReturnType {
	case domain.ReturnWaitAndReturn:
		// Обратная нога равна прямой: тот же маршрут в обратную сторону,
		// провайдер повторно не опрашивается. Ожидание идёт по половине
		// почасовой ставки, надбавка начисляется один раз - машина
		// на одной непрерывной аренде.
		waitCharge := details.WaitHours * v.HourlyRate(details.WaitHours) / 2
		surcharge := tc.surcharges.AmountAt(tc.outbound.at, v.ID)

		combined = outLegTotal*2 + waitCharge + surcharge + equipment

		breakdown.WaitCharge = waitCharge
		breakdown.TimeSurcharge = surcharge

	case domain.ReturnLaterDate:
		// Независимая вторая нога: свой маршрут и своё время для надбавки
		ret := priceLeg(v, tc.returnLeg)
		retLegTotal := ret.fare + ret.airportFee + ret.zoneFee

		outSurcharge := tc.surcharges.AmountAt(tc.outbound.at, v.ID)
		retSurcharge := tc.surcharges.AmountAt(tc.returnLeg.at, v.ID)

		combined = outLegTotal + outSurcharge + retLegTotal + retSurcharge + equipment

		breakdown.DistanceCharge += ret.distanceCharge
		breakdown.StopFee += ret.stopFee
		breakdown.AirportFee += ret.airportFee
		breakdown.SpecialZoneFee += ret.zoneFee
		breakdown.TimeSurcharge = outSurcharge + retSurcharge
		if ret.floored {
			breakdown.MinimumFareFloor += v.MinimumFare
		}

	default:
		return nil, apperrors.ErrValidation.WithMessage("unknown return type")
	}

	// Скидка на комбинированный итог до округления
	discounted := combined * (1 - tc.discount)
	breakdown.ReturnDiscount = -(combined - discounted)

	return &domain.FareResult{
		VehicleID:   v.ID,
		Currency:    tc.currency,
		Breakdown:   breakdown,
		TotalAmount: finalize(discounted, tc.req.NumVehicles),
		Messages:    messages,
	}, nil
}
