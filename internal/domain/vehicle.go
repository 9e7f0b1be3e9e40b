package domain

// Capacity - вместимость класса машины
type Capacity struct {
	Passengers int `json:"passengers"`
	Luggage    int `json:"luggage"`
}

// DistanceSlab - тарифная полоса: дистанции до UpToMiles включительно
// оплачиваются по ставке Rate за милю. Полосы упорядочены по возрастанию.
type DistanceSlab struct {
	UpToMiles float64 `json:"up_to_miles"`
	Rate      float64 `json:"rate"`
}

// HourlyTiers - двухуровневый почасовой тариф: короткая аренда (3-6 часов)
// дороже за час, чем длинная (6-12 часов)
type HourlyTiers struct {
	ShortHire float64 `json:"short_hire"` // 3-6 часов
	LongHire  float64 `json:"long_hire"`  // 6-12 часов
}

// VehicleType - класс машины со всеми тарифами. Справочные данные,
// один экземпляр на класс, только для чтения.
type VehicleType struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Capacity          Capacity       `json:"capacity"`
	MinimumFare       float64        `json:"minimum_fare"`
	AdditionalStopFee float64        `json:"additional_stop_fee"`
	Slabs             []DistanceSlab `json:"slabs"`
	OpenEndedRate     float64        `json:"open_ended_rate"`
	Hourly            HourlyTiers    `json:"hourly"`
}

// SlabRate выбирает ставку за милю для всей дистанции целиком.
// Тариф полосовой, не маржинальный: одна полоса на весь путь,
// выбирается первая полоса с верхней границей >= дистанции,
// дистанции за последней полосой ("300+") идут по OpenEndedRate.
func (v *VehicleType) SlabRate(distanceMiles float64) float64 {
	for _, slab := range v.Slabs {
		if distanceMiles <= slab.UpToMiles {
			return slab.Rate
		}
	}
	return v.OpenEndedRate
}

// HourlyRate выбирает почасовую ставку по длительности аренды.
// Часы вне [3,12) идут по ставке длинной аренды - это документированный
// fallback, валидация диапазона часов происходит до тарификации.
func (v *VehicleType) HourlyRate(hours float64) float64 {
	if hours >= 3 && hours < 6 {
		return v.Hourly.ShortHire
	}
	return v.Hourly.LongHire
}

// EquipmentFeeSchedule - единый прейскурант на оборудование и переполнение
// вместимости, общий для всех классов машин и типов поездок
type EquipmentFeeSchedule struct {
	BabySeat       float64 `json:"baby_seat"`
	ChildSeat      float64 `json:"child_seat"`
	BoosterSeat    float64 `json:"booster_seat"`
	Wheelchair     float64 `json:"wheelchair"`
	ExtraPassenger float64 `json:"extra_passenger"`
	ExtraLuggage   float64 `json:"extra_luggage"`
}
