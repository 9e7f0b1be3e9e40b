package domain

import "time"

// FareBreakdown - постатейная раскладка тарифа. Все суммы неотрицательные,
// кроме ReturnDiscount (отрицательная корректировка).
type FareBreakdown struct {
	DistanceCharge   float64 `json:"distance_charge"`
	HourlyCharge     float64 `json:"hourly_charge"`
	MinimumFareFloor float64 `json:"minimum_fare_floor"`
	StopFee          float64 `json:"stop_fee"`
	TimeSurcharge    float64 `json:"time_surcharge"`
	AirportFee       float64 `json:"airport_fee"`
	SpecialZoneFee   float64 `json:"special_zone_fee"`
	EquipmentFee     float64 `json:"equipment_fee"`
	WaitCharge       float64 `json:"wait_charge"`
	ReturnDiscount   float64 `json:"return_discount"`
}

// FareResult - расчёт по одному классу машины. Создаётся заново на каждый
// запрос и этим компонентом не персистится.
type FareResult struct {
	VehicleID   string        `json:"vehicle_id"`
	TotalAmount float64       `json:"total_amount"`
	Currency    string        `json:"currency"`
	Breakdown   FareBreakdown `json:"breakdown"`
	Messages    []string      `json:"messages,omitempty"`
}

// VehicleOption - вариант машины в ответе с ценой
type VehicleOption struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Capacity Capacity   `json:"capacity"`
	Price    FareResult `json:"price"`
}

// Quote - итог расчёта по всем классам вместе с уведомлениями
type Quote struct {
	VehicleOptions  []VehicleOption `json:"vehicle_options"`
	Notifications   []string        `json:"notifications"`
	PricingMessages []string        `json:"pricing_messages"`
}

// QuoteRecord - аудиторская запись расчёта для персистентности
type QuoteRecord struct {
	ID          string    `json:"id" db:"id"`
	BookingType string    `json:"booking_type" db:"booking_type"`
	RequestJSON []byte    `json:"-" db:"request"`
	ResultJSON  []byte    `json:"-" db:"result"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
