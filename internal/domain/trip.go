package domain

import "time"

// BookingType - дискриминант структуры поездки
type BookingType string

const (
	BookingOneWay BookingType = "one-way"
	BookingHourly BookingType = "hourly"
	BookingReturn BookingType = "return"
)

// ReturnType - подрежим обратной поездки
type ReturnType string

const (
	ReturnWaitAndReturn ReturnType = "wait-and-return"
	ReturnLaterDate     ReturnType = "later-date"
)

// PassengerCounts - пассажиры, багаж и запрошенное оборудование
type PassengerCounts struct {
	Count       int `json:"count"`
	Luggage     int `json:"luggage"`
	BabySeat    int `json:"baby_seat"`
	ChildSeat   int `json:"child_seat"`
	BoosterSeat int `json:"booster_seat"`
	Wheelchair  int `json:"wheelchair"`
}

// OneWayDetails - поездка в одну сторону
type OneWayDetails struct {
	Pickup  Coordinate   `json:"pickup"`
	Dropoff Coordinate   `json:"dropoff"`
	Stops   []Coordinate `json:"stops,omitempty"`
}

// HourlyDetails - почасовая аренда. Dropoff и Stops записываются
// диспетчером, но на цену не влияют: почасовой тариф считается
// только от времени.
type HourlyDetails struct {
	Hours   float64      `json:"hours"`
	Pickup  Coordinate   `json:"pickup"`
	Dropoff *Coordinate  `json:"dropoff,omitempty"`
	Stops   []Coordinate `json:"stops,omitempty"`
}

// ReturnDetails - поездка туда-обратно в одном из двух подрежимов
type ReturnDetails struct {
	Outbound         OneWayDetails `json:"outbound"`
	OutboundDateTime time.Time     `json:"outbound_datetime"`
	ReturnType       ReturnType    `json:"return_type"`

	// wait-and-return: машина ждёт и едет тем же маршрутом обратно
	WaitHours float64 `json:"wait_hours,omitempty"`

	// later-date: независимая вторая нога со своим маршрутом и временем
	ReturnLeg      *OneWayDetails `json:"return_leg,omitempty"`
	ReturnDateTime time.Time      `json:"return_datetime,omitempty"`
}

// TripRequest - размеченное объединение по BookingType: заполнен ровно
// один из OneWay/Hourly/Return, соответствующий дискриминанту.
// Создаётся на каждый запрос и не переживает ответ.
type TripRequest struct {
	BookingType BookingType     `json:"booking_type"`
	PickupTime  time.Time       `json:"pickup_time"` // локальное гражданское время
	Passengers  PassengerCounts `json:"passengers"`
	NumVehicles int             `json:"num_vehicles"`

	OneWay *OneWayDetails `json:"one_way,omitempty"`
	Hourly *HourlyDetails `json:"hourly,omitempty"`
	Return *ReturnDetails `json:"return,omitempty"`
}

// Waypoints возвращает упорядоченные точки ноги: подача, остановки, высадка
func (d *OneWayDetails) Waypoints() []Coordinate {
	points := make([]Coordinate, 0, len(d.Stops)+2)
	points = append(points, d.Pickup)
	points = append(points, d.Stops...)
	points = append(points, d.Dropoff)
	return points
}
