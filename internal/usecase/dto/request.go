package dto

import (
	"fmt"
	"time"

	"github.com/fare-quote-service/internal/domain"
	apperrors "github.com/fare-quote-service/internal/pkg/errors"
	"github.com/fare-quote-service/internal/pkg/utils"
)

// CoordinateDTO - координата во входящем запросе
type CoordinateDTO struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// DateTimeDTO - дата и время подачи в локальном времени оператора
type DateTimeDTO struct {
	Date string `json:"date" validate:"required"` // YYYY-MM-DD
	Time string `json:"time" validate:"required"` // HH:MM
}

// PassengersDTO - пассажиры, багаж и оборудование
type PassengersDTO struct {
	Count       int `json:"count" validate:"min=1"`
	Luggage     int `json:"luggage" validate:"min=0"`
	BabySeat    int `json:"babySeat" validate:"min=0"`
	ChildSeat   int `json:"childSeat" validate:"min=0"`
	BoosterSeat int `json:"boosterSeat" validate:"min=0"`
	Wheelchair  int `json:"wheelchair" validate:"min=0"`
}

// OneWayDetailsDTO - поездка в одну сторону
type OneWayDetailsDTO struct {
	Pickup  CoordinateDTO   `json:"pickup"`
	Dropoff CoordinateDTO   `json:"dropoff"`
	Stops   []CoordinateDTO `json:"stops,omitempty" validate:"dive"`
}

// HourlyDetailsDTO - почасовая аренда
type HourlyDetailsDTO struct {
	Hours   float64         `json:"hours"`
	Pickup  CoordinateDTO   `json:"pickup"`
	Dropoff *CoordinateDTO  `json:"dropoff,omitempty"`
	Stops   []CoordinateDTO `json:"stops,omitempty" validate:"dive"`
}

// ReturnDetailsDTO - поездка туда-обратно
type ReturnDetailsDTO struct {
	OutboundPickup   CoordinateDTO   `json:"outboundPickup"`
	OutboundDropoff  CoordinateDTO   `json:"outboundDropoff"`
	OutboundDateTime DateTimeDTO     `json:"outboundDateTime"`
	OutboundStops    []CoordinateDTO `json:"outboundStops,omitempty" validate:"dive"`

	ReturnType string `json:"returnType" validate:"required"`

	// wait-and-return
	WaitDuration *float64 `json:"waitDuration,omitempty"`

	// later-date
	ReturnPickup   *CoordinateDTO  `json:"returnPickup,omitempty"`
	ReturnDropoff  *CoordinateDTO  `json:"returnDropoff,omitempty"`
	ReturnDateTime *DateTimeDTO    `json:"returnDateTime,omitempty"`
	ReturnStops    []CoordinateDTO `json:"returnStops,omitempty" validate:"dive"`
}

// FareEstimateRequest - входящий запрос расчёта тарифа
type FareEstimateRequest struct {
	BookingType string        `json:"bookingType" validate:"required"`
	DateTime    DateTimeDTO   `json:"datetime"`
	Passengers  PassengersDTO `json:"passengers"`
	NumVehicles *int          `json:"numVehicles,omitempty"`

	OneWayDetails *OneWayDetailsDTO `json:"oneWayDetails,omitempty"`
	HourlyDetails *HourlyDetailsDTO `json:"hourlyDetails,omitempty"`
	ReturnDetails *ReturnDetailsDTO `json:"returnDetails,omitempty"`
}

// ToDomain валидирует запрос и собирает размеченное объединение TripRequest.
// Ошибки валидации и диапазонов обнаруживаются здесь, до обращения
// к провайдеру маршрутов.
func (r *FareEstimateRequest) ToDomain() (*domain.TripRequest, error) {
	pickupTime, err := parseLocalDateTime(r.DateTime)
	if err != nil {
		return nil, apperrors.ErrValidation.WithMessage(fmt.Sprintf("invalid datetime: %v", err))
	}

	numVehicles := 1
	if r.NumVehicles != nil {
		numVehicles = *r.NumVehicles
	}
	if numVehicles < 1 {
		return nil, apperrors.ErrOutOfRange.WithMessage("numVehicles must be at least 1")
	}

	req := &domain.TripRequest{
		PickupTime:  pickupTime,
		Passengers:  r.Passengers.toDomain(),
		NumVehicles: numVehicles,
	}

	switch domain.BookingType(r.BookingType) {
	case domain.BookingOneWay:
		if r.OneWayDetails == nil {
			return nil, apperrors.ErrValidation.WithMessage("oneWayDetails is required for one-way booking")
		}
		if r.HourlyDetails != nil || r.ReturnDetails != nil {
			return nil, apperrors.ErrValidation.WithMessage("booking details do not match booking type")
		}
		details, err := r.OneWayDetails.toDomain()
		if err != nil {
			return nil, err
		}
		req.BookingType = domain.BookingOneWay
		req.OneWay = details

	case domain.BookingHourly:
		if r.HourlyDetails == nil {
			return nil, apperrors.ErrValidation.WithMessage("hourlyDetails is required for hourly booking")
		}
		if r.OneWayDetails != nil || r.ReturnDetails != nil {
			return nil, apperrors.ErrValidation.WithMessage("booking details do not match booking type")
		}
		details, err := r.HourlyDetails.toDomain()
		if err != nil {
			return nil, err
		}
		req.BookingType = domain.BookingHourly
		req.Hourly = details

	case domain.BookingReturn:
		if r.ReturnDetails == nil {
			return nil, apperrors.ErrValidation.WithMessage("returnDetails is required for return booking")
		}
		if r.OneWayDetails != nil || r.HourlyDetails != nil {
			return nil, apperrors.ErrValidation.WithMessage("booking details do not match booking type")
		}
		details, err := r.ReturnDetails.toDomain(pickupTime)
		if err != nil {
			return nil, err
		}
		req.BookingType = domain.BookingReturn
		req.Return = details

	default:
		return nil, apperrors.ErrUnsupportedBookingType.WithDetails(map[string]interface{}{
			"booking_type": r.BookingType,
		})
	}

	return req, nil
}

func (p PassengersDTO) toDomain() domain.PassengerCounts {
	return domain.PassengerCounts{
		Count:       p.Count,
		Luggage:     p.Luggage,
		BabySeat:    p.BabySeat,
		ChildSeat:   p.ChildSeat,
		BoosterSeat: p.BoosterSeat,
		Wheelchair:  p.Wheelchair,
	}
}

func (c CoordinateDTO) toDomain() (domain.Coordinate, error) {
	if !utils.ValidateCoordinates(c.Lat, c.Lng) {
		return domain.Coordinate{}, apperrors.ErrInvalidCoordinates
	}
	return domain.Coordinate{Lat: c.Lat, Lng: c.Lng}, nil
}

func coordsToDomain(dtos []CoordinateDTO) ([]domain.Coordinate, error) {
	if len(dtos) == 0 {
		return nil, nil
	}
	coords := make([]domain.Coordinate, len(dtos))
	for i, d := range dtos {
		c, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}
	return coords, nil
}

func (d *OneWayDetailsDTO) toDomain() (*domain.OneWayDetails, error) {
	pickup, err := d.Pickup.toDomain()
	if err != nil {
		return nil, err
	}
	dropoff, err := d.Dropoff.toDomain()
	if err != nil {
		return nil, err
	}
	stops, err := coordsToDomain(d.Stops)
	if err != nil {
		return nil, err
	}
	return &domain.OneWayDetails{Pickup: pickup, Dropoff: dropoff, Stops: stops}, nil
}

func (d *HourlyDetailsDTO) toDomain() (*domain.HourlyDetails, error) {
	// Канонический диапазон почасовой аренды: 3-24 часа
	if d.Hours < 3 || d.Hours > 24 {
		return nil, apperrors.ErrOutOfRange.WithMessage("hourly booking must be between 3 and 24 hours")
	}

	pickup, err := d.Pickup.toDomain()
	if err != nil {
		return nil, err
	}
	stops, err := coordsToDomain(d.Stops)
	if err != nil {
		return nil, err
	}

	details := &domain.HourlyDetails{Hours: d.Hours, Pickup: pickup, Stops: stops}
	if d.Dropoff != nil {
		dropoff, err := d.Dropoff.toDomain()
		if err != nil {
			return nil, err
		}
		details.Dropoff = &dropoff
	}
	return details, nil
}

func (d *ReturnDetailsDTO) toDomain(defaultTime time.Time) (*domain.ReturnDetails, error) {
	pickup, err := d.OutboundPickup.toDomain()
	if err != nil {
		return nil, err
	}
	dropoff, err := d.OutboundDropoff.toDomain()
	if err != nil {
		return nil, err
	}
	stops, err := coordsToDomain(d.OutboundStops)
	if err != nil {
		return nil, err
	}

	outboundTime := defaultTime
	if d.OutboundDateTime.Date != "" {
		outboundTime, err = parseLocalDateTime(d.OutboundDateTime)
		if err != nil {
			return nil, apperrors.ErrValidation.WithMessage(fmt.Sprintf("invalid outbound datetime: %v", err))
		}
	}

	details := &domain.ReturnDetails{
		Outbound:         domain.OneWayDetails{Pickup: pickup, Dropoff: dropoff, Stops: stops},
		OutboundDateTime: outboundTime,
	}

	switch domain.ReturnType(d.ReturnType) {
	case domain.ReturnWaitAndReturn:
		if d.WaitDuration == nil {
			return nil, apperrors.ErrValidation.WithMessage("waitDuration is required for wait-and-return")
		}
		if *d.WaitDuration < 0 {
			return nil, apperrors.ErrOutOfRange.WithMessage("waitDuration cannot be negative")
		}
		details.ReturnType = domain.ReturnWaitAndReturn
		details.WaitHours = *d.WaitDuration

	case domain.ReturnLaterDate:
		if d.ReturnPickup == nil || d.ReturnDropoff == nil || d.ReturnDateTime == nil {
			return nil, apperrors.ErrValidation.WithMessage(
				"returnPickup, returnDropoff and returnDateTime are required for later-date return")
		}
		retPickup, err := d.ReturnPickup.toDomain()
		if err != nil {
			return nil, err
		}
		retDropoff, err := d.ReturnDropoff.toDomain()
		if err != nil {
			return nil, err
		}
		retStops, err := coordsToDomain(d.ReturnStops)
		if err != nil {
			return nil, err
		}
		retTime, err := parseLocalDateTime(*d.ReturnDateTime)
		if err != nil {
			return nil, apperrors.ErrValidation.WithMessage(fmt.Sprintf("invalid return datetime: %v", err))
		}

		details.ReturnType = domain.ReturnLaterDate
		details.ReturnLeg = &domain.OneWayDetails{Pickup: retPickup, Dropoff: retDropoff, Stops: retStops}
		details.ReturnDateTime = retTime

	default:
		return nil, apperrors.ErrValidation.WithDetails(map[string]interface{}{
			"return_type": d.ReturnType,
		})
	}

	return details, nil
}

// parseLocalDateTime разбирает дату и время как локальное гражданское
// время оператора. UTC здесь намеренно не подставляется: расписания зон
// и надбавки заданы в локальном времени.
func parseLocalDateTime(dt DateTimeDTO) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dt.Date+" "+dt.Time, time.Local)
}
