package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fare-quote-service/internal/domain"
	"github.com/fare-quote-service/internal/domain/repository"
	apperrors "github.com/fare-quote-service/internal/pkg/errors"
)

// Шаг точечной выборки маршрута для детекции зон, мили
const routeSampleStepMiles = 1.0

// FareUseCase - оркестратор расчёта тарифа: допуск, маршрут (с кешем),
// цикл по классам машин, сортировка и уведомления. Состояния между
// запросами нет, каталоги только читаются.
type FareUseCase struct {
	vehicleRepo repository.VehicleRepository
	zoneRepo    repository.ZoneRepository
	routeRepo   repository.RouteRepository
	cacheRepo   repository.CacheRepository
	quoteRepo   repository.QuoteRepository // nil, если аудит выключен
	gate        *ServiceAreaGate
	logger      *zap.Logger

	currency      string
	discount      float64
	region        string
	routeCacheTTL time.Duration
}

// NewFareUseCase - создание нового FareUseCase
func NewFareUseCase(
	vehicleRepo repository.VehicleRepository,
	zoneRepo repository.ZoneRepository,
	routeRepo repository.RouteRepository,
	cacheRepo repository.CacheRepository,
	quoteRepo repository.QuoteRepository,
	gate *ServiceAreaGate,
	logger *zap.Logger,
	currency string,
	discount float64,
	region string,
	routeCacheTTL time.Duration,
) *FareUseCase {
	return &FareUseCase{
		vehicleRepo:   vehicleRepo,
		zoneRepo:      zoneRepo,
		routeRepo:     routeRepo,
		cacheRepo:     cacheRepo,
		quoteRepo:     quoteRepo,
		gate:          gate,
		logger:        logger,
		currency:      currency,
		discount:      discount,
		region:        region,
		routeCacheTTL: routeCacheTTL,
	}
}

// Estimate считает тариф по каждому классу машины для запроса поездки.
// Ошибка провайдера маршрутов прерывает весь расчёт: частичные
// результаты не возвращаются, молчаливая подмена дистанции исказила бы
// цену каждого класса.
func (uc *FareUseCase) Estimate(ctx context.Context, req *domain.TripRequest) (*domain.Quote, error) {
	if err := uc.validate(req); err != nil {
		return nil, err
	}

	if err := uc.checkServiceArea(req); err != nil {
		return nil, err
	}

	tc, err := uc.buildContext(ctx, req)
	if err != nil {
		return nil, err
	}

	pricer, err := pricerFor(req.BookingType)
	if err != nil {
		return nil, err
	}

	vehicles := uc.vehicleRepo.List()
	options := make([]domain.VehicleOption, 0, len(vehicles))
	for _, v := range vehicles {
		result, err := pricer.Price(v, tc)
		if err != nil {
			uc.logger.Error("Failed to price vehicle class",
				zap.String("vehicle_id", v.ID),
				zap.Error(err))
			return nil, err
		}
		options = append(options, domain.VehicleOption{
			ID:       v.ID,
			Name:     v.Name,
			Capacity: v.Capacity,
			Price:    *result,
		})
	}

	// Варианты по возрастанию итоговой цены
	sort.Slice(options, func(i, j int) bool {
		return options[i].Price.TotalAmount < options[j].Price.TotalAmount
	})

	quote := &domain.Quote{
		VehicleOptions:  options,
		Notifications:   uc.buildNotifications(tc),
		PricingMessages: uc.buildPricingMessages(req, options),
	}

	uc.persistQuote(ctx, req, quote)

	uc.logger.Info("Fare estimate completed",
		zap.String("booking_type", string(req.BookingType)),
		zap.Int("vehicle_options", len(options)))

	return quote, nil
}

// EstimateForVehicle пересчитывает тариф одного класса при подтверждении
// брони. Отсутствие класса в каталоге - ошибка VEHICLE_NOT_FOUND.
func (uc *FareUseCase) EstimateForVehicle(ctx context.Context, req *domain.TripRequest, vehicleID string) (*domain.FareResult, error) {
	vehicle := uc.vehicleRepo.GetByID(vehicleID)
	if vehicle == nil {
		return nil, apperrors.ErrVehicleNotFound.WithDetails(map[string]interface{}{
			"vehicle_id": vehicleID,
		})
	}

	if err := uc.validate(req); err != nil {
		return nil, err
	}
	if err := uc.checkServiceArea(req); err != nil {
		return nil, err
	}

	tc, err := uc.buildContext(ctx, req)
	if err != nil {
		return nil, err
	}

	pricer, err := pricerFor(req.BookingType)
	if err != nil {
		return nil, err
	}

	return pricer.Price(vehicle, tc)
}

// validate проверяет инвариант объединения и диапазоны до любого
// обращения к провайдеру
func (uc *FareUseCase) validate(req *domain.TripRequest) error {
	if req.NumVehicles < 1 {
		return apperrors.ErrOutOfRange.WithMessage("numVehicles must be at least 1")
	}

	switch req.BookingType {
	case domain.BookingOneWay:
		if req.OneWay == nil || req.Hourly != nil || req.Return != nil {
			return apperrors.ErrValidation.WithMessage("booking details do not match booking type")
		}
	case domain.BookingHourly:
		if req.Hourly == nil || req.OneWay != nil || req.Return != nil {
			return apperrors.ErrValidation.WithMessage("booking details do not match booking type")
		}
		if req.Hourly.Hours < 3 || req.Hourly.Hours > 24 {
			return apperrors.ErrOutOfRange.WithMessage("hourly booking must be between 3 and 24 hours")
		}
	case domain.BookingReturn:
		if req.Return == nil || req.OneWay != nil || req.Hourly != nil {
			return apperrors.ErrValidation.WithMessage("booking details do not match booking type")
		}
		if req.Return.ReturnType == domain.ReturnLaterDate && req.Return.ReturnLeg == nil {
			return apperrors.ErrValidation.WithMessage("later-date return requires a return leg")
		}
	default:
		return apperrors.ErrUnsupportedBookingType.WithDetails(map[string]interface{}{
			"booking_type": string(req.BookingType),
		})
	}

	return nil
}

// checkServiceArea - проверка допуска до тарификации
func (uc *FareUseCase) checkServiceArea(req *domain.TripRequest) error {
	switch req.BookingType {
	case domain.BookingOneWay:
		return uc.gate.IsRouteServiceable(req.OneWay.Pickup, req.OneWay.Dropoff)
	case domain.BookingHourly:
		dropoff := req.Hourly.Pickup
		if req.Hourly.Dropoff != nil {
			dropoff = *req.Hourly.Dropoff
		}
		return uc.gate.IsRouteServiceable(req.Hourly.Pickup, dropoff)
	case domain.BookingReturn:
		if err := uc.gate.IsRouteServiceable(req.Return.Outbound.Pickup, req.Return.Outbound.Dropoff); err != nil {
			return err
		}
		if req.Return.ReturnType == domain.ReturnLaterDate {
			return uc.gate.IsRouteServiceable(req.Return.ReturnLeg.Pickup, req.Return.ReturnLeg.Dropoff)
		}
	}
	return nil
}

// buildContext разрешает маршруты, аэропорты и зоны один раз на запрос:
// цикл по классам дальше - чистая арифметика
func (uc *FareUseCase) buildContext(ctx context.Context, req *domain.TripRequest) (*tripContext, error) {
	tc := &tripContext{
		req:        req,
		equipment:  uc.vehicleRepo.EquipmentFees(),
		surcharges: uc.vehicleRepo.Surcharges(),
		currency:   uc.currency,
		discount:   uc.discount,
	}

	switch req.BookingType {
	case domain.BookingOneWay:
		leg, err := uc.buildLeg(ctx, req.OneWay, req.PickupTime)
		if err != nil {
			return nil, err
		}
		tc.outbound = leg

	case domain.BookingHourly:
		// Почасовая аренда тарифицируется только от времени:
		// маршрут не запрашивается, зоны и аэропорты не ищутся
		tc.outbound = &legContext{at: req.PickupTime}

	case domain.BookingReturn:
		details := req.Return
		if details.ReturnType == domain.ReturnWaitAndReturn {
			leg, err := uc.buildLeg(ctx, &details.Outbound, details.OutboundDateTime)
			if err != nil {
				return nil, err
			}
			tc.outbound = leg
			break
		}

		// later-date: две независимые ноги, провайдер опрашивается
		// конкурентно - ноги причинно не связаны
		var wg sync.WaitGroup
		var outLeg, retLeg *legContext
		var outErr, retErr error

		wg.Add(2)
		go func() {
			defer wg.Done()
			outLeg, outErr = uc.buildLeg(ctx, &details.Outbound, details.OutboundDateTime)
		}()
		go func() {
			defer wg.Done()
			retLeg, retErr = uc.buildLeg(ctx, details.ReturnLeg, details.ReturnDateTime)
		}()
		wg.Wait()

		if outErr != nil {
			return nil, outErr
		}
		if retErr != nil {
			return nil, retErr
		}
		tc.outbound = outLeg
		tc.returnLeg = retLeg
	}

	return tc, nil
}

// buildLeg разрешает одну ногу: маршрут через кеш, аэропорты на концах
// по региональному индексу, активные зоны по точечной выборке пути
func (uc *FareUseCase) buildLeg(ctx context.Context, details *domain.OneWayDetails, at time.Time) (*legContext, error) {
	waypoints := details.Waypoints()

	route, err := uc.fetchRoute(ctx, waypoints)
	if err != nil {
		return nil, err
	}

	samples := domain.SampleRoute(waypoints, routeSampleStepMiles)

	var active []*domain.Zone
	for _, z := range uc.zoneRepo.ZonesForRoute(samples) {
		if z.IsActiveAt(at) {
			active = append(active, z)
		}
	}

	return &legContext{
		route:           route,
		stops:           len(details.Stops),
		pickupAirports:  uc.zoneRepo.AirportsNear(details.Pickup, uc.region),
		dropoffAirports: uc.zoneRepo.AirportsNear(details.Dropoff, uc.region),
		activeZones:     active,
		at:              at,
	}, nil
}

// fetchRoute - cache-aside вокруг провайдера маршрутов. Отказ кеша
// логируется и обходится, отказ провайдера прерывает запрос.
func (uc *FareUseCase) fetchRoute(ctx context.Context, waypoints []domain.Coordinate) (*domain.RouteEstimate, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetRoute(ctx, waypoints)
		if err != nil {
			uc.logger.Warn("Route cache read failed", zap.Error(err))
		}
		if cached != nil {
			return cached, nil
		}
	}

	route, err := uc.routeRepo.GetRoute(ctx, waypoints)
	if err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetRoute(ctx, waypoints, route, uc.routeCacheTTL); err != nil {
			uc.logger.Warn("Route cache write failed", zap.Error(err))
		}
	}

	return route, nil
}

// buildNotifications собирает человекочитаемые уведомления о применённых
// сборах аэропортов и зон
func (uc *FareUseCase) buildNotifications(tc *tripContext) []string {
	notifications := []string{}

	legs := []*legContext{tc.outbound}
	if tc.returnLeg != nil {
		legs = append(legs, tc.returnLeg)
	}

	seen := map[string]bool{}
	for _, leg := range legs {
		for _, a := range leg.pickupAirports {
			msg := fmt.Sprintf("%s pickup fee applied", a.Name)
			if !seen[msg] {
				seen[msg] = true
				notifications = append(notifications, msg)
			}
		}
		for _, a := range leg.dropoffAirports {
			msg := fmt.Sprintf("%s dropoff fee applied", a.Name)
			if !seen[msg] {
				seen[msg] = true
				notifications = append(notifications, msg)
			}
		}
		for _, z := range leg.activeZones {
			msg := fmt.Sprintf("%s charge applied", z.Name)
			if !seen[msg] {
				seen[msg] = true
				notifications = append(notifications, msg)
			}
		}
	}

	return notifications
}

// buildPricingMessages собирает тарифные примечания по типу поездки
func (uc *FareUseCase) buildPricingMessages(req *domain.TripRequest, options []domain.VehicleOption) []string {
	messages := []string{
		fmt.Sprintf("All fares are quoted in %s and rounded down to the nearest whole unit", uc.currency),
	}

	switch req.BookingType {
	case domain.BookingHourly:
		messages = append(messages, "Hourly hire fares do not include airport or zone charges")
	case domain.BookingReturn:
		messages = append(messages,
			fmt.Sprintf("Return bookings include a %.0f%% round-trip discount", uc.discount*100))
	}

	surcharged := false
	for _, opt := range options {
		if opt.Price.Breakdown.TimeSurcharge > 0 {
			surcharged = true
			break
		}
	}
	if surcharged {
		messages = append(messages, "A time-of-day surcharge applies to this pickup time")
	}

	return messages
}

// persistQuote пишет аудиторскую запись; отказ персистентности
// не валит расчёт
func (uc *FareUseCase) persistQuote(ctx context.Context, req *domain.TripRequest, quote *domain.Quote) {
	if uc.quoteRepo == nil {
		return
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		uc.logger.Warn("Failed to marshal trip request for audit", zap.Error(err))
		return
	}
	resJSON, err := json.Marshal(quote)
	if err != nil {
		uc.logger.Warn("Failed to marshal quote for audit", zap.Error(err))
		return
	}

	record := &domain.QuoteRecord{
		ID:          uuid.New().String(),
		BookingType: string(req.BookingType),
		RequestJSON: reqJSON,
		ResultJSON:  resJSON,
		CreatedAt:   time.Now(),
	}

	if err := uc.quoteRepo.Save(ctx, record); err != nil {
		uc.logger.Warn("Failed to persist quote record", zap.Error(err))
	}
}
