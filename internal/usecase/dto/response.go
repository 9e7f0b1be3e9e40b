package dto

import (
	"github.com/fare-quote-service/internal/domain"
)

// VehicleOptionDTO - вариант машины с ценой в ответе
type VehicleOptionDTO struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Capacity domain.Capacity   `json:"capacity"`
	Price    domain.FareResult `json:"price"`
}

// FareEstimateResponse - ответ расчёта: варианты машин по возрастанию
// итоговой цены плюс человекочитаемые уведомления
type FareEstimateResponse struct {
	VehicleOptions  []VehicleOptionDTO `json:"vehicleOptions"`
	Notifications   []string           `json:"notifications"`
	PricingMessages []string           `json:"pricingMessages"`
}

// ConvertQuote преобразует доменный Quote в ответ API
func ConvertQuote(q *domain.Quote) *FareEstimateResponse {
	options := make([]VehicleOptionDTO, 0, len(q.VehicleOptions))
	for _, opt := range q.VehicleOptions {
		options = append(options, VehicleOptionDTO{
			ID:       opt.ID,
			Name:     opt.Name,
			Capacity: opt.Capacity,
			Price:    opt.Price,
		})
	}

	return &FareEstimateResponse{
		VehicleOptions:  options,
		Notifications:   q.Notifications,
		PricingMessages: q.PricingMessages,
	}
}
