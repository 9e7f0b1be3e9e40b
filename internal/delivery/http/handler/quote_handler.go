package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fare-quote-service/internal/pkg/utils"
	"github.com/fare-quote-service/internal/pkg/validator"
	"github.com/fare-quote-service/internal/usecase"
	"github.com/fare-quote-service/internal/usecase/dto"
)

// QuoteHandler - обработчик расчёта тарифов
type QuoteHandler struct {
	fareUC *usecase.FareUseCase
	logger *zap.Logger
}

// NewQuoteHandler - создание нового QuoteHandler
func NewQuoteHandler(fareUC *usecase.FareUseCase, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		fareUC: fareUC,
		logger: logger,
	}
}

// Estimate godoc
// @Summary Расчёт тарифа по всем классам машин
// @Description Считает цену поездки для каждого класса машины оператора: полосовой дистанционный тариф, почасовые ставки, минимальный тариф, временные надбавки, сборы аэропортов и платных зон, оборудование. Варианты возвращаются по возрастанию итоговой цены.
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body dto.FareEstimateRequest true "Запрос поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.FareEstimateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/quote [post]
func (h *QuoteHandler) Estimate(c *fiber.Ctx) error {
	var req dto.FareEstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	trip, err := req.ToDomain()
	if err != nil {
		return utils.SendError(c, err)
	}

	// Выполнение use case
	quote, err := h.fareUC.Estimate(c.Context(), trip)
	if err != nil {
		return utils.SendError(c, err)
	}

	result := dto.ConvertQuote(quote)
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.VehicleOptions),
	})
}

// EstimateForVehicle godoc
// @Summary Перерасчёт тарифа одного класса
// @Description Пересчитывает цену поездки для конкретного класса машины при подтверждении брони
// @Tags Quote
// @Accept json
// @Produce json
// @Param vehicle_id path string true "Идентификатор класса машины"
// @Param request body dto.FareEstimateRequest true "Запрос поездки"
// @Success 200 {object} utils.SuccessResponse{data=domain.FareResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/quote/{vehicle_id} [post]
func (h *QuoteHandler) EstimateForVehicle(c *fiber.Ctx) error {
	vehicleID := c.Params("vehicle_id")
	if vehicleID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "vehicle_id required"})
	}

	var req dto.FareEstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	trip, err := req.ToDomain()
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.fareUC.EstimateForVehicle(c.Context(), trip, vehicleID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
