package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fare-quote-service/internal/domain/repository"
	"github.com/fare-quote-service/internal/pkg/utils"
)

// CatalogHandler - обработчик справочных данных: классы машин,
// зоны и аэропорты
type CatalogHandler struct {
	vehicleRepo repository.VehicleRepository
	zoneRepo    repository.ZoneRepository
	logger      *zap.Logger
}

// NewCatalogHandler - создание нового CatalogHandler
func NewCatalogHandler(
	vehicleRepo repository.VehicleRepository,
	zoneRepo repository.ZoneRepository,
	logger *zap.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		vehicleRepo: vehicleRepo,
		zoneRepo:    zoneRepo,
		logger:      logger,
	}
}

// GetVehicles godoc
// @Summary Каталог классов машин
// @Description Возвращает классы машин оператора с вместимостью и тарифами
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/vehicles [get]
func (h *CatalogHandler) GetVehicles(c *fiber.Ctx) error {
	vehicles := h.vehicleRepo.List()
	return utils.SendSuccess(c, vehicles, &utils.Meta{Total: len(vehicles)})
}

// GetZones godoc
// @Summary Каталог платных зон и аэропортов
// @Description Возвращает платные зоны с расписаниями и аэропорты со сборами
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/zones [get]
func (h *CatalogHandler) GetZones(c *fiber.Ctx) error {
	return utils.SendSuccess(c, fiber.Map{
		"zones":    h.zoneRepo.Zones(),
		"airports": h.zoneRepo.Airports(),
	}, nil)
}
