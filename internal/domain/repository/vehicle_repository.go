package repository

import (
	"github.com/fare-quote-service/internal/domain"
)

// VehicleRepository определяет методы каталога классов машин
type VehicleRepository interface {
	// List возвращает все классы машин в порядке каталога
	List() []*domain.VehicleType

	// GetByID возвращает класс по идентификатору, nil если класса нет
	GetByID(id string) *domain.VehicleType

	// EquipmentFees возвращает прейскурант на оборудование
	EquipmentFees() domain.EquipmentFeeSchedule

	// Surcharges возвращает матрицу временных надбавок
	Surcharges() *domain.SurchargeTable
}
