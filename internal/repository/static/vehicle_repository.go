package static

import (
	"github.com/fare-quote-service/internal/domain"
	"github.com/fare-quote-service/internal/domain/repository"
)

// vehicleRepository - каталог классов машин в памяти.
// Не мутируется после создания.
type vehicleRepository struct {
	vehicles   []*domain.VehicleType
	byID       map[string]*domain.VehicleType
	equipment  domain.EquipmentFeeSchedule
	surcharges *domain.SurchargeTable
}

// NewVehicleRepository создает каталог по переданным тарифам
func NewVehicleRepository(
	vehicles []*domain.VehicleType,
	equipment domain.EquipmentFeeSchedule,
	surcharges *domain.SurchargeTable,
) repository.VehicleRepository {
	byID := make(map[string]*domain.VehicleType, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	return &vehicleRepository{
		vehicles:   vehicles,
		byID:       byID,
		equipment:  equipment,
		surcharges: surcharges,
	}
}

// NewDefaultVehicleRepository создает каталог с тарифом оператора
func NewDefaultVehicleRepository() repository.VehicleRepository {
	return NewVehicleRepository(DefaultVehicles(), DefaultEquipmentFees(), DefaultSurcharges())
}

func (r *vehicleRepository) List() []*domain.VehicleType {
	return r.vehicles
}

func (r *vehicleRepository) GetByID(id string) *domain.VehicleType {
	return r.byID[id]
}

func (r *vehicleRepository) EquipmentFees() domain.EquipmentFeeSchedule {
	return r.equipment
}

func (r *vehicleRepository) Surcharges() *domain.SurchargeTable {
	return r.surcharges
}
