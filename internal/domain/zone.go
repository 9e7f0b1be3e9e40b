package domain

import "time"

// OperatingHours - окно активности зоны в локальном гражданском времени.
// Активна, когда день недели входит в Days и StartHour <= час < EndHour.
type OperatingHours struct {
	Days      []time.Weekday `json:"days"`
	StartHour int            `json:"start_hour"`
	EndHour   int            `json:"end_hour"`
}

// Zone - геозона с фиксированным сбором (зона платного въезда, мост, тоннель).
// Загружается один раз при старте и не мутируется.
type Zone struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Boundary       BoundingBox     `json:"boundary"`
	Fee            float64         `json:"fee"`
	Hours          *OperatingHours `json:"hours,omitempty"`
	ExemptVehicles []string        `json:"exempt_vehicles,omitempty"`
}

// IsActiveAt проверяет активность зоны на момент t.
// Зона без расписания активна всегда. t должно быть в локальном
// времени зоны: конвертация в UTC здесь намеренно не выполняется.
func (z *Zone) IsActiveAt(t time.Time) bool {
	if z.Hours == nil {
		return true
	}

	dayMatch := false
	for _, d := range z.Hours.Days {
		if t.Weekday() == d {
			dayMatch = true
			break
		}
	}
	if !dayMatch {
		return false
	}

	hour := t.Hour()
	return hour >= z.Hours.StartHour && hour < z.Hours.EndHour
}

// Exempts сообщает, освобождён ли класс машины от сбора зоны
func (z *Zone) Exempts(vehicleID string) bool {
	for _, v := range z.ExemptVehicles {
		if v == vehicleID {
			return true
		}
	}
	return false
}

// Airport - аэропорт с раздельными сборами на подачу и высадку
type Airport struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Region     string      `json:"region"`
	Boundary   BoundingBox `json:"boundary"`
	PickupFee  float64     `json:"pickup_fee"`
	DropoffFee float64     `json:"dropoff_fee"`
}
