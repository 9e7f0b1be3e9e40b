package domain

import "time"

// WeekdayGroup - группа дней недели для надбавок
type WeekdayGroup string

const (
	GroupWeekday WeekdayGroup = "weekday"
	GroupWeekend WeekdayGroup = "weekend"
)

// TimePeriod - период суток для надбавок
type TimePeriod string

const (
	PeriodNonPeak    TimePeriod = "non_peak"    // [0,6)
	PeriodPeakMedium TimePeriod = "peak_medium" // [6,15)
	PeriodPeakHigh   TimePeriod = "peak_high"   // [15,24)
)

// ClassifyWeekday относит дату к группе дней. Пятница, суббота и
// воскресенье считаются "weekend" - это бизнес-политика оператора,
// а не ошибка.
func ClassifyWeekday(t time.Time) WeekdayGroup {
	switch t.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return GroupWeekend
	default:
		return GroupWeekday
	}
}

// ClassifyPeriod относит локальный час к периоду суток
func ClassifyPeriod(t time.Time) TimePeriod {
	hour := t.Hour()
	switch {
	case hour < 6:
		return PeriodNonPeak
	case hour < 15:
		return PeriodPeakMedium
	default:
		return PeriodPeakHigh
	}
}

// SurchargeKey - ключ матрицы надбавок
type SurchargeKey struct {
	Group   WeekdayGroup
	Period  TimePeriod
	Vehicle string
}

// SurchargeTable - матрица {группа дней x период x класс машины} -> надбавка.
// Отсутствующая ячейка трактуется как 0, а не как ошибка.
type SurchargeTable struct {
	entries map[SurchargeKey]float64
}

func NewSurchargeTable(entries map[SurchargeKey]float64) *SurchargeTable {
	if entries == nil {
		entries = make(map[SurchargeKey]float64)
	}
	return &SurchargeTable{entries: entries}
}

// Amount возвращает надбавку для ячейки матрицы, 0 при промахе
func (s *SurchargeTable) Amount(group WeekdayGroup, period TimePeriod, vehicleID string) float64 {
	return s.entries[SurchargeKey{Group: group, Period: period, Vehicle: vehicleID}]
}

// AmountAt - надбавка для класса машины на момент времени t
func (s *SurchargeTable) AmountAt(t time.Time, vehicleID string) float64 {
	return s.Amount(ClassifyWeekday(t), ClassifyPeriod(t), vehicleID)
}
