package domain

import "math"

// Coordinate представляет точку в координатах WGS84
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox - прямоугольная граница зоны (широта/долгота)
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// ContainsPoint проверяет попадание точки в границу.
// Границы включающие: точка ровно на границе считается внутри.
func (b BoundingBox) ContainsPoint(lat, lng float64) bool {
	return lat >= b.South && lat <= b.North && lng >= b.West && lng <= b.East
}

// Contains - то же самое для Coordinate
func (b BoundingBox) Contains(c Coordinate) bool {
	return b.ContainsPoint(c.Lat, c.Lng)
}

// RouteEstimate - результат провайдера маршрутов: суммарная дистанция
// и длительность кратчайшего проезжаемого пути
type RouteEstimate struct {
	DistanceMiles   float64 `json:"distance_miles"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// SampleRoute возвращает выборочные точки вдоль ломаной через waypoints
// с шагом примерно stepMiles (линейная интерполяция между соседними
// точками). Выборка точечная и намеренно грубая: попадание зоны между
// точками выборки не детектируется.
func SampleRoute(waypoints []Coordinate, stepMiles float64) []Coordinate {
	if len(waypoints) == 0 {
		return nil
	}
	if stepMiles <= 0 {
		stepMiles = 1.0
	}

	samples := []Coordinate{waypoints[0]}
	for i := 1; i < len(waypoints); i++ {
		from, to := waypoints[i-1], waypoints[i]

		segmentMiles := haversineMiles(from.Lat, from.Lng, to.Lat, to.Lng)
		steps := int(segmentMiles / stepMiles)
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps+1)
			samples = append(samples, Coordinate{
				Lat: from.Lat + (to.Lat-from.Lat)*t,
				Lng: from.Lng + (to.Lng-from.Lng)*t,
			})
		}
		samples = append(samples, to)
	}
	return samples
}

const earthRadiusMiles = 3958.8

func haversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}
