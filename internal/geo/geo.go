package geo

import (
	"math"
)

// earthRadiusKm - радиус Земли для формулы гаверсинусов
const earthRadiusKm = 6371.0

// Point - носитель координат (заявка, волонтер)
type Point interface {
	Coordinates() (lat, lon float64)
}

// DistanceKm считает расстояние по дуге большого круга (гаверсинус), в километрах
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceMeters - то же расстояние в метрах
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceKm(lat1, lon1, lat2, lon2) * 1000
}

// NearbyWithinMeters возвращает кандидатов в радиусе radiusMeters от точки.
// Полный перебор: пространственный индекс на этих объемах не нужен.
// Граница включается: расстояние, равное радиусу, считается попаданием.
func NearbyWithinMeters[T Point](candidates []T, lat, lon, radiusMeters float64) []T {
	matched := make([]T, 0)
	for _, c := range candidates {
		cLat, cLon := c.Coordinates()
		if DistanceMeters(lat, lon, cLat, cLon) <= radiusMeters {
			matched = append(matched, c)
		}
	}
	return matched
}

// NearbyWithinKm - вариант с радиусом в километрах (путь email-оповещений)
func NearbyWithinKm[T Point](candidates []T, lat, lon, radiusKm float64) []T {
	return NearbyWithinMeters(candidates, lat, lon, radiusKm*1000)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
