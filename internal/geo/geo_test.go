package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPoint struct {
	lat, lon float64
}

func (p testPoint) Coordinates() (float64, float64) {
	return p.lat, p.lon
}

func TestDistanceKm_KnownPoints(t *testing.T) {
	// Две точки в пределах города: ~4 км друг от друга
	d := DistanceKm(12.90, 77.58, 12.93, 77.60)
	assert.InDelta(t, 3.98, d, 0.05)

	// Точка заметно дальше: ~16.7 км
	far := DistanceKm(12.90, 77.58, 13.05, 77.58)
	assert.InDelta(t, 16.68, far, 0.1)
}

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(55.75, 37.61, 55.75, 37.61))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := DistanceKm(12.90, 77.58, 12.93, 77.60)
	b := DistanceKm(12.93, 77.60, 12.90, 77.58)
	assert.InDelta(t, a, b, 1e-9)
}

func TestNearbyWithinMeters_FiltersByRadius(t *testing.T) {
	// Подготовка
	near := testPoint{lat: 12.93, lon: 77.60}  // ~4 км
	far := testPoint{lat: 13.05, lon: 77.58}   // ~16.7 км
	exact := testPoint{lat: 12.90, lon: 77.58} // 0 м

	candidates := []testPoint{near, far, exact}

	// Действие
	matched := NearbyWithinMeters(candidates, 12.90, 77.58, 5000)

	// Проверки
	require.Len(t, matched, 2)
	assert.Contains(t, matched, near)
	assert.Contains(t, matched, exact)
	assert.NotContains(t, matched, far)
}

func TestNearbyWithinMeters_BoundaryIsInclusive(t *testing.T) {
	// Радиус, равный точному расстоянию до кандидата, считается попаданием
	candidate := testPoint{lat: 12.93, lon: 77.60}
	radius := DistanceMeters(12.90, 77.58, candidate.lat, candidate.lon)

	matched := NearbyWithinMeters([]testPoint{candidate}, 12.90, 77.58, radius)

	require.Len(t, matched, 1)
}

func TestNearbyWithinMeters_EmptyCandidates(t *testing.T) {
	matched := NearbyWithinMeters([]testPoint{}, 12.90, 77.58, 5000)
	assert.Empty(t, matched)
}

func TestNearbyWithinKm_MatchesMeterVariant(t *testing.T) {
	candidates := []testPoint{
		{lat: 12.93, lon: 77.60},
		{lat: 13.05, lon: 77.58},
	}

	byKm := NearbyWithinKm(candidates, 12.90, 77.58, 5)
	byMeters := NearbyWithinMeters(candidates, 12.90, 77.58, 5000)

	assert.Equal(t, byMeters, byKm)
}
