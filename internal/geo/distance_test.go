package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travearth/travearth_core/internal/models"
)

func TestDistanceKm(t *testing.T) {
	paris := models.Point{Lat: 48.8566, Lng: 2.3522}
	london := models.Point{Lat: 51.5074, Lng: -0.1278}
	tokyo := models.Point{Lat: 35.6762, Lng: 139.6503}

	t.Run("Zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceKm(paris, paris))
	})

	t.Run("Symmetric", func(t *testing.T) {
		assert.InDelta(t, DistanceKm(paris, london), DistanceKm(london, paris), 1e-9)
		assert.InDelta(t, DistanceKm(paris, tokyo), DistanceKm(tokyo, paris), 1e-9)
	})

	t.Run("Paris to London is about 344 km", func(t *testing.T) {
		assert.InDelta(t, 344, DistanceKm(paris, london), 5)
	})

	t.Run("Paris to Tokyo is about 9710 km", func(t *testing.T) {
		assert.InDelta(t, 9710, DistanceKm(paris, tokyo), 50)
	})

	t.Run("Always non-negative", func(t *testing.T) {
		points := []models.Point{
			{Lat: -90, Lng: 0},
			{Lat: 90, Lng: 180},
			{Lat: 0, Lng: -180},
			{Lat: 14.7167, Lng: -17.4677},
		}
		for _, a := range points {
			for _, b := range points {
				assert.GreaterOrEqual(t, DistanceKm(a, b), 0.0)
			}
		}
	})
}

func TestDistanceM(t *testing.T) {
	a := models.Point{Lat: 48.8566, Lng: 2.3522}
	b := models.Point{Lat: 48.8606, Lng: 2.3376}

	assert.InDelta(t, DistanceKm(a, b)*1000, DistanceM(a, b), 1e-6)
}
