package ecoplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travearth/travearth_core/internal/models"
)

func TestGetEcoBenchmark(t *testing.T) {
	t.Run("Thresholds scale with duration", func(t *testing.T) {
		b := GetEcoBenchmark(models.TripDomestic, 5)

		assert.Equal(t, 75.0, b.ExcellentThreshold)
		assert.Equal(t, 150.0, b.GoodThreshold)
		assert.Equal(t, 250.0, b.AverageThreshold)
		assert.Equal(t, 375.0, b.PoorThreshold)
	})

	t.Run("Thresholds are strictly increasing", func(t *testing.T) {
		for _, tripType := range []models.TripType{models.TripLocal, models.TripDomestic, models.TripInternational} {
			for _, days := range []int{1, 3, 14} {
				b := GetEcoBenchmark(tripType, days)
				assert.Less(t, b.ExcellentThreshold, b.GoodThreshold)
				assert.Less(t, b.GoodThreshold, b.AverageThreshold)
				assert.Less(t, b.AverageThreshold, b.PoorThreshold)
			}
		}
	})

	t.Run("Doubling duration doubles thresholds", func(t *testing.T) {
		short := GetEcoBenchmark(models.TripInternational, 4)
		long := GetEcoBenchmark(models.TripInternational, 8)

		assert.Equal(t, 2*short.GoodThreshold, long.GoodThreshold)
		assert.Equal(t, 2*short.PoorThreshold, long.PoorThreshold)
	})

	t.Run("Unknown trip type falls back to domestic", func(t *testing.T) {
		b := GetEcoBenchmark(models.TripType("orbital"), 3)

		assert.Equal(t, models.TripDomestic, b.TripType)
		assert.Equal(t, 90.0, b.GoodThreshold)
	})

	t.Run("Recommendation names the good total", func(t *testing.T) {
		b := GetEcoBenchmark(models.TripLocal, 3)
		assert.Contains(t, b.Recommendation, "30 kg CO2")
	})
}

func TestDetectTripType(t *testing.T) {
	dakar := models.Destination{Name: "Dakar", City: "Dakar", Country: "SN", Lat: 14.7167, Lng: -17.4677}
	thies := models.Destination{Name: "Thies", City: "Thies", Country: "SN", Lat: 14.7886, Lng: -16.9246}
	ziguinchor := models.Destination{Name: "Ziguinchor", City: "Ziguinchor", Country: "SN", Lat: 12.5833, Lng: -16.2719}
	paris := models.Destination{Name: "Paris", City: "Paris", Country: "FR", Lat: 48.8566, Lng: 2.3522}

	t.Run("Empty destinations default to local", func(t *testing.T) {
		assert.Equal(t, models.TripLocal, DetectTripType(nil))
	})

	t.Run("Single destination is always local", func(t *testing.T) {
		// No home outside the list means nothing to measure against
		assert.Equal(t, models.TripLocal, DetectTripType([]models.Destination{paris}))
	})

	t.Run("Nearby destinations are local", func(t *testing.T) {
		assert.Equal(t, models.TripLocal, DetectTripType([]models.Destination{dakar, thies}))
	})

	t.Run("Same country beyond 200km is domestic", func(t *testing.T) {
		assert.Equal(t, models.TripDomestic, DetectTripType([]models.Destination{dakar, ziguinchor}))
	})

	t.Run("Different country is international", func(t *testing.T) {
		assert.Equal(t, models.TripInternational, DetectTripType([]models.Destination{dakar, paris}))
	})

	t.Run("Same country beyond 2000km is international", func(t *testing.T) {
		lisbon := models.Destination{Name: "Lisbon", Country: "PT", Lat: 38.7223, Lng: -9.1393}
		azoresFar := models.Destination{Name: "Ponta Delgada", Country: "PT", Lat: 37.7412, Lng: -25.6756}
		// Lisbon to the Azores is ~1450km, still domestic
		assert.Equal(t, models.TripDomestic, DetectTripType([]models.Destination{lisbon, azoresFar}))

		perth := models.Destination{Name: "Perth", Country: "AU", Lat: -31.9505, Lng: 115.8605}
		sydney := models.Destination{Name: "Sydney", Country: "AU", Lat: -33.8688, Lng: 151.2093}
		// Perth to Sydney is ~3300km within one country
		assert.Equal(t, models.TripInternational, DetectTripType([]models.Destination{perth, sydney}))
	})
}
