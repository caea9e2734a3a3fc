package ecoplan

import (
	"fmt"

	"github.com/travearth/travearth_core/internal/models"
)

// ecoBenchmarks holds the per-day carbon budgets in kg CO2 per trip type.
// Read-only after package load.
var ecoBenchmarks = map[models.TripType]models.PerDayBenchmark{
	models.TripLocal: {
		Excellent: 5,
		Good:      10,
		Average:   20,
		Poor:      30,
	},
	models.TripDomestic: {
		Excellent: 15,
		Good:      30,
		Average:   50,
		Poor:      75,
	},
	models.TripInternational: {
		Excellent: 50,
		Good:      100,
		Average:   200,
		Poor:      300,
	},
}

// GetEcoBenchmark returns the duration-scaled carbon budget for a trip type.
// Unknown trip types fall back to the domestic table.
func GetEcoBenchmark(tripType models.TripType, durationDays int) models.Benchmark {
	perDay, ok := ecoBenchmarks[tripType]
	if !ok {
		tripType = models.TripDomestic
		perDay = ecoBenchmarks[models.TripDomestic]
	}

	days := float64(durationDays)
	goodTotal := perDay.Good * days

	return models.Benchmark{
		TripType:           tripType,
		DurationDays:       durationDays,
		ExcellentThreshold: perDay.Excellent * days,
		GoodThreshold:      goodTotal,
		AverageThreshold:   perDay.Average * days,
		PoorThreshold:      perDay.Poor * days,
		PerDay:             perDay,
		Recommendation: fmt.Sprintf(
			"Aim for under %.0f kg CO2 total (%.0f kg/day) for a %s trip of %d days",
			goodTotal, perDay.Good, tripType, durationDays,
		),
	}
}
