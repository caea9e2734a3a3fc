package ecoplan

import (
	"fmt"

	"github.com/travearth/travearth_core/internal/models"
)

// Badge names awarded by the top two rating tiers
const (
	BadgeEcoChampion   = "Eco Champion"
	BadgeGreenTraveler = "Green Traveler"
)

// RateFootprint compares a predicted total carbon footprint against the
// benchmark thresholds. Pure tier lookup, no state.
func RateFootprint(totalCarbon float64, benchmark models.Benchmark) models.Rating {
	switch {
	case totalCarbon <= benchmark.ExcellentThreshold:
		return models.Rating{
			Rating:  models.RatingExcellent,
			Level:   5,
			Color:   "#2e7d32",
			Message: "Outstanding! Your trip is well below the eco benchmark.",
			Badge:   BadgeEcoChampion,
		}
	case totalCarbon <= benchmark.GoodThreshold:
		return models.Rating{
			Rating:  models.RatingGood,
			Level:   4,
			Color:   "#66bb6a",
			Message: "Great job, your footprint is within the recommended budget.",
			Badge:   BadgeGreenTraveler,
		}
	case totalCarbon <= benchmark.AverageThreshold:
		return models.Rating{
			Rating:  models.RatingAverage,
			Level:   3,
			Color:   "#fbc02d",
			Message: "Typical footprint for this kind of trip. Room to improve.",
		}
	case totalCarbon <= benchmark.PoorThreshold:
		return models.Rating{
			Rating:  models.RatingPoor,
			Level:   2,
			Color:   "#ef6c00",
			Message: "Above average emissions. Check the optimization suggestions.",
		}
	default:
		return models.Rating{
			Rating:  models.RatingCritical,
			Level:   1,
			Color:   "#c62828",
			Message: "Very high emissions for this trip type. Consider restructuring the itinerary.",
		}
	}
}

// GenerateOptimizations builds the prioritized list of carbon-reduction
// suggestions for an itinerary. Order is fixed: benchmark warning, per-leg
// flight swaps, per-leg eco-hotel swaps, one aggregate activity suggestion,
// and a savings summary prepended when anything can be saved.
func GenerateOptimizations(itinerary []models.ItineraryLeg, totalCarbon float64, benchmark models.Benchmark) []models.Suggestion {
	suggestions := []models.Suggestion{}
	totalSavings := 0.0

	if totalCarbon > benchmark.GoodThreshold {
		excess := totalCarbon - benchmark.GoodThreshold
		suggestions = append(suggestions, models.Suggestion{
			Type:     "warning",
			Priority: models.PriorityHigh,
			Message: fmt.Sprintf(
				"Your predicted footprint exceeds the recommended budget by %.1f kg CO2",
				excess,
			),
			Icon: "⚠️",
		})
	}

	for _, leg := range itinerary {
		if leg.Transport == nil {
			continue
		}
		if leg.Transport.Mode == models.ModeFlight && leg.Transport.SustainabilityScore < 50 {
			savings := leg.TransportCarbon * 0.7
			totalSavings += savings
			suggestions = append(suggestions, models.Suggestion{
				Type:     "transport",
				Priority: models.PriorityHigh,
				Message: fmt.Sprintf(
					"Take the train instead of flying to %s and save about %.1f kg CO2",
					leg.Destination, savings,
				),
				Icon:        "🚆",
				Savings:     savings,
				Destination: leg.Destination,
			})
		}
	}

	for _, leg := range itinerary {
		if len(leg.Accommodations) == 0 {
			continue
		}
		// Savings estimated from the flat per-night constant, not from the
		// suggested hotels' actual data.
		savings := leg.AccommodationCarbon * 0.5
		totalSavings += savings
		suggestions = append(suggestions, models.Suggestion{
			Type:     "accommodation",
			Priority: models.PriorityMedium,
			Message: fmt.Sprintf(
				"Stay at an eco-certified hotel in %s to save an estimated %.1f kg CO2",
				leg.Destination, savings,
			),
			Icon:        "🏨",
			Savings:     savings,
			Destination: leg.Destination,
		})
	}

	highCarbonActivities := 0.0
	for _, leg := range itinerary {
		for _, activity := range leg.Activities {
			if activity.SustainabilityScore < 60 {
				highCarbonActivities += activity.CarbonPerHour * activity.DurationHours
			}
		}
	}
	if highCarbonActivities > 0 {
		savings := highCarbonActivities * 0.8
		totalSavings += savings
		suggestions = append(suggestions, models.Suggestion{
			Type:     "activities",
			Priority: models.PriorityLow,
			Message: fmt.Sprintf(
				"Swap high-carbon activities for walking or cycling options and save about %.1f kg CO2",
				savings,
			),
			Icon:    "🚴",
			Savings: savings,
		})
	}

	if totalSavings > 0 {
		percentage := 0.0
		if totalCarbon > 0 {
			percentage = totalSavings / totalCarbon * 100
		}
		summary := models.Suggestion{
			Type:     "summary",
			Priority: models.PriorityInfo,
			Message: fmt.Sprintf(
				"Following all suggestions could save %.1f kg CO2 (%.0f%% of your footprint)",
				totalSavings, percentage,
			),
			Icon:    "🌱",
			Savings: totalSavings,
		}
		suggestions = append([]models.Suggestion{summary}, suggestions...)
	}

	return suggestions
}
