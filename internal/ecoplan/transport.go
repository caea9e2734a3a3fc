package ecoplan

import (
	"math"
	"sort"

	"github.com/travearth/travearth_core/internal/models"
)

// Emission factors in kg CO2 per km per traveler
const (
	trainCarbonPerKm       = 0.041
	busCarbonPerKm         = 0.089
	electricCarCarbonPerKm = 0.05
	carCarbonPerKm         = 0.12

	// Flight factors banded by distance: short-haul burns more per km
	flightShortCarbonPerKm  = 0.255 // under 1500 km
	flightMediumCarbonPerKm = 0.195 // under 3500 km
	flightLongCarbonPerKm   = 0.150

	flightShortHaulKm  = 1500
	flightMediumHaulKm = 3500

	flightOverheadMins = 120 // boarding, taxi, takeoff and landing
)

// Distance eligibility gates in km
const (
	maxWalkingKm     = 5
	maxCyclingKm     = 20
	maxBusKm         = 1000
	maxElectricCarKm = 500
	minFlightKm      = 300

	trainRecommendedKm = 1000
	busRecommendedKm   = 500
)

// RecommendTransportModes returns every transport option viable for the given
// distance, sorted by sustainability score descending. This is a menu, not a
// single pick: callers take options[0] as the most eco-friendly choice.
// A zero distance passes every upper distance gate, so coincident points still
// yield the full short-range menu.
func RecommendTransportModes(origin, destination models.Point, distanceKm float64) []models.TransportOption {
	options := []models.TransportOption{}

	if distanceKm < maxWalkingKm {
		options = append(options, models.TransportOption{
			Mode:                models.ModeWalking,
			Name:                "Walking",
			CarbonPerKm:         0,
			DurationMins:        travelMins(distanceKm, 5),
			Cost:                0,
			SustainabilityScore: 100,
			Recommended:         true,
			Icon:                "🚶",
			Description:         "Zero emissions and you see the city up close",
		})
	}

	if distanceKm < maxCyclingKm {
		options = append(options, models.TransportOption{
			Mode:                models.ModeCycling,
			Name:                "Cycling",
			CarbonPerKm:         0,
			DurationMins:        travelMins(distanceKm, 15),
			Cost:                distanceKm * 0.05, // bike rental fee
			SustainabilityScore: 100,
			Recommended:         true,
			Icon:                "🚴",
			Description:         "Zero emissions, rental bikes widely available",
		})
	}

	options = append(options, models.TransportOption{
		Mode:                models.ModeTrain,
		Name:                "Train",
		CarbonPerKm:         trainCarbonPerKm,
		DurationMins:        travelMins(distanceKm, 80),
		Cost:                distanceKm * 0.15,
		SustainabilityScore: 90,
		Recommended:         distanceKm < trainRecommendedKm,
		Icon:                "🚆",
		Description:         "Low-carbon option for medium and long distances",
	})

	if distanceKm < maxBusKm {
		options = append(options, models.TransportOption{
			Mode:                models.ModeBus,
			Name:                "Bus",
			CarbonPerKm:         busCarbonPerKm,
			DurationMins:        travelMins(distanceKm, 60),
			Cost:                distanceKm * 0.10,
			SustainabilityScore: 75,
			Recommended:         distanceKm < busRecommendedKm,
			Icon:                "🚌",
			Description:         "Affordable and shared, good for shorter hops",
		})
	}

	if distanceKm < maxElectricCarKm {
		options = append(options, models.TransportOption{
			Mode:                models.ModeElectricCar,
			Name:                "Electric car share",
			CarbonPerKm:         electricCarCarbonPerKm,
			DurationMins:        travelMins(distanceKm, 70),
			Cost:                distanceKm * 0.25,
			SustainabilityScore: 70,
			Recommended:         false,
			Icon:                "🔌",
			Description:         "Flexible with much lower emissions than petrol",
		})
	}

	options = append(options, models.TransportOption{
		Mode:                models.ModeCar,
		Name:                "Car",
		CarbonPerKm:         carCarbonPerKm,
		DurationMins:        travelMins(distanceKm, 80),
		Cost:                distanceKm * 0.30,
		SustainabilityScore: 40,
		Recommended:         false,
		Icon:                "🚗",
		Description:         "Highest per-km emissions of the ground options",
	})

	if distanceKm > minFlightKm {
		options = append(options, models.TransportOption{
			Mode:                models.ModeFlight,
			Name:                "Flight",
			CarbonPerKm:         flightCarbonPerKm(distanceKm),
			DurationMins:        travelMins(distanceKm, 600) + flightOverheadMins,
			Cost:                distanceKm * 0.12,
			SustainabilityScore: 20,
			Recommended:         false,
			Icon:                "✈️",
			Description:         "Fastest over long distances, highest carbon cost",
		})
	}

	// Stable keeps insertion order on equal scores (walking before cycling)
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].SustainabilityScore > options[j].SustainabilityScore
	})

	return options
}

// flightCarbonPerKm returns the per-km emission factor for the flight band
func flightCarbonPerKm(distanceKm float64) float64 {
	switch {
	case distanceKm < flightShortHaulKm:
		return flightShortCarbonPerKm
	case distanceKm < flightMediumHaulKm:
		return flightMediumCarbonPerKm
	default:
		return flightLongCarbonPerKm
	}
}

// travelMins converts a distance and cruising speed into whole minutes
func travelMins(distanceKm, speedKmh float64) int {
	return int(math.Ceil(distanceKm / speedKmh * 60))
}
