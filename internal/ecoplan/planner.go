package ecoplan

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/travearth/travearth_core/internal/geo"
	"github.com/travearth/travearth_core/internal/models"
)

const (
	// Flat accommodation emission per night per traveler in kg CO2,
	// independent of the actual hotel choice
	accommodationCarbonPerNight = 20

	// Hotel suggestion criteria
	hotelSearchRadiusM = 5000
	hotelMinScore      = 70
	maxHotelsPerLeg    = 3
)

// Engine validation errors
var (
	ErrNoDestinations = errors.New("eco plan requires at least one destination")
	ErrInvalidDates   = errors.New("end date must be after start date")
	ErrNoTravelers    = errors.New("eco plan requires at least one traveler")
)

// HotelLookup finds sustainable accommodation near a point. Implementations
// are injected so the engine carries no storage dependency; suggestions are
// display only and never enter the carbon math.
type HotelLookup interface {
	FindSustainableHotelsNear(ctx context.Context, point models.Point, maxDistanceM, minScore int) ([]models.Hotel, error)
}

// Planner generates eco plans. Safe for concurrent use: every call builds
// fresh state and nothing is mutated outside the call's scope.
type Planner struct {
	hotels HotelLookup
}

// NewPlanner creates a planner with the given hotel lookup collaborator
func NewPlanner(hotels HotelLookup) *Planner {
	return &Planner{hotels: hotels}
}

// GenerateEcoPlan builds a day-by-day itinerary with transport
// recommendations, a predicted carbon footprint, a benchmark rating, and
// optimization suggestions.
func (p *Planner) GenerateEcoPlan(ctx context.Context, params models.TripParams) (*models.EcoPlan, error) {
	if len(params.Destinations) == 0 {
		return nil, ErrNoDestinations
	}
	if params.Travelers < 1 {
		return nil, ErrNoTravelers
	}

	durationDays := daysBetween(params.StartDate, params.EndDate)
	if durationDays < 1 {
		return nil, ErrInvalidDates
	}

	tripType := DetectTripType(params.Destinations)
	benchmark := GetEcoBenchmark(tripType, durationDays)

	stayDays := splitDays(durationDays, len(params.Destinations))

	itinerary := make([]models.ItineraryLeg, 0, len(params.Destinations))
	totalCarbon := 0.0
	scoreSum := 0
	cursor := params.StartDate

	for i, dest := range params.Destinations {
		leg := models.ItineraryLeg{
			Destination:  dest.Name,
			Location:     dest.Point(),
			StartDate:    cursor,
			EndDate:      cursor.AddDate(0, 0, stayDays[i]),
			DurationDays: stayDays[i],
		}

		// Inbound transport: none for the first destination
		transportScore := 100
		if i > 0 {
			prev := params.Destinations[i-1]
			dist := geo.DistanceKm(prev.Point(), dest.Point())
			options := RecommendTransportModes(prev.Point(), dest.Point(), dist)
			top := options[0]
			leg.Transport = &top
			leg.TransportCarbon = dist * top.CarbonPerKm * float64(params.Travelers)
			transportScore = top.SustainabilityScore
		}

		leg.Activities = SuggestActivities(stayDays[i])
		for _, activity := range leg.Activities {
			leg.ActivityCarbon += activity.CarbonPerHour * activity.DurationHours
		}

		leg.AccommodationCarbon = accommodationCarbonPerNight * float64(stayDays[i]) * float64(params.Travelers)

		// Hotel suggestions are best-effort: a lookup failure never aborts
		// plan generation
		hotels, err := p.hotels.FindSustainableHotelsNear(ctx, dest.Point(), hotelSearchRadiusM, hotelMinScore)
		if err != nil {
			log.Printf("Hotel lookup failed for %s: %v", dest.Name, err)
			hotels = nil
		}
		if len(hotels) > maxHotelsPerLeg {
			hotels = hotels[:maxHotelsPerLeg]
		}
		if hotels == nil {
			hotels = []models.Hotel{}
		}
		leg.Accommodations = hotels

		leg.TotalCarbon = leg.TransportCarbon + leg.AccommodationCarbon + leg.ActivityCarbon
		leg.SustainabilityScore = destinationScore(transportScore, leg.Activities)

		totalCarbon += leg.TotalCarbon
		scoreSum += leg.SustainabilityScore
		cursor = leg.EndDate

		itinerary = append(itinerary, leg)
	}

	rating := RateFootprint(totalCarbon, benchmark)
	avgScore := int(math.Round(float64(scoreSum) / float64(len(itinerary))))

	return &models.EcoPlan{
		TripType:     tripType,
		DurationDays: durationDays,
		Travelers:    params.Travelers,
		Benchmark:    benchmark,
		Itinerary:    itinerary,
		Summary: models.PlanSummary{
			TotalDestinations:          len(itinerary),
			TotalCarbon:                totalCarbon,
			CarbonPerDay:               totalCarbon / float64(durationDays),
			CarbonPerPerson:            totalCarbon / float64(params.Travelers),
			Rating:                     rating,
			AverageSustainabilityScore: avgScore,
		},
		Optimizations: GenerateOptimizations(itinerary, totalCarbon, benchmark),
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

// daysBetween returns the trip duration in whole days, rounding partial days up
func daysBetween(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// splitDays distributes durationDays across n destinations, giving the
// remainder one extra day each to the first destinations
func splitDays(durationDays, n int) []int {
	base := durationDays / n
	remainder := durationDays % n

	days := make([]int, n)
	for i := range days {
		days[i] = base
		if i < remainder {
			days[i]++
		}
	}
	return days
}

// destinationScore blends the inbound transport score (40%) with the average
// activity score (60%). A leg with no inbound travel counts as a zero-carbon
// arrival and scores 100 on the transport side.
func destinationScore(transportScore int, activities []models.Activity) int {
	avgActivity := 0.0
	if len(activities) > 0 {
		sum := 0
		for _, a := range activities {
			sum += a.SustainabilityScore
		}
		avgActivity = float64(sum) / float64(len(activities))
	}

	return int(math.Round(float64(transportScore)*0.4 + avgActivity*0.6))
}
