package ecoplan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travearth/travearth_core/internal/models"
)

// fakeHotelLookup is an in-memory HotelLookup for planner tests
type fakeHotelLookup struct {
	hotels []models.Hotel
	err    error
	calls  int
}

func (f *fakeHotelLookup) FindSustainableHotelsNear(ctx context.Context, point models.Point, maxDistanceM, minScore int) ([]models.Hotel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.hotels, nil
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestGenerateEcoPlanValidation(t *testing.T) {
	planner := NewPlanner(&fakeHotelLookup{})
	ctx := context.Background()

	dest := models.Destination{Name: "Dakar", Country: "SN", Lat: 14.7167, Lng: -17.4677}

	t.Run("Rejects empty destinations", func(t *testing.T) {
		_, err := planner.GenerateEcoPlan(ctx, models.TripParams{
			StartDate: day("2026-09-01"),
			EndDate:   day("2026-09-04"),
			Travelers: 1,
		})
		assert.ErrorIs(t, err, ErrNoDestinations)
	})

	t.Run("Rejects end date before start date", func(t *testing.T) {
		_, err := planner.GenerateEcoPlan(ctx, models.TripParams{
			Destinations: []models.Destination{dest},
			StartDate:    day("2026-09-04"),
			EndDate:      day("2026-09-01"),
			Travelers:    1,
		})
		assert.ErrorIs(t, err, ErrInvalidDates)
	})

	t.Run("Rejects zero travelers", func(t *testing.T) {
		_, err := planner.GenerateEcoPlan(ctx, models.TripParams{
			Destinations: []models.Destination{dest},
			StartDate:    day("2026-09-01"),
			EndDate:      day("2026-09-04"),
			Travelers:    0,
		})
		assert.ErrorIs(t, err, ErrNoTravelers)
	})
}

func TestGenerateEcoPlanSingleDestination(t *testing.T) {
	planner := NewPlanner(&fakeHotelLookup{})

	plan, err := planner.GenerateEcoPlan(context.Background(), models.TripParams{
		Destinations: []models.Destination{
			{Name: "Dakar", City: "Dakar", Country: "SN", Lat: 14.7167, Lng: -17.4677},
		},
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-04"),
		Travelers: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, models.TripLocal, plan.TripType)
	assert.Equal(t, 3, plan.DurationDays)
	require.Len(t, plan.Itinerary, 1)

	leg := plan.Itinerary[0]
	assert.Equal(t, 3, leg.DurationDays)
	assert.Nil(t, leg.Transport)
	assert.Equal(t, 0.0, leg.TransportCarbon)

	// 20 kg/night * 3 nights * 1 traveler
	assert.Equal(t, 60.0, leg.AccommodationCarbon)

	// 3-day stay caps activities at 6
	assert.Len(t, leg.Activities, 6)
}

func TestGenerateEcoPlanInternational(t *testing.T) {
	planner := NewPlanner(&fakeHotelLookup{})

	plan, err := planner.GenerateEcoPlan(context.Background(), models.TripParams{
		Destinations: []models.Destination{
			{Name: "Paris", City: "Paris", Country: "FR", Lat: 48.8566, Lng: 2.3522},
			{Name: "New York", City: "New York", Country: "US", Lat: 40.7128, Lng: -74.0060},
		},
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-11"),
		Travelers: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, models.TripInternational, plan.TripType)
	require.Len(t, plan.Itinerary, 2)

	leg := plan.Itinerary[1]
	require.NotNil(t, leg.Transport)
	assert.NotEqual(t, models.ModeWalking, leg.Transport.Mode)
	assert.NotEqual(t, models.ModeCycling, leg.Transport.Mode)
	assert.Greater(t, leg.TransportCarbon, 0.0)

	// Top pick at ~5840km is the ever-present train, the most sustainable
	// option once short-range modes are gated out
	assert.Equal(t, models.ModeTrain, leg.Transport.Mode)
}

func TestGenerateEcoPlanDaySplit(t *testing.T) {
	planner := NewPlanner(&fakeHotelLookup{})
	ctx := context.Background()

	destinations := []models.Destination{
		{Name: "Lisbon", Country: "PT", Lat: 38.7223, Lng: -9.1393},
		{Name: "Porto", Country: "PT", Lat: 41.1579, Lng: -8.6291},
		{Name: "Faro", Country: "PT", Lat: 37.0194, Lng: -7.9304},
	}

	tests := []struct {
		name     string
		end      string
		expected []int
	}{
		{"even split", "2026-09-07", []int{2, 2, 2}},
		{"remainder goes to the first destinations", "2026-09-08", []int{3, 2, 2}},
		{"two extra days", "2026-09-09", []int{3, 3, 2}},
		{"fewer days than destinations", "2026-09-03", []int{1, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planner.GenerateEcoPlan(ctx, models.TripParams{
				Destinations: destinations,
				StartDate:    day("2026-09-01"),
				EndDate:      day(tt.end),
				Travelers:    1,
			})
			require.NoError(t, err)

			total := 0
			for i, leg := range plan.Itinerary {
				assert.Equal(t, tt.expected[i], leg.DurationDays)
				total += leg.DurationDays
			}
			assert.Equal(t, plan.DurationDays, total)
		})
	}
}

func TestGenerateEcoPlanAggregation(t *testing.T) {
	planner := NewPlanner(&fakeHotelLookup{
		hotels: []models.Hotel{
			{Name: "Green Stay", SustainabilityScore: 92},
			{Name: "Solar Lodge", SustainabilityScore: 88},
			{Name: "Eco Hostel", SustainabilityScore: 81},
			{Name: "Leaf Hotel", SustainabilityScore: 76},
			{Name: "Bamboo Inn", SustainabilityScore: 72},
		},
	})

	plan, err := planner.GenerateEcoPlan(context.Background(), models.TripParams{
		Destinations: []models.Destination{
			{Name: "Lisbon", Country: "PT", Lat: 38.7223, Lng: -9.1393},
			{Name: "Madrid", Country: "ES", Lat: 40.4168, Lng: -3.7038},
		},
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-07"),
		Travelers: 2,
	})
	require.NoError(t, err)

	t.Run("Summary totals match itinerary", func(t *testing.T) {
		sum := 0.0
		for _, leg := range plan.Itinerary {
			assert.InDelta(t, leg.TransportCarbon+leg.AccommodationCarbon+leg.ActivityCarbon, leg.TotalCarbon, 0.01)
			sum += leg.TotalCarbon
		}
		assert.InDelta(t, sum, plan.Summary.TotalCarbon, 0.01)
		assert.InDelta(t, sum/float64(plan.DurationDays), plan.Summary.CarbonPerDay, 0.01)
		assert.InDelta(t, sum/2, plan.Summary.CarbonPerPerson, 0.01)
	})

	t.Run("Hotel suggestions capped at three per leg", func(t *testing.T) {
		for _, leg := range plan.Itinerary {
			assert.Len(t, leg.Accommodations, 3)
		}
	})

	t.Run("Date cursor advances without gaps", func(t *testing.T) {
		cursor := day("2026-09-01")
		for _, leg := range plan.Itinerary {
			assert.Equal(t, cursor, leg.StartDate)
			cursor = leg.EndDate
		}
		assert.Equal(t, day("2026-09-07"), cursor)
	})
}

func TestGenerateEcoPlanAverageScoreRounds(t *testing.T) {
	planner := NewPlanner(&fakeHotelLookup{})

	// Two legs scoring 99 and 96: a 2-day stay after a zero-carbon start and a
	// 1-day stay reached by train
	plan, err := planner.GenerateEcoPlan(context.Background(), models.TripParams{
		Destinations: []models.Destination{
			{Name: "Lisbon", Country: "PT", Lat: 38.7223, Lng: -9.1393},
			{Name: "Porto", Country: "PT", Lat: 41.1579, Lng: -8.6291},
		},
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-04"),
		Travelers: 1,
	})
	require.NoError(t, err)

	require.Len(t, plan.Itinerary, 2)
	assert.Equal(t, 99, plan.Itinerary[0].SustainabilityScore)
	assert.Equal(t, 96, plan.Itinerary[1].SustainabilityScore)

	// (99 + 96) / 2 = 97.5 rounds to 98, same rounding as the per-leg scores
	assert.Equal(t, 98, plan.Summary.AverageSustainabilityScore)
}

func TestGenerateEcoPlanHotelFailure(t *testing.T) {
	lookup := &fakeHotelLookup{err: errors.New("connection refused")}
	planner := NewPlanner(lookup)

	plan, err := planner.GenerateEcoPlan(context.Background(), models.TripParams{
		Destinations: []models.Destination{
			{Name: "Lisbon", Country: "PT", Lat: 38.7223, Lng: -9.1393},
			{Name: "Porto", Country: "PT", Lat: 41.1579, Lng: -8.6291},
		},
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-05"),
		Travelers: 1,
	})

	// A failing hotel lookup never aborts plan generation
	require.NoError(t, err)
	assert.Equal(t, 2, lookup.calls)
	for _, leg := range plan.Itinerary {
		assert.Empty(t, leg.Accommodations)
	}
}

func TestGenerateEcoPlanOverBudget(t *testing.T) {
	planner := NewPlanner(&fakeHotelLookup{})

	// Short local trip with many travelers: accommodation alone blows the
	// local good threshold (10 kg/day * 3 days = 30 kg)
	plan, err := planner.GenerateEcoPlan(context.Background(), models.TripParams{
		Destinations: []models.Destination{
			{Name: "Dakar", Country: "SN", Lat: 14.7167, Lng: -17.4677},
		},
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-04"),
		Travelers: 4,
	})
	require.NoError(t, err)

	assert.Greater(t, plan.Summary.TotalCarbon, plan.Benchmark.GoodThreshold)

	hasWarning := false
	for _, s := range plan.Optimizations {
		if s.Type == "warning" || s.Type == "summary" {
			hasWarning = true
		}
	}
	assert.True(t, hasWarning)
}
