package ecoplan

import "github.com/travearth/travearth_core/internal/models"

// activityCatalog is the fixed set of suggested activities, ordered most
// sustainable first. Read-only after package load.
var activityCatalog = []models.Activity{
	{
		Type:                "walking_tour",
		Name:                "Guided walking tour",
		CarbonPerHour:       0,
		SustainabilityScore: 100,
		DurationHours:       2,
		Description:         "Explore the old town on foot with a local guide",
		Icon:                "🚶",
	},
	{
		Type:                "cycling",
		Name:                "City cycling",
		CarbonPerHour:       0,
		SustainabilityScore: 100,
		DurationHours:       3,
		Description:         "Rent a bike and follow the riverside routes",
		Icon:                "🚴",
	},
	{
		Type:                "local_market",
		Name:                "Local market visit",
		CarbonPerHour:       0.2,
		SustainabilityScore: 95,
		DurationHours:       2,
		Description:         "Taste regional produce and support local vendors",
		Icon:                "🧺",
	},
	{
		Type:                "hiking",
		Name:                "Nature hike",
		CarbonPerHour:       0.1,
		SustainabilityScore: 95,
		DurationHours:       4,
		Description:         "Marked trails in the nearby nature reserve",
		Icon:                "🥾",
	},
	{
		Type:                "museum",
		Name:                "Museum visit",
		CarbonPerHour:       0.5,
		SustainabilityScore: 85,
		DurationHours:       2,
		Description:         "Art and history collections in the city center",
		Icon:                "🏛️",
	},
	{
		Type:                "transit_tour",
		Name:                "Public transit sightseeing",
		CarbonPerHour:       1.5,
		SustainabilityScore: 75,
		DurationHours:       3,
		Description:         "Cover the main sights by tram and bus",
		Icon:                "🚋",
	},
	{
		Type:                "kayaking",
		Name:                "Kayak excursion",
		CarbonPerHour:       0.3,
		SustainabilityScore: 90,
		DurationHours:       3,
		Description:         "Paddle the bay with a small-group outfitter",
		Icon:                "🛶",
	},
	{
		Type:                "car_excursion",
		Name:                "Scenic drive",
		CarbonPerHour:       12,
		SustainabilityScore: 30,
		DurationHours:       4,
		Description:         "Day trip to viewpoints outside the city by car",
		Icon:                "🚗",
	},
}

// SuggestActivities returns activity suggestions for a stay, capped at two
// per day. Selection is a prefix slice of the catalog, not an optimization.
func SuggestActivities(stayDays int) []models.Activity {
	limit := stayDays * 2
	if limit > len(activityCatalog) {
		limit = len(activityCatalog)
	}
	if limit < 0 {
		limit = 0
	}

	activities := make([]models.Activity, limit)
	copy(activities, activityCatalog[:limit])
	return activities
}
