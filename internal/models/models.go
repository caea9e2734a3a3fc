package models

import "time"

// TripType classifies a trip by geographic reach
type TripType string

const (
	TripLocal         TripType = "local"
	TripDomestic      TripType = "domestic"
	TripInternational TripType = "international"
)

// TransportMode represents a means of travel between destinations
type TransportMode string

const (
	ModeWalking     TransportMode = "walking"
	ModeCycling     TransportMode = "cycling"
	ModeTrain       TransportMode = "train"
	ModeBus         TransportMode = "bus"
	ModeElectricCar TransportMode = "electric_car"
	ModeCar         TransportMode = "car"
	ModeFlight      TransportMode = "flight"
)

// RatingTier is the carbon footprint rating relative to the benchmark
type RatingTier string

const (
	RatingExcellent RatingTier = "excellent"
	RatingGood      RatingTier = "good"
	RatingAverage   RatingTier = "average"
	RatingPoor      RatingTier = "poor"
	RatingCritical  RatingTier = "critical"
)

// Point is a geographic coordinate
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Destination is one stop on a trip; order in the slice defines travel order
// and the first destination anchors trip-type classification
type Destination struct {
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Point returns the destination's coordinate
func (d Destination) Point() Point {
	return Point{Lat: d.Lat, Lng: d.Lng}
}

// TripParams is the input to eco-plan generation
type TripParams struct {
	Destinations []Destination     `json:"destinations"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Travelers    int               `json:"travelers"`
	Preferences  map[string]string `json:"preferences,omitempty"`
}

// Benchmark is a duration-scaled carbon budget for a trip type
type Benchmark struct {
	TripType           TripType        `json:"trip_type"`
	DurationDays       int             `json:"duration_days"`
	ExcellentThreshold float64         `json:"excellent_threshold"`
	GoodThreshold      float64         `json:"good_threshold"`
	AverageThreshold   float64         `json:"average_threshold"`
	PoorThreshold      float64         `json:"poor_threshold"`
	PerDay             PerDayBenchmark `json:"per_day"`
	Recommendation     string          `json:"recommendation"`
}

// PerDayBenchmark holds the per-day thresholds in kg CO2
type PerDayBenchmark struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Average   float64 `json:"average"`
	Poor      float64 `json:"poor"`
}

// TransportOption is one viable mode for a leg, with its carbon and cost profile
type TransportOption struct {
	Mode                TransportMode `json:"mode"`
	Name                string        `json:"name"`
	CarbonPerKm         float64       `json:"carbon_per_km"` // kg CO2
	DurationMins        int           `json:"duration_minutes"`
	Cost                float64       `json:"cost"`
	SustainabilityScore int           `json:"sustainability_score"` // 0-100
	Recommended         bool          `json:"recommended"`
	Icon                string        `json:"icon"`
	Description         string        `json:"description"`
}

// Activity is a suggested activity at a destination, from the static catalog
type Activity struct {
	Type                string  `json:"type"`
	Name                string  `json:"name"`
	CarbonPerHour       float64 `json:"carbon_per_hour"` // kg CO2
	SustainabilityScore int     `json:"sustainability_score"`
	DurationHours       float64 `json:"duration_hours"`
	Description         string  `json:"description"`
	Icon                string  `json:"icon"`
}

// ItineraryLeg is the stay (and inbound transport, if any) at one destination
type ItineraryLeg struct {
	Destination         string           `json:"destination"`
	Location            Point            `json:"location"`
	StartDate           time.Time        `json:"start_date"`
	EndDate             time.Time        `json:"end_date"`
	DurationDays        int              `json:"duration_days"`
	Transport           *TransportOption `json:"transport"` // nil for the first destination
	TransportCarbon     float64          `json:"transport_carbon"`
	Accommodations      []Hotel          `json:"accommodation_suggestions"`
	AccommodationCarbon float64          `json:"accommodation_carbon"`
	Activities          []Activity       `json:"activities"`
	ActivityCarbon      float64          `json:"activity_carbon"`
	TotalCarbon         float64          `json:"total_carbon"`
	SustainabilityScore int              `json:"sustainability_score"`
}

// Rating is the footprint rating derived from benchmark thresholds
type Rating struct {
	Rating  RatingTier `json:"rating"`
	Level   int        `json:"level"` // 1-5, 5 is best
	Color   string     `json:"color"`
	Message string     `json:"message"`
	Badge   string     `json:"badge,omitempty"`
}

// SuggestionPriority orders optimization suggestions for display
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
	PriorityInfo   SuggestionPriority = "info"
)

// Suggestion is one carbon-reduction recommendation with estimated savings
type Suggestion struct {
	Type        string             `json:"type"`
	Priority    SuggestionPriority `json:"priority"`
	Message     string             `json:"message"`
	Icon        string             `json:"icon"`
	Savings     float64            `json:"savings,omitempty"` // kg CO2
	Destination string             `json:"destination,omitempty"`
}

// PlanSummary aggregates the itinerary's carbon and scoring totals
type PlanSummary struct {
	TotalDestinations          int     `json:"total_destinations"`
	TotalCarbon                float64 `json:"total_carbon"`
	CarbonPerDay               float64 `json:"carbon_per_day"`
	CarbonPerPerson            float64 `json:"carbon_per_person"`
	Rating                     Rating  `json:"rating"`
	AverageSustainabilityScore int     `json:"average_sustainability_score"`
}

// EcoPlan is the full generated plan returned to the caller
type EcoPlan struct {
	TripType      TripType       `json:"trip_type"`
	DurationDays  int            `json:"duration_days"`
	Travelers     int            `json:"travelers"`
	Benchmark     Benchmark      `json:"benchmark"`
	Itinerary     []ItineraryLeg `json:"itinerary"`
	Summary       PlanSummary    `json:"summary"`
	Optimizations []Suggestion   `json:"optimizations"`
	GeneratedAt   time.Time      `json:"generated_at"`
}

// Hotel is a partner hotel surfaced as an accommodation suggestion
type Hotel struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	City                string  `json:"city"`
	Country             string  `json:"country"`
	Lat                 float64 `json:"lat"`
	Lng                 float64 `json:"lng"`
	SustainabilityScore int     `json:"sustainability_score"`
	PricePerNight       float64 `json:"price_per_night"`
	DistanceM           int     `json:"distance_meters,omitempty"`
}

// HotelRecord is one row of a partner hotel catalog CSV
type HotelRecord struct {
	ExternalID          string
	Name                string
	City                string
	Country             string
	Lat                 float64
	Lng                 float64
	SustainabilityScore int
	PricePerNight       float64
}

// Badge is a gamification badge definition
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// LeaderboardEntry is one ranked row of the eco-score leaderboard
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	UserID   string  `json:"user_id"`
	EcoScore float64 `json:"eco_score"`
}
