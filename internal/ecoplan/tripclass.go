package ecoplan

import (
	"github.com/travearth/travearth_core/internal/geo"
	"github.com/travearth/travearth_core/internal/models"
)

const (
	localRadiusKm         = 200
	internationalRadiusKm = 2000
)

// DetectTripType classifies a trip as local, domestic, or international.
// The first destination is the geographic anchor: a trip is local when no
// destination is more than 200 km from it, international when any destination
// is in a different country or more than 2000 km away, domestic otherwise.
//
// A single-destination trip has no legs to measure and always classifies as
// local; there is no notion of home outside the destination list.
func DetectTripType(destinations []models.Destination) models.TripType {
	if len(destinations) == 0 {
		return models.TripLocal
	}

	home := destinations[0]

	maxDistanceFromHome := 0.0
	crossesBorder := false

	for _, dest := range destinations[1:] {
		dist := geo.DistanceKm(home.Point(), dest.Point())
		if dist > maxDistanceFromHome {
			maxDistanceFromHome = dist
		}
		if dest.Country != home.Country {
			crossesBorder = true
		}
	}

	// The distance check wins even across a border: a 150 km hop over a
	// frontier still counts as local.
	if maxDistanceFromHome < localRadiusKm {
		return models.TripLocal
	}

	if crossesBorder || maxDistanceFromHome > internationalRadiusKm {
		return models.TripInternational
	}

	return models.TripDomestic
}
