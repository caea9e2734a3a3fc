package hotels

import (
	"log"
	"strings"

	"github.com/travearth/travearth_core/internal/geo"
	"github.com/travearth/travearth_core/internal/models"
)

// ValidateAndCleanRecords removes catalog rows with invalid coordinates or
// missing names and clamps sustainability scores into [0, 100]
func ValidateAndCleanRecords(records []models.HotelRecord) []models.HotelRecord {
	cleaned := []models.HotelRecord{}

	for _, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			log.Printf("Warning: hotel %s has no name, skipping", rec.ExternalID)
			continue
		}
		if rec.Lat < -90 || rec.Lat > 90 {
			log.Printf("Warning: invalid latitude for hotel %s: %f", rec.ExternalID, rec.Lat)
			continue
		}
		if rec.Lng < -180 || rec.Lng > 180 {
			log.Printf("Warning: invalid longitude for hotel %s: %f", rec.ExternalID, rec.Lng)
			continue
		}
		if rec.Lat == 0 && rec.Lng == 0 {
			log.Printf("Warning: hotel %s has null island coordinates, skipping", rec.ExternalID)
			continue
		}

		if rec.SustainabilityScore < 0 {
			rec.SustainabilityScore = 0
		}
		if rec.SustainabilityScore > 100 {
			rec.SustainabilityScore = 100
		}

		rec.Name = strings.TrimSpace(rec.Name)
		cleaned = append(cleaned, rec)
	}

	if len(cleaned) < len(records) {
		log.Printf("Cleaned hotel records: removed %d invalid rows", len(records)-len(cleaned))
	}

	return cleaned
}

// DeduplicateRecords removes duplicate hotels within a threshold distance of
// an earlier record with the same name. The first occurrence wins.
func DeduplicateRecords(records []models.HotelRecord, thresholdMeters float64) []models.HotelRecord {
	if len(records) == 0 {
		return records
	}

	deduplicated := []models.HotelRecord{}
	skip := make(map[int]bool)

	for i := 0; i < len(records); i++ {
		if skip[i] {
			continue
		}

		current := records[i]
		deduplicated = append(deduplicated, current)

		for j := i + 1; j < len(records); j++ {
			if skip[j] {
				continue
			}
			if !strings.EqualFold(records[j].Name, current.Name) {
				continue
			}

			distance := geo.DistanceM(
				models.Point{Lat: current.Lat, Lng: current.Lng},
				models.Point{Lat: records[j].Lat, Lng: records[j].Lng},
			)
			if distance < thresholdMeters {
				log.Printf("Deduplicating hotel %s (duplicate of %s, distance: %.2fm)",
					records[j].ExternalID, current.ExternalID, distance)
				skip[j] = true
			}
		}
	}

	log.Printf("Deduplicated %d hotel records to %d (removed %d duplicates)",
		len(records), len(deduplicated), len(records)-len(deduplicated))

	return deduplicated
}
