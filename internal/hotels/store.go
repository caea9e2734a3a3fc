package hotels

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travearth/travearth_core/internal/models"
)

// Store provides hotel catalog queries backed by PostgreSQL. It implements
// ecoplan.HotelLookup.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a hotel store on the given connection pool
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// FindSustainableHotelsNear returns up to 5 hotels within maxDistanceM meters
// of a point with a sustainability score of at least minScore, best score
// first. Distance is computed with the Haversine formula in SQL.
func (s *Store) FindSustainableHotelsNear(ctx context.Context, point models.Point, maxDistanceM, minScore int) ([]models.Hotel, error) {
	query := `
		WITH hotel_distances AS (
			SELECT
				h.id,
				h.name,
				h.city,
				h.country,
				h.lat,
				h.lng,
				h.sustainability_score,
				h.price_per_night,
				ROUND(
					6371000 * acos(
						LEAST(1.0, GREATEST(-1.0,
							cos(radians($2)) * cos(radians(h.lat)) *
							cos(radians(h.lng) - radians($1)) +
							sin(radians($2)) * sin(radians(h.lat))
						))
					)
				) AS distance
			FROM hotel h
			WHERE h.sustainability_score >= $3
		)
		SELECT id, name, city, country, lat, lng, sustainability_score, price_per_night, distance
		FROM hotel_distances
		WHERE distance <= $4
		ORDER BY sustainability_score DESC, distance
		LIMIT 5
	`

	rows, err := s.db.Query(ctx, query, point.Lng, point.Lat, minScore, maxDistanceM)
	if err != nil {
		return nil, fmt.Errorf("hotel query failed: %w", err)
	}
	defer rows.Close()

	var hotels []models.Hotel
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Country, &h.Lat, &h.Lng,
			&h.SustainabilityScore, &h.PricePerNight, &h.DistanceM); err != nil {
			continue
		}
		hotels = append(hotels, h)
	}

	return hotels, nil
}

// ListByPartner returns the catalog entries owned by a partner, most
// sustainable first
func (s *Store) ListByPartner(ctx context.Context, partnerID string, limit int) ([]models.Hotel, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, name, city, country, lat, lng, sustainability_score, price_per_night
		FROM hotel
		WHERE partner_id = $1
		ORDER BY sustainability_score DESC, name
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, partnerID, limit)
	if err != nil {
		return nil, fmt.Errorf("hotel list failed: %w", err)
	}
	defer rows.Close()

	var hotels []models.Hotel
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Country, &h.Lat, &h.Lng,
			&h.SustainabilityScore, &h.PricePerNight); err != nil {
			continue
		}
		hotels = append(hotels, h)
	}

	return hotels, nil
}
