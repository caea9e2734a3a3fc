package gamify

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travearth/travearth_core/internal/models"
)

// badgeCatalog maps rating tiers to the badge they award. Only the top two
// tiers carry a badge. Read-only after package load.
var badgeCatalog = map[models.RatingTier]models.Badge{
	models.RatingExcellent: {
		ID:          "eco_champion",
		Name:        "Eco Champion",
		Description: "Planned a trip well below the eco benchmark",
		Icon:        "🏆",
	},
	models.RatingGood: {
		ID:          "green_traveler",
		Name:        "Green Traveler",
		Description: "Kept a trip within the recommended carbon budget",
		Icon:        "🌿",
	},
}

// BadgeForRating returns the badge awarded for a footprint rating, or false
// when the tier awards none
func BadgeForRating(tier models.RatingTier) (models.Badge, bool) {
	badge, ok := badgeCatalog[tier]
	return badge, ok
}

// AllBadges returns the badge catalog in award order, best first
func AllBadges() []models.Badge {
	return []models.Badge{
		badgeCatalog[models.RatingExcellent],
		badgeCatalog[models.RatingGood],
	}
}

// RecordAward persists a badge award for a user. Duplicate awards are
// ignored, a user earns each badge once.
func RecordAward(ctx context.Context, db *pgxpool.Pool, userID, badgeID string) error {
	query := `
		INSERT INTO badge_award (user_id, badge_id, awarded_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, badge_id) DO NOTHING
	`
	_, err := db.Exec(ctx, query, userID, badgeID, time.Now().UTC())
	return err
}

// ListAwards returns the badge IDs a user has earned, newest first
func ListAwards(ctx context.Context, db *pgxpool.Pool, userID string) ([]string, error) {
	query := `
		SELECT badge_id
		FROM badge_award
		WHERE user_id = $1
		ORDER BY awarded_at DESC
	`

	rows, err := db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		badges = append(badges, id)
	}

	return badges, nil
}
