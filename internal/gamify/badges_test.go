package gamify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travearth/travearth_core/internal/models"
)

func TestBadgeForRating(t *testing.T) {
	tests := []struct {
		tier    models.RatingTier
		badgeID string
		awarded bool
	}{
		{models.RatingExcellent, "eco_champion", true},
		{models.RatingGood, "green_traveler", true},
		{models.RatingAverage, "", false},
		{models.RatingPoor, "", false},
		{models.RatingCritical, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			badge, ok := BadgeForRating(tt.tier)
			assert.Equal(t, tt.awarded, ok)
			if tt.awarded {
				assert.Equal(t, tt.badgeID, badge.ID)
			}
		})
	}
}

func TestAllBadges(t *testing.T) {
	badges := AllBadges()
	require.Len(t, badges, 2)
	assert.Equal(t, "eco_champion", badges[0].ID)
	assert.Equal(t, "green_traveler", badges[1].ID)
}

func TestPointsForRating(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		points float64
	}{
		{"excellent earns the most", 5, 50},
		{"good earns points", 4, 30},
		{"average earns a little", 3, 10},
		{"poor earns almost nothing", 2, 5},
		{"critical earns nothing", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.points, PointsForRating(models.Rating{Level: tt.level}))
		})
	}
}
