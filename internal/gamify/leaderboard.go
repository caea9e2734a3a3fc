package gamify

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/travearth/travearth_core/internal/models"
)

const leaderboardKey = "lb:eco_score"

// Eco-score points granted per rating level. A better-rated plan earns more.
var pointsByLevel = map[int]float64{
	5: 50,
	4: 30,
	3: 10,
	2: 5,
	1: 0,
}

// ScoreStore is the subset of Redis sorted-set commands the leaderboard uses.
// *redis.Client satisfies it.
type ScoreStore interface {
	ZIncrBy(ctx context.Context, key string, increment float64, member string) *redis.FloatCmd
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd
	ZRevRank(ctx context.Context, key, member string) *redis.IntCmd
	ZScore(ctx context.Context, key, member string) *redis.FloatCmd
}

// PointsForRating returns the eco-score points a plan rating earns
func PointsForRating(rating models.Rating) float64 {
	return pointsByLevel[rating.Level]
}

// AddScore increments a user's eco score on the leaderboard
func AddScore(ctx context.Context, rdb ScoreStore, userID string, points float64) error {
	if points <= 0 {
		return nil
	}
	return rdb.ZIncrBy(ctx, leaderboardKey, points, userID).Err()
}

// TopN returns the highest-scoring users, best first
func TopN(ctx context.Context, rdb ScoreStore, n int64) ([]models.LeaderboardEntry, error) {
	if n <= 0 || n > 100 {
		n = 10
	}

	results, err := rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(results))
	for i, z := range results {
		userID, _ := z.Member.(string)
		entries = append(entries, models.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   userID,
			EcoScore: z.Score,
		})
	}

	return entries, nil
}

// UserRank returns a user's 1-based rank and score, or rank 0 when the user
// has no score yet
func UserRank(ctx context.Context, rdb ScoreStore, userID string) (models.LeaderboardEntry, error) {
	rank, err := rdb.ZRevRank(ctx, leaderboardKey, userID).Result()
	if err == redis.Nil {
		return models.LeaderboardEntry{UserID: userID}, nil
	}
	if err != nil {
		return models.LeaderboardEntry{}, err
	}

	score, err := rdb.ZScore(ctx, leaderboardKey, userID).Result()
	if err != nil && err != redis.Nil {
		return models.LeaderboardEntry{}, err
	}

	return models.LeaderboardEntry{
		Rank:     int(rank) + 1,
		UserID:   userID,
		EcoScore: score,
	}, nil
}
