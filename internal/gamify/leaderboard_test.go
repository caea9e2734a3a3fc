package gamify

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScoreStore is an in-memory ScoreStore for leaderboard tests
type fakeScoreStore struct {
	zset      []redis.Z
	rank      int64
	rankErr   error
	score     float64
	incrCalls int
	lastIncr  float64
	lastUser  string
}

func (f *fakeScoreStore) ZIncrBy(ctx context.Context, key string, increment float64, member string) *redis.FloatCmd {
	f.incrCalls++
	f.lastIncr = increment
	f.lastUser = member
	return redis.NewFloatResult(increment, nil)
}

func (f *fakeScoreStore) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd {
	end := stop + 1
	if end > int64(len(f.zset)) {
		end = int64(len(f.zset))
	}
	return redis.NewZSliceCmdResult(f.zset[start:end], nil)
}

func (f *fakeScoreStore) ZRevRank(ctx context.Context, key, member string) *redis.IntCmd {
	return redis.NewIntResult(f.rank, f.rankErr)
}

func (f *fakeScoreStore) ZScore(ctx context.Context, key, member string) *redis.FloatCmd {
	return redis.NewFloatResult(f.score, nil)
}

func TestAddScore(t *testing.T) {
	ctx := context.Background()

	t.Run("Positive points increment the user's score", func(t *testing.T) {
		store := &fakeScoreStore{}
		err := AddScore(ctx, store, "user-1", 30)

		require.NoError(t, err)
		assert.Equal(t, 1, store.incrCalls)
		assert.Equal(t, 30.0, store.lastIncr)
		assert.Equal(t, "user-1", store.lastUser)
	})

	t.Run("Zero points never touch the store", func(t *testing.T) {
		store := &fakeScoreStore{}
		err := AddScore(ctx, store, "user-1", 0)

		require.NoError(t, err)
		assert.Equal(t, 0, store.incrCalls)
	})
}

func TestTopN(t *testing.T) {
	store := &fakeScoreStore{
		zset: []redis.Z{
			{Member: "alice", Score: 120},
			{Member: "bob", Score: 90},
			{Member: "carol", Score: 40},
		},
	}

	t.Run("Ranks are assigned best first", func(t *testing.T) {
		entries, err := TopN(context.Background(), store, 10)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "alice", entries[0].UserID)
		assert.Equal(t, 120.0, entries[0].EcoScore)
		assert.Equal(t, 3, entries[2].Rank)
		assert.Equal(t, "carol", entries[2].UserID)
	})

	t.Run("Limit truncates the board", func(t *testing.T) {
		entries, err := TopN(context.Background(), store, 2)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "bob", entries[1].UserID)
	})
}

func TestUserRank(t *testing.T) {
	t.Run("Known user gets a 1-based rank and score", func(t *testing.T) {
		store := &fakeScoreStore{rank: 2, score: 80}
		entry, err := UserRank(context.Background(), store, "bob")

		require.NoError(t, err)
		assert.Equal(t, 3, entry.Rank)
		assert.Equal(t, "bob", entry.UserID)
		assert.Equal(t, 80.0, entry.EcoScore)
	})

	t.Run("Unknown user gets rank zero", func(t *testing.T) {
		store := &fakeScoreStore{rankErr: redis.Nil}
		entry, err := UserRank(context.Background(), store, "nobody")

		require.NoError(t, err)
		assert.Equal(t, 0, entry.Rank)
		assert.Equal(t, "nobody", entry.UserID)
		assert.Equal(t, 0.0, entry.EcoScore)
	})
}
