package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSummary(t *testing.T) {
	t.Run("Empty stats yield an empty summary", func(t *testing.T) {
		assert.Empty(t, calculateSummary(nil))
		assert.Empty(t, calculateSummary([]map[string]interface{}{}))
	})

	t.Run("Aggregates totals and rates across days", func(t *testing.T) {
		stats := []map[string]interface{}{
			{
				"total_requests":  int64(100),
				"successful":      int64(90),
				"failed":          int64(10),
				"cache_hits":      int64(40),
				"avg_response_ms": 20.0,
			},
			{
				"total_requests":  int64(50),
				"successful":      int64(45),
				"failed":          int64(5),
				"cache_hits":      int64(10),
				"avg_response_ms": 30.0,
			},
		}

		summary := calculateSummary(stats)

		require.NotEmpty(t, summary)
		assert.Equal(t, int64(150), summary["total_requests"])
		assert.Equal(t, int64(135), summary["total_successful"])
		assert.Equal(t, int64(15), summary["total_failed"])
		assert.Equal(t, int64(50), summary["total_cache_hits"])
		assert.InDelta(t, 90.0, summary["success_rate"].(float64), 0.001)
		assert.InDelta(t, 100.0/3.0, summary["overall_cache_rate"].(float64), 0.001)
		assert.InDelta(t, 25.0, summary["avg_response_ms"].(float64), 0.001)
		assert.Equal(t, 2, summary["days_analyzed"])
	})
}

func TestBoolToString(t *testing.T) {
	assert.Equal(t, "true", boolToString(true))
	assert.Equal(t, "false", boolToString(false))
}
