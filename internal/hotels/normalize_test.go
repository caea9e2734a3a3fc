package hotels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travearth/travearth_core/internal/models"
)

func TestValidateAndCleanRecords(t *testing.T) {
	tests := []struct {
		name     string
		records  []models.HotelRecord
		expected int
	}{
		{
			name: "All valid records",
			records: []models.HotelRecord{
				{ExternalID: "1", Name: "Eco Lodge", Lat: 14.7, Lng: -17.4},
				{ExternalID: "2", Name: "Green Stay", Lat: 14.8, Lng: -17.5},
			},
			expected: 2,
		},
		{
			name: "Filter invalid latitude",
			records: []models.HotelRecord{
				{ExternalID: "1", Name: "Eco Lodge", Lat: 14.7, Lng: -17.4},
				{ExternalID: "2", Name: "Nowhere", Lat: 95.0, Lng: -17.5},
			},
			expected: 1,
		},
		{
			name: "Filter invalid longitude",
			records: []models.HotelRecord{
				{ExternalID: "1", Name: "Eco Lodge", Lat: 14.7, Lng: -17.4},
				{ExternalID: "2", Name: "Nowhere", Lat: 14.8, Lng: 200.0},
			},
			expected: 1,
		},
		{
			name: "Filter null island",
			records: []models.HotelRecord{
				{ExternalID: "1", Name: "Eco Lodge", Lat: 14.7, Lng: -17.4},
				{ExternalID: "2", Name: "Null Island Resort", Lat: 0, Lng: 0},
			},
			expected: 1,
		},
		{
			name: "Filter empty name",
			records: []models.HotelRecord{
				{ExternalID: "1", Name: "  ", Lat: 14.7, Lng: -17.4},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateAndCleanRecords(tt.records)
			assert.Equal(t, tt.expected, len(result))
		})
	}

	t.Run("Clamps sustainability score", func(t *testing.T) {
		result := ValidateAndCleanRecords([]models.HotelRecord{
			{ExternalID: "1", Name: "Too Green", Lat: 14.7, Lng: -17.4, SustainabilityScore: 120},
			{ExternalID: "2", Name: "Below Zero", Lat: 14.8, Lng: -17.5, SustainabilityScore: -5},
		})

		require.Len(t, result, 2)
		assert.Equal(t, 100, result[0].SustainabilityScore)
		assert.Equal(t, 0, result[1].SustainabilityScore)
	})
}

func TestDeduplicateRecords(t *testing.T) {
	t.Run("Removes same-name hotels within threshold", func(t *testing.T) {
		records := []models.HotelRecord{
			{ExternalID: "1", Name: "Eco Lodge", Lat: 14.7167, Lng: -17.4677},
			{ExternalID: "2", Name: "eco lodge", Lat: 14.7168, Lng: -17.4678},
			{ExternalID: "3", Name: "Green Stay", Lat: 14.7167, Lng: -17.4677},
		}

		result := DeduplicateRecords(records, 50)

		require.Len(t, result, 2)
		assert.Equal(t, "1", result[0].ExternalID)
		assert.Equal(t, "3", result[1].ExternalID)
	})

	t.Run("Keeps same-name hotels far apart", func(t *testing.T) {
		records := []models.HotelRecord{
			{ExternalID: "1", Name: "Ibis", Lat: 14.7167, Lng: -17.4677},
			{ExternalID: "2", Name: "Ibis", Lat: 48.8566, Lng: 2.3522},
		}

		result := DeduplicateRecords(records, 50)
		assert.Len(t, result, 2)
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, DeduplicateRecords(nil, 50))
	})
}

func TestParseCatalogCSV(t *testing.T) {
	t.Run("Parses well-formed catalog", func(t *testing.T) {
		csvData := strings.Join([]string{
			"external_id,name,city,country,lat,lng,sustainability_score,price_per_night",
			"h1,Eco Lodge,Dakar,SN,14.7167,-17.4677,88,45.50",
			"h2,Green Stay,Thies,SN,14.7886,-16.9246,75,30",
		}, "\n")

		records, err := parseCatalogFromReader(strings.NewReader(csvData))
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "h1", records[0].ExternalID)
		assert.Equal(t, "Eco Lodge", records[0].Name)
		assert.Equal(t, 88, records[0].SustainabilityScore)
		assert.Equal(t, 45.50, records[0].PricePerNight)
	})

	t.Run("Skips rows with bad coordinates", func(t *testing.T) {
		csvData := strings.Join([]string{
			"external_id,name,city,country,lat,lng,sustainability_score,price_per_night",
			"h1,Eco Lodge,Dakar,SN,not-a-number,-17.4677,88,45.50",
			"h2,Green Stay,Thies,SN,14.7886,-16.9246,75,30",
		}, "\n")

		records, err := parseCatalogFromReader(strings.NewReader(csvData))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "h2", records[0].ExternalID)
	})

	t.Run("Rejects catalog without required columns", func(t *testing.T) {
		csvData := "id,title\n1,Somewhere"

		_, err := parseCatalogFromReader(strings.NewReader(csvData))
		assert.Error(t, err)
	})
}
