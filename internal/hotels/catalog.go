package hotels

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/travearth/travearth_core/internal/models"
)

// ParseCatalogCSV parses a partner hotel catalog file. Expected columns:
// external_id, name, city, country, lat, lng, sustainability_score,
// price_per_night. Column order is free; extra columns are ignored.
func ParseCatalogCSV(filePath string) ([]models.HotelRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseCatalogFromReader(file)
}

func parseCatalogFromReader(reader io.Reader) ([]models.HotelRecord, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	colMap := makeColumnMap(header)
	for _, required := range []string{"name", "lat", "lng"} {
		if _, ok := colMap[required]; !ok {
			return nil, fmt.Errorf("missing required column: %s", required)
		}
	}

	var records []models.HotelRecord

	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Warning: skipping malformed hotel row: %v", err)
			continue
		}

		lat, latErr := strconv.ParseFloat(getColumn(row, colMap, "lat"), 64)
		lng, lngErr := strconv.ParseFloat(getColumn(row, colMap, "lng"), 64)
		if latErr != nil || lngErr != nil {
			log.Printf("Warning: skipping hotel row with bad coordinates: %v", row)
			continue
		}

		score, _ := strconv.Atoi(getColumn(row, colMap, "sustainability_score"))
		price, _ := strconv.ParseFloat(getColumn(row, colMap, "price_per_night"), 64)

		records = append(records, models.HotelRecord{
			ExternalID:          getColumn(row, colMap, "external_id"),
			Name:                getColumn(row, colMap, "name"),
			City:                getColumn(row, colMap, "city"),
			Country:             getColumn(row, colMap, "country"),
			Lat:                 lat,
			Lng:                 lng,
			SustainabilityScore: score,
			PricePerNight:       price,
		})
	}

	return records, nil
}

// makeColumnMap maps normalized column names to their index in the header
func makeColumnMap(header []string) map[string]int {
	colMap := make(map[string]int, len(header))
	for i, col := range header {
		colMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return colMap
}

// getColumn returns the value of a named column, or "" when absent
func getColumn(row []string, colMap map[string]int, name string) string {
	idx, ok := colMap[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
