package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travearth/travearth_core/internal/db"
	"github.com/travearth/travearth_core/internal/hotels"
	"github.com/travearth/travearth_core/internal/models"
)

func main() {
	// Command-line flags
	partnerID := flag.String("partner-id", "", "Partner ID for this hotel catalog (required)")
	catalogPath := flag.String("catalog", "", "Path to hotel catalog CSV file (required)")
	dedupeThreshold := flag.Float64("dedupe-threshold", 50.0, "Hotel deduplication threshold in meters")

	flag.Parse()

	// Validate required flags
	if *partnerID == "" || *catalogPath == "" {
		fmt.Println("Usage: travearth-import --partner-id=<id> --catalog=<path.csv> [--dedupe-threshold=50]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Validate file exists
	if _, err := os.Stat(*catalogPath); os.IsNotExist(err) {
		log.Fatalf("Catalog file not found: %s", *catalogPath)
	}

	log.Println("Starting hotel catalog import...")
	log.Printf("Partner ID: %s", *partnerID)
	log.Printf("Catalog file: %s", *catalogPath)

	// Initialize database connection
	pool, err := db.GetDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Create import log entry
	importLogID, err := createImportLog(ctx, pool, *partnerID)
	if err != nil {
		log.Fatalf("Failed to create import log: %v", err)
	}

	// Run import in transaction
	if err := runImport(ctx, pool, *partnerID, *catalogPath, *dedupeThreshold, importLogID); err != nil {
		// Update log as failed
		updateImportLog(ctx, pool, importLogID, "failed", 0, 0, err.Error())
		log.Fatalf("Import failed: %v", err)
	}

	log.Println("Import completed successfully!")
	os.Exit(0)
}

func runImport(ctx context.Context, pool *pgxpool.Pool, partnerID, catalogPath string, dedupeThreshold float64, logID int64) error {
	startTime := time.Now()

	// Parse catalog file
	log.Println("Step 1/4: Parsing hotel catalog...")
	records, err := hotels.ParseCatalogCSV(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}
	parsed := len(records)

	// Validate and clean records
	log.Println("Step 2/4: Validating and cleaning records...")
	records = hotels.ValidateAndCleanRecords(records)

	// Deduplicate records
	log.Println("Step 3/4: Deduplicating records...")
	records = hotels.DeduplicateRecords(records, dedupeThreshold)

	// Begin transaction
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Import hotels
	log.Println("Step 4/4: Importing hotels to database...")
	if err := importHotels(ctx, tx, partnerID, records); err != nil {
		return fmt.Errorf("failed to import hotels: %w", err)
	}

	// Commit transaction
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	// Update import log
	duration := time.Since(startTime)
	log.Printf("Import completed in %s", duration)

	return updateImportLog(ctx, pool, logID, "success", parsed, len(records), "")
}

func createImportLog(ctx context.Context, pool *pgxpool.Pool, partnerID string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO import_log (partner_id, status)
		VALUES ($1, 'running')
		RETURNING id
	`, partnerID).Scan(&id)

	return id, err
}

func updateImportLog(ctx context.Context, pool *pgxpool.Pool, id int64, status string, parsed, imported int, errMsg string) error {
	// Build message with stats
	message := errMsg
	if status == "success" {
		message = fmt.Sprintf("Imported %d of %d parsed hotels", imported, parsed)
	}

	_, err := pool.Exec(ctx, `
		UPDATE import_log
		SET completed_at = NOW(),
		    status = $2,
		    message = $3
		WHERE id = $1
	`, id, status, message)

	return err
}

func importHotels(ctx context.Context, tx pgx.Tx, partnerID string, records []models.HotelRecord) error {
	batch := &pgx.Batch{}

	for _, rec := range records {
		batch.Queue(`
			INSERT INTO hotel (partner_id, external_id, name, city, country, lat, lng,
				sustainability_score, price_per_night)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (partner_id, external_id) DO UPDATE
			SET name = EXCLUDED.name,
			    city = EXCLUDED.city,
			    country = EXCLUDED.country,
			    lat = EXCLUDED.lat,
			    lng = EXCLUDED.lng,
			    sustainability_score = EXCLUDED.sustainability_score,
			    price_per_night = EXCLUDED.price_per_night
		`, partnerID, rec.ExternalID, rec.Name, rec.City, rec.Country, rec.Lat, rec.Lng,
			rec.SustainabilityScore, rec.PricePerNight)

		if batch.Len() >= 1000 {
			results := tx.SendBatch(ctx, batch)
			for i := 0; i < batch.Len(); i++ {
				if _, err := results.Exec(); err != nil {
					results.Close()
					return fmt.Errorf("failed to insert hotel batch: %w", err)
				}
			}
			results.Close()
			batch = &pgx.Batch{}
		}
	}

	if batch.Len() > 0 {
		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to insert hotel final batch: %w", err)
			}
		}
		results.Close()
	}

	log.Printf("Imported %d hotels", len(records))
	return nil
}
