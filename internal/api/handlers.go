package api

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/travearth/travearth_core/internal/cache"
	"github.com/travearth/travearth_core/internal/db"
	"github.com/travearth/travearth_core/internal/ecoplan"
	"github.com/travearth/travearth_core/internal/gamify"
	"github.com/travearth/travearth_core/internal/hotels"
	"github.com/travearth/travearth_core/internal/models"
)

// EcoPlanRequest is the request body for eco-plan generation
type EcoPlanRequest struct {
	Destinations []models.Destination `json:"destinations"`
	StartDate    string               `json:"start_date"` // YYYY-MM-DD
	EndDate      string               `json:"end_date"`   // YYYY-MM-DD
	Travelers    int                  `json:"travelers"`
	UserID       string               `json:"user_id,omitempty"`
}

// GenerateEcoPlan handles the POST /v2/eco-plan endpoint
func GenerateEcoPlan(c *fiber.Ctx) error {
	var req EcoPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   "invalid_request",
			"message": "Invalid request body",
		})
	}

	params, err := validatePlanRequest(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   "validation_error",
			"message": err.Error(),
		})
	}

	c.Locals("plan_destinations", len(params.Destinations))

	ctx := c.Context()
	plan, cacheHit, err := computePlan(ctx, *params)
	if err != nil {
		if errors.Is(err, ecoplan.ErrNoDestinations) ||
			errors.Is(err, ecoplan.ErrInvalidDates) ||
			errors.Is(err, ecoplan.ErrNoTravelers) {
			return c.Status(400).JSON(fiber.Map{
				"error":   "validation_error",
				"message": err.Error(),
			})
		}
		log.Printf("Eco plan generation failed: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Failed to generate eco plan",
		})
	}

	c.Locals("cache_hit", cacheHit)

	// Gamification side effects are best-effort
	if req.UserID != "" && !cacheHit {
		go recordGamification(req.UserID, plan.Summary.Rating)
	}

	return c.JSON(plan)
}

// computePlan generates an eco plan with caching. Concurrent identical
// requests compute once behind a Redis mutex.
func computePlan(ctx context.Context, params models.TripParams) (*models.EcoPlan, bool, error) {
	cacheKey := cache.PlanKey(params)
	lockKey := cache.LockKey(cacheKey)

	cachedPlan, err := cache.GetPlan(ctx, cacheKey)
	if err == nil && cachedPlan != nil {
		return cachedPlan, true, nil
	}

	acquired, err := cache.AcquireLock(ctx, lockKey, 5*time.Second)
	if err != nil {
		log.Printf("Failed to acquire lock: %v", err)
		// Continue without lock (degrade gracefully)
	} else if !acquired {
		// Another request is computing this plan, wait for it
		cachedPlan, err := cache.WaitForLock(ctx, cacheKey, 3*time.Second)
		if err == nil && cachedPlan != nil {
			return cachedPlan, true, nil
		}
		// If waiting failed, compute anyway
	}

	defer func() {
		if acquired {
			cache.ReleaseLock(ctx, lockKey)
		}
	}()

	pool, err := db.GetDB()
	if err != nil {
		return nil, false, err
	}

	planner := ecoplan.NewPlanner(hotels.NewStore(pool))
	plan, err := planner.GenerateEcoPlan(ctx, params)
	if err != nil {
		return nil, false, err
	}

	cacheTTL := 15 * time.Minute
	if err := cache.SetPlan(ctx, cacheKey, plan, cacheTTL); err != nil {
		log.Printf("Failed to cache plan: %v", err)
	}

	return plan, false, nil
}

// recordGamification awards badges and leaderboard points for a fresh plan
func recordGamification(userID string, rating models.Rating) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, err := cache.GetClient()
	if err == nil {
		if points := gamify.PointsForRating(rating); points > 0 {
			if err := gamify.AddScore(ctx, rdb, userID, points); err != nil {
				log.Printf("Failed to update leaderboard for %s: %v", userID, err)
			}
		}
	}

	badge, ok := gamify.BadgeForRating(rating.Rating)
	if !ok {
		return
	}

	pool, err := db.GetDB()
	if err != nil {
		return
	}
	if err := gamify.RecordAward(ctx, pool, userID, badge.ID); err != nil {
		log.Printf("Failed to record badge award for %s: %v", userID, err)
	}
}

// validatePlanRequest validates the request and converts it to trip params
func validatePlanRequest(req *EcoPlanRequest) (*models.TripParams, error) {
	if len(req.Destinations) == 0 {
		return nil, errors.New("at least one destination is required")
	}

	for i, d := range req.Destinations {
		if d.Lat < -90 || d.Lat > 90 {
			return nil, errors.New("destination " + strconv.Itoa(i) + ": latitude must be between -90 and 90")
		}
		if d.Lng < -180 || d.Lng > 180 {
			return nil, errors.New("destination " + strconv.Itoa(i) + ": longitude must be between -180 and 180")
		}
		if d.Name == "" {
			return nil, errors.New("destination " + strconv.Itoa(i) + ": name is required")
		}
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, errors.New("start_date must be in YYYY-MM-DD format")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, errors.New("end_date must be in YYYY-MM-DD format")
	}
	if !end.After(start) {
		return nil, errors.New("end_date must be after start_date")
	}

	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}
	if travelers < 1 {
		return nil, errors.New("travelers must be at least 1")
	}

	return &models.TripParams{
		Destinations: req.Destinations,
		StartDate:    start,
		EndDate:      end,
		Travelers:    travelers,
	}, nil
}

// HotelsNearbyResponse represents the response for nearby hotels
type HotelsNearbyResponse struct {
	Hotels []models.Hotel `json:"hotels"`
	Total  int            `json:"total"`
}

// HotelsNearby handles the GET /v2/hotels/nearby endpoint
func HotelsNearby(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	radiusStr := c.Query("radius", "5000")    // Default 5km
	minScoreStr := c.Query("min_score", "70") // Default sustainable only

	if latStr == "" || lngStr == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "missing required parameters: lat and lng",
		})
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return c.Status(400).JSON(fiber.Map{
			"error": "invalid latitude",
		})
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || lng < -180 || lng > 180 {
		return c.Status(400).JSON(fiber.Map{
			"error": "invalid longitude",
		})
	}

	radius, err := strconv.Atoi(radiusStr)
	if err != nil || radius < 0 || radius > 50000 {
		return c.Status(400).JSON(fiber.Map{
			"error": "invalid radius (must be between 0 and 50000 meters)",
		})
	}

	minScore, err := strconv.Atoi(minScoreStr)
	if err != nil || minScore < 0 || minScore > 100 {
		return c.Status(400).JSON(fiber.Map{
			"error": "invalid min_score (must be between 0 and 100)",
		})
	}

	pool, err := db.GetDB()
	if err != nil {
		log.Printf("Database error: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	store := hotels.NewStore(pool)
	found, err := store.FindSustainableHotelsNear(c.Context(), models.Point{Lat: lat, Lng: lng}, radius, minScore)
	if err != nil {
		log.Printf("Hotel query error: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	if found == nil {
		found = []models.Hotel{}
	}

	return c.JSON(HotelsNearbyResponse{
		Hotels: found,
		Total:  len(found),
	})
}

// Leaderboard handles the GET /v2/leaderboard endpoint
func Leaderboard(c *fiber.Ctx) error {
	limitStr := c.Query("limit", "10")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	rdb, err := cache.GetClient()
	if err != nil {
		log.Printf("Redis error: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	entries, err := gamify.TopN(c.Context(), rdb, limit)
	if err != nil {
		log.Printf("Leaderboard query error: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"leaderboard": entries,
		"total":       len(entries),
	})
}

// UserBadges handles the GET /v2/users/:id/badges endpoint
func UserBadges(c *fiber.Ctx) error {
	userID := c.Params("id")
	if userID == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "user id is required",
		})
	}

	pool, err := db.GetDB()
	if err != nil {
		log.Printf("Database error: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	awarded, err := gamify.ListAwards(c.Context(), pool, userID)
	if err != nil {
		log.Printf("Badge query error: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	catalog := make(map[string]models.Badge, 2)
	for _, b := range gamify.AllBadges() {
		catalog[b.ID] = b
	}

	badges := []models.Badge{}
	for _, id := range awarded {
		if b, ok := catalog[id]; ok {
			badges = append(badges, b)
		}
	}

	return c.JSON(fiber.Map{
		"user_id": userID,
		"badges":  badges,
		"total":   len(badges),
	})
}

// UserRank handles the GET /v2/users/:id/rank endpoint
func UserRank(c *fiber.Ctx) error {
	userID := c.Params("id")
	if userID == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "user id is required",
		})
	}

	rdb, err := cache.GetClient()
	if err != nil {
		log.Printf("Redis error: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	entry, err := gamify.UserRank(c.Context(), rdb, userID)
	if err != nil {
		log.Printf("Rank query error: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(entry)
}

// Health handles the /health endpoint
func Health(c *fiber.Ctx) error {
	ctx := c.Context()

	dbErr := db.HealthCheck(ctx)
	dbStatus := "ok"
	if dbErr != nil {
		dbStatus = dbErr.Error()
	}

	redisErr := cache.HealthCheck(ctx)
	redisStatus := "ok"
	if redisErr != nil {
		redisStatus = redisErr.Error()
	}

	status := "healthy"
	httpStatus := 200
	if dbErr != nil || redisErr != nil {
		status = "unhealthy"
		httpStatus = 503
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status": status,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
