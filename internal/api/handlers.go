package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kioskhub/dashboard/backend/internal/catalog"
	"github.com/kioskhub/dashboard/backend/internal/middleware"
	"github.com/kioskhub/dashboard/backend/internal/service"
)

// Version is reported by the health endpoint.
const Version = "v1.0.0"

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

// Dependencies are the collaborators the HTTP layer is built from. Share and
// RateLimiter may be nil, which disables sharing and rate limiting.
type Dependencies struct {
	Shopping     service.IShoppingService
	MealPlans    service.IMealPlanService
	Share        service.IShareService
	Catalog      *catalog.Catalog
	RateLimiter  *middleware.RateLimiter
	Validator    *validator.Validate
	DaysAhead    int
	StoreDriver  string
	MealSource   string
	HealthChecks map[string]Pinger
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	storeDriver string
	mealSource  string
	checks      map[string]Pinger
}

func NewHealthHandler(storeDriver, mealSource string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{storeDriver: storeDriver, mealSource: mealSource, checks: checks}
}

// HealthCheck returns the health status of the API and its stores.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "degraded"
	}
	c.JSON(status, gin.H{
		"status":      state,
		"message":     "Kiosk shopping API is running",
		"version":     Version,
		"store":       h.storeDriver,
		"meal_source": h.mealSource,
		"checks":      checks,
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	health := NewHealthHandler(deps.StoreDriver, deps.MealSource, deps.HealthChecks)
	router.GET("/health", health.HealthCheck)
	router.GET("/api/health", health.HealthCheck)

	validate := deps.Validator
	if validate == nil {
		validate = validator.New()
	}
	cat := deps.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	v1 := router.Group("/api/v1")
	NewCatalogHandler(cat).RegisterRoutes(v1)

	households := v1.Group("/households/:household")
	NewShoppingHandler(deps.Shopping, deps.Share, validate, deps.DaysAhead).RegisterRoutes(households, deps.RateLimiter)
	if deps.MealPlans != nil {
		NewMealPlanHandler(deps.MealPlans, validate).RegisterRoutes(households)
	}
}
