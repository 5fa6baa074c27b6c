package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/kioskhub/dashboard/backend/config"
	"github.com/kioskhub/dashboard/backend/internal/api"
	"github.com/kioskhub/dashboard/backend/internal/catalog"
	"github.com/kioskhub/dashboard/backend/internal/database"
	"github.com/kioskhub/dashboard/backend/internal/logger"
	"github.com/kioskhub/dashboard/backend/internal/mealplan"
	"github.com/kioskhub/dashboard/backend/internal/middleware"
	"github.com/kioskhub/dashboard/backend/internal/router"
	"github.com/kioskhub/dashboard/backend/internal/server"
	"github.com/kioskhub/dashboard/backend/internal/service"
	"github.com/kioskhub/dashboard/backend/internal/shopping"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	logger.Info("starting kiosk shopping API",
		zap.String("env", string(cfg.Env)),
		zap.String("store", cfg.Storage.Driver),
		zap.String("meal_source", cfg.Meals.Source),
	)

	checks := map[string]api.Pinger{}

	var db *gorm.DB
	if needsDatabase(cfg) {
		var err error
		db, err = database.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		checks["database"] = func(ctx context.Context) error { return database.HealthCheck(ctx, db) }
	}

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		var err error
		rdb, err = database.NewRedisClient(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer rdb.Close()
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	store, err := newListStore(cfg, db, rdb)
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.Catalog.OverridesPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	loc, err := cfg.Shopping.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	engine := shopping.NewEngine(cat,
		shopping.WithLocation(loc),
		shopping.WithWeekStart(cfg.Shopping.WeekStartDay()),
	)

	deps := api.Dependencies{
		Catalog:      cat,
		Validator:    validator.New(),
		DaysAhead:    cfg.Shopping.DaysAhead,
		StoreDriver:  cfg.Storage.Driver,
		MealSource:   cfg.Meals.Source,
		HealthChecks: checks,
	}

	var meals service.MealSource
	switch cfg.Meals.Source {
	case "http":
		meals = mealplan.NewHTTPSource(cfg.Meals.BaseURL, cfg.Meals.Timeout)
	default:
		plans := mealplan.NewDBSource(db)
		meals = plans
		deps.MealPlans = service.NewMealPlanService(plans)
	}

	lists := service.NewShoppingService(store, meals, engine, cfg.Storage.Key)
	deps.Shopping = lists

	if cfg.S3.Enabled {
		s3cfg, err := config.NewS3Config(ctx, cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to configure S3: %w", err)
		}
		deps.Share = service.NewShareService(lists, s3cfg, cfg.S3.LinkTTL)
	}

	if cfg.RateLimit.Enabled && rdb != nil {
		deps.RateLimiter = middleware.NewGenerateRateLimiter(rdb, cfg.RateLimit.GeneratePerHour)
	}

	srv := server.New(cfg.Server, router.SetupRouter(cfg, deps))
	return srv.Run(ctx)
}

func needsDatabase(cfg *config.Config) bool {
	switch cfg.Storage.Driver {
	case "sqlite", "postgres":
		return true
	}
	return cfg.Meals.Source != "http"
}

func newListStore(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (service.ListStore, error) {
	switch cfg.Storage.Driver {
	case "sqlite", "postgres":
		return database.NewGormListStore(db), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("storage driver redis requires redis.url")
		}
		return database.NewRedisListStore(rdb, 0), nil
	case "memory":
		logger.Warn("shopping lists are kept in memory and lost on restart")
		return database.NewMemoryListStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
