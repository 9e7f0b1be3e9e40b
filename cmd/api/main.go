package main

// @title Fare Quote Service API
// @version 1.0.0
// @description Сервис расчёта тарифов наземных перевозок. Считает цену поездки по каждому классу машины: полосовой тариф по дистанции, почасовые ставки, поездки туда-обратно со скидкой, надбавки по времени суток, сборы аэропортов и платных зон, доплаты за оборудование.
// @description
// @description Основные возможности:
// @description - Расчёт тарифа для one-way, hourly и return поездок
// @description - Перерасчёт одного класса машины по его идентификатору
// @description - Каталог классов машин с вместимостью и минимальными тарифами
// @description - Каталог платных зон и аэропортов региона

// @contact.name API Support
// @contact.email support@fare-quote-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/fare-quote-service/docs"
	"github.com/fare-quote-service/internal/config"
	httpDelivery "github.com/fare-quote-service/internal/delivery/http"
	"github.com/fare-quote-service/internal/delivery/http/handler"
	"github.com/fare-quote-service/internal/domain"
	"github.com/fare-quote-service/internal/domain/repository"
	"github.com/fare-quote-service/internal/infrastructure/mapbox"
	"github.com/fare-quote-service/internal/pkg/logger"
	"github.com/fare-quote-service/internal/repository/cache"
	"github.com/fare-quote-service/internal/repository/postgres"
	"github.com/fare-quote-service/internal/repository/static"
	"github.com/fare-quote-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Fare Quote Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("region", cfg.Pricing.Region),
		zap.String("currency", cfg.Pricing.Currency),
	)

	// 3. Connect to PostgreSQL (аудит рассчитанных тарифов, опционально)
	var quoteRepo repository.QuoteRepository
	var db *postgres.DB
	if cfg.Pricing.PersistQuotes {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		quoteRepo = postgres.NewQuoteRepository(db)
		log.Info("PostgreSQL connected, quote audit enabled")
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	// Статичные каталоги: тарифная сетка региона, платные зоны, аэропорты
	vehicleRepo := static.NewDefaultVehicleRepository()
	zoneRepo := static.NewDefaultZoneRepository()

	routeRepo := mapbox.NewDirectionsClient(&cfg.Mapbox, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	gate := usecase.NewServiceAreaGate(domain.BoundingBox{
		North: cfg.Pricing.AreaNorth,
		South: cfg.Pricing.AreaSouth,
		East:  cfg.Pricing.AreaEast,
		West:  cfg.Pricing.AreaWest,
	}, log)

	fareUC := usecase.NewFareUseCase(
		vehicleRepo,
		zoneRepo,
		routeRepo,
		cacheRepo,
		quoteRepo,
		gate,
		log,
		cfg.Pricing.Currency,
		cfg.Pricing.ReturnDiscount,
		cfg.Pricing.Region,
		cfg.Cache.RouteCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	quoteHandler := handler.NewQuoteHandler(fareUC, log)
	catalogHandler := handler.NewCatalogHandler(vehicleRepo, zoneRepo, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		quoteHandler,
		catalogHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
