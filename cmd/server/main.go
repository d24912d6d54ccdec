package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"network-registry.backend/internal/config"
	domainrepos "network-registry.backend/internal/domain/repositories"
	"network-registry.backend/internal/infrastructure/blockchain"
	"network-registry.backend/internal/infrastructure/events"
	"network-registry.backend/internal/infrastructure/models"
	"network-registry.backend/internal/infrastructure/repositories"
	"network-registry.backend/internal/interfaces/http/handlers"
	"network-registry.backend/internal/interfaces/http/middleware"
	"network-registry.backend/internal/usecases"
	"network-registry.backend/pkg/logger"
	"network-registry.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	migrateDB = func(db *gorm.DB) error { return db.AutoMigrate(&models.Network{}) }
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := migrateDB(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Event publication is optional: without a channel configured the
	// registry runs with publishing disabled.
	var eventPublisher domainrepos.NetworkEventPublisher
	if cfg.Events.Enabled() {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
			logger.Warn(context.Background(), "Redis unavailable, network events disabled", zap.Error(err))
			eventPublisher = events.NewRedisEventPublisher(nil, cfg.Events.Channel)
		} else {
			logger.Info(context.Background(), "Redis initialized",
				zap.String("channel", cfg.Events.Channel))
			eventPublisher = events.NewRedisEventPublisher(redis.GetClient(), cfg.Events.Channel)
			defer redis.Close()
		}
	} else {
		logger.Info(context.Background(), "Network event publication disabled")
		eventPublisher = events.NewRedisEventPublisher(nil, "")
	}

	// Initialize repositories
	networkRepo := repositories.NewNetworkRepository(db)

	// Initialize blockchain client factory
	clientFactory := blockchain.NewClientFactory()

	// Initialize usecases
	networkUsecase := usecases.NewNetworkUsecase(networkRepo, eventPublisher, clientFactory)

	// Initialize handlers
	networkHandler := handlers.NewNetworkHandler(networkUsecase)

	// Initialize router
	middleware.MustRegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		networkHandler: networkHandler,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("🚀 Network Registry starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
