package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medlocate/medlocate-backend/internal/adapters/cache"
	"github.com/medlocate/medlocate-backend/internal/adapters/database"
	"github.com/medlocate/medlocate-backend/internal/adapters/events"
	"github.com/medlocate/medlocate-backend/internal/adapters/providers/geolocation"
	"github.com/medlocate/medlocate-backend/internal/api/handlers"
	"github.com/medlocate/medlocate-backend/internal/api/middleware"
	"github.com/medlocate/medlocate-backend/internal/api/routes"
	"github.com/medlocate/medlocate-backend/internal/application/services"
	"github.com/medlocate/medlocate-backend/internal/domain/providers"
	"github.com/medlocate/medlocate-backend/internal/infrastructure/clients/postgres"
	"github.com/medlocate/medlocate-backend/internal/infrastructure/clients/redis"
	"github.com/medlocate/medlocate-backend/internal/infrastructure/observability"
	"github.com/medlocate/medlocate-backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger("medlocate-api", cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Redis backs both the session store and the change notification bus.
	// Sessions cannot work without it, so failure here is fatal.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize Redis client: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis client initialized successfully")

	// Adapters
	hospitalRepo := database.NewHospitalAdapter(pgClient)
	doctorRepo := database.NewDoctorAdapter(pgClient)
	userRepo := database.NewUserAdapter(pgClient)
	userRoleRepo := database.NewUserRoleAdapter(pgClient)

	cacheProvider := cache.NewRedisAdapter(redisClient)
	eventBus := events.NewRedisEventBus(redisClient)

	var geolocationProvider providers.GeolocationProvider
	switch cfg.Geolocation.Provider {
	case "google":
		if cfg.Geolocation.APIKey == "" {
			log.Println("Warning: GEOLOCATION_API_KEY is not set; using mock geolocation provider")
			geolocationProvider = geolocation.NewMockGeolocationProvider()
		} else {
			geolocationProvider = geolocation.NewGoogleGeolocationProvider(cfg.Geolocation.APIKey, cacheProvider)
		}
	default:
		geolocationProvider = geolocation.NewMockGeolocationProvider()
	}

	// Services
	directoryService := services.NewDirectoryService(hospitalRepo, doctorRepo)
	hospitalService := services.NewHospitalService(hospitalRepo, doctorRepo, eventBus)
	doctorService := services.NewDoctorService(doctorRepo, eventBus)
	authService := services.NewAuthService(
		userRepo,
		userRoleRepo,
		cacheProvider,
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Handlers
	hospitalHandler := handlers.NewHospitalHandler(directoryService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(hospitalService, doctorService)
	sseHandler := handlers.NewSSEHandler(eventBus)
	geolocationHandler := handlers.NewGeolocationHandler(geolocationProvider)

	rateLimiter := middleware.NewRateLimiter(5, 10)

	router := routes.NewRouter(
		hospitalHandler,
		authHandler,
		adminHandler,
		sseHandler,
		geolocationHandler,
		authService,
		authService,
		rateLimiter,
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:        serverAddr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: the change notification streams are long-lived
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	if err := eventBus.Close(); err != nil {
		log.Printf("Error closing event bus: %v", err)
	}

	log.Println("Server stopped")
}
