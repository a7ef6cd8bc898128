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

	"github.com/openpharma/pharmafind/internal/adapters/cache"
	"github.com/openpharma/pharmafind/internal/adapters/database"
	"github.com/openpharma/pharmafind/internal/adapters/providers/scoring"
	"github.com/openpharma/pharmafind/internal/adapters/search"
	"github.com/openpharma/pharmafind/internal/adapters/sessionstore"
	"github.com/openpharma/pharmafind/internal/api/handlers"
	"github.com/openpharma/pharmafind/internal/api/middleware"
	"github.com/openpharma/pharmafind/internal/api/routes"
	"github.com/openpharma/pharmafind/internal/application/services"
	"github.com/openpharma/pharmafind/internal/domain/providers"
	"github.com/openpharma/pharmafind/internal/domain/repositories"
	"github.com/openpharma/pharmafind/internal/infrastructure/clients/postgres"
	"github.com/openpharma/pharmafind/internal/infrastructure/clients/redis"
	"github.com/openpharma/pharmafind/internal/infrastructure/clients/typesense"
	"github.com/openpharma/pharmafind/internal/infrastructure/observability"
	"github.com/openpharma/pharmafind/pkg/config"
)

func main() {

	// Load configuration

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
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
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client. The session store requires it: sessions are
	// the only mutable state this service owns.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize Redis client: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis client initialized successfully")

	// Initialize Typesense client (optional; database serves name matching
	// when unavailable)
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
	} else {
		log.Println("Typesense client initialized successfully")
	}

	// Initialize adapters

	pharmacyAdapter := database.NewPharmacyAdapter(pgClient)
	medicineAdapter := database.NewMedicineAdapter(pgClient)
	sessionAdapter := sessionstore.NewRedisAdapter(redisClient, cfg.Session.TTLSeconds)
	cacheAdapter := cache.NewRedisAdapter(redisClient)

	var searchRepo repositories.MedicineSearchRepository
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)

		// Ensure schema exists
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}

		searchRepo = adapter
	}

	var scoringProvider providers.ScoringProvider
	switch cfg.Scoring.Provider {
	case "mock":
		scoringProvider = scoring.NewMockProvider()
	default:
		scoringProvider = scoring.NewHTTPProvider(
			cfg.Scoring.URL,
			time.Duration(cfg.Scoring.TimeoutSeconds)*time.Second,
		)
	}

	// Initialize services

	sessionService := services.NewSessionService(sessionAdapter)

	searchService := services.NewSearchService(
		medicineAdapter,
		searchRepo,
		pharmacyAdapter,
		sessionAdapter,
		scoringProvider,
		cfg.Search.RadiusMeters,
		time.Duration(cfg.Scoring.TimeoutSeconds)*time.Second,
	)
	searchService.SetMetrics(metrics)
	searchService.SetCache(cacheAdapter, cfg.Search.CacheTTLSeconds)

	// Initialize handlers

	searchHandler := handlers.NewSearchHandler(searchService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	sessionMiddleware := middleware.NewSessionMiddleware(
		sessionService,
		cfg.Session.CookieName,
		cfg.Session.HeaderName,
		cfg.Session.TTLSeconds,
	)

	// Set up router

	router := routes.NewRouter(
		searchHandler,
		sessionHandler,
		sessionMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
