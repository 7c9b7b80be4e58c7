package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/supply-chain/internal/catalog"
	"github.com/tair/supply-chain/internal/directory"
	"github.com/tair/supply-chain/internal/inventory"
	"github.com/tair/supply-chain/internal/store"
	"github.com/tair/supply-chain/internal/supply"
	supplydomain "github.com/tair/supply-chain/internal/supply/domain"
	"github.com/tair/supply-chain/kafka"
	"github.com/tair/supply-chain/pkg/database"
	"github.com/tair/supply-chain/pkg/logger"
	"github.com/tair/supply-chain/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "supplychain-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting supply chain service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	// Select the record store backend
	st, err := buildStore()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize record store")
	}

	// Optional Kafka publisher
	var publisher supplydomain.EventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		pub, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer pub.Close()
		publisher = pub
	} else {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, event publishing disabled")
	}

	// Initialize handlers with Wire DI
	catalogHandler, err := catalog.InitializeHandler(st)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}
	supplyHandler, err := supply.InitializeHandler(st, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize supply handler")
	}
	directoryHandler, err := directory.InitializeHandler(st)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize directory handler")
	}
	inventoryHandler, err := inventory.InitializeHandler(st)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	// Setup router
	router := mux.NewRouter()
	catalogHandler.RegisterRoutes(router)
	supplyHandler.RegisterRoutes(router)
	directoryHandler.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)

	// Health check endpoint: the store must be reachable
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := st.List(r.Context(), store.CollectionItems); err != nil {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + httpPort,
		Handler: c.Handler(otelhttp.NewHandler(router, "supplychain")),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// buildStore selects the record store backend from STORE_DRIVER. All
// backends are wrapped in the tracing decorator.
func buildStore() (store.Store, error) {
	driver := getEnv("STORE_DRIVER", "file")

	switch driver {
	case "postgres":
		dbConfig := database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "supplychaindb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		}
		db, err := database.NewGormConnection(dbConfig)
		if err != nil {
			return nil, err
		}
		gs := store.NewGormStore(db)
		if err := gs.AutoMigrate(); err != nil {
			return nil, err
		}
		logger.Logger.Info().Str("driver", driver).Str("db", dbConfig.DBName).Msg("Record store initialized")
		return store.NewTracingStore(gs), nil

	case "memory":
		logger.Logger.Info().Str("driver", driver).Msg("Record store initialized")
		return store.NewTracingStore(store.NewMemStore()), nil

	default:
		path := getEnv("STORE_PATH", "data/db.json")
		logger.Logger.Info().Str("driver", "file").Str("path", path).Msg("Record store initialized")
		return store.NewTracingStore(store.NewFileStore(path)), nil
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
