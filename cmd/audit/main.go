package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tair/supply-chain/kafka"
	"github.com/tair/supply-chain/pkg/logger"
	"github.com/tair/supply-chain/pkg/tracing"
)

// The audit service tails the supply chain topics and writes a structured
// audit line per event.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "audit-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		if err := tracing.Shutdown(context.Background(), tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "supply-audit")
	topics := []string{kafka.TopicSupplyRecorded, kafka.TopicInventoryAdjusted}

	consumer, err := kafka.NewConsumer(brokers, groupID, topics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeSupplyRecorded, func(ctx context.Context, payload []byte) error {
		var ev kafka.SupplyRecordedEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return err
		}
		logger.Info(ctx).
			Str("event_id", ev.EventID).
			Str("supply_id", ev.SupplyID).
			Str("item_id", ev.ItemID).
			Int64("quantity", ev.Quantity).
			Str("movement", ev.Movement).
			Str("status", ev.Status).
			Msg("Supply event recorded")
		return nil
	})

	consumer.RegisterHandler(kafka.EventTypeInventoryAdjusted, func(ctx context.Context, payload []byte) error {
		var ev kafka.InventoryAdjustedEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return err
		}
		logger.Info(ctx).
			Str("event_id", ev.EventID).
			Str("item_id", ev.ItemID).
			Int64("delta", ev.Delta).
			Int64("on_hand", ev.OnHand).
			Msg("Inventory adjusted")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start consumer")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down audit service...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
