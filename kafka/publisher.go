package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	supplydomain "github.com/tair/supply-chain/internal/supply/domain"
	"github.com/tair/supply-chain/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishSupplyRecorded publishes a supply recorded event with tracing
func (p *Publisher) PublishSupplyRecorded(ctx context.Context, ev supplydomain.SupplyEvent) error {
	event := SupplyRecordedEvent{
		EventID:     fmt.Sprintf("evt_%d", time.Now().UnixNano()),
		EventType:   EventTypeSupplyRecorded,
		SupplyID:    ev.ID,
		ItemID:      ev.ItemID,
		Quantity:    ev.Quantity,
		Movement:    string(ev.Movement),
		Status:      string(ev.Status),
		WarehouseID: ev.WarehouseID,
		CourierID:   ev.CourierID,
		SupplierID:  ev.SupplierID,
		Timestamp:   time.Now(),
	}

	attrs := []attribute.KeyValue{
		attribute.String("supply.id", ev.ID),
		attribute.String("supply.item_id", ev.ItemID),
		attribute.Int64("supply.quantity", ev.Quantity),
		attribute.String("supply.movement", string(ev.Movement)),
	}
	return p.publish(ctx, TopicSupplyRecorded, EventTypeSupplyRecorded, event.EventID, ev.ItemID, event, attrs)
}

// PublishInventoryAdjusted publishes an inventory adjustment event with tracing
func (p *Publisher) PublishInventoryAdjusted(ctx context.Context, itemID string, delta, onHand int64) error {
	event := InventoryAdjustedEvent{
		EventID:   fmt.Sprintf("evt_%d", time.Now().UnixNano()),
		EventType: EventTypeInventoryAdjusted,
		ItemID:    itemID,
		Delta:     delta,
		OnHand:    onHand,
		Timestamp: time.Now(),
	}

	attrs := []attribute.KeyValue{
		attribute.String("inventory.item_id", itemID),
		attribute.Int64("inventory.delta", delta),
		attribute.Int64("inventory.on_hand", onHand),
	}
	return p.publish(ctx, TopicInventoryAdjusted, EventTypeInventoryAdjusted, event.EventID, itemID, event, attrs)
}

// publish marshals an event, injects the trace context into the message
// headers and sends it. Messages are keyed by item id so adjustments for the
// same item stay ordered within a partition.
func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID, key string, event any, attrs []attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(append([]attribute.KeyValue{
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		}, attrs...)...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{
			Key:   []byte("event_type"),
			Value: []byte(eventType),
		},
		{
			Key:   []byte("event_id"),
			Value: []byte(eventID),
		},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_id", eventID).
			Str("trace_id", span.SpanContext().TraceID().String()).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Logger.Info().
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Str("trace_id", span.SpanContext().TraceID().String()).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
