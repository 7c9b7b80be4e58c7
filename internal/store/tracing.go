package store

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("record-store")

// TracingStore wraps any Store with OpenTelemetry spans.
type TracingStore struct {
	next Store
}

// NewTracingStore decorates a store with tracing.
func NewTracingStore(next Store) *TracingStore {
	return &TracingStore{next: next}
}

// List implements Store.
func (s *TracingStore) List(ctx context.Context, collection string) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "store.List",
		trace.WithAttributes(
			attribute.String("store.collection", collection),
		),
	)
	defer span.End()

	recs, err := s.next.List(ctx, collection)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("store.result_count", len(recs)))
	return recs, nil
}

// Append implements Store.
func (s *TracingStore) Append(ctx context.Context, collection string, rec Record) (Record, error) {
	ctx, span := tracer.Start(ctx, "store.Append",
		trace.WithAttributes(
			attribute.String("store.collection", collection),
			attribute.String("store.record_id", rec.ID()),
		),
	)
	defer span.End()

	out, err := s.next.Append(ctx, collection, rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return out, nil
}

// UpdateByID implements Store.
func (s *TracingStore) UpdateByID(ctx context.Context, collection string, patch Record) (Record, error) {
	ctx, span := tracer.Start(ctx, "store.UpdateByID",
		trace.WithAttributes(
			attribute.String("store.collection", collection),
			attribute.String("store.record_id", patch.ID()),
		),
	)
	defer span.End()

	out, err := s.next.UpdateByID(ctx, collection, patch)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return out, nil
}
