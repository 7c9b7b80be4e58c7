package query

import (
	"context"
	"errors"
	"fmt"

	directory "github.com/tair/supply-chain/internal/directory/domain"
	"github.com/tair/supply-chain/internal/supply/domain"
	"github.com/tair/supply-chain/pkg/logger"
)

// ListEventsQuery controls enrichment behavior. In strict mode an
// unresolved foreign key fails the whole listing with ErrIntegrity; by
// default the join is left nil and a warning is logged.
type ListEventsQuery struct {
	Strict bool
}

// ListEventsHandler lists supply events enriched with their warehouse,
// courier and supplier records.
type ListEventsHandler struct {
	repo      domain.SupplyRepository
	directory directory.DirectoryRepository
}

// NewListEventsHandler creates a new list events handler
func NewListEventsHandler(repo domain.SupplyRepository, dir directory.DirectoryRepository) *ListEventsHandler {
	return &ListEventsHandler{repo: repo, directory: dir}
}

// Handle returns all supply events with joined directory records.
func (h *ListEventsHandler) Handle(ctx context.Context, q ListEventsQuery) ([]domain.EnrichedSupplyEvent, error) {
	events, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list supply events: %w", err)
	}

	out := make([]domain.EnrichedSupplyEvent, 0, len(events))
	for _, ev := range events {
		enriched := domain.EnrichedSupplyEvent{SupplyEvent: ev}

		enriched.Warehouse, err = h.joinWarehouse(ctx, ev, q.Strict)
		if err != nil {
			return nil, err
		}
		enriched.Courier, err = h.joinCourier(ctx, ev, q.Strict)
		if err != nil {
			return nil, err
		}
		enriched.Supplier, err = h.joinSupplier(ctx, ev, q.Strict)
		if err != nil {
			return nil, err
		}

		out = append(out, enriched)
	}
	return out, nil
}

func (h *ListEventsHandler) joinWarehouse(ctx context.Context, ev domain.SupplyEvent, strict bool) (*directory.Warehouse, error) {
	w, err := h.directory.WarehouseByID(ctx, ev.WarehouseID)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, h.missing(ctx, strict, "warehouse", ev.WarehouseID, ev.ID)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (h *ListEventsHandler) joinCourier(ctx context.Context, ev domain.SupplyEvent, strict bool) (*directory.Courier, error) {
	c, err := h.directory.CourierByID(ctx, ev.CourierID)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, h.missing(ctx, strict, "courier", ev.CourierID, ev.ID)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (h *ListEventsHandler) joinSupplier(ctx context.Context, ev domain.SupplyEvent, strict bool) (*directory.Supplier, error) {
	s, err := h.directory.SupplierByID(ctx, ev.SupplierID)
	if errors.Is(err, directory.ErrNotFound) {
		return nil, h.missing(ctx, strict, "supplier", ev.SupplierID, ev.ID)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// missing decides how an unresolved foreign key surfaces.
func (h *ListEventsHandler) missing(ctx context.Context, strict bool, kind, refID, eventID string) error {
	if strict {
		return fmt.Errorf("%w: %s %s referenced by event %s", domain.ErrIntegrity, kind, refID, eventID)
	}
	logger.Warn(ctx).
		Str("event_id", eventID).
		Str(kind+"_id", refID).
		Msg("Supply event references a missing directory record")
	return nil
}
