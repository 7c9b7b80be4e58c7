package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tair/supply-chain/internal/store"
	"github.com/tair/supply-chain/internal/supply/domain"
)

// StoreSupplyRepository persists supply events in the "supplies" collection
// of the record store.
type StoreSupplyRepository struct {
	store store.Store
}

// NewStoreSupplyRepository creates a record-store-backed supply repository.
func NewStoreSupplyRepository(st store.Store) *StoreSupplyRepository {
	return &StoreSupplyRepository{store: st}
}

func (r *StoreSupplyRepository) Create(ctx context.Context, ev *domain.SupplyEvent) error {
	rec, err := store.Encode(ev)
	if err != nil {
		return err
	}
	if _, err := r.store.Append(ctx, store.CollectionSupplies, rec); err != nil {
		return fmt.Errorf("persist supply event: %w", err)
	}
	return nil
}

func (r *StoreSupplyRepository) Update(ctx context.Context, patch domain.SupplyPatch) (*domain.SupplyEvent, error) {
	rec := store.Record{"id": patch.ID}
	setString(rec, "item_id", patch.ItemID)
	if patch.Quantity != nil {
		rec["quantity"] = *patch.Quantity
	}
	if patch.Movement != nil {
		rec["movement"] = string(*patch.Movement)
	}
	if patch.Status != nil {
		rec["status"] = string(*patch.Status)
	}
	setString(rec, "warehouse_id", patch.WarehouseID)
	setString(rec, "courier_id", patch.CourierID)
	setString(rec, "supplier_id", patch.SupplierID)
	setString(rec, "destination", patch.Destination)
	setTime(rec, "order_date", patch.OrderDate)
	setTime(rec, "expected_delivery_date", patch.ExpectedDeliveryDate)
	setTime(rec, "shipped_on", patch.ShippedOn)
	setTime(rec, "delivery_date", patch.DeliveryDate)
	if patch.Received != nil {
		rec["received"] = *patch.Received
	}

	merged, err := r.store.UpdateByID(ctx, store.CollectionSupplies, rec)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update supply event: %w", err)
	}

	var ev domain.SupplyEvent
	if err := store.Decode(merged, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *StoreSupplyRepository) FindByID(ctx context.Context, id string) (*domain.SupplyEvent, error) {
	events, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *StoreSupplyRepository) FindAll(ctx context.Context) ([]domain.SupplyEvent, error) {
	recs, err := r.store.List(ctx, store.CollectionSupplies)
	if err != nil {
		return nil, fmt.Errorf("list supply events: %w", err)
	}

	events := make([]domain.SupplyEvent, 0, len(recs))
	for _, rec := range recs {
		var ev domain.SupplyEvent
		if err := store.Decode(rec, &ev); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func setString(rec store.Record, key string, v *string) {
	if v != nil {
		rec[key] = *v
	}
}

func setTime(rec store.Record, key string, v *time.Time) {
	if v != nil {
		rec[key] = v.Format(time.RFC3339Nano)
	}
}
