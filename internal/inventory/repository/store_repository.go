package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/supply-chain/internal/inventory/domain"
	"github.com/tair/supply-chain/internal/store"
)

// StoreInventoryRepository persists ledger rows in the "inventory" collection
// of the record store.
type StoreInventoryRepository struct {
	store store.Store
}

// NewStoreInventoryRepository creates a record-store-backed inventory repository.
func NewStoreInventoryRepository(st store.Store) *StoreInventoryRepository {
	return &StoreInventoryRepository{store: st}
}

func (r *StoreInventoryRepository) FindByItemID(ctx context.Context, itemID string) (*domain.InventoryRecord, error) {
	recs, err := r.store.List(ctx, store.CollectionInventory)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	for _, rec := range recs {
		var row domain.InventoryRecord
		if err := store.Decode(rec, &row); err != nil {
			return nil, err
		}
		if row.ItemID == itemID {
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *StoreInventoryRepository) Create(ctx context.Context, row *domain.InventoryRecord) error {
	rec, err := store.Encode(row)
	if err != nil {
		return err
	}
	if _, err := r.store.Append(ctx, store.CollectionInventory, rec); err != nil {
		return fmt.Errorf("persist inventory record: %w", err)
	}
	return nil
}

func (r *StoreInventoryRepository) UpdateQuantity(ctx context.Context, id string, quantity int64) (*domain.InventoryRecord, error) {
	merged, err := r.store.UpdateByID(ctx, store.CollectionInventory, store.Record{
		"id":       id,
		"quantity": quantity,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update inventory quantity: %w", err)
	}

	var row domain.InventoryRecord
	if err := store.Decode(merged, &row); err != nil {
		return nil, err
	}
	return &row, nil
}
