package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/supply-chain/internal/catalog/domain"
	"github.com/tair/supply-chain/internal/store"
)

// StoreItemRepository persists catalog items in the "items" collection of the
// record store.
type StoreItemRepository struct {
	store store.Store
}

// NewStoreItemRepository creates a record-store-backed item repository.
func NewStoreItemRepository(st store.Store) *StoreItemRepository {
	return &StoreItemRepository{store: st}
}

func (r *StoreItemRepository) Create(ctx context.Context, item *domain.Item) error {
	rec, err := store.Encode(item)
	if err != nil {
		return err
	}
	if _, err := r.store.Append(ctx, store.CollectionItems, rec); err != nil {
		return fmt.Errorf("persist item: %w", err)
	}
	return nil
}

func (r *StoreItemRepository) Update(ctx context.Context, patch domain.ItemPatch) (*domain.Item, error) {
	rec := store.Record{"id": patch.ID}
	if patch.Name != nil {
		rec["name"] = *patch.Name
	}
	if patch.Color != nil {
		rec["color"] = *patch.Color
	}
	if patch.Price != nil {
		rec["price"] = *patch.Price
	}

	merged, err := r.store.UpdateByID(ctx, store.CollectionItems, rec)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	var item domain.Item
	if err := store.Decode(merged, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *StoreItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	items, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *StoreItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	recs, err := r.store.List(ctx, store.CollectionItems)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := make([]domain.Item, 0, len(recs))
	for _, rec := range recs {
		var item domain.Item
		if err := store.Decode(rec, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
