package repository

import (
	"context"
	"fmt"

	"github.com/tair/supply-chain/internal/directory/domain"
	"github.com/tair/supply-chain/internal/store"
)

// StoreDirectoryRepository persists couriers, warehouses and suppliers in
// their record store collections.
type StoreDirectoryRepository struct {
	store store.Store
}

// NewStoreDirectoryRepository creates a record-store-backed directory repository.
func NewStoreDirectoryRepository(st store.Store) *StoreDirectoryRepository {
	return &StoreDirectoryRepository{store: st}
}

func (r *StoreDirectoryRepository) Couriers(ctx context.Context) ([]domain.Courier, error) {
	recs, err := r.store.List(ctx, store.CollectionCouriers)
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	out := make([]domain.Courier, 0, len(recs))
	for _, rec := range recs {
		var c domain.Courier
		if err := store.Decode(rec, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *StoreDirectoryRepository) Warehouses(ctx context.Context) ([]domain.Warehouse, error) {
	recs, err := r.store.List(ctx, store.CollectionWarehouses)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	out := make([]domain.Warehouse, 0, len(recs))
	for _, rec := range recs {
		var w domain.Warehouse
		if err := store.Decode(rec, &w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (r *StoreDirectoryRepository) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	recs, err := r.store.List(ctx, store.CollectionSuppliers)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	out := make([]domain.Supplier, 0, len(recs))
	for _, rec := range recs {
		var s domain.Supplier
		if err := store.Decode(rec, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *StoreDirectoryRepository) CourierByID(ctx context.Context, id string) (*domain.Courier, error) {
	couriers, err := r.Couriers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range couriers {
		if couriers[i].ID == id {
			return &couriers[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *StoreDirectoryRepository) WarehouseByID(ctx context.Context, id string) (*domain.Warehouse, error) {
	warehouses, err := r.Warehouses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range warehouses {
		if warehouses[i].ID == id {
			return &warehouses[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *StoreDirectoryRepository) SupplierByID(ctx context.Context, id string) (*domain.Supplier, error) {
	suppliers, err := r.Suppliers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			return &suppliers[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *StoreDirectoryRepository) AddCourier(ctx context.Context, c *domain.Courier) error {
	return r.append(ctx, store.CollectionCouriers, c)
}

func (r *StoreDirectoryRepository) AddWarehouse(ctx context.Context, w *domain.Warehouse) error {
	return r.append(ctx, store.CollectionWarehouses, w)
}

func (r *StoreDirectoryRepository) AddSupplier(ctx context.Context, s *domain.Supplier) error {
	return r.append(ctx, store.CollectionSuppliers, s)
}

func (r *StoreDirectoryRepository) append(ctx context.Context, collection string, v any) error {
	rec, err := store.Encode(v)
	if err != nil {
		return err
	}
	if _, err := r.store.Append(ctx, collection, rec); err != nil {
		return fmt.Errorf("persist %s record: %w", collection, err)
	}
	return nil
}
