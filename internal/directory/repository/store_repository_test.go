package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/tair/supply-chain/internal/directory/domain"
	"github.com/tair/supply-chain/internal/store"
)

func TestDirectoryRoundTrip(t *testing.T) {
	repo := NewStoreDirectoryRepository(store.NewMemStore())
	ctx := context.Background()

	if err := repo.AddCourier(ctx, &domain.Courier{ID: "cr-1", Name: "FastShip", Location: "Hamburg"}); err != nil {
		t.Fatalf("add courier: %v", err)
	}
	if err := repo.AddWarehouse(ctx, &domain.Warehouse{ID: "wh-1", Name: "Central", Location: "Berlin"}); err != nil {
		t.Fatalf("add warehouse: %v", err)
	}
	if err := repo.AddSupplier(ctx, &domain.Supplier{ID: "sp-1", Name: "Acme", Location: "Munich"}); err != nil {
		t.Fatalf("add supplier: %v", err)
	}

	couriers, err := repo.Couriers(ctx)
	if err != nil {
		t.Fatalf("list couriers: %v", err)
	}
	if len(couriers) != 1 || couriers[0].Name != "FastShip" {
		t.Fatalf("unexpected couriers: %+v", couriers)
	}

	w, err := repo.WarehouseByID(ctx, "wh-1")
	if err != nil {
		t.Fatalf("warehouse by id: %v", err)
	}
	if w.Location != "Berlin" {
		t.Fatalf("unexpected warehouse: %+v", w)
	}

	if _, err := repo.SupplierByID(ctx, "sp-missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
