package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tair/supply-chain/internal/store"
	"github.com/tair/supply-chain/internal/supply/domain"
)

func TestSupplyEventRoundTrip(t *testing.T) {
	repo := NewStoreSupplyRepository(store.NewMemStore())
	ctx := context.Background()

	ordered := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	ev := &domain.SupplyEvent{
		ID:          "ev-1",
		ItemID:      "item-1",
		Quantity:    10,
		Movement:    domain.MovementInbound,
		Status:      domain.StatusOrdered,
		WarehouseID: "wh-1",
		CourierID:   "cr-1",
		SupplierID:  "sp-1",
		Destination: "Berlin",
		OrderDate:   &ordered,
	}
	if err := repo.Create(ctx, ev); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID(ctx, "ev-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ItemID != "item-1" || got.Quantity != 10 {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.OrderDate == nil || !got.OrderDate.Equal(ordered) {
		t.Fatalf("order date did not survive: %v", got.OrderDate)
	}
}

func TestSupplyEventPartialUpdate(t *testing.T) {
	repo := NewStoreSupplyRepository(store.NewMemStore())
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.SupplyEvent{
		ID:       "ev-1",
		ItemID:   "item-1",
		Quantity: 10,
		Movement: domain.MovementInbound,
		Status:   domain.StatusOrdered,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	shipped := domain.StatusShipped
	shippedOn := time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)
	got, err := repo.Update(ctx, domain.SupplyPatch{ID: "ev-1", Status: &shipped, ShippedOn: &shippedOn})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Status != domain.StatusShipped {
		t.Fatalf("status not updated: %q", got.Status)
	}
	if got.ShippedOn == nil || !got.ShippedOn.Equal(shippedOn) {
		t.Fatalf("shipped_on not updated: %v", got.ShippedOn)
	}
	// Untouched fields survive the merge
	if got.ItemID != "item-1" || got.Quantity != 10 {
		t.Fatalf("merge lost fields: %+v", got)
	}
}

func TestSupplyEventUpdateUnknownID(t *testing.T) {
	repo := NewStoreSupplyRepository(store.NewMemStore())

	if _, err := repo.Update(context.Background(), domain.SupplyPatch{ID: "missing"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
