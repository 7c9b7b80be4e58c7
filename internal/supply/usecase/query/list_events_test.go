package query

import (
	"context"
	"errors"
	"testing"

	dirdomain "github.com/tair/supply-chain/internal/directory/domain"
	dirrepository "github.com/tair/supply-chain/internal/directory/repository"
	"github.com/tair/supply-chain/internal/store"
	"github.com/tair/supply-chain/internal/supply/domain"
	"github.com/tair/supply-chain/internal/supply/repository"
)

func newListHandler(t *testing.T) (*ListEventsHandler, domain.SupplyRepository, dirdomain.DirectoryRepository) {
	t.Helper()
	st := store.NewMemStore()
	events := repository.NewStoreSupplyRepository(st)
	dir := dirrepository.NewStoreDirectoryRepository(st)
	return NewListEventsHandler(events, dir), events, dir
}

func seedDirectory(t *testing.T, dir dirdomain.DirectoryRepository) {
	t.Helper()
	ctx := context.Background()
	if err := dir.AddWarehouse(ctx, &dirdomain.Warehouse{ID: "wh-1", Name: "Central", Location: "Berlin"}); err != nil {
		t.Fatalf("seed warehouse: %v", err)
	}
	if err := dir.AddCourier(ctx, &dirdomain.Courier{ID: "cr-1", Name: "FastShip", Location: "Hamburg"}); err != nil {
		t.Fatalf("seed courier: %v", err)
	}
	if err := dir.AddSupplier(ctx, &dirdomain.Supplier{ID: "sp-1", Name: "Acme", Location: "Munich"}); err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
}

func event(id string) *domain.SupplyEvent {
	return &domain.SupplyEvent{
		ID:          id,
		ItemID:      "item-1",
		Quantity:    5,
		Movement:    domain.MovementInbound,
		Status:      domain.StatusOrdered,
		WarehouseID: "wh-1",
		CourierID:   "cr-1",
		SupplierID:  "sp-1",
	}
}

func TestListEventsEnrichesJoins(t *testing.T) {
	h, events, dir := newListHandler(t)
	ctx := context.Background()
	seedDirectory(t, dir)

	if err := events.Create(ctx, event("ev-1")); err != nil {
		t.Fatalf("create event: %v", err)
	}

	out, err := h.Handle(ctx, ListEventsQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 event, got %d", len(out))
	}

	enriched := out[0]
	if enriched.Warehouse == nil || enriched.Warehouse.Name != "Central" {
		t.Fatalf("warehouse join: %+v", enriched.Warehouse)
	}
	if enriched.Courier == nil || enriched.Courier.Name != "FastShip" {
		t.Fatalf("courier join: %+v", enriched.Courier)
	}
	if enriched.Supplier == nil || enriched.Supplier.Name != "Acme" {
		t.Fatalf("supplier join: %+v", enriched.Supplier)
	}
}

func TestListEventsMissingJoinIsNilByDefault(t *testing.T) {
	h, events, dir := newListHandler(t)
	ctx := context.Background()
	seedDirectory(t, dir)

	ev := event("ev-1")
	ev.CourierID = "cr-missing"
	if err := events.Create(ctx, ev); err != nil {
		t.Fatalf("create event: %v", err)
	}

	out, err := h.Handle(ctx, ListEventsQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out[0].Courier != nil {
		t.Fatalf("expected nil courier join, got %+v", out[0].Courier)
	}
	if out[0].Warehouse == nil || out[0].Supplier == nil {
		t.Fatal("resolvable joins must still be filled")
	}
}

func TestListEventsStrictFailsOnMissingJoin(t *testing.T) {
	h, events, dir := newListHandler(t)
	ctx := context.Background()
	seedDirectory(t, dir)

	ev := event("ev-1")
	ev.WarehouseID = "wh-missing"
	if err := events.Create(ctx, ev); err != nil {
		t.Fatalf("create event: %v", err)
	}

	_, err := h.Handle(ctx, ListEventsQuery{Strict: true})
	if !errors.Is(err, domain.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}

func TestListEventsEmpty(t *testing.T) {
	h, _, _ := newListHandler(t)

	out, err := h.Handle(context.Background(), ListEventsQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty listing, got %d", len(out))
	}
}
