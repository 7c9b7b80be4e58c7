package command

import (
	"context"
	"errors"
	"testing"

	"github.com/tair/supply-chain/internal/inventory/domain"
)

func TestReceiveCreatesRecordLazily(t *testing.T) {
	_, receive, repo := newLedger(t)
	ctx := context.Background()

	if _, err := repo.FindByItemID(ctx, "item-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected no record before first receive, got %v", err)
	}

	rec, err := receive.Handle(ctx, ReceiveCommand{ItemID: "item-1", Quantity: 5})
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if rec.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", rec.Quantity)
	}
	if rec.ID == "" {
		t.Fatal("expected a freshly assigned record id")
	}
}

func TestReceiveMergesIntoExistingRecord(t *testing.T) {
	_, receive, repo := newLedger(t)
	ctx := context.Background()

	first, err := receive.Handle(ctx, ReceiveCommand{ItemID: "item-1", Quantity: 5})
	if err != nil {
		t.Fatalf("first receive: %v", err)
	}

	second, err := receive.Handle(ctx, ReceiveCommand{ItemID: "item-1", Quantity: 3})
	if err != nil {
		t.Fatalf("second receive: %v", err)
	}
	if second.Quantity != 8 {
		t.Fatalf("expected merged quantity 8, got %d", second.Quantity)
	}
	if second.ID != first.ID {
		t.Fatal("second receive must update the existing record, not create another")
	}

	// Still exactly one record for the item
	rec, err := repo.FindByItemID(ctx, "item-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if rec.Quantity != 8 {
		t.Fatalf("expected 8 on hand, got %d", rec.Quantity)
	}
}

func TestReceiveValidation(t *testing.T) {
	_, receive, _ := newLedger(t)

	if _, err := receive.Handle(context.Background(), ReceiveCommand{ItemID: "x", Quantity: 0}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for zero quantity, got %v", err)
	}
	if _, err := receive.Handle(context.Background(), ReceiveCommand{ItemID: "x", Quantity: -2}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for negative quantity, got %v", err)
	}
}
