package command

import (
	"context"
	"errors"
	"testing"

	"github.com/tair/supply-chain/internal/supply/domain"
)

func TestUpdateEventRequiresID(t *testing.T) {
	p := newProcessor(t)

	_, err := p.update.Handle(context.Background(), UpdateEventCommand{})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for missing id, got %v", err)
	}
}

func TestUpdateEventUnknownID(t *testing.T) {
	p := newProcessor(t)

	_, err := p.update.Handle(context.Background(), UpdateEventCommand{
		Patch: domain.SupplyPatch{ID: "no-such-event"},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateToDeliveredReceivesExactlyOnce(t *testing.T) {
	p := newProcessor(t)
	ctx := context.Background()

	ev, err := p.create.Handle(ctx, draft())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	delivered := domain.StatusDelivered
	patch := domain.SupplyPatch{ID: ev.ID, Status: &delivered}

	updated, err := p.update.Handle(ctx, UpdateEventCommand{Patch: patch})
	if err != nil {
		t.Fatalf("first delivered update: %v", err)
	}
	if !updated.Received {
		t.Fatal("delivered update must mark the event received")
	}

	rec, err := p.ledger.FindByItemID(ctx, "item-1")
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if rec.Quantity != 20 {
		t.Fatalf("expected 20 on hand after delivery, got %d", rec.Quantity)
	}

	// Repeating the same update must not receive the quantity again
	if _, err := p.update.Handle(ctx, UpdateEventCommand{Patch: patch}); err != nil {
		t.Fatalf("second delivered update: %v", err)
	}

	rec, err = p.ledger.FindByItemID(ctx, "item-1")
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if rec.Quantity != 20 {
		t.Fatalf("repeated delivered update double-counted: %d", rec.Quantity)
	}
}

func TestUpdateValidatesMergedEvent(t *testing.T) {
	p := newProcessor(t)
	ctx := context.Background()

	ev, err := p.create.Handle(ctx, draft())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	var zero int64
	_, err = p.update.Handle(ctx, UpdateEventCommand{
		Patch: domain.SupplyPatch{ID: ev.ID, Quantity: &zero},
	})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for zero merged quantity, got %v", err)
	}

	// The rejected patch must not have been persisted
	stored, err := p.events.FindByID(ctx, ev.ID)
	if err != nil {
		t.Fatalf("find event: %v", err)
	}
	if stored.Quantity != 20 {
		t.Fatalf("rejected update mutated quantity: %d", stored.Quantity)
	}
}

func TestUpdatePatchesFields(t *testing.T) {
	p := newProcessor(t)
	ctx := context.Background()

	ev, err := p.create.Handle(ctx, draft())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	shipped := domain.StatusShipped
	dest := "Hamburg"
	updated, err := p.update.Handle(ctx, UpdateEventCommand{
		Patch: domain.SupplyPatch{ID: ev.ID, Status: &shipped, Destination: &dest},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != domain.StatusShipped {
		t.Fatalf("expected status Shipped, got %q", updated.Status)
	}
	if updated.Destination != "Hamburg" {
		t.Fatalf("expected destination Hamburg, got %q", updated.Destination)
	}
	// Untouched fields survive the merge
	if updated.ItemID != ev.ItemID || updated.Quantity != ev.Quantity {
		t.Fatalf("merge lost untouched fields: %+v", updated)
	}
}
