package command

import (
	"context"
	"errors"
	"testing"

	invdomain "github.com/tair/supply-chain/internal/inventory/domain"
	invrepository "github.com/tair/supply-chain/internal/inventory/repository"
	invcommand "github.com/tair/supply-chain/internal/inventory/usecase/command"
	"github.com/tair/supply-chain/internal/store"
	"github.com/tair/supply-chain/internal/supply/domain"
	"github.com/tair/supply-chain/internal/supply/repository"
)

type processor struct {
	create  *CreateEventHandler
	update  *UpdateEventHandler
	events  domain.SupplyRepository
	ledger  invdomain.InventoryRepository
	receive *invcommand.ReceiveHandler
}

func newProcessor(t *testing.T) *processor {
	t.Helper()
	st := store.NewMemStore()
	events := repository.NewStoreSupplyRepository(st)
	ledger := invrepository.NewStoreInventoryRepository(st)
	locks := invcommand.NewItemLocks()
	reserve := invcommand.NewReserveHandler(ledger, locks)
	receive := invcommand.NewReceiveHandler(ledger, locks)
	return &processor{
		create:  NewCreateEventHandler(events, reserve, receive, nil),
		update:  NewUpdateEventHandler(events, receive, nil),
		events:  events,
		ledger:  ledger,
		receive: receive,
	}
}

func draft() CreateEventCommand {
	return CreateEventCommand{
		ItemID:      "item-1",
		Quantity:    20,
		Movement:    domain.MovementInbound,
		Status:      domain.StatusOrdered,
		WarehouseID: "wh-1",
		CourierID:   "cr-1",
		SupplierID:  "sp-1",
		Destination: "Berlin",
	}
}

func TestCreateEventValidation(t *testing.T) {
	p := newProcessor(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateEventCommand)
	}{
		{"missing item", func(c *CreateEventCommand) { c.ItemID = "" }},
		{"zero quantity", func(c *CreateEventCommand) { c.Quantity = 0 }},
		{"negative quantity", func(c *CreateEventCommand) { c.Quantity = -5 }},
		{"unknown movement", func(c *CreateEventCommand) { c.Movement = "Sideways" }},
		{"unknown status", func(c *CreateEventCommand) { c.Status = "Lost" }},
		{"missing warehouse", func(c *CreateEventCommand) { c.WarehouseID = "" }},
		{"missing courier", func(c *CreateEventCommand) { c.CourierID = "" }},
		{"missing supplier", func(c *CreateEventCommand) { c.SupplierID = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := draft()
			tc.mutate(&cmd)
			if _, err := p.create.Handle(ctx, cmd); !errors.Is(err, domain.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}

	events, err := p.events.FindAll(ctx)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("invalid drafts must not be persisted, found %d events", len(events))
	}
}

func TestCreateOutboundWithoutInventoryPersistsNothing(t *testing.T) {
	p := newProcessor(t)
	ctx := context.Background()

	cmd := draft()
	cmd.Movement = domain.MovementOutbound

	_, err := p.create.Handle(ctx, cmd)
	if !errors.Is(err, invdomain.ErrInsufficientInventory) {
		t.Fatalf("expected ErrInsufficientInventory, got %v", err)
	}

	events, err := p.events.FindAll(ctx)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("rejected outbound event was persisted")
	}
}

func TestCreateOutboundReservesInventory(t *testing.T) {
	p := newProcessor(t)
	ctx := context.Background()

	if _, err := p.receive.Handle(ctx, invcommand.ReceiveCommand{ItemID: "item-1", Quantity: 50}); err != nil {
		t.Fatalf("seed inventory: %v", err)
	}

	cmd := draft()
	cmd.Movement = domain.MovementOutbound

	ev, err := p.create.Handle(ctx, cmd)
	if err != nil {
		t.Fatalf("create outbound: %v", err)
	}
	if ev.ID == "" {
		t.Fatal("expected an assigned event id")
	}

	rec, err := p.ledger.FindByItemID(ctx, "item-1")
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if rec.Quantity != 30 {
		t.Fatalf("expected 30 on hand after reserving 20 of 50, got %d", rec.Quantity)
	}
}

func TestCreateInboundDeliveredReceivesIntoLedger(t *testing.T) {
	p := newProcessor(t)
	ctx := context.Background()

	cmd := draft()
	cmd.Status = domain.StatusDelivered

	ev, err := p.create.Handle(ctx, cmd)
	if err != nil {
		t.Fatalf("create inbound delivered: %v", err)
	}
	if !ev.Received {
		t.Fatal("delivered inbound event must be marked received")
	}

	rec, err := p.ledger.FindByItemID(ctx, "item-1")
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if rec.Quantity != 20 {
		t.Fatalf("expected 20 on hand after delivery, got %d", rec.Quantity)
	}
}

func TestCreateInboundOrderedHasNoLedgerEffect(t *testing.T) {
	p := newProcessor(t)
	ctx := context.Background()

	ev, err := p.create.Handle(ctx, draft())
	if err != nil {
		t.Fatalf("create inbound ordered: %v", err)
	}
	if ev.Received {
		t.Fatal("ordered inbound event must not be marked received")
	}

	if _, err := p.ledger.FindByItemID(ctx, "item-1"); !errors.Is(err, invdomain.ErrNotFound) {
		t.Fatalf("expected no inventory record, got %v", err)
	}
}
