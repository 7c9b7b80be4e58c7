package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	invcommand "github.com/tair/supply-chain/internal/inventory/usecase/command"
	"github.com/tair/supply-chain/internal/supply/domain"
	"github.com/tair/supply-chain/pkg/logger"
)

// CreateEventCommand represents the command to record a new supply event
type CreateEventCommand struct {
	ItemID               string
	Quantity             int64
	Movement             domain.Movement
	Status               domain.Status
	WarehouseID          string
	CourierID            string
	SupplierID           string
	Destination          string
	OrderDate            *time.Time
	ExpectedDeliveryDate *time.Time
	ShippedOn            *time.Time
	DeliveryDate         *time.Time
}

// CreateEventHandler records supply events and applies the ledger policy:
// an outbound movement must reserve its quantity before the event is
// persisted, an inbound movement that arrives Delivered is received into
// inventory, and any other inbound status has no ledger effect.
type CreateEventHandler struct {
	repo      domain.SupplyRepository
	reserve   *invcommand.ReserveHandler
	receive   *invcommand.ReceiveHandler
	publisher domain.EventPublisher
}

// NewCreateEventHandler creates a new create event handler
func NewCreateEventHandler(
	repo domain.SupplyRepository,
	reserve *invcommand.ReserveHandler,
	receive *invcommand.ReceiveHandler,
	publisher domain.EventPublisher,
) *CreateEventHandler {
	return &CreateEventHandler{
		repo:      repo,
		reserve:   reserve,
		receive:   receive,
		publisher: publisher,
	}
}

// Handle executes the create event command
func (h *CreateEventHandler) Handle(ctx context.Context, cmd CreateEventCommand) (*domain.SupplyEvent, error) {
	if err := validateDraft(cmd); err != nil {
		return nil, err
	}

	ev := &domain.SupplyEvent{
		ID:                   uuid.New().String(),
		ItemID:               cmd.ItemID,
		Quantity:             cmd.Quantity,
		Movement:             cmd.Movement,
		Status:               cmd.Status,
		WarehouseID:          cmd.WarehouseID,
		CourierID:            cmd.CourierID,
		SupplierID:           cmd.SupplierID,
		Destination:          cmd.Destination,
		OrderDate:            cmd.OrderDate,
		ExpectedDeliveryDate: cmd.ExpectedDeliveryDate,
		ShippedOn:            cmd.ShippedOn,
		DeliveryDate:         cmd.DeliveryDate,
	}

	// Ledger effects run first: the event is persisted only when they succeed
	switch {
	case ev.Movement == domain.MovementOutbound:
		rec, err := h.reserve.Handle(ctx, invcommand.ReserveCommand{
			ItemID:   ev.ItemID,
			Quantity: ev.Quantity,
		})
		if err != nil {
			return nil, err
		}
		h.publishAdjustment(ctx, ev.ItemID, -ev.Quantity, rec.Quantity)

	case ev.Movement == domain.MovementInbound && ev.Status == domain.StatusDelivered:
		rec, err := h.receive.Handle(ctx, invcommand.ReceiveCommand{
			ItemID:   ev.ItemID,
			Quantity: ev.Quantity,
		})
		if err != nil {
			return nil, err
		}
		ev.Received = true
		h.publishAdjustment(ctx, ev.ItemID, ev.Quantity, rec.Quantity)
	}

	if err := h.repo.Create(ctx, ev); err != nil {
		return nil, fmt.Errorf("failed to record supply event: %w", err)
	}

	if h.publisher != nil {
		if err := h.publisher.PublishSupplyRecorded(ctx, *ev); err != nil {
			logger.Warn(ctx).Err(err).Str("event_id", ev.ID).Msg("Failed to publish supply event")
		}
	}

	return ev, nil
}

func (h *CreateEventHandler) publishAdjustment(ctx context.Context, itemID string, delta, onHand int64) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishInventoryAdjusted(ctx, itemID, delta, onHand); err != nil {
		logger.Warn(ctx).Err(err).Str("item_id", itemID).Msg("Failed to publish inventory adjustment")
	}
}

func validateDraft(cmd CreateEventCommand) error {
	if cmd.ItemID == "" {
		return fmt.Errorf("%w: item_id is required", domain.ErrInvalid)
	}
	if cmd.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", domain.ErrInvalid)
	}
	if !domain.ValidMovement(cmd.Movement) {
		return fmt.Errorf("%w: unknown movement %q", domain.ErrInvalid, cmd.Movement)
	}
	if !domain.ValidStatus(cmd.Status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalid, cmd.Status)
	}
	if cmd.WarehouseID == "" {
		return fmt.Errorf("%w: warehouse_id is required", domain.ErrInvalid)
	}
	if cmd.CourierID == "" {
		return fmt.Errorf("%w: courier_id is required", domain.ErrInvalid)
	}
	if cmd.SupplierID == "" {
		return fmt.Errorf("%w: supplier_id is required", domain.ErrInvalid)
	}
	return nil
}
