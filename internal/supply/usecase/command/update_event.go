package command

import (
	"context"
	"fmt"

	invcommand "github.com/tair/supply-chain/internal/inventory/usecase/command"
	"github.com/tair/supply-chain/internal/supply/domain"
	"github.com/tair/supply-chain/pkg/logger"
)

// UpdateEventCommand represents a partial update to an existing supply event
type UpdateEventCommand struct {
	Patch domain.SupplyPatch
}

// UpdateEventHandler merges a patch over an existing event, validates the
// merged result, re-applies the inbound/Delivered ledger policy against it,
// and persists. The receive effect fires at most once per event: an event
// already marked Received is never received again, so repeated Delivered
// updates cannot double-count quantity. Outbound reservations are never
// re-run on update.
type UpdateEventHandler struct {
	repo      domain.SupplyRepository
	receive   *invcommand.ReceiveHandler
	publisher domain.EventPublisher
}

// NewUpdateEventHandler creates a new update event handler
func NewUpdateEventHandler(
	repo domain.SupplyRepository,
	receive *invcommand.ReceiveHandler,
	publisher domain.EventPublisher,
) *UpdateEventHandler {
	return &UpdateEventHandler{repo: repo, receive: receive, publisher: publisher}
}

// Handle executes the update event command
func (h *UpdateEventHandler) Handle(ctx context.Context, cmd UpdateEventCommand) (*domain.SupplyEvent, error) {
	patch := cmd.Patch
	if patch.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrInvalid)
	}

	existing, err := h.repo.FindByID(ctx, patch.ID)
	if err != nil {
		return nil, err
	}

	merged := applyPatch(*existing, patch)
	if err := validateMerged(merged); err != nil {
		return nil, err
	}

	// The ledger effect runs before the event write, so a failed receive
	// leaves no half-updated event behind.
	if merged.Movement == domain.MovementInbound &&
		merged.Status == domain.StatusDelivered &&
		!existing.Received {
		rec, err := h.receive.Handle(ctx, invcommand.ReceiveCommand{
			ItemID:   merged.ItemID,
			Quantity: merged.Quantity,
		})
		if err != nil {
			return nil, err
		}

		received := true
		patch.Received = &received

		if h.publisher != nil {
			if err := h.publisher.PublishInventoryAdjusted(ctx, merged.ItemID, merged.Quantity, rec.Quantity); err != nil {
				logger.Warn(ctx).Err(err).Str("item_id", merged.ItemID).Msg("Failed to publish inventory adjustment")
			}
		}
	}

	updated, err := h.repo.Update(ctx, patch)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyPatch lays the present fields of patch over base.
func applyPatch(base domain.SupplyEvent, patch domain.SupplyPatch) domain.SupplyEvent {
	if patch.ItemID != nil {
		base.ItemID = *patch.ItemID
	}
	if patch.Quantity != nil {
		base.Quantity = *patch.Quantity
	}
	if patch.Movement != nil {
		base.Movement = *patch.Movement
	}
	if patch.Status != nil {
		base.Status = *patch.Status
	}
	if patch.WarehouseID != nil {
		base.WarehouseID = *patch.WarehouseID
	}
	if patch.CourierID != nil {
		base.CourierID = *patch.CourierID
	}
	if patch.SupplierID != nil {
		base.SupplierID = *patch.SupplierID
	}
	if patch.Destination != nil {
		base.Destination = *patch.Destination
	}
	if patch.OrderDate != nil {
		base.OrderDate = patch.OrderDate
	}
	if patch.ExpectedDeliveryDate != nil {
		base.ExpectedDeliveryDate = patch.ExpectedDeliveryDate
	}
	if patch.ShippedOn != nil {
		base.ShippedOn = patch.ShippedOn
	}
	if patch.DeliveryDate != nil {
		base.DeliveryDate = patch.DeliveryDate
	}
	if patch.Received != nil {
		base.Received = *patch.Received
	}
	return base
}

func validateMerged(ev domain.SupplyEvent) error {
	if ev.ItemID == "" {
		return fmt.Errorf("%w: item_id is required", domain.ErrInvalid)
	}
	if ev.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", domain.ErrInvalid)
	}
	if !domain.ValidMovement(ev.Movement) {
		return fmt.Errorf("%w: unknown movement %q", domain.ErrInvalid, ev.Movement)
	}
	if !domain.ValidStatus(ev.Status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalid, ev.Status)
	}
	return nil
}
