package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/supply-chain/internal/inventory/domain"
	"github.com/tair/supply-chain/pkg/logger"
)

var reservationsRejected = promauto.NewCounter(prometheus.CounterOpts{
	Name: "inventory_reservations_rejected_total",
	Help: "Outbound reservations rejected for insufficient on-hand quantity",
})

// ReserveCommand requests that quantity be taken from an item's on-hand stock
type ReserveCommand struct {
	ItemID   string
	Quantity int64
}

// ReserveHandler handles reserve commands. It is the single authorization
// gate before any outbound movement is accepted: no outbound event may be
// recorded whose reservation failed.
type ReserveHandler struct {
	repo  domain.InventoryRepository
	locks *ItemLocks
}

// NewReserveHandler creates a new reserve handler
func NewReserveHandler(repo domain.InventoryRepository, locks *ItemLocks) *ReserveHandler {
	return &ReserveHandler{repo: repo, locks: locks}
}

// Handle executes the reserve command
func (h *ReserveHandler) Handle(ctx context.Context, cmd ReserveCommand) (*domain.InventoryRecord, error) {
	if cmd.ItemID == "" {
		return nil, fmt.Errorf("%w: item_id is required", domain.ErrInvalid)
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrInvalid)
	}

	unlock := h.locks.Lock(cmd.ItemID)
	defer unlock()

	rec, err := h.repo.FindByItemID(ctx, cmd.ItemID)
	if errors.Is(err, domain.ErrNotFound) {
		reservationsRejected.Inc()
		return nil, fmt.Errorf("%w: no inventory for item %s", domain.ErrInsufficientInventory, cmd.ItemID)
	}
	if err != nil {
		return nil, err
	}

	if rec.Quantity < cmd.Quantity {
		reservationsRejected.Inc()
		logger.Warn(ctx).
			Str("item_id", cmd.ItemID).
			Int64("on_hand", rec.Quantity).
			Int64("requested", cmd.Quantity).
			Msg("Reservation rejected")
		return nil, fmt.Errorf("%w: %d on hand, %d requested", domain.ErrInsufficientInventory, rec.Quantity, cmd.Quantity)
	}

	updated, err := h.repo.UpdateQuantity(ctx, rec.ID, rec.Quantity-cmd.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve inventory: %w", err)
	}

	return updated, nil
}
