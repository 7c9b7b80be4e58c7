package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/supply-chain/internal/inventory/domain"
)

var unitsReceived = promauto.NewCounter(prometheus.CounterOpts{
	Name: "inventory_units_received_total",
	Help: "Units added to inventory by delivered inbound shipments",
})

// ReceiveCommand adds delivered quantity to an item's on-hand stock
type ReceiveCommand struct {
	ItemID   string
	Quantity int64
}

// ReceiveHandler handles receive commands. The inventory record is created
// lazily on the first inbound delivery for an item and merged on every
// subsequent one.
type ReceiveHandler struct {
	repo  domain.InventoryRepository
	locks *ItemLocks
}

// NewReceiveHandler creates a new receive handler
func NewReceiveHandler(repo domain.InventoryRepository, locks *ItemLocks) *ReceiveHandler {
	return &ReceiveHandler{repo: repo, locks: locks}
}

// Handle executes the receive command
func (h *ReceiveHandler) Handle(ctx context.Context, cmd ReceiveCommand) (*domain.InventoryRecord, error) {
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
		created := &domain.InventoryRecord{
			ID:       uuid.New().String(),
			ItemID:   cmd.ItemID,
			Quantity: cmd.Quantity,
		}
		if err := h.repo.Create(ctx, created); err != nil {
			return nil, fmt.Errorf("failed to create inventory record: %w", err)
		}
		unitsReceived.Add(float64(cmd.Quantity))
		return created, nil
	}
	if err != nil {
		return nil, err
	}

	updated, err := h.repo.UpdateQuantity(ctx, rec.ID, rec.Quantity+cmd.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to receive inventory: %w", err)
	}

	unitsReceived.Add(float64(cmd.Quantity))
	return updated, nil
}
