package domain

import (
	"context"
	"errors"
)

// InventoryRecord holds the on-hand quantity for one catalog item. There is
// at most one record per item id; the store does not enforce that, so every
// writer must look up by item id before deciding create vs update. Quantity
// never goes negative: an outbound movement that would cross zero is rejected
// before any mutation.
type InventoryRecord struct {
	ID       string `json:"id"`
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

var (
	// ErrNotFound is returned when no inventory record exists for an item.
	ErrNotFound = errors.New("inventory record not found")

	// ErrInvalid marks malformed ledger input.
	ErrInvalid = errors.New("invalid inventory request")

	// ErrInsufficientInventory is returned when a reservation exceeds the
	// on-hand quantity, or no inventory exists for the item at all.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// InventoryRepository defines the contract for ledger data access
type InventoryRepository interface {
	FindByItemID(ctx context.Context, itemID string) (*InventoryRecord, error)
	Create(ctx context.Context, rec *InventoryRecord) error
	UpdateQuantity(ctx context.Context, id string, quantity int64) (*InventoryRecord, error)
}
