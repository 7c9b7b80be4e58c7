package query

import (
	"context"
	"fmt"

	"github.com/tair/supply-chain/internal/inventory/domain"
)

// GetByItemHandler handles inventory lookups by item id
type GetByItemHandler struct {
	repo domain.InventoryRepository
}

// NewGetByItemHandler creates a new get-by-item handler
func NewGetByItemHandler(repo domain.InventoryRepository) *GetByItemHandler {
	return &GetByItemHandler{repo: repo}
}

// Handle returns the inventory record for an item, or domain.ErrNotFound
// when the item has never been received.
func (h *GetByItemHandler) Handle(ctx context.Context, itemID string) (*domain.InventoryRecord, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: item_id is required", domain.ErrInvalid)
	}
	return h.repo.FindByItemID(ctx, itemID)
}
