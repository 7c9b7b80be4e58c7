package query

import (
	"context"
	"fmt"

	"github.com/tair/supply-chain/internal/catalog/domain"
)

// ListItemsHandler handles list items queries
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle returns the full catalog in insertion order.
func (h *ListItemsHandler) Handle(ctx context.Context) ([]domain.Item, error) {
	items, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}
