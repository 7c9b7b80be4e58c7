package command

import (
	"context"
	"fmt"

	"github.com/tair/supply-chain/internal/catalog/domain"
)

// UpdateItemCommand represents a partial update to an existing item
type UpdateItemCommand struct {
	ID    string
	Name  *string
	Color *string
	Price *int64
}

// UpdateItemHandler handles update item commands
type UpdateItemHandler struct {
	repo domain.ItemRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*domain.Item, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrInvalid)
	}
	if cmd.Name != nil && *cmd.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalid)
	}
	if cmd.Color != nil && *cmd.Color == "" {
		return nil, fmt.Errorf("%w: color cannot be empty", domain.ErrInvalid)
	}
	if cmd.Price != nil && *cmd.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalid)
	}

	item, err := h.repo.Update(ctx, domain.ItemPatch{
		ID:    cmd.ID,
		Name:  cmd.Name,
		Color: cmd.Color,
		Price: cmd.Price,
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}
