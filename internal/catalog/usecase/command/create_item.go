package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tair/supply-chain/internal/catalog/domain"
)

// CreateItemCommand represents the command to create a catalog item
type CreateItemCommand struct {
	Name  string
	Color string
	Price int64
}

// CreateItemHandler handles create item commands
type CreateItemHandler struct {
	repo domain.ItemRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*domain.Item, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalid)
	}
	if cmd.Color == "" {
		return nil, fmt.Errorf("%w: color is required", domain.ErrInvalid)
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalid)
	}

	item := &domain.Item{
		ID:    uuid.New().String(),
		Name:  cmd.Name,
		Color: cmd.Color,
		Price: cmd.Price,
	}

	if err := h.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}
