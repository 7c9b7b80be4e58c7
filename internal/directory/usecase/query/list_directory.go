package query

import (
	"context"
	"fmt"

	"github.com/tair/supply-chain/internal/directory/domain"
)

// ListDirectoryHandler handles directory listing queries
type ListDirectoryHandler struct {
	repo domain.DirectoryRepository
}

// NewListDirectoryHandler creates a new list directory handler
func NewListDirectoryHandler(repo domain.DirectoryRepository) *ListDirectoryHandler {
	return &ListDirectoryHandler{repo: repo}
}

// Handle returns all couriers, warehouses and suppliers.
func (h *ListDirectoryHandler) Handle(ctx context.Context) (*domain.Directory, error) {
	couriers, err := h.repo.Couriers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list couriers: %w", err)
	}
	warehouses, err := h.repo.Warehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	suppliers, err := h.repo.Suppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	return &domain.Directory{
		Couriers:   couriers,
		Warehouses: warehouses,
		Suppliers:  suppliers,
	}, nil
}
