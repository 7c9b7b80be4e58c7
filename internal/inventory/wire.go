//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"

	"github.com/tair/supply-chain/internal/inventory/delivery/http"
	"github.com/tair/supply-chain/internal/inventory/domain"
	"github.com/tair/supply-chain/internal/inventory/repository"
	"github.com/tair/supply-chain/internal/inventory/usecase/query"
	"github.com/tair/supply-chain/internal/store"
)

// ProvideInventoryRepository provides the inventory ledger repository
func ProvideInventoryRepository(st store.Store) domain.InventoryRepository {
	return repository.NewStoreInventoryRepository(st)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
)

var UseCaseSet = wire.NewSet(
	query.NewGetByItemHandler,
)

// InitializeHandler initializes the inventory HTTP handler with all dependencies
func InitializeHandler(st store.Store) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		UseCaseSet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
