//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/tair/supply-chain/internal/catalog/delivery/http"
	"github.com/tair/supply-chain/internal/catalog/domain"
	"github.com/tair/supply-chain/internal/catalog/repository"
	"github.com/tair/supply-chain/internal/catalog/usecase/command"
	"github.com/tair/supply-chain/internal/catalog/usecase/query"
	"github.com/tair/supply-chain/internal/store"
)

// ProvideItemRepository provides the catalog item repository
func ProvideItemRepository(st store.Store) domain.ItemRepository {
	return repository.NewStoreItemRepository(st)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
)

var UseCaseSet = wire.NewSet(
	command.NewCreateItemHandler,
	command.NewUpdateItemHandler,
	query.NewListItemsHandler,
)

// InitializeHandler initializes the catalog HTTP handler with all dependencies
func InitializeHandler(st store.Store) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		UseCaseSet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
