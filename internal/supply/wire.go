//go:build wireinject
// +build wireinject

package supply

import (
	"github.com/google/wire"

	dirdomain "github.com/tair/supply-chain/internal/directory/domain"
	dirrepository "github.com/tair/supply-chain/internal/directory/repository"
	invdomain "github.com/tair/supply-chain/internal/inventory/domain"
	invrepository "github.com/tair/supply-chain/internal/inventory/repository"
	invcommand "github.com/tair/supply-chain/internal/inventory/usecase/command"
	"github.com/tair/supply-chain/internal/store"
	"github.com/tair/supply-chain/internal/supply/delivery/http"
	"github.com/tair/supply-chain/internal/supply/domain"
	"github.com/tair/supply-chain/internal/supply/repository"
	"github.com/tair/supply-chain/internal/supply/usecase/command"
	"github.com/tair/supply-chain/internal/supply/usecase/query"
)

// ProvideSupplyRepository provides the supply event repository
func ProvideSupplyRepository(st store.Store) domain.SupplyRepository {
	return repository.NewStoreSupplyRepository(st)
}

// ProvideInventoryRepository provides the inventory ledger repository
func ProvideInventoryRepository(st store.Store) invdomain.InventoryRepository {
	return invrepository.NewStoreInventoryRepository(st)
}

// ProvideDirectoryRepository provides the directory repository for enrichment
func ProvideDirectoryRepository(st store.Store) dirdomain.DirectoryRepository {
	return dirrepository.NewStoreDirectoryRepository(st)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSupplyRepository,
	ProvideInventoryRepository,
	ProvideDirectoryRepository,
)

var UseCaseSet = wire.NewSet(
	invcommand.NewItemLocks,
	invcommand.NewReserveHandler,
	invcommand.NewReceiveHandler,
	command.NewCreateEventHandler,
	command.NewUpdateEventHandler,
	query.NewListEventsHandler,
)

// InitializeHandler initializes the supply HTTP handler with all dependencies
func InitializeHandler(st store.Store, publisher domain.EventPublisher) (*http.SupplyHandler, error) {
	wire.Build(
		RepositorySet,
		UseCaseSet,
		http.NewSupplyHandler,
	)
	return nil, nil
}
