//go:build wireinject
// +build wireinject

package directory

import (
	"github.com/google/wire"

	"github.com/tair/supply-chain/internal/directory/delivery/http"
	"github.com/tair/supply-chain/internal/directory/domain"
	"github.com/tair/supply-chain/internal/directory/repository"
	"github.com/tair/supply-chain/internal/directory/usecase/query"
	"github.com/tair/supply-chain/internal/store"
)

// ProvideDirectoryRepository provides the directory repository
func ProvideDirectoryRepository(st store.Store) domain.DirectoryRepository {
	return repository.NewStoreDirectoryRepository(st)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideDirectoryRepository,
)

var UseCaseSet = wire.NewSet(
	query.NewListDirectoryHandler,
)

// InitializeHandler initializes the directory HTTP handler with all dependencies
func InitializeHandler(st store.Store) (*http.DirectoryHandler, error) {
	wire.Build(
		RepositorySet,
		UseCaseSet,
		http.NewDirectoryHandler,
	)
	return nil, nil
}
