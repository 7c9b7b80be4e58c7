package domain

import (
	"context"
	"errors"
)

// Courier is a shipping partner.
type Courier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Warehouse is a storage location.
type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Supplier is a sourcing partner.
type Supplier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Directory bundles all reference collections for the list endpoint.
type Directory struct {
	Couriers   []Courier   `json:"couriers"`
	Warehouses []Warehouse `json:"warehouses"`
	Suppliers  []Supplier  `json:"suppliers"`
}

// ErrNotFound is returned when a foreign key does not resolve to a
// directory record.
var ErrNotFound = errors.New("directory record not found")

// DirectoryRepository defines the contract for reference data access
type DirectoryRepository interface {
	Couriers(ctx context.Context) ([]Courier, error)
	Warehouses(ctx context.Context) ([]Warehouse, error)
	Suppliers(ctx context.Context) ([]Supplier, error)

	CourierByID(ctx context.Context, id string) (*Courier, error)
	WarehouseByID(ctx context.Context, id string) (*Warehouse, error)
	SupplierByID(ctx context.Context, id string) (*Supplier, error)

	AddCourier(ctx context.Context, c *Courier) error
	AddWarehouse(ctx context.Context, w *Warehouse) error
	AddSupplier(ctx context.Context, s *Supplier) error
}
