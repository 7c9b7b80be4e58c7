package domain

import (
	"context"
	"errors"
)

// Item is a supply chain catalog entry. Identity is immutable once assigned;
// the remaining fields change through partial updates keyed by id.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Price int64  `json:"price"`
}

// ItemPatch carries a partial update. Nil fields are absent and leave the
// stored value untouched.
type ItemPatch struct {
	ID    string
	Name  *string
	Color *string
	Price *int64
}

var (
	// ErrNotFound is returned when an update references an unknown item id.
	ErrNotFound = errors.New("item not found")

	// ErrInvalid marks malformed or missing input, detected before any write.
	ErrInvalid = errors.New("invalid item")
)

// ItemRepository defines the contract for catalog data access
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, patch ItemPatch) (*Item, error)
	FindByID(ctx context.Context, id string) (*Item, error)
	FindAll(ctx context.Context) ([]Item, error)
}
