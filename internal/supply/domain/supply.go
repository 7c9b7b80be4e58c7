package domain

import (
	"context"
	"errors"
	"time"

	directory "github.com/tair/supply-chain/internal/directory/domain"
)

// Movement is the direction of a supply exchange.
type Movement string

const (
	MovementInbound  Movement = "Inbound"
	MovementOutbound Movement = "Outbound"
)

// Status is the delivery status of a supply event. The processor treats the
// values as opaque beyond membership: any known status may be set by an
// update, no transition order is enforced.
type Status string

const (
	StatusOrdered          Status = "Ordered"
	StatusAwaitingShipment Status = "Awaiting Shipment"
	StatusShipped          Status = "Shipped"
	StatusDelivered        Status = "Delivered"
)

// ValidMovement reports whether m is a known movement direction.
func ValidMovement(m Movement) bool {
	return m == MovementInbound || m == MovementOutbound
}

// ValidStatus reports whether s is a known delivery status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOrdered, StatusAwaitingShipment, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// SupplyEvent records one shipment between a warehouse, a courier and a
// supplier. Events are created once per shipment, mutated only through
// partial updates keyed by id, and never deleted.
//
// Received tracks whether the inbound delivery effect has already been
// applied to the inventory ledger, so repeated Delivered updates cannot
// double-count quantity.
type SupplyEvent struct {
	ID                   string     `json:"id"`
	ItemID               string     `json:"item_id"`
	Quantity             int64      `json:"quantity"`
	Movement             Movement   `json:"movement"`
	Status               Status     `json:"status"`
	WarehouseID          string     `json:"warehouse_id"`
	CourierID            string     `json:"courier_id"`
	SupplierID           string     `json:"supplier_id"`
	Destination          string     `json:"destination"`
	OrderDate            *time.Time `json:"order_date,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`
	ShippedOn            *time.Time `json:"shipped_on,omitempty"`
	DeliveryDate         *time.Time `json:"delivery_date,omitempty"`
	Received             bool       `json:"received"`
}

// SupplyPatch carries a partial update to an event. Nil fields are absent
// and leave the stored value untouched.
type SupplyPatch struct {
	ID                   string
	ItemID               *string
	Quantity             *int64
	Movement             *Movement
	Status               *Status
	WarehouseID          *string
	CourierID            *string
	SupplierID           *string
	Destination          *string
	OrderDate            *time.Time
	ExpectedDeliveryDate *time.Time
	ShippedOn            *time.Time
	DeliveryDate         *time.Time
	Received             *bool
}

// EnrichedSupplyEvent is a supply event with its foreign keys resolved to
// full directory records. A nil join means the referenced record is missing.
type EnrichedSupplyEvent struct {
	SupplyEvent
	Warehouse *directory.Warehouse `json:"warehouse"`
	Courier   *directory.Courier   `json:"courier"`
	Supplier  *directory.Supplier  `json:"supplier"`
}

var (
	// ErrNotFound is returned when an update references an unknown event id.
	ErrNotFound = errors.New("supply event not found")

	// ErrInvalid marks malformed or missing event input.
	ErrInvalid = errors.New("invalid supply event")

	// ErrIntegrity is returned by strict enrichment when a foreign key has
	// no matching directory record.
	ErrIntegrity = errors.New("unresolved foreign key")
)

// SupplyRepository defines the contract for supply event data access
type SupplyRepository interface {
	Create(ctx context.Context, ev *SupplyEvent) error
	Update(ctx context.Context, patch SupplyPatch) (*SupplyEvent, error)
	FindByID(ctx context.Context, id string) (*SupplyEvent, error)
	FindAll(ctx context.Context) ([]SupplyEvent, error)
}

// EventPublisher pushes supply chain facts onto the message broker. A nil
// publisher disables publishing.
type EventPublisher interface {
	PublishSupplyRecorded(ctx context.Context, ev SupplyEvent) error
	PublishInventoryAdjusted(ctx context.Context, itemID string, delta, onHand int64) error
}
