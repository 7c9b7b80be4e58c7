package kafka

import "time"

// SupplyRecordedEvent is emitted after a supply event has been persisted
type SupplyRecordedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	SupplyID    string    `json:"supply_id"`
	ItemID      string    `json:"item_id"`
	Quantity    int64     `json:"quantity"`
	Movement    string    `json:"movement"`
	Status      string    `json:"status"`
	WarehouseID string    `json:"warehouse_id"`
	CourierID   string    `json:"courier_id"`
	SupplierID  string    `json:"supplier_id"`
	Timestamp   time.Time `json:"timestamp"`
}

// InventoryAdjustedEvent is emitted after every inventory ledger mutation.
// Delta is negative for reservations and positive for received deliveries;
// OnHand is the quantity after the mutation.
type InventoryAdjustedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ItemID    string    `json:"item_id"`
	Delta     int64     `json:"delta"`
	OnHand    int64     `json:"on_hand"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeSupplyRecorded    = "supply.recorded"
	EventTypeInventoryAdjusted = "inventory.adjusted"
)

// Kafka topics
const (
	TopicSupplyRecorded    = "supply-recorded"
	TopicInventoryAdjusted = "inventory-adjusted"
)
