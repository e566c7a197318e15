package rabbitmq

import (
	"time"

	"github.com/muhammadheryan/inventory-service/model"
)

type StockEvent struct {
	EventID      string           `json:"event_id"`
	Type         string           `json:"type"`
	VariantID    uint64           `json:"variant_id"`
	WarehouseID  uint64           `json:"warehouse_id"`
	OnHand       int64            `json:"on_hand"`
	Reserved     int64            `json:"reserved"`
	Available    int64            `json:"available"`
	ReorderPoint int64            `json:"reorder_point,omitempty"`
	Reference    *model.Reference `json:"reference,omitempty"`
	Actor        string           `json:"actor"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

type TransferEvent struct {
	EventID         string               `json:"event_id"`
	Type            string               `json:"type"`
	TransferID      uint64               `json:"transfer_id"`
	FromWarehouseID uint64               `json:"from_warehouse_id"`
	ToWarehouseID   uint64               `json:"to_warehouse_id"`
	Status          string               `json:"status"`
	Items           []model.TransferItem `json:"items"`
	Actor           string               `json:"actor"`
	OccurredAt      time.Time            `json:"occurred_at"`
}

// ReservationExpirationMessage is delivered once the hold on an order's stock has lapsed.
type ReservationExpirationMessage struct {
	OrderID     uint64    `json:"order_id"`
	VariantID   uint64    `json:"variant_id"`
	WarehouseID uint64    `json:"warehouse_id"`
	Qty         int64     `json:"qty"`
	ExpiresAt   time.Time `json:"expires_at"`
}
