package model

import (
	"time"

	"github.com/muhammadheryan/inventory-service/constant"
)

type Transfer struct {
	ID              uint64                  `db:"id" json:"id"`
	FromWarehouseID uint64                  `db:"from_warehouse_id" json:"from_warehouse_id"`
	ToWarehouseID   uint64                  `db:"to_warehouse_id" json:"to_warehouse_id"`
	Status          constant.TransferStatus `db:"status" json:"status"`
	Note            string                  `db:"note" json:"note,omitempty"`
	CreatedBy       string                  `db:"created_by" json:"created_by"`
	DispatchedBy    *string                 `db:"dispatched_by" json:"dispatched_by,omitempty"`
	DispatchedAt    *time.Time              `db:"dispatched_at" json:"dispatched_at,omitempty"`
	ReceivedBy      *string                 `db:"received_by" json:"received_by,omitempty"`
	ReceivedAt      *time.Time              `db:"received_at" json:"received_at,omitempty"`
	CanceledBy      *string                 `db:"canceled_by" json:"canceled_by,omitempty"`
	CanceledAt      *time.Time              `db:"canceled_at" json:"canceled_at,omitempty"`
	CreatedAt       time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time              `db:"updated_at" json:"updated_at,omitempty"`
	Items           []TransferItem          `db:"-" json:"items"`
}

type TransferItem struct {
	ID         uint64 `db:"id" json:"id"`
	TransferID uint64 `db:"transfer_id" json:"transfer_id"`
	VariantID  uint64 `db:"variant_id" json:"variant_id"`
	Qty        int64  `db:"qty" json:"qty"`
}

type TransferItemRequest struct {
	VariantID uint64 `json:"variant_id" validate:"required"`
	Qty       int64  `json:"qty" validate:"required,gt=0"`
}

type CreateTransferRequest struct {
	FromWarehouseID uint64                `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   uint64                `json:"to_warehouse_id" validate:"required,nefield=FromWarehouseID"`
	Note            string                `json:"note" validate:"max=500"`
	Items           []TransferItemRequest `json:"items" validate:"required,min=1,dive"`
	Actor           string                `json:"-"`
}

// UpdateTransferRequest only changes the fields that are present. A non-nil Items
// replaces the whole item set, an empty list included.
type UpdateTransferRequest struct {
	FromWarehouseID *uint64                `json:"from_warehouse_id"`
	ToWarehouseID   *uint64                `json:"to_warehouse_id"`
	Note            *string                `json:"note" validate:"omitempty,max=500"`
	Items           *[]TransferItemRequest `json:"items"`
}

type TransferFilter struct {
	Status  string `validate:"omitempty,transfer_status"`
	Page    int
	PerPage int
}

type TransferListResponse struct {
	Items      []Transfer `json:"items"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
}
