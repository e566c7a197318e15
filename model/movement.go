package model

import (
	"time"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/shopspring/decimal"
)

// Movement is one immutable ledger entry.
type Movement struct {
	ID           uint64                `json:"id"`
	VariantID    uint64                `json:"variant_id"`
	WarehouseID  uint64                `json:"warehouse_id"`
	QtyChange    int64                 `json:"qty_change"`
	MovementType constant.MovementType `json:"movement_type"`
	Reference    *Reference            `json:"reference,omitempty"`
	UnitCost     decimal.NullDecimal   `json:"unit_cost"`
	ReasonCode   string                `json:"reason_code,omitempty"`
	Note         string                `json:"note,omitempty"`
	PerformedBy  string                `json:"performed_by"`
	PerformedAt  time.Time             `json:"performed_at"`
}

// MovementFilter needs a variant or a full reference (kind plus id), so every listing
// hits either the (variant_id, performed_at) or the (reference_type, reference_id) index.
type MovementFilter struct {
	VariantID     uint64 `validate:"required_without=ReferenceID"`
	WarehouseID   uint64
	ReferenceType string `validate:"required_with=ReferenceID,omitempty,reference_kind"`
	ReferenceID   uint64 `validate:"required_without=VariantID,lte=9223372036854775807"`
	Page          int
	PerPage       int
}

type MovementListResponse struct {
	Items      []Movement `json:"items"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
}
