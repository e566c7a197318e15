package model

import (
	"time"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/shopspring/decimal"
)

type Adjustment struct {
	ID          uint64                  `db:"id" json:"id"`
	VariantID   uint64                  `db:"variant_id" json:"variant_id"`
	WarehouseID uint64                  `db:"warehouse_id" json:"warehouse_id"`
	Mode        constant.AdjustmentMode `db:"adjustment_mode" json:"adjustment_mode"`
	QtyBefore   int64                   `db:"qty_before" json:"qty_before"`
	QtyChange   int64                   `db:"qty_change" json:"qty_change"`
	QtyAfter    int64                   `db:"qty_after" json:"qty_after"`
	UnitCost    decimal.NullDecimal     `db:"unit_cost" json:"unit_cost"`
	ReasonCode  string                  `db:"reason_code" json:"reason_code,omitempty"`
	Note        string                  `db:"note" json:"note,omitempty"`
	PerformedBy string                  `db:"performed_by" json:"performed_by"`
	PerformedAt time.Time               `db:"performed_at" json:"performed_at"`
}

type AdjustStockRequest struct {
	VariantID   uint64           `json:"variant_id" validate:"required"`
	WarehouseID uint64           `json:"warehouse_id" validate:"required"`
	Mode        string           `json:"mode" validate:"required,adjustment_mode"`
	Qty         int64            `json:"qty"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
	ReasonCode  string           `json:"reason_code" validate:"max=64"`
	Note        string           `json:"note" validate:"max=500"`
	Actor       string           `json:"-"`
}
