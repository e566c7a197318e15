package model

import (
	"time"

	"github.com/muhammadheryan/inventory-service/constant"
)

// StockLevel is the locked-or-read snapshot of one (variant, warehouse) counter row.
type StockLevel struct {
	ID           uint64     `db:"id" json:"id"`
	VariantID    uint64     `db:"variant_id" json:"variant_id"`
	WarehouseID  uint64     `db:"warehouse_id" json:"warehouse_id"`
	OnHand       int64      `db:"on_hand" json:"on_hand"`
	Reserved     int64      `db:"reserved" json:"reserved"`
	SafetyStock  int64      `db:"safety_stock" json:"safety_stock"`
	ReorderPoint int64      `db:"reorder_point" json:"reorder_point"`
	Version      uint64     `db:"version" json:"version"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// Available may be negative after an adjustment; callers must not treat a negative value as sellable.
func (s StockLevel) Available() int64 {
	return s.OnHand - s.Reserved
}

// BelowReorderPoint reports whether a replenishment signal should be raised.
func (s StockLevel) BelowReorderPoint() bool {
	return s.ReorderPoint > 0 && s.Available() <= s.ReorderPoint
}

func (s StockLevel) Balance() *StockBalance {
	return &StockBalance{
		VariantID:   s.VariantID,
		WarehouseID: s.WarehouseID,
		OnHand:      s.OnHand,
		Reserved:    s.Reserved,
		Available:   s.Available(),
	}
}

type StockKey struct {
	VariantID   uint64
	WarehouseID uint64
}

type StockBalance struct {
	VariantID   uint64 `json:"variant_id"`
	WarehouseID uint64 `json:"warehouse_id"`
	OnHand      int64  `json:"on_hand"`
	Reserved    int64  `json:"reserved"`
	Available   int64  `json:"available"`
}

type ReserveStockRequest struct {
	VariantID        uint64 `json:"variant_id" validate:"required"`
	WarehouseID      uint64 `json:"warehouse_id" validate:"required"`
	Qty              int64  `json:"qty" validate:"required,gt=0"`
	ReferenceType    string `json:"reference_type" validate:"omitempty,reference_kind"`
	ReferenceID      uint64 `json:"reference_id" validate:"lte=9223372036854775807"`
	Note             string `json:"note" validate:"max=500"`
	ExpiresInSeconds int64  `json:"expires_in_seconds" validate:"gte=0"`
	Actor            string `json:"-"`
}

func (r *ReserveStockRequest) Reference() (Reference, bool) {
	return ParseReference(r.ReferenceType, r.ReferenceID)
}

type ReleaseStockRequest struct {
	VariantID     uint64 `json:"variant_id" validate:"required"`
	WarehouseID   uint64 `json:"warehouse_id" validate:"required"`
	Qty           int64  `json:"qty" validate:"required,gt=0"`
	ReferenceType string `json:"reference_type" validate:"omitempty,reference_kind"`
	ReferenceID   uint64 `json:"reference_id" validate:"lte=9223372036854775807"`
	Note          string `json:"note" validate:"max=500"`
	Actor         string `json:"-"`
}

func (r *ReleaseStockRequest) Reference() (Reference, bool) {
	return ParseReference(r.ReferenceType, r.ReferenceID)
}

type StockListResponse struct {
	VariantID uint64         `json:"variant_id"`
	Items     []StockBalance `json:"items"`
	OnHand    int64          `json:"on_hand"`
	Reserved  int64          `json:"reserved"`
	Available int64          `json:"available"`
}

// LedgerVerification compares the materialised on_hand with the movement log.
type LedgerVerification struct {
	VariantID   uint64 `json:"variant_id"`
	WarehouseID uint64 `json:"warehouse_id"`
	OnHand      int64  `json:"on_hand"`
	MovementSum int64  `json:"movement_sum"`
	Drift       int64  `json:"drift"`
	Consistent  bool   `json:"consistent"`
}

// Reference is the typed link from a movement to the entity that caused it.
type Reference struct {
	Kind constant.ReferenceKind `json:"type"`
	ID   uint64                 `json:"id"`
}

func NewReference(kind constant.ReferenceKind, id uint64) Reference {
	return Reference{Kind: kind, ID: id}
}

func (r Reference) IsZero() bool {
	return r.Kind == constant.ReferenceNone
}

// ParseReference builds a Reference from the loose request pair. Both halves must be
// present together and the kind must be known.
func ParseReference(kind string, id uint64) (Reference, bool) {
	k := constant.ReferenceKind(kind)
	if !k.Valid() {
		return Reference{}, false
	}
	if k == constant.ReferenceNone {
		return Reference{}, id == 0
	}
	if id == 0 {
		return Reference{}, false
	}
	return Reference{Kind: k, ID: id}, true
}
