package constant

import "fmt"

type MovementType string

const (
	MovementPurchase       MovementType = "purchase"
	MovementSale           MovementType = "sale"
	MovementReturnIn       MovementType = "return_in"
	MovementReturnOut      MovementType = "return_out"
	MovementAdjustment     MovementType = "adjustment"
	MovementTransferIn     MovementType = "transfer_in"
	MovementTransferOut    MovementType = "transfer_out"
	MovementProductionIn   MovementType = "production_in"
	MovementConsumptionOut MovementType = "consumption_out"
	MovementReservation    MovementType = "reservation"
	MovementRelease        MovementType = "release"
)

func (m MovementType) Valid() bool {
	switch m {
	case MovementPurchase, MovementSale, MovementReturnIn, MovementReturnOut,
		MovementAdjustment, MovementTransferIn, MovementTransferOut,
		MovementProductionIn, MovementConsumptionOut, MovementReservation, MovementRelease:
		return true
	}
	return false
}

// MovesOnHand reports whether movements of this type carry a non-zero qty_change.
func (m MovementType) MovesOnHand() bool {
	return m != MovementReservation && m != MovementRelease
}

type AdjustmentMode string

const (
	AdjustmentSetOnHand   AdjustmentMode = "SET_ON_HAND"
	AdjustmentDeltaOnHand AdjustmentMode = "DELTA_ON_HAND"
)

func (m AdjustmentMode) Valid() bool {
	return m == AdjustmentSetOnHand || m == AdjustmentDeltaOnHand
}

// ReferenceKind tags the entity a movement was caused by. The empty kind means no reference.
type ReferenceKind string

const (
	ReferenceNone       ReferenceKind = ""
	ReferenceAdjustment ReferenceKind = "inventory_adjustment"
	ReferenceOrder      ReferenceKind = "order"
	ReferenceTransfer   ReferenceKind = "transfer"
)

func (k ReferenceKind) Valid() bool {
	switch k {
	case ReferenceNone, ReferenceAdjustment, ReferenceOrder, ReferenceTransfer:
		return true
	}
	return false
}

type TransferStatus string

const (
	TransferStatusDraft     TransferStatus = "draft"
	TransferStatusInTransit TransferStatus = "in_transit"
	TransferStatusReceived  TransferStatus = "received"
	TransferStatusCanceled  TransferStatus = "canceled"
)

func (s TransferStatus) Valid() bool {
	switch s {
	case TransferStatusDraft, TransferStatusInTransit, TransferStatusReceived, TransferStatusCanceled:
		return true
	}
	return false
}

// CanTransitionTo is the single source of truth for the transfer lifecycle.
// draft -> draft covers updates of a draft transfer.
func (s TransferStatus) CanTransitionTo(next TransferStatus) bool {
	switch s {
	case TransferStatusDraft:
		return next == TransferStatusDraft || next == TransferStatusInTransit || next == TransferStatusCanceled
	case TransferStatusInTransit:
		return next == TransferStatusReceived
	case TransferStatusReceived, TransferStatusCanceled:
		return false
	}
	return false
}

func (s TransferStatus) Terminal() bool {
	return s == TransferStatusReceived || s == TransferStatusCanceled
}

// StockCacheKey is the redis key holding a stock balance snapshot.
func StockCacheKey(variantID, warehouseID uint64) string {
	return fmt.Sprintf("stock:%d:%d", variantID, warehouseID)
}
