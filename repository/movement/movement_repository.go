package movement

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/shopspring/decimal"
)

// MovementRepository is append-only: there is deliberately no update or delete.
type MovementRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, m *model.Movement) (uint64, error)
	List(ctx context.Context, filter *model.MovementFilter) ([]model.Movement, int64, error)
	SumQtyChange(ctx context.Context, variantID, warehouseID uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

// ErrHoldMovesOnHand is returned for a reservation or release movement carrying a non-zero qty_change.
var ErrHoldMovesOnHand = errors.New("movement: reservation and release entries must not change on_hand")

var ErrUnknownMovementType = errors.New("movement: unknown movement type")

func NewMovementRepository(conn *sqlx.DB) MovementRepository {
	return &SQL{conn: conn}
}

type movementRow struct {
	ID            uint64              `db:"id"`
	VariantID     uint64              `db:"variant_id"`
	WarehouseID   uint64              `db:"warehouse_id"`
	QtyChange     int64               `db:"qty_change"`
	MovementType  string              `db:"movement_type"`
	ReferenceType sql.NullString      `db:"reference_type"`
	ReferenceID   sql.NullInt64       `db:"reference_id"`
	UnitCost      decimal.NullDecimal `db:"unit_cost"`
	ReasonCode    sql.NullString      `db:"reason_code"`
	Note          sql.NullString      `db:"note"`
	PerformedBy   string              `db:"performed_by"`
	PerformedAt   time.Time           `db:"performed_at"`
}

func (r movementRow) toModel() model.Movement {
	m := model.Movement{
		ID:           r.ID,
		VariantID:    r.VariantID,
		WarehouseID:  r.WarehouseID,
		QtyChange:    r.QtyChange,
		MovementType: constant.MovementType(r.MovementType),
		UnitCost:     r.UnitCost,
		ReasonCode:   r.ReasonCode.String,
		Note:         r.Note.String,
		PerformedBy:  r.PerformedBy,
		PerformedAt:  r.PerformedAt,
	}
	if r.ReferenceType.Valid && r.ReferenceType.String != "" {
		ref := model.NewReference(constant.ReferenceKind(r.ReferenceType.String), uint64(r.ReferenceID.Int64))
		m.Reference = &ref
	}
	return m
}

const (
	insertMovementQuery = `INSERT INTO stock_movement
(variant_id, warehouse_id, qty_change, movement_type, reference_type, reference_id, unit_cost, reason_code, note, performed_by, performed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectMovementBase = `SELECT id, variant_id, warehouse_id, qty_change, movement_type, reference_type, reference_id,
unit_cost, reason_code, note, performed_by, performed_at FROM stock_movement WHERE true`

	countMovementBase = `SELECT COUNT(*) FROM stock_movement WHERE true`

	sumQtyChangeQuery = `SELECT COALESCE(SUM(qty_change), 0) FROM stock_movement WHERE variant_id = ? AND warehouse_id = ?`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, m *model.Movement) (uint64, error) {
	if !m.MovementType.Valid() {
		return 0, ErrUnknownMovementType
	}
	if !m.MovementType.MovesOnHand() && m.QtyChange != 0 {
		return 0, ErrHoldMovesOnHand
	}

	var refType sql.NullString
	var refID sql.NullInt64
	if m.Reference != nil && !m.Reference.IsZero() {
		refType = sql.NullString{String: string(m.Reference.Kind), Valid: true}
		refID = sql.NullInt64{Int64: int64(m.Reference.ID), Valid: true}
	}
	if m.PerformedAt.IsZero() {
		m.PerformedAt = time.Now().UTC()
	}

	res, err := tx.ExecContext(ctx, insertMovementQuery,
		m.VariantID, m.WarehouseID, m.QtyChange, string(m.MovementType),
		refType, refID, m.UnitCost, nullString(m.ReasonCode), nullString(m.Note),
		m.PerformedBy, m.PerformedAt,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	m.ID = uint64(id)
	return m.ID, nil
}

func (r *SQL) List(ctx context.Context, filter *model.MovementFilter) ([]model.Movement, int64, error) {
	where, args := movementWhere(filter)

	var total int64
	if err := r.conn.GetContext(ctx, &total, countMovementBase+where, args...); err != nil {
		return nil, 0, err
	}

	query := selectMovementBase + where + " ORDER BY performed_at DESC, id DESC LIMIT ? OFFSET ?"
	pageArgs := append(append([]any{}, args...), filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows := make([]movementRow, 0)
	if err := r.conn.SelectContext(ctx, &rows, query, pageArgs...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Movement, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, total, nil
}

func (r *SQL) SumQtyChange(ctx context.Context, variantID, warehouseID uint64) (int64, error) {
	var total int64
	if err := r.conn.GetContext(ctx, &total, sumQtyChangeQuery, variantID, warehouseID); err != nil {
		return 0, err
	}
	return total, nil
}

func movementWhere(filter *model.MovementFilter) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 4)

	if filter.VariantID != 0 {
		sb.WriteString(" AND variant_id = ?")
		args = append(args, filter.VariantID)
	}
	if filter.WarehouseID != 0 {
		sb.WriteString(" AND warehouse_id = ?")
		args = append(args, filter.WarehouseID)
	}
	if filter.ReferenceType != "" {
		sb.WriteString(" AND reference_type = ?")
		args = append(args, filter.ReferenceType)
		if filter.ReferenceID != 0 {
			sb.WriteString(" AND reference_id = ?")
			args = append(args, filter.ReferenceID)
		}
	}
	return sb.String(), args
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
