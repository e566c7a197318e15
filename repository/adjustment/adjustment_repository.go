package adjustment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/model"
)

type AdjustmentRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, adj *model.Adjustment) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.Adjustment, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewAdjustmentRepository(conn *sqlx.DB) AdjustmentRepository {
	return &SQL{conn: conn}
}

const (
	insertAdjustmentQuery = `INSERT INTO stock_adjustment
(variant_id, warehouse_id, adjustment_mode, qty_before, qty_change, qty_after, unit_cost, reason_code, note, performed_by, performed_at)
VALUES (:variant_id, :warehouse_id, :adjustment_mode, :qty_before, :qty_change, :qty_after, :unit_cost, :reason_code, :note, :performed_by, :performed_at)`

	getAdjustmentQuery = `SELECT id, variant_id, warehouse_id, adjustment_mode, qty_before, qty_change, qty_after,
unit_cost, reason_code, note, performed_by, performed_at FROM stock_adjustment WHERE id = ?`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, adj *model.Adjustment) (uint64, error) {
	if adj.PerformedAt.IsZero() {
		adj.PerformedAt = time.Now().UTC()
	}
	res, err := tx.NamedExecContext(ctx, insertAdjustmentQuery, adj)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	adj.ID = uint64(id)
	return adj.ID, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Adjustment, error) {
	var adj model.Adjustment
	if err := r.conn.GetContext(ctx, &adj, getAdjustmentQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &adj, nil
}
