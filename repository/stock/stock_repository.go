package stock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/model"
)

// StockRepository is the stock ledger store. Counter writes only happen through
// ApplyDeltaTx, on a row the same transaction has locked with one of the ForUpdate reads.
type StockRepository interface {
	GetOrCreateForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) (*model.StockLevel, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) (*model.StockLevel, error)
	ApplyDeltaTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64, onHandDelta, reservedDelta int64) (*model.StockLevel, error)
	Get(ctx context.Context, variantID, warehouseID uint64) (*model.StockLevel, error)
	ListByVariant(ctx context.Context, variantID uint64) ([]model.StockLevel, error)
	CountByWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (int64, error)
	SumReservedByWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const (
	stockColumns = `id, variant_id, warehouse_id, on_hand, reserved, safety_stock, reorder_point, version, created_at, updated_at`

	// ON DUPLICATE KEY keeps foreign key violations visible, unlike INSERT IGNORE.
	ensureStockQuery = `INSERT INTO stock_level (variant_id, warehouse_id, on_hand, reserved, created_at)
VALUES (?, ?, 0, 0, NOW())
ON DUPLICATE KEY UPDATE id = id`

	selectStockQuery          = `SELECT ` + stockColumns + ` FROM stock_level WHERE variant_id = ? AND warehouse_id = ?`
	selectStockForUpdateQuery = selectStockQuery + ` FOR UPDATE`

	applyDeltaQuery = `UPDATE stock_level
SET on_hand = on_hand + ?, reserved = reserved + ?, version = version + 1, updated_at = NOW()
WHERE variant_id = ? AND warehouse_id = ?`

	listByVariantQuery = `SELECT ` + stockColumns + ` FROM stock_level WHERE variant_id = ? ORDER BY warehouse_id`

	countByWarehouseQuery = `SELECT COUNT(*) FROM stock_level WHERE warehouse_id = ?`

	sumReservedByWarehouseQuery = `SELECT COALESCE(SUM(reserved), 0) FROM stock_level WHERE warehouse_id = ?`
)

func (r *SQL) GetOrCreateForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) (*model.StockLevel, error) {
	if _, err := tx.ExecContext(ctx, ensureStockQuery, variantID, warehouseID); err != nil {
		return nil, fmt.Errorf("ensure stock level: %w", err)
	}
	var level model.StockLevel
	if err := tx.GetContext(ctx, &level, selectStockForUpdateQuery, variantID, warehouseID); err != nil {
		return nil, fmt.Errorf("lock stock level: %w", err)
	}
	return &level, nil
}

// GetForUpdateTx returns nil, nil when the key has never been created.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) (*model.StockLevel, error) {
	var level model.StockLevel
	if err := tx.GetContext(ctx, &level, selectStockForUpdateQuery, variantID, warehouseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}

func (r *SQL) ApplyDeltaTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64, onHandDelta, reservedDelta int64) (*model.StockLevel, error) {
	res, err := tx.ExecContext(ctx, applyDeltaQuery, onHandDelta, reservedDelta, variantID, warehouseID)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected != 1 {
		return nil, fmt.Errorf("apply delta on variant %d warehouse %d: %w", variantID, warehouseID, sql.ErrNoRows)
	}

	var level model.StockLevel
	if err := tx.GetContext(ctx, &level, selectStockQuery, variantID, warehouseID); err != nil {
		return nil, err
	}
	return &level, nil
}

// Get returns nil, nil when the key has never been created.
func (r *SQL) Get(ctx context.Context, variantID, warehouseID uint64) (*model.StockLevel, error) {
	var level model.StockLevel
	if err := r.conn.GetContext(ctx, &level, selectStockQuery, variantID, warehouseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &level, nil
}

func (r *SQL) ListByVariant(ctx context.Context, variantID uint64) ([]model.StockLevel, error) {
	levels := make([]model.StockLevel, 0)
	if err := r.conn.SelectContext(ctx, &levels, listByVariantQuery, variantID); err != nil {
		return nil, err
	}
	return levels, nil
}

// CountByWarehouseTx takes a shared lock so a concurrent first-touch insert cannot slip
// in between the count and a warehouse delete.
func (r *SQL) CountByWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (int64, error) {
	var total int64
	if err := tx.GetContext(ctx, &total, countByWarehouseQuery+" LOCK IN SHARE MODE", warehouseID); err != nil {
		return 0, err
	}
	return total, nil
}

// SumReservedByWarehouseTx is read after the warehouse row is locked, which waits out
// any reservation still holding its share lock on the warehouse.
func (r *SQL) SumReservedByWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (int64, error) {
	var total int64
	if err := tx.GetContext(ctx, &total, sumReservedByWarehouseQuery, warehouseID); err != nil {
		return 0, err
	}
	return total, nil
}
