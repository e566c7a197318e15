package warehouse

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/utils/errors"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlDeadlock        = 1213
)

type WarehouseRepository interface {
	GetWarehouseByID(ctx context.Context, id uint64) (*model.Warehouse, error)
	GetWarehouseByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Warehouse, error)
	GetWarehouseByIDShareTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Warehouse, error)
	List(ctx context.Context, page, perPage int) ([]model.Warehouse, int64, error)
	LockDefaultTx(ctx context.Context, tx *sqlx.Tx) (*model.Warehouse, error)
	InsertWarehouseTx(ctx context.Context, tx *sqlx.Tx, w *model.Warehouse) (uint64, error)
	UpdateWarehouseTx(ctx context.Context, tx *sqlx.Tx, w *model.Warehouse) error
	ClearDefaultExceptTx(ctx context.Context, tx *sqlx.Tx, keepID uint64) error
	DeleteWarehouseTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	UpdateWarehouseStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.WarehouseStatus) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

const (
	warehouseColumns = `id, name, code, address_line1, address_line2, city, region, postal_code, country, is_default, status, created_at, updated_at`

	selectWarehouseQuery = `SELECT ` + warehouseColumns + ` FROM warehouse WHERE id = ?`

	// With a default present, concurrent "make me default" writers serialize on its row lock.
	// With none, both only take compatible gap locks and InnoDB aborts one of the two
	// is_default inserts as a deadlock, which surfaces as a conflict.
	lockDefaultQuery = `SELECT ` + warehouseColumns + ` FROM warehouse WHERE is_default = 1 FOR UPDATE`

	insertWarehouseQuery = `INSERT INTO warehouse
(name, code, address_line1, address_line2, city, region, postal_code, country, is_default, status, created_at)
VALUES (:name, :code, :address_line1, :address_line2, :city, :region, :postal_code, :country, :is_default, :status, NOW())`

	updateWarehouseQuery = `UPDATE warehouse SET
name = :name, code = :code, address_line1 = :address_line1, address_line2 = :address_line2, city = :city,
region = :region, postal_code = :postal_code, country = :country, is_default = :is_default, updated_at = NOW()
WHERE id = :id`

	clearDefaultExceptQuery = `UPDATE warehouse SET is_default = 0, updated_at = NOW() WHERE is_default = 1 AND id <> ?`

	deleteWarehouseQuery = `DELETE FROM warehouse WHERE id = ?`

	updateWarehouseStatusQuery = `UPDATE warehouse SET status = ?, updated_at = NOW() WHERE id = ?`
)

func (r *SQL) GetWarehouseByID(ctx context.Context, id uint64) (*model.Warehouse, error) {
	return r.getWarehouse(ctx, r.conn, selectWarehouseQuery, id)
}

func (r *SQL) GetWarehouseByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Warehouse, error) {
	return r.getWarehouse(ctx, tx, selectWarehouseQuery+" FOR UPDATE", id)
}

// GetWarehouseByIDShareTx keeps the warehouse from being deactivated or deleted
// while stock is moved into it.
func (r *SQL) GetWarehouseByIDShareTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Warehouse, error) {
	return r.getWarehouse(ctx, tx, selectWarehouseQuery+" LOCK IN SHARE MODE", id)
}

func (r *SQL) getWarehouse(ctx context.Context, q sqlx.QueryerContext, query string, id uint64) (*model.Warehouse, error) {
	var w model.Warehouse
	if err := sqlx.GetContext(ctx, q, &w, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *SQL) List(ctx context.Context, page, perPage int) ([]model.Warehouse, int64, error) {
	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM warehouse"); err != nil {
		return nil, 0, err
	}

	warehouses := make([]model.Warehouse, 0)
	query := "SELECT " + warehouseColumns + " FROM warehouse ORDER BY is_default DESC, name ASC, id ASC LIMIT ? OFFSET ?"
	if err := r.conn.SelectContext(ctx, &warehouses, query, perPage, (page-1)*perPage); err != nil {
		return nil, 0, err
	}
	return warehouses, total, nil
}

// LockDefaultTx returns nil, nil when no warehouse is currently the default.
func (r *SQL) LockDefaultTx(ctx context.Context, tx *sqlx.Tx) (*model.Warehouse, error) {
	warehouses := make([]model.Warehouse, 0, 1)
	if err := tx.SelectContext(ctx, &warehouses, lockDefaultQuery); err != nil {
		return nil, err
	}
	if len(warehouses) == 0 {
		return nil, nil
	}
	return &warehouses[0], nil
}

func (r *SQL) InsertWarehouseTx(ctx context.Context, tx *sqlx.Tx, w *model.Warehouse) (uint64, error) {
	res, err := tx.NamedExecContext(ctx, insertWarehouseQuery, w)
	if err != nil {
		return 0, mapWriteError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	w.ID = uint64(id)
	return w.ID, nil
}

func (r *SQL) UpdateWarehouseTx(ctx context.Context, tx *sqlx.Tx, w *model.Warehouse) error {
	if _, err := tx.NamedExecContext(ctx, updateWarehouseQuery, w); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *SQL) ClearDefaultExceptTx(ctx context.Context, tx *sqlx.Tx, keepID uint64) error {
	if _, err := tx.ExecContext(ctx, clearDefaultExceptQuery, keepID); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *SQL) DeleteWarehouseTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	if _, err := tx.ExecContext(ctx, deleteWarehouseQuery, id); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *SQL) UpdateWarehouseStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.WarehouseStatus) error {
	_, err := tx.ExecContext(ctx, updateWarehouseStatusQuery, status, id)
	return err
}

// mapWriteError turns a duplicate warehouse.code, a delete blocked by transfers still
// pointing at the warehouse, or a lost race for the default flag into a conflict.
func mapWriteError(err error) error {
	var me *mysql.MySQLError
	if stderrors.As(err, &me) && (me.Number == mysqlDuplicateEntry || me.Number == mysqlRowIsReferenced || me.Number == mysqlDeadlock) {
		return errors.SetCustomError(constant.ErrConflict)
	}
	return err
}
