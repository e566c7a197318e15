package transfer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/model"
)

type TransferRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) (uint64, error)
	InsertItemsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, items []model.TransferItem) error
	DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Transfer, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) error
	GetByID(ctx context.Context, id uint64) (*model.Transfer, error)
	List(ctx context.Context, filter *model.TransferFilter) ([]model.Transfer, int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewTransferRepository(conn *sqlx.DB) TransferRepository {
	return &SQL{conn: conn}
}

const (
	transferColumns = `id, from_warehouse_id, to_warehouse_id, status, note, created_by, dispatched_by, dispatched_at,
received_by, received_at, canceled_by, canceled_at, created_at, updated_at`

	insertTransferQuery = `INSERT INTO stock_transfer (from_warehouse_id, to_warehouse_id, status, note, created_by, created_at)
VALUES (:from_warehouse_id, :to_warehouse_id, :status, :note, :created_by, NOW())`

	insertTransferItemQuery = `INSERT INTO stock_transfer_item (transfer_id, variant_id, qty) VALUES (:transfer_id, :variant_id, :qty)`

	deleteTransferItemsQuery = `DELETE FROM stock_transfer_item WHERE transfer_id = ?`

	selectTransferQuery          = `SELECT ` + transferColumns + ` FROM stock_transfer WHERE id = ?`
	selectTransferForUpdateQuery = selectTransferQuery + ` FOR UPDATE`

	selectTransferItemsQuery = `SELECT id, transfer_id, variant_id, qty FROM stock_transfer_item WHERE transfer_id = ? ORDER BY variant_id`

	updateTransferQuery = `UPDATE stock_transfer SET
from_warehouse_id = :from_warehouse_id, to_warehouse_id = :to_warehouse_id, status = :status, note = :note,
dispatched_by = :dispatched_by, dispatched_at = :dispatched_at,
received_by = :received_by, received_at = :received_at,
canceled_by = :canceled_by, canceled_at = :canceled_at,
updated_at = NOW()
WHERE id = :id`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) (uint64, error) {
	res, err := tx.NamedExecContext(ctx, insertTransferQuery, t)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	t.ID = uint64(id)
	return t.ID, nil
}

func (r *SQL) InsertItemsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, items []model.TransferItem) error {
	for i := range items {
		items[i].TransferID = transferID
		res, err := tx.NamedExecContext(ctx, insertTransferItemQuery, items[i])
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		items[i].ID = uint64(id)
	}
	return nil
}

func (r *SQL) DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) error {
	_, err := tx.ExecContext(ctx, deleteTransferItemsQuery, transferID)
	return err
}

// GetForUpdateTx locks the transfer header and loads its items. Returns nil, nil when absent.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Transfer, error) {
	var t model.Transfer
	if err := tx.GetContext(ctx, &t, selectTransferForUpdateQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	items := make([]model.TransferItem, 0)
	if err := tx.SelectContext(ctx, &items, selectTransferItemsQuery, id); err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) error {
	_, err := tx.NamedExecContext(ctx, updateTransferQuery, t)
	return err
}

// GetByID returns nil, nil when absent.
func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Transfer, error) {
	var t model.Transfer
	if err := r.conn.GetContext(ctx, &t, selectTransferQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	items := make([]model.TransferItem, 0)
	if err := r.conn.SelectContext(ctx, &items, selectTransferItemsQuery, id); err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

// List returns transfer headers only; items are loaded by GetByID.
func (r *SQL) List(ctx context.Context, filter *model.TransferFilter) ([]model.Transfer, int64, error) {
	where := ""
	args := make([]any, 0, 3)
	if filter.Status != "" {
		where = " WHERE status = ?"
		args = append(args, filter.Status)
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM stock_transfer"+where, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + transferColumns + " FROM stock_transfer" + where + " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	transfers := make([]model.Transfer, 0)
	if err := r.conn.SelectContext(ctx, &transfers, query, args...); err != nil {
		return nil, 0, err
	}
	return transfers, total, nil
}
