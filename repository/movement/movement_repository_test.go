package movement_test

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	movementrepo "github.com/muhammadheryan/inventory-service/repository/movement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var movementColumns = []string{"id", "variant_id", "warehouse_id", "qty_change", "movement_type", "reference_type", "reference_id",
	"unit_cost", "reason_code", "note", "performed_by", "performed_at"}

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func TestSQL_InsertTx(t *testing.T) {
	ref := model.NewReference(constant.ReferenceTransfer, 12)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		movement *model.Movement
		args     []driver.Value
	}{
		{
			name: "with reference",
			movement: &model.Movement{VariantID: 1, WarehouseID: 2, QtyChange: -3, MovementType: constant.MovementTransferOut,
				Reference: &ref, PerformedBy: "42", PerformedAt: at},
			args: []driver.Value{1, 2, -3, "transfer_out", "transfer", 12, sqlmock.AnyArg(), nil, nil, "42", at},
		},
		{
			name: "without reference writes nulls",
			movement: &model.Movement{VariantID: 1, WarehouseID: 2, QtyChange: 0, MovementType: constant.MovementReservation,
				Note: "hold", PerformedBy: "system", PerformedAt: at},
			args: []driver.Value{1, 2, 0, "reservation", nil, nil, sqlmock.AnyArg(), nil, "hold", "system", at},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO stock_movement`).WithArgs(tt.args...).WillReturnResult(sqlmock.NewResult(77, 1))

			tx, err := db.Beginx()
			require.NoError(t, err)

			id, err := movementrepo.NewMovementRepository(db).InsertTx(context.Background(), tx, tt.movement)
			assert.NoError(t, err)
			assert.Equal(t, uint64(77), id)
			assert.Equal(t, uint64(77), tt.movement.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_InsertTx_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		movement *model.Movement
		wantErr  error
	}{
		{
			name:     "reservation carrying a quantity",
			movement: &model.Movement{VariantID: 1, WarehouseID: 2, QtyChange: 3, MovementType: constant.MovementReservation, PerformedBy: "42"},
			wantErr:  movementrepo.ErrHoldMovesOnHand,
		},
		{
			name:     "release carrying a quantity",
			movement: &model.Movement{VariantID: 1, WarehouseID: 2, QtyChange: -3, MovementType: constant.MovementRelease, PerformedBy: "42"},
			wantErr:  movementrepo.ErrHoldMovesOnHand,
		},
		{
			name:     "unknown type",
			movement: &model.Movement{VariantID: 1, WarehouseID: 2, QtyChange: 3, MovementType: "shrinkage", PerformedBy: "42"},
			wantErr:  movementrepo.ErrUnknownMovementType,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectBegin()

			tx, err := db.Beginx()
			require.NoError(t, err)

			id, err := movementrepo.NewMovementRepository(db).InsertTx(context.Background(), tx, tt.movement)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_List(t *testing.T) {
	db, mock := newMock(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM stock_movement WHERE true AND variant_id = \? AND warehouse_id = \? AND reference_type = \? AND reference_id = \?`).
		WithArgs(1, 2, "inventory_adjustment", 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`FROM stock_movement WHERE true AND variant_id = \? AND warehouse_id = \? AND reference_type = \? AND reference_id = \? ORDER BY performed_at DESC, id DESC LIMIT \? OFFSET \?`).
		WithArgs(1, 2, "inventory_adjustment", 5, 10, 20).
		WillReturnRows(sqlmock.NewRows(movementColumns).
			AddRow(9, 1, 2, 4, "adjustment", "inventory_adjustment", 5, "12.50", "cycle_count", nil, "42", at).
			AddRow(8, 1, 2, 0, "reservation", nil, nil, nil, nil, nil, "system", at))

	items, total, err := movementrepo.NewMovementRepository(db).List(context.Background(), &model.MovementFilter{
		VariantID: 1, WarehouseID: 2, ReferenceType: "inventory_adjustment", ReferenceID: 5, Page: 3, PerPage: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, items, 2)

	assert.Equal(t, &model.Reference{Kind: constant.ReferenceAdjustment, ID: 5}, items[0].Reference)
	assert.True(t, items[0].UnitCost.Valid)
	assert.True(t, items[0].UnitCost.Decimal.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "cycle_count", items[0].ReasonCode)

	assert.Nil(t, items[1].Reference)
	assert.False(t, items[1].UnitCost.Valid)
	assert.Equal(t, constant.MovementReservation, items[1].MovementType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_SumQtyChange(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(qty_change\), 0\) FROM stock_movement WHERE variant_id = \? AND warehouse_id = \?`).
		WithArgs(1, 2).WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(-6))

	sum, err := movementrepo.NewMovementRepository(db).SumQtyChange(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(-6), sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}
