package warehouse_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	warehouserepo "github.com/muhammadheryan/inventory-service/repository/warehouse"
	cerr "github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var warehouseColumns = []string{"id", "name", "code", "address_line1", "address_line2", "city", "region", "postal_code",
	"country", "is_default", "status", "created_at", "updated_at"}

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func warehouseRows() *sqlmock.Rows {
	return sqlmock.NewRows(warehouseColumns).
		AddRow(1, "Main", "MAIN", "Jl. Sudirman 1", "", "Jakarta", "DKI", "10220", "ID", true, 1, time.Now(), nil)
}

func TestSQL_InsertWarehouseTx(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(mock sqlmock.Sqlmock)
		wantID   uint64
		conflict bool
		wantErr  bool
	}{
		{
			name: "success",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO warehouse`).WillReturnResult(sqlmock.NewResult(4, 1))
			},
			wantID: 4,
		},
		{
			name: "duplicate code is a conflict",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO warehouse`).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'MAIN' for key 'uk_warehouse_code'"})
			},
			conflict: true,
			wantErr:  true,
		},
		{
			name: "losing the race for the default flag is a conflict",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO warehouse`).
					WillReturnError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock; try restarting transaction"})
			},
			conflict: true,
			wantErr:  true,
		},
		{
			name: "other errors pass through",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO warehouse`).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectBegin()
			tt.mockCall(mock)

			tx, err := db.Beginx()
			require.NoError(t, err)

			w := &model.Warehouse{Name: "Main", Code: "MAIN", Status: constant.WarehouseStatusActive}
			id, err := warehouserepo.NewWarehouseRepository(db).InsertWarehouseTx(context.Background(), tx, w)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InsertWarehouseTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.conflict, cerr.Is(err, constant.ErrConflict))
			assert.Equal(t, tt.wantID, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_DeleteWarehouseTx_Referenced(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM warehouse WHERE id = \?`).WithArgs(3).
		WillReturnError(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"})

	tx, err := db.Beginx()
	require.NoError(t, err)

	err = warehouserepo.NewWarehouseRepository(db).DeleteWarehouseTx(context.Background(), tx, 3)
	assert.True(t, cerr.Is(err, constant.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_ClearDefaultExceptTx(t *testing.T) {
	tests := []struct {
		name     string
		execErr  error
		wantErr  bool
		conflict bool
	}{
		{name: "success"},
		{
			name:     "deadlock is a conflict",
			execErr:  &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock; try restarting transaction"},
			wantErr:  true,
			conflict: true,
		},
		{name: "other errors pass through", execErr: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectBegin()
			exp := mock.ExpectExec(`UPDATE warehouse SET is_default = 0, updated_at = NOW\(\) WHERE is_default = 1 AND id <> \?`).WithArgs(4)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			tx, err := db.Beginx()
			require.NoError(t, err)

			err = warehouserepo.NewWarehouseRepository(db).ClearDefaultExceptTx(context.Background(), tx, 4)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.conflict, cerr.Is(err, constant.ErrConflict))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_GetWarehouse(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT .* FROM warehouse WHERE id = \?$`).WithArgs(1).WillReturnRows(warehouseRows())
	mock.ExpectQuery(`SELECT .* FROM warehouse WHERE id = \?$`).WithArgs(2).WillReturnRows(sqlmock.NewRows(warehouseColumns))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM warehouse WHERE id = \? LOCK IN SHARE MODE`).WithArgs(1).WillReturnRows(warehouseRows())
	mock.ExpectQuery(`SELECT .* FROM warehouse WHERE id = \? FOR UPDATE`).WithArgs(1).WillReturnRows(warehouseRows())

	repo := warehouserepo.NewWarehouseRepository(db)

	got, err := repo.GetWarehouseByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "MAIN", got.Code)
	assert.True(t, got.IsDefault)
	assert.True(t, got.Active())

	got, err = repo.GetWarehouseByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, got)

	tx, err := db.Beginx()
	require.NoError(t, err)

	got, err = repo.GetWarehouseByIDShareTx(context.Background(), tx, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), got.ID)

	got, err = repo.GetWarehouseByIDForUpdateTx(context.Background(), tx, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_LockDefaultTx(t *testing.T) {
	tests := []struct {
		name   string
		rows   *sqlmock.Rows
		wantID uint64
	}{
		{name: "current default", rows: warehouseRows(), wantID: 1},
		{name: "no default yet", rows: sqlmock.NewRows(warehouseColumns)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectBegin()
			mock.ExpectQuery(`FROM warehouse WHERE is_default = 1 FOR UPDATE`).WillReturnRows(tt.rows)

			tx, err := db.Beginx()
			require.NoError(t, err)

			got, err := warehouserepo.NewWarehouseRepository(db).LockDefaultTx(context.Background(), tx)
			assert.NoError(t, err)
			if tt.wantID == 0 {
				assert.Nil(t, got)
			} else {
				assert.Equal(t, tt.wantID, got.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_List(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM warehouse`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`ORDER BY is_default DESC, name ASC, id ASC LIMIT \? OFFSET \?`).WithArgs(10, 10).WillReturnRows(warehouseRows())

	items, total, err := warehouserepo.NewWarehouseRepository(db).List(context.Background(), 2, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_StatusAndDefault(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE warehouse SET is_default = 0, updated_at = NOW\(\) WHERE is_default = 1 AND id <> \?`).
		WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE warehouse SET status = \?, updated_at = NOW\(\) WHERE id = \?`).
		WithArgs(2, 4).WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)
	repo := warehouserepo.NewWarehouseRepository(db)

	assert.NoError(t, repo.ClearDefaultExceptTx(context.Background(), tx, 4))
	assert.NoError(t, repo.UpdateWarehouseStatusTx(context.Background(), tx, 4, constant.WarehouseStatusInactive))
	assert.NoError(t, mock.ExpectationsWereMet())
}
