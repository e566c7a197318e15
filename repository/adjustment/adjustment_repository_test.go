package adjustment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/constant"
	adjustmentrepo "github.com/muhammadheryan/inventory-service/repository/adjustment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adjustmentColumns = []string{"id", "variant_id", "warehouse_id", "adjustment_mode", "qty_before", "qty_change", "qty_after",
	"unit_cost", "reason_code", "note", "performed_by", "performed_at"}

func TestSQL_GetByID(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		queryErr error
		wantNil  bool
		wantErr  bool
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(adjustmentColumns).
				AddRow(9, 1, 2, "SET_ON_HAND", 10, -6, 4, "12.50", "cycle_count", "", "42", at),
		},
		{
			name:    "missing returns nil",
			rows:    sqlmock.NewRows(adjustmentColumns),
			wantNil: true,
		},
		{
			name:     "query failure",
			queryErr: errors.New("connection reset"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { db.Close() })

			exp := mock.ExpectQuery(`FROM stock_adjustment WHERE id = \?`).WithArgs(9)
			if tt.queryErr != nil {
				exp.WillReturnError(tt.queryErr)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			got, err := adjustmentrepo.NewAdjustmentRepository(sqlx.NewDb(db, "mysql")).GetByID(context.Background(), 9)
			assert.NoError(t, mock.ExpectationsWereMet())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			assert.Equal(t, uint64(9), got.ID)
			assert.Equal(t, constant.AdjustmentSetOnHand, got.Mode)
			assert.Equal(t, int64(-6), got.QtyChange)
			assert.True(t, got.UnitCost.Valid)
			assert.True(t, got.UnitCost.Decimal.Equal(decimal.RequireFromString("12.5")))
			assert.Equal(t, at, got.PerformedAt)
		})
	}
}
