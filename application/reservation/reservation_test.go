package reservation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/application/notifier"
	appreservation "github.com/muhammadheryan/inventory-service/application/reservation"
	"github.com/muhammadheryan/inventory-service/cmd/config"
	"github.com/muhammadheryan/inventory-service/constant"
	movementmocks "github.com/muhammadheryan/inventory-service/mocks/repository/movement"
	redismocks "github.com/muhammadheryan/inventory-service/mocks/repository/redis"
	stockmocks "github.com/muhammadheryan/inventory-service/mocks/repository/stock"
	txmocks "github.com/muhammadheryan/inventory-service/mocks/repository/tx"
	warehousemocks "github.com/muhammadheryan/inventory-service/mocks/repository/warehouse"
	rabbitmocks "github.com/muhammadheryan/inventory-service/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo        *txmocks.TxRepository
	stockRepo     *stockmocks.StockRepository
	movementRepo  *movementmocks.MovementRepository
	warehouseRepo *warehousemocks.WarehouseRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		stockRepo:     stockmocks.NewStockRepository(t),
		movementRepo:  movementmocks.NewMovementRepository(t),
		warehouseRepo: warehousemocks.NewWarehouseRepository(t),
	}
}

func assertErrorCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestReservationApp_Reserve(t *testing.T) {
	warehouse := &model.Warehouse{ID: 2, Status: constant.WarehouseStatusActive}

	tests := []struct {
		name     string
		req      *model.ReserveStockRequest
		mockCall func(f fields)
		want     *model.StockBalance
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 3, ReferenceType: "order", ReferenceID: 55},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.warehouseRepo.On("GetWarehouseByIDShareTx", mock.Anything, tx, uint64(2)).Return(warehouse, nil).Once()
				f.stockRepo.On("GetOrCreateForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 4}, nil).Once()
				f.stockRepo.On("ApplyDeltaTx", mock.Anything, tx, uint64(1), uint64(2), int64(0), int64(3)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 7}, nil).Once()
				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.Movement) bool {
					return m.MovementType == constant.MovementReservation && m.QtyChange == 0 &&
						m.Reference != nil && m.Reference.Kind == constant.ReferenceOrder && m.Reference.ID == 55
				})).Return(uint64(1), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.StockBalance{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 7, Available: 3},
		},
		{
			name: "success: reserving exactly the available quantity",
			req:  &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 6},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.warehouseRepo.On("GetWarehouseByIDShareTx", mock.Anything, tx, uint64(2)).Return(warehouse, nil).Once()
				f.stockRepo.On("GetOrCreateForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 4}, nil).Once()
				f.stockRepo.On("ApplyDeltaTx", mock.Anything, tx, uint64(1), uint64(2), int64(0), int64(6)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 10}, nil).Once()
				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.Movement) bool {
					return m.Reference == nil
				})).Return(uint64(2), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.StockBalance{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 10, Available: 0},
		},
		{
			name: "error: insufficient stock leaves counters untouched",
			req:  &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 7},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.warehouseRepo.On("GetWarehouseByIDShareTx", mock.Anything, tx, uint64(2)).Return(warehouse, nil).Once()
				f.stockRepo.On("GetOrCreateForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 4}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: warehouse inactive",
			req:  &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.warehouseRepo.On("GetWarehouseByIDShareTx", mock.Anything, tx, uint64(2)).
					Return(&model.Warehouse{ID: 2, Status: constant.WarehouseStatusInactive}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrWarehouseInactive,
		},
		{
			name: "error: warehouse not found",
			req:  &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.warehouseRepo.On("GetWarehouseByIDShareTx", mock.Anything, tx, uint64(2)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: zero quantity",
			req:     &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 0},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "error: reference type without id",
			req:     &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 1, ReferenceType: "order"},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "error: reference id beyond signed range",
			req:     &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 1, ReferenceType: "order", ReferenceID: 1<<63 + 5},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "error: nil request",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: begin tx fails",
			req:  &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 1},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("pool exhausted")).Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Maybe()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appreservation.NewReservationApp(&config.Config{}, f.txRepo, f.stockRepo, f.movementRepo, f.warehouseRepo, nil)

			got, err := app.Reserve(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reserve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservationApp_Release(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.ReleaseStockRequest
		mockCall func(f fields)
		want     *model.StockBalance
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.ReleaseStockRequest{VariantID: 1, WarehouseID: 2, Qty: 2, ReferenceType: "order", ReferenceID: 55},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 5}, nil).Once()
				f.stockRepo.On("ApplyDeltaTx", mock.Anything, tx, uint64(1), uint64(2), int64(0), int64(-2)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 3}, nil).Once()
				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.Movement) bool {
					return m.MovementType == constant.MovementRelease && m.QtyChange == 0
				})).Return(uint64(3), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.StockBalance{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 3, Available: 7},
		},
		{
			name: "error: stock level does not exist",
			req:  &model.ReleaseStockRequest{VariantID: 1, WarehouseID: 2, Qty: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: releasing more than reserved",
			req:  &model.ReleaseStockRequest{VariantID: 1, WarehouseID: 2, Qty: 6},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 10, Reserved: 5}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientReserved,
		},
		{
			name:    "error: negative quantity",
			req:     &model.ReleaseStockRequest{VariantID: 1, WarehouseID: 2, Qty: -1},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "error: reference id beyond signed range",
			req:     &model.ReleaseStockRequest{VariantID: 1, WarehouseID: 2, Qty: 1, ReferenceType: "order", ReferenceID: 1 << 63},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appreservation.NewReservationApp(&config.Config{}, f.txRepo, f.stockRepo, f.movementRepo, f.warehouseRepo, nil)

			got, err := app.Release(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Release() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservationApp_Reserve_SchedulesOrderExpiration(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.ReserveStockRequest
		wantTTL time.Duration
	}{
		{
			name:    "request expiry wins",
			req:     &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 1, ReferenceType: "order", ReferenceID: 9, ExpiresInSeconds: 60},
			wantTTL: time.Minute,
		},
		{
			name:    "configured default",
			req:     &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 1, ReferenceType: "order", ReferenceID: 9},
			wantTTL: 15 * time.Minute,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			redisRepo := redismocks.NewRedisRepository(t)
			publisher := rabbitmocks.NewEventPublisher(t)

			tx := &sqlx.Tx{}
			f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
			f.warehouseRepo.On("GetWarehouseByIDShareTx", mock.Anything, tx, uint64(2)).
				Return(&model.Warehouse{ID: 2, Status: constant.WarehouseStatusActive}, nil).Once()
			f.stockRepo.On("GetOrCreateForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
				Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 5}, nil).Once()
			f.stockRepo.On("ApplyDeltaTx", mock.Anything, tx, uint64(1), uint64(2), int64(0), int64(1)).
				Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 5, Reserved: 1}, nil).Once()
			f.movementRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(1), nil).Once()
			f.txRepo.On("CommitTx", tx).Return(nil).Once()

			redisRepo.On("InvalidateStock", mock.Anything, model.StockKey{VariantID: 1, WarehouseID: 2}).Return(nil).Once()
			publisher.On("PublishStockEvent", mock.Anything, mock.MatchedBy(func(e rabbitmq.StockEvent) bool {
				return e.Type == constant.EventStockReserved && e.Reserved == 1
			})).Return(nil).Once()

			before := time.Now()
			publisher.On("PublishReservationExpiration", mock.Anything, mock.MatchedBy(func(m rabbitmq.ReservationExpirationMessage) bool {
				ttl := m.ExpiresAt.Sub(before)
				return m.OrderID == 9 && m.Qty == 1 && ttl >= tt.wantTTL && ttl < tt.wantTTL+time.Minute
			})).Return(nil).Once()

			cfg := &config.Config{Inventory: config.InventoryConfig{DefaultReservationTTL: 15 * time.Minute}}
			app := appreservation.NewReservationApp(cfg, f.txRepo, f.stockRepo, f.movementRepo, f.warehouseRepo, notifier.New(redisRepo, publisher))

			_, err := app.Reserve(context.Background(), tt.req)
			assert.NoError(t, err)
		})
	}
}
