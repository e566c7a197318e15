package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appstock "github.com/muhammadheryan/inventory-service/application/stock"
	"github.com/muhammadheryan/inventory-service/cmd/config"
	"github.com/muhammadheryan/inventory-service/constant"
	movementmocks "github.com/muhammadheryan/inventory-service/mocks/repository/movement"
	redismocks "github.com/muhammadheryan/inventory-service/mocks/repository/redis"
	stockmocks "github.com/muhammadheryan/inventory-service/mocks/repository/stock"
	"github.com/muhammadheryan/inventory-service/model"
	cerr "github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	stockRepo    *stockmocks.StockRepository
	movementRepo *movementmocks.MovementRepository
	redisRepo    *redismocks.RedisRepository
}

func newFields(t *testing.T) fields {
	return fields{
		stockRepo:    stockmocks.NewStockRepository(t),
		movementRepo: movementmocks.NewMovementRepository(t),
		redisRepo:    redismocks.NewRedisRepository(t),
	}
}

func (f fields) app() appstock.StockApp {
	cfg := &config.Config{Inventory: config.InventoryConfig{StockCacheTTL: 30 * time.Second}}
	return appstock.NewStockApp(cfg, f.stockRepo, f.movementRepo, f.redisRepo)
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

func TestStockApp_GetStock(t *testing.T) {
	balance := &model.StockBalance{VariantID: 1, WarehouseID: 2, OnHand: 8, Reserved: 3, Available: 5}

	tests := []struct {
		name        string
		variantID   uint64
		warehouseID uint64
		mockCall    func(f fields)
		want        *model.StockBalance
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name:        "cache hit skips the database",
			variantID:   1,
			warehouseID: 2,
			mockCall: func(f fields) {
				f.redisRepo.On("GetStockBalance", mock.Anything, uint64(1), uint64(2)).Return(balance, nil).Once()
			},
			want: balance,
		},
		{
			name:        "cache miss loads and fills the cache",
			variantID:   1,
			warehouseID: 2,
			mockCall: func(f fields) {
				f.redisRepo.On("GetStockBalance", mock.Anything, uint64(1), uint64(2)).Return(nil, nil).Once()
				f.stockRepo.On("Get", mock.Anything, uint64(1), uint64(2)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 8, Reserved: 3}, nil).Once()
				f.redisRepo.On("SetStockBalance", mock.Anything, balance, 30*time.Second).Return(nil).Once()
			},
			want: balance,
		},
		{
			name:        "cache failures fall through to the database",
			variantID:   1,
			warehouseID: 2,
			mockCall: func(f fields) {
				f.redisRepo.On("GetStockBalance", mock.Anything, uint64(1), uint64(2)).Return(nil, errors.New("redis down")).Once()
				f.stockRepo.On("Get", mock.Anything, uint64(1), uint64(2)).
					Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 8, Reserved: 3}, nil).Once()
				f.redisRepo.On("SetStockBalance", mock.Anything, balance, 30*time.Second).Return(errors.New("redis down")).Once()
			},
			want: balance,
		},
		{
			name:        "unknown pair",
			variantID:   1,
			warehouseID: 2,
			mockCall: func(f fields) {
				f.redisRepo.On("GetStockBalance", mock.Anything, uint64(1), uint64(2)).Return(nil, nil).Once()
				f.stockRepo.On("Get", mock.Anything, uint64(1), uint64(2)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:        "zero warehouse id",
			variantID:   1,
			warehouseID: 0,
			wantErr:     true,
			errCode:     constant.ErrValidation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().GetStock(context.Background(), tt.variantID, tt.warehouseID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetStock() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStockApp_ListStockByVariant(t *testing.T) {
	f := newFields(t)
	f.stockRepo.On("ListByVariant", mock.Anything, uint64(1)).Return([]model.StockLevel{
		{VariantID: 1, WarehouseID: 1, OnHand: 10, Reserved: 2},
		{VariantID: 1, WarehouseID: 2, OnHand: -1},
	}, nil).Once()

	got, err := f.app().ListStockByVariant(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, int64(9), got.OnHand)
	assert.Equal(t, int64(2), got.Reserved)
	assert.Equal(t, int64(7), got.Available)
	assert.Equal(t, int64(-1), got.Items[1].Available)

	_, err = f.app().ListStockByVariant(context.Background(), 0)
	assertErrorCode(t, err, constant.ErrValidation)
}

func TestStockApp_ListMovements(t *testing.T) {
	tests := []struct {
		name     string
		filter   *model.MovementFilter
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success",
			filter: &model.MovementFilter{VariantID: 1, ReferenceType: "transfer", ReferenceID: 4, PerPage: 500},
			mockCall: func(f fields) {
				f.movementRepo.On("List", mock.Anything, mock.MatchedBy(func(fl *model.MovementFilter) bool {
					return fl.Page == 1 && fl.PerPage == model.MaxPerPage
				})).Return([]model.Movement{{ID: 1, QtyChange: 3}}, int64(1), nil).Once()
			},
		},
		{
			name:   "reference only lookup",
			filter: &model.MovementFilter{ReferenceType: "transfer", ReferenceID: 17},
			mockCall: func(f fields) {
				f.movementRepo.On("List", mock.Anything, mock.MatchedBy(func(fl *model.MovementFilter) bool {
					return fl.VariantID == 0 && fl.ReferenceType == "transfer" && fl.ReferenceID == 17
				})).Return([]model.Movement{{ID: 2, QtyChange: -4}}, int64(1), nil).Once()
			},
		},
		{
			name:    "variant or reference is required",
			filter:  &model.MovementFilter{WarehouseID: 2},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "reference kind without id is not enough",
			filter:  &model.MovementFilter{ReferenceType: "transfer"},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "reference id without kind",
			filter:  &model.MovementFilter{ReferenceID: 17},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "reference id beyond signed range",
			filter:  &model.MovementFilter{ReferenceType: "order", ReferenceID: 1 << 63},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "unknown reference type",
			filter:  &model.MovementFilter{VariantID: 1, ReferenceType: "invoice"},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "nil filter",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().ListMovements(context.Background(), tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListMovements() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, int64(1), got.TotalCount)
			assert.Equal(t, model.MaxPerPage, got.PerPage)
		})
	}
}

func TestStockApp_VerifyLedger(t *testing.T) {
	tests := []struct {
		name           string
		onHand         int64
		sum            int64
		wantDrift      int64
		wantConsistent bool
	}{
		{name: "consistent", onHand: 12, sum: 12, wantConsistent: true},
		{name: "drifted", onHand: 12, sum: 9, wantDrift: 3},
		{name: "negative on hand still reconciles", onHand: -4, sum: -4, wantConsistent: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.stockRepo.On("Get", mock.Anything, uint64(1), uint64(2)).
				Return(&model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: tt.onHand}, nil).Once()
			f.movementRepo.On("SumQtyChange", mock.Anything, uint64(1), uint64(2)).Return(tt.sum, nil).Once()

			got, err := f.app().VerifyLedger(context.Background(), 1, 2)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDrift, got.Drift)
			assert.Equal(t, tt.wantConsistent, got.Consistent)
			assert.Equal(t, tt.sum, got.MovementSum)
		})
	}
}

func TestStockApp_VerifyLedger_NotFound(t *testing.T) {
	f := newFields(t)
	f.stockRepo.On("Get", mock.Anything, uint64(1), uint64(2)).Return(nil, nil).Once()

	_, err := f.app().VerifyLedger(context.Background(), 1, 2)
	assertErrorCode(t, err, constant.ErrNotFound)
}
