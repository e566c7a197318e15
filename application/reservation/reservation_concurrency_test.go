package reservation_test

import (
	"context"
	"sync"
	"testing"

	appreservation "github.com/muhammadheryan/inventory-service/application/reservation"
	"github.com/muhammadheryan/inventory-service/cmd/config"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/mocks/inmemory"
	warehousemocks "github.com/muhammadheryan/inventory-service/mocks/repository/warehouse"
	"github.com/muhammadheryan/inventory-service/model"
	cerr "github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReservationApp_Reserve_Concurrent(t *testing.T) {
	tests := []struct {
		name        string
		onHand      int64
		workers     int
		qty         int64
		wantSuccess int
	}{
		{name: "two reserves racing for the last units", onHand: 5, workers: 2, qty: 3, wantSuccess: 1},
		{name: "many single-unit reserves never oversell", onHand: 5, workers: 20, qty: 1, wantSuccess: 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ledger := inmemory.NewLedger(model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: tt.onHand})
			warehouseRepo := warehousemocks.NewWarehouseRepository(t)
			warehouseRepo.On("GetWarehouseByIDShareTx", mock.Anything, mock.Anything, uint64(2)).
				Return(&model.Warehouse{ID: 2, Status: constant.WarehouseStatusActive}, nil)

			app := appreservation.NewReservationApp(&config.Config{}, ledger, ledger, ledger, warehouseRepo, nil)

			var (
				wg           sync.WaitGroup
				mu           sync.Mutex
				success      int
				insufficient int
			)
			for i := 0; i < tt.workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := app.Reserve(context.Background(), &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: tt.qty})
					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						success++
					case cerr.Is(err, constant.ErrInsufficientStock):
						insufficient++
					default:
						t.Errorf("unexpected error: %v", err)
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, tt.wantSuccess, success)
			assert.Equal(t, tt.workers-tt.wantSuccess, insufficient)

			level := ledger.Level(1, 2)
			assert.Equal(t, tt.onHand, level.OnHand)
			assert.Equal(t, int64(tt.wantSuccess)*tt.qty, level.Reserved)
			assert.GreaterOrEqual(t, level.Available(), int64(0))

			holds := ledger.Movements(1, 2)
			assert.Len(t, holds, tt.wantSuccess)
			for _, m := range holds {
				assert.Equal(t, constant.MovementReservation, m.MovementType)
				assert.Zero(t, m.QtyChange)
			}
		})
	}
}
