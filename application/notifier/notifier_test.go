package notifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/inventory-service/application/notifier"
	"github.com/muhammadheryan/inventory-service/constant"
	redismocks "github.com/muhammadheryan/inventory-service/mocks/repository/redis"
	rabbitmocks "github.com/muhammadheryan/inventory-service/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/thirdparty/rabbitmq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifier_NilIsNoop(t *testing.T) {
	var n *notifier.Notifier
	level := &model.StockLevel{VariantID: 1, WarehouseID: 2, ReorderPoint: 10}

	assert.NotPanics(t, func() {
		n.InvalidateStock(context.Background(), model.StockKey{VariantID: 1, WarehouseID: 2})
		n.PublishStock(context.Background(), constant.EventStockAdjusted, level, nil, "system")
		n.CheckReorderPoint(context.Background(), level, nil, "system")
		n.PublishTransfer(context.Background(), constant.EventTransferCreated, &model.Transfer{ID: 1}, "system")
		n.ScheduleReservationExpiration(context.Background(), &model.ReserveStockRequest{}, 1, time.Minute)
	})

	empty := notifier.New(nil, nil)
	assert.NotPanics(t, func() {
		empty.InvalidateStock(context.Background(), model.StockKey{VariantID: 1, WarehouseID: 2})
		empty.PublishStock(context.Background(), constant.EventStockAdjusted, level, nil, "system")
	})
}

func TestNotifier_PublishStock(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		level     *model.StockLevel
		wantTypes []string
	}{
		{
			name:      "above reorder point",
			eventType: constant.EventStockReserved,
			level:     &model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 20, Reserved: 2, ReorderPoint: 5},
			wantTypes: []string{constant.EventStockReserved},
		},
		{
			name:      "reserve drops availability to the reorder point",
			eventType: constant.EventStockReserved,
			level:     &model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 20, Reserved: 15, ReorderPoint: 5},
			wantTypes: []string{constant.EventStockReserved, constant.EventStockBelowReorderPoint},
		},
		{
			name:      "release never signals a reorder",
			eventType: constant.EventStockReleased,
			level:     &model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 3, ReorderPoint: 5},
			wantTypes: []string{constant.EventStockReleased},
		},
		{
			name:      "no reorder point configured",
			eventType: constant.EventStockAdjusted,
			level:     &model.StockLevel{VariantID: 1, WarehouseID: 2, OnHand: 0},
			wantTypes: []string{constant.EventStockAdjusted},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			publisher := rabbitmocks.NewEventPublisher(t)
			var got []string
			publisher.On("PublishStockEvent", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					got = append(got, args.Get(1).(rabbitmq.StockEvent).Type)
				}).Return(nil)

			notifier.New(nil, publisher).PublishStock(context.Background(), tt.eventType, tt.level, nil, "42")
			assert.Equal(t, tt.wantTypes, got)
		})
	}
}

func TestNotifier_SurvivesCanceledRequest(t *testing.T) {
	redisRepo := redismocks.NewRedisRepository(t)
	redisRepo.On("InvalidateStock", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), model.StockKey{VariantID: 1, WarehouseID: 2}, model.StockKey{VariantID: 3, WarehouseID: 2}).
		Return(errors.New("redis down")).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	notifier.New(redisRepo, nil).InvalidateStock(ctx,
		model.StockKey{VariantID: 1, WarehouseID: 2}, model.StockKey{VariantID: 3, WarehouseID: 2})
}

func TestNotifier_ScheduleReservationExpiration(t *testing.T) {
	req := &model.ReserveStockRequest{VariantID: 1, WarehouseID: 2, Qty: 4}

	tests := []struct {
		name     string
		orderID  uint64
		ttl      time.Duration
		wantCall bool
	}{
		{name: "scheduled", orderID: 9, ttl: time.Minute, wantCall: true},
		{name: "no ttl", orderID: 9, ttl: 0},
		{name: "no order", orderID: 0, ttl: time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			publisher := rabbitmocks.NewEventPublisher(t)
			if tt.wantCall {
				publisher.On("PublishReservationExpiration", mock.Anything, mock.MatchedBy(func(m rabbitmq.ReservationExpirationMessage) bool {
					return m.OrderID == tt.orderID && m.VariantID == 1 && m.WarehouseID == 2 && m.Qty == 4
				})).Return(nil).Once()
			}
			notifier.New(nil, publisher).ScheduleReservationExpiration(context.Background(), req, tt.orderID, tt.ttl)
		})
	}
}
