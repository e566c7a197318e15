package notifier

import (
	"context"
	"time"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	redisrepo "github.com/muhammadheryan/inventory-service/repository/redis"
	"github.com/muhammadheryan/inventory-service/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	"go.uber.org/zap"
)

const publishTimeout = 3 * time.Second

// Notifier runs the side effects that follow a committed inventory transaction.
// Failures are logged and never surface to the caller; the ledger is already final.
// A nil *Notifier, a nil redis repository or a nil publisher all turn the matching
// side effect into a no-op.
type Notifier struct {
	redisRepo redisrepo.RedisRepository
	publisher rabbitmq.EventPublisher
}

func New(redisRepo redisrepo.RedisRepository, publisher rabbitmq.EventPublisher) *Notifier {
	return &Notifier{redisRepo: redisRepo, publisher: publisher}
}

func (n *Notifier) InvalidateStock(ctx context.Context, keys ...model.StockKey) {
	if n == nil || n.redisRepo == nil || len(keys) == 0 {
		return
	}
	ctx, cancel := detached(ctx)
	defer cancel()
	if err := n.redisRepo.InvalidateStock(ctx, keys...); err != nil {
		logger.Warn("[Notifier] invalidate stock cache failed", zap.Int("keys", len(keys)), zap.String("error", err.Error()))
	}
}

// PublishStock emits eventType for level and, when availability dropped to the reorder
// point, a stock.below_reorder_point event as well.
func (n *Notifier) PublishStock(ctx context.Context, eventType string, level *model.StockLevel, ref *model.Reference, actor string) {
	if n == nil || n.publisher == nil || level == nil {
		return
	}
	ctx, cancel := detached(ctx)
	defer cancel()

	n.publishStock(ctx, eventType, level, ref, actor)
	if eventType != constant.EventStockReleased {
		n.checkReorderPoint(ctx, level, ref, actor)
	}
}

// CheckReorderPoint is for callers that move stock without a dedicated stock event.
func (n *Notifier) CheckReorderPoint(ctx context.Context, level *model.StockLevel, ref *model.Reference, actor string) {
	if n == nil || n.publisher == nil || level == nil {
		return
	}
	ctx, cancel := detached(ctx)
	defer cancel()
	n.checkReorderPoint(ctx, level, ref, actor)
}

func (n *Notifier) checkReorderPoint(ctx context.Context, level *model.StockLevel, ref *model.Reference, actor string) {
	if !level.BelowReorderPoint() {
		return
	}
	n.publishStock(ctx, constant.EventStockBelowReorderPoint, level, ref, actor)
}

func (n *Notifier) publishStock(ctx context.Context, eventType string, level *model.StockLevel, ref *model.Reference, actor string) {
	event := rabbitmq.StockEvent{
		Type:         eventType,
		VariantID:    level.VariantID,
		WarehouseID:  level.WarehouseID,
		OnHand:       level.OnHand,
		Reserved:     level.Reserved,
		Available:    level.Available(),
		ReorderPoint: level.ReorderPoint,
		Reference:    ref,
		Actor:        actor,
	}
	if err := n.publisher.PublishStockEvent(ctx, event); err != nil {
		logger.Warn("[Notifier] publish stock event failed",
			append(logger.StockKey(level.VariantID, level.WarehouseID),
				zap.String("event", eventType), zap.String("error", err.Error()))...)
	}
}

func (n *Notifier) PublishTransfer(ctx context.Context, eventType string, t *model.Transfer, actor string) {
	if n == nil || n.publisher == nil || t == nil {
		return
	}
	ctx, cancel := detached(ctx)
	defer cancel()

	event := rabbitmq.TransferEvent{
		Type:            eventType,
		TransferID:      t.ID,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Status:          string(t.Status),
		Items:           t.Items,
		Actor:           actor,
	}
	if err := n.publisher.PublishTransferEvent(ctx, event); err != nil {
		logger.Warn("[Notifier] publish transfer event failed",
			zap.Uint64("transfer_id", t.ID), zap.String("event", eventType), zap.String("error", err.Error()))
	}
}

// ScheduleReservationExpiration asks the broker to hand the reservation back once ttl elapses.
func (n *Notifier) ScheduleReservationExpiration(ctx context.Context, req *model.ReserveStockRequest, orderID uint64, ttl time.Duration) {
	if n == nil || n.publisher == nil || ttl <= 0 || orderID == 0 {
		return
	}
	ctx, cancel := detached(ctx)
	defer cancel()

	msg := rabbitmq.ReservationExpirationMessage{
		OrderID:     orderID,
		VariantID:   req.VariantID,
		WarehouseID: req.WarehouseID,
		Qty:         req.Qty,
		ExpiresAt:   time.Now().Add(ttl),
	}
	if err := n.publisher.PublishReservationExpiration(ctx, msg); err != nil {
		logger.Error("[Notifier] schedule reservation expiration failed",
			zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
	}
}

// detached keeps side effects alive when the request context is canceled right after commit.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
}
