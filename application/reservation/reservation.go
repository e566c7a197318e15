package reservation

import (
	"context"
	"time"

	"github.com/muhammadheryan/inventory-service/application/notifier"
	"github.com/muhammadheryan/inventory-service/cmd/config"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	movementrepo "github.com/muhammadheryan/inventory-service/repository/movement"
	stockrepo "github.com/muhammadheryan/inventory-service/repository/stock"
	txrepo "github.com/muhammadheryan/inventory-service/repository/tx"
	warehouserepo "github.com/muhammadheryan/inventory-service/repository/warehouse"
	ctxutil "github.com/muhammadheryan/inventory-service/utils/context"
	"github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-service/utils/validator"
	"go.uber.org/zap"
)

// ReservationApp holds and frees stock against outstanding demand. Neither operation
// touches on_hand.
type ReservationApp interface {
	Reserve(ctx context.Context, req *model.ReserveStockRequest) (*model.StockBalance, error)
	Release(ctx context.Context, req *model.ReleaseStockRequest) (*model.StockBalance, error)
}

type reservationAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	stockRepo     stockrepo.StockRepository
	movementRepo  movementrepo.MovementRepository
	warehouseRepo warehouserepo.WarehouseRepository
	notifier      *notifier.Notifier
}

func NewReservationApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	stockRepo stockrepo.StockRepository,
	movementRepo movementrepo.MovementRepository,
	warehouseRepo warehouserepo.WarehouseRepository,
	notifier *notifier.Notifier,
) ReservationApp {
	return &reservationAppImpl{
		config:        config,
		txRepo:        txRepo,
		stockRepo:     stockRepo,
		movementRepo:  movementRepo,
		warehouseRepo: warehouseRepo,
		notifier:      notifier,
	}
}

func (s *reservationAppImpl) Reserve(ctx context.Context, req *model.ReserveStockRequest) (*model.StockBalance, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	ref, ok := req.Reference()
	if !ok {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	if req.Actor == "" {
		req.Actor = ctxutil.ActorOrSystem(ctx)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reserve] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	warehouse, err := s.warehouseRepo.GetWarehouseByIDShareTx(ctx, tx, req.WarehouseID)
	if err != nil {
		logger.Error("[Reserve] get warehouse failed", zap.Uint64("warehouse_id", req.WarehouseID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !warehouse.Active() {
		return nil, errors.SetCustomError(constant.ErrWarehouseInactive)
	}

	level, err := s.stockRepo.GetOrCreateForUpdateTx(ctx, tx, req.VariantID, req.WarehouseID)
	if err != nil {
		logger.Error("[Reserve] lock stock level failed", append(logger.StockKey(req.VariantID, req.WarehouseID), zap.String("error", err.Error()))...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if level.Available() < req.Qty {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	updated, err := s.stockRepo.ApplyDeltaTx(ctx, tx, req.VariantID, req.WarehouseID, 0, req.Qty)
	if err != nil {
		logger.Error("[Reserve] apply delta failed", append(logger.StockKey(req.VariantID, req.WarehouseID), zap.String("error", err.Error()))...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.movementRepo.InsertTx(ctx, tx, holdMovement(constant.MovementReservation, req.VariantID, req.WarehouseID, ref, req.Note, req.Actor)); err != nil {
		logger.Error("[Reserve] insert movement failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Reserve] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notifier.InvalidateStock(ctx, model.StockKey{VariantID: req.VariantID, WarehouseID: req.WarehouseID})
	s.notifier.PublishStock(ctx, constant.EventStockReserved, updated, referencePtr(ref), req.Actor)
	if ref.Kind == constant.ReferenceOrder {
		s.notifier.ScheduleReservationExpiration(ctx, req, ref.ID, s.reservationTTL(req))
	}

	return updated.Balance(), nil
}

func (s *reservationAppImpl) Release(ctx context.Context, req *model.ReleaseStockRequest) (*model.StockBalance, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	ref, ok := req.Reference()
	if !ok {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	if req.Actor == "" {
		req.Actor = ctxutil.ActorOrSystem(ctx)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Release] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	level, err := s.stockRepo.GetForUpdateTx(ctx, tx, req.VariantID, req.WarehouseID)
	if err != nil {
		logger.Error("[Release] lock stock level failed", append(logger.StockKey(req.VariantID, req.WarehouseID), zap.String("error", err.Error()))...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if level == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if level.Reserved < req.Qty {
		return nil, errors.SetCustomError(constant.ErrInsufficientReserved)
	}

	updated, err := s.stockRepo.ApplyDeltaTx(ctx, tx, req.VariantID, req.WarehouseID, 0, -req.Qty)
	if err != nil {
		logger.Error("[Release] apply delta failed", append(logger.StockKey(req.VariantID, req.WarehouseID), zap.String("error", err.Error()))...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.movementRepo.InsertTx(ctx, tx, holdMovement(constant.MovementRelease, req.VariantID, req.WarehouseID, ref, req.Note, req.Actor)); err != nil {
		logger.Error("[Release] insert movement failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Release] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notifier.InvalidateStock(ctx, model.StockKey{VariantID: req.VariantID, WarehouseID: req.WarehouseID})
	s.notifier.PublishStock(ctx, constant.EventStockReleased, updated, referencePtr(ref), req.Actor)

	return updated.Balance(), nil
}

// reservationTTL prefers the per-request expiry over the configured default.
func (s *reservationAppImpl) reservationTTL(req *model.ReserveStockRequest) time.Duration {
	if req.ExpiresInSeconds > 0 {
		return time.Duration(req.ExpiresInSeconds) * time.Second
	}
	if s.config == nil {
		return 0
	}
	return s.config.Inventory.DefaultReservationTTL
}

// holdMovement builds the zero-quantity audit entry written by reserve and release.
func holdMovement(movementType constant.MovementType, variantID, warehouseID uint64, ref model.Reference, note, actor string) *model.Movement {
	return &model.Movement{
		VariantID:    variantID,
		WarehouseID:  warehouseID,
		QtyChange:    0,
		MovementType: movementType,
		Reference:    referencePtr(ref),
		Note:         note,
		PerformedBy:  actor,
		PerformedAt:  time.Now().UTC(),
	}
}

func referencePtr(ref model.Reference) *model.Reference {
	if ref.IsZero() {
		return nil
	}
	return &ref
}
