package adjustment

import (
	"context"
	"time"

	"github.com/muhammadheryan/inventory-service/application/notifier"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	adjustmentrepo "github.com/muhammadheryan/inventory-service/repository/adjustment"
	movementrepo "github.com/muhammadheryan/inventory-service/repository/movement"
	stockrepo "github.com/muhammadheryan/inventory-service/repository/stock"
	txrepo "github.com/muhammadheryan/inventory-service/repository/tx"
	warehouserepo "github.com/muhammadheryan/inventory-service/repository/warehouse"
	ctxutil "github.com/muhammadheryan/inventory-service/utils/context"
	"github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-service/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AdjustmentApp interface {
	Adjust(ctx context.Context, req *model.AdjustStockRequest) (*model.Adjustment, error)
	GetAdjustment(ctx context.Context, id uint64) (*model.Adjustment, error)
}

type adjustmentAppImpl struct {
	txRepo         txrepo.TxRepository
	stockRepo      stockrepo.StockRepository
	movementRepo   movementrepo.MovementRepository
	adjustmentRepo adjustmentrepo.AdjustmentRepository
	warehouseRepo  warehouserepo.WarehouseRepository
	notifier       *notifier.Notifier
}

func NewAdjustmentApp(
	txRepo txrepo.TxRepository,
	stockRepo stockrepo.StockRepository,
	movementRepo movementrepo.MovementRepository,
	adjustmentRepo adjustmentrepo.AdjustmentRepository,
	warehouseRepo warehouserepo.WarehouseRepository,
	notifier *notifier.Notifier,
) AdjustmentApp {
	return &adjustmentAppImpl{
		txRepo:         txRepo,
		stockRepo:      stockRepo,
		movementRepo:   movementRepo,
		adjustmentRepo: adjustmentRepo,
		warehouseRepo:  warehouseRepo,
		notifier:       notifier,
	}
}

// Adjust is the authoritative correction path. It does not bound qty_after, so on_hand
// may go negative.
func (s *adjustmentAppImpl) Adjust(ctx context.Context, req *model.AdjustStockRequest) (*model.Adjustment, error) {
	if err := validateAdjustRequest(req); err != nil {
		return nil, err
	}
	mode := constant.AdjustmentMode(req.Mode)
	if req.Actor == "" {
		req.Actor = ctxutil.ActorOrSystem(ctx)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Adjust] begin tx failed", zap.String("error", err.Error()))
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
		logger.Error("[Adjust] get warehouse failed", zap.Uint64("warehouse_id", req.WarehouseID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	level, err := s.stockRepo.GetOrCreateForUpdateTx(ctx, tx, req.VariantID, req.WarehouseID)
	if err != nil {
		logger.Error("[Adjust] lock stock level failed", append(logger.StockKey(req.VariantID, req.WarehouseID), zap.String("error", err.Error()))...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	adj := &model.Adjustment{
		VariantID:   req.VariantID,
		WarehouseID: req.WarehouseID,
		Mode:        mode,
		QtyBefore:   level.OnHand,
		ReasonCode:  req.ReasonCode,
		Note:        req.Note,
		PerformedBy: req.Actor,
		PerformedAt: time.Now().UTC(),
	}
	if req.UnitCost != nil {
		adj.UnitCost = decimal.NullDecimal{Decimal: *req.UnitCost, Valid: true}
	}
	switch mode {
	case constant.AdjustmentSetOnHand:
		adj.QtyAfter = req.Qty
		adj.QtyChange = adj.QtyAfter - adj.QtyBefore
	case constant.AdjustmentDeltaOnHand:
		adj.QtyChange = req.Qty
		adj.QtyAfter = adj.QtyBefore + adj.QtyChange
	}

	updated, err := s.stockRepo.ApplyDeltaTx(ctx, tx, req.VariantID, req.WarehouseID, adj.QtyChange, 0)
	if err != nil {
		logger.Error("[Adjust] apply delta failed", append(logger.StockKey(req.VariantID, req.WarehouseID), zap.String("error", err.Error()))...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	adjustmentID, err := s.adjustmentRepo.InsertTx(ctx, tx, adj)
	if err != nil {
		logger.Error("[Adjust] insert adjustment failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	adj.ID = adjustmentID

	ref := model.NewReference(constant.ReferenceAdjustment, adjustmentID)
	movement := &model.Movement{
		VariantID:    req.VariantID,
		WarehouseID:  req.WarehouseID,
		QtyChange:    adj.QtyChange,
		MovementType: constant.MovementAdjustment,
		Reference:    &ref,
		UnitCost:     adj.UnitCost,
		ReasonCode:   req.ReasonCode,
		Note:         req.Note,
		PerformedBy:  req.Actor,
		PerformedAt:  adj.PerformedAt,
	}
	if _, err := s.movementRepo.InsertTx(ctx, tx, movement); err != nil {
		logger.Error("[Adjust] insert movement failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Adjust] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notifier.InvalidateStock(ctx, model.StockKey{VariantID: req.VariantID, WarehouseID: req.WarehouseID})
	s.notifier.PublishStock(ctx, constant.EventStockAdjusted, updated, &ref, req.Actor)

	return adj, nil
}

func (s *adjustmentAppImpl) GetAdjustment(ctx context.Context, id uint64) (*model.Adjustment, error) {
	if id == 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	adj, err := s.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetAdjustment] get adjustment failed", zap.Uint64("adjustment_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if adj == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return adj, nil
}

func validateAdjustRequest(req *model.AdjustStockRequest) error {
	if req == nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrValidation)
	}
	if constant.AdjustmentMode(req.Mode) == constant.AdjustmentDeltaOnHand && req.Qty == 0 {
		return errors.SetCustomError(constant.ErrValidation)
	}
	if req.UnitCost != nil && req.UnitCost.IsNegative() {
		return errors.SetCustomError(constant.ErrValidation)
	}
	return nil
}
