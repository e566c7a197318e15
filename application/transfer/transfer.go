package transfer

import (
	"context"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/application/notifier"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	movementrepo "github.com/muhammadheryan/inventory-service/repository/movement"
	stockrepo "github.com/muhammadheryan/inventory-service/repository/stock"
	transferrepo "github.com/muhammadheryan/inventory-service/repository/transfer"
	txrepo "github.com/muhammadheryan/inventory-service/repository/tx"
	warehouserepo "github.com/muhammadheryan/inventory-service/repository/warehouse"
	ctxutil "github.com/muhammadheryan/inventory-service/utils/context"
	"github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-service/utils/validator"
	"go.uber.org/zap"
)

// TransferApp drives the draft -> in_transit -> received lifecycle (or draft -> canceled).
// Stock leaves the source on dispatch and arrives at the destination on receive; while
// in transit it is only represented by the transfer's items.
type TransferApp interface {
	Create(ctx context.Context, req *model.CreateTransferRequest) (*model.Transfer, error)
	Update(ctx context.Context, id uint64, req *model.UpdateTransferRequest) (*model.Transfer, error)
	Dispatch(ctx context.Context, id uint64, actor string) (*model.Transfer, error)
	Receive(ctx context.Context, id uint64, actor string) (*model.Transfer, error)
	Cancel(ctx context.Context, id uint64, actor string) (*model.Transfer, error)
	Get(ctx context.Context, id uint64) (*model.Transfer, error)
	List(ctx context.Context, filter *model.TransferFilter) (*model.TransferListResponse, error)
}

type transferAppImpl struct {
	txRepo        txrepo.TxRepository
	transferRepo  transferrepo.TransferRepository
	stockRepo     stockrepo.StockRepository
	movementRepo  movementrepo.MovementRepository
	warehouseRepo warehouserepo.WarehouseRepository
	notifier      *notifier.Notifier
}

func NewTransferApp(
	txRepo txrepo.TxRepository,
	transferRepo transferrepo.TransferRepository,
	stockRepo stockrepo.StockRepository,
	movementRepo movementrepo.MovementRepository,
	warehouseRepo warehouserepo.WarehouseRepository,
	notifier *notifier.Notifier,
) TransferApp {
	return &transferAppImpl{
		txRepo:        txRepo,
		transferRepo:  transferRepo,
		stockRepo:     stockRepo,
		movementRepo:  movementRepo,
		warehouseRepo: warehouseRepo,
		notifier:      notifier,
	}
}

func (s *transferAppImpl) Create(ctx context.Context, req *model.CreateTransferRequest) (*model.Transfer, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	if req.Actor == "" {
		req.Actor = ctxutil.ActorOrSystem(ctx)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateTransfer] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	for _, warehouseID := range []uint64{req.FromWarehouseID, req.ToWarehouseID} {
		warehouse, err := s.warehouseRepo.GetWarehouseByIDShareTx(ctx, tx, warehouseID)
		if err != nil {
			logger.Error("[CreateTransfer] get warehouse failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if warehouse == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}

	transfer := &model.Transfer{
		FromWarehouseID: req.FromWarehouseID,
		ToWarehouseID:   req.ToWarehouseID,
		Status:          constant.TransferStatusDraft,
		Note:            req.Note,
		CreatedBy:       req.Actor,
		CreatedAt:       time.Now().UTC(),
	}
	transferID, err := s.transferRepo.InsertTx(ctx, tx, transfer)
	if err != nil {
		logger.Error("[CreateTransfer] insert transfer failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	transfer.ID = transferID

	if err := s.transferRepo.InsertItemsTx(ctx, tx, transferID, items); err != nil {
		logger.Error("[CreateTransfer] insert items failed", zap.Uint64("transfer_id", transferID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	transfer.Items = items

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateTransfer] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notifier.PublishTransfer(ctx, constant.EventTransferCreated, transfer, req.Actor)

	return transfer, nil
}

func (s *transferAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateTransferRequest) (*model.Transfer, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	var items []model.TransferItem
	if req.Items != nil {
		built, err := buildItems(*req.Items)
		if err != nil {
			return nil, err
		}
		items = built
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateTransfer] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	transfer, err := s.lockTransfer(ctx, tx, id, constant.TransferStatusDraft, "[UpdateTransfer]")
	if err != nil {
		return nil, err
	}

	if req.FromWarehouseID != nil {
		transfer.FromWarehouseID = *req.FromWarehouseID
	}
	if req.ToWarehouseID != nil {
		transfer.ToWarehouseID = *req.ToWarehouseID
	}
	if req.Note != nil {
		transfer.Note = *req.Note
	}
	if transfer.FromWarehouseID == 0 || transfer.ToWarehouseID == 0 || transfer.FromWarehouseID == transfer.ToWarehouseID {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	changed := make([]uint64, 0, 2)
	if req.FromWarehouseID != nil {
		changed = append(changed, transfer.FromWarehouseID)
	}
	if req.ToWarehouseID != nil {
		changed = append(changed, transfer.ToWarehouseID)
	}
	for _, warehouseID := range changed {
		warehouse, err := s.warehouseRepo.GetWarehouseByIDShareTx(ctx, tx, warehouseID)
		if err != nil {
			logger.Error("[UpdateTransfer] get warehouse failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if warehouse == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}

	if err := s.transferRepo.UpdateTx(ctx, tx, transfer); err != nil {
		logger.Error("[UpdateTransfer] update transfer failed", zap.Uint64("transfer_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if req.Items != nil {
		if err := s.transferRepo.DeleteItemsTx(ctx, tx, id); err != nil {
			logger.Error("[UpdateTransfer] delete items failed", zap.Uint64("transfer_id", id), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if len(items) > 0 {
			if err := s.transferRepo.InsertItemsTx(ctx, tx, id, items); err != nil {
				logger.Error("[UpdateTransfer] insert items failed", zap.Uint64("transfer_id", id), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
		transfer.Items = items
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateTransfer] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return transfer, nil
}

// Dispatch checks on_hand rather than available: reservations at the source do not block a transfer.
func (s *transferAppImpl) Dispatch(ctx context.Context, id uint64, actor string) (*model.Transfer, error) {
	if actor == "" {
		actor = ctxutil.ActorOrSystem(ctx)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DispatchTransfer] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	transfer, err := s.lockTransfer(ctx, tx, id, constant.TransferStatusInTransit, "[DispatchTransfer]")
	if err != nil {
		return nil, err
	}
	if len(transfer.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyTransfer)
	}

	items := sortedItems(transfer.Items)
	for _, item := range items {
		level, err := s.stockRepo.GetForUpdateTx(ctx, tx, item.VariantID, transfer.FromWarehouseID)
		if err != nil {
			logger.Error("[DispatchTransfer] lock stock level failed", append(logger.StockKey(item.VariantID, transfer.FromWarehouseID), zap.String("error", err.Error()))...)
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if level == nil || level.OnHand < item.Qty {
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
	}

	now := time.Now().UTC()
	ref := model.NewReference(constant.ReferenceTransfer, transfer.ID)
	levels := make([]*model.StockLevel, 0, len(items))
	for _, item := range items {
		level, err := s.move(ctx, tx, item.VariantID, transfer.FromWarehouseID, -item.Qty, constant.MovementTransferOut, &ref, actor, now)
		if err != nil {
			logger.Error("[DispatchTransfer] move stock failed", append(logger.StockKey(item.VariantID, transfer.FromWarehouseID), zap.String("error", err.Error()))...)
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		levels = append(levels, level)
	}

	transfer.Status = constant.TransferStatusInTransit
	transfer.DispatchedBy = &actor
	transfer.DispatchedAt = &now
	if err := s.transferRepo.UpdateTx(ctx, tx, transfer); err != nil {
		logger.Error("[DispatchTransfer] update transfer failed", zap.Uint64("transfer_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DispatchTransfer] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notifier.InvalidateStock(ctx, stockKeys(items, transfer.FromWarehouseID)...)
	for _, level := range levels {
		s.notifier.CheckReorderPoint(ctx, level, &ref, actor)
	}
	s.notifier.PublishTransfer(ctx, constant.EventTransferDispatched, transfer, actor)

	return transfer, nil
}

func (s *transferAppImpl) Receive(ctx context.Context, id uint64, actor string) (*model.Transfer, error) {
	if actor == "" {
		actor = ctxutil.ActorOrSystem(ctx)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReceiveTransfer] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	transfer, err := s.lockTransfer(ctx, tx, id, constant.TransferStatusReceived, "[ReceiveTransfer]")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ref := model.NewReference(constant.ReferenceTransfer, transfer.ID)
	items := sortedItems(transfer.Items)
	for _, item := range items {
		if _, err := s.stockRepo.GetOrCreateForUpdateTx(ctx, tx, item.VariantID, transfer.ToWarehouseID); err != nil {
			logger.Error("[ReceiveTransfer] lock stock level failed", append(logger.StockKey(item.VariantID, transfer.ToWarehouseID), zap.String("error", err.Error()))...)
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if _, err := s.move(ctx, tx, item.VariantID, transfer.ToWarehouseID, item.Qty, constant.MovementTransferIn, &ref, actor, now); err != nil {
			logger.Error("[ReceiveTransfer] move stock failed", append(logger.StockKey(item.VariantID, transfer.ToWarehouseID), zap.String("error", err.Error()))...)
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	transfer.Status = constant.TransferStatusReceived
	transfer.ReceivedBy = &actor
	transfer.ReceivedAt = &now
	if err := s.transferRepo.UpdateTx(ctx, tx, transfer); err != nil {
		logger.Error("[ReceiveTransfer] update transfer failed", zap.Uint64("transfer_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReceiveTransfer] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notifier.InvalidateStock(ctx, stockKeys(items, transfer.ToWarehouseID)...)
	s.notifier.PublishTransfer(ctx, constant.EventTransferReceived, transfer, actor)

	return transfer, nil
}

// Cancel only applies to drafts, so nothing has moved yet and no movement is written.
func (s *transferAppImpl) Cancel(ctx context.Context, id uint64, actor string) (*model.Transfer, error) {
	if actor == "" {
		actor = ctxutil.ActorOrSystem(ctx)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelTransfer] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	transfer, err := s.lockTransfer(ctx, tx, id, constant.TransferStatusCanceled, "[CancelTransfer]")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transfer.Status = constant.TransferStatusCanceled
	transfer.CanceledBy = &actor
	transfer.CanceledAt = &now
	if err := s.transferRepo.UpdateTx(ctx, tx, transfer); err != nil {
		logger.Error("[CancelTransfer] update transfer failed", zap.Uint64("transfer_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelTransfer] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.notifier.PublishTransfer(ctx, constant.EventTransferCanceled, transfer, actor)

	return transfer, nil
}

func (s *transferAppImpl) Get(ctx context.Context, id uint64) (*model.Transfer, error) {
	transfer, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetTransfer] get transfer failed", zap.Uint64("transfer_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if transfer == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return transfer, nil
}

func (s *transferAppImpl) List(ctx context.Context, filter *model.TransferFilter) (*model.TransferListResponse, error) {
	if filter == nil {
		filter = &model.TransferFilter{}
	}
	if err := validatorx.ValidateStruct(filter); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	filter.Page, filter.PerPage = model.Paginate(filter.Page, filter.PerPage)

	transfers, total, err := s.transferRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListTransfers] list transfers failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.TransferListResponse{
		Items:      transfers,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

// lockTransfer loads the transfer under a row lock and refuses it unless its current
// status can move to next. Refusals on received or canceled transfers are logged as closed.
func (s *transferAppImpl) lockTransfer(ctx context.Context, tx *sqlx.Tx, id uint64, next constant.TransferStatus, op string) (*model.Transfer, error) {
	transfer, err := s.transferRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error(op+" lock transfer failed", zap.Uint64("transfer_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if transfer == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !transfer.Status.CanTransitionTo(next) {
		if transfer.Status.Terminal() {
			logger.Info(op+" transfer already closed", zap.Uint64("transfer_id", id), zap.String("status", string(transfer.Status)))
		} else {
			logger.Info(op+" transfer not in a state that allows this", zap.Uint64("transfer_id", id),
				zap.String("status", string(transfer.Status)), zap.String("next", string(next)))
		}
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}
	return transfer, nil
}

// move applies one on_hand change and records its movement. The caller holds the row lock.
func (s *transferAppImpl) move(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64, qty int64, movementType constant.MovementType, ref *model.Reference, actor string, at time.Time) (*model.StockLevel, error) {
	level, err := s.stockRepo.ApplyDeltaTx(ctx, tx, variantID, warehouseID, qty, 0)
	if err != nil {
		return nil, err
	}
	movement := &model.Movement{
		VariantID:    variantID,
		WarehouseID:  warehouseID,
		QtyChange:    qty,
		MovementType: movementType,
		Reference:    ref,
		PerformedBy:  actor,
		PerformedAt:  at,
	}
	if _, err := s.movementRepo.InsertTx(ctx, tx, movement); err != nil {
		return nil, err
	}
	return level, nil
}

// buildItems rejects non-positive quantities and a variant listed twice.
func buildItems(reqs []model.TransferItemRequest) ([]model.TransferItem, error) {
	seen := make(map[uint64]struct{}, len(reqs))
	items := make([]model.TransferItem, 0, len(reqs))
	for _, r := range reqs {
		if r.VariantID == 0 || r.Qty <= 0 {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
		if _, dup := seen[r.VariantID]; dup {
			return nil, errors.SetCustomError(constant.ErrValidation)
		}
		seen[r.VariantID] = struct{}{}
		items = append(items, model.TransferItem{VariantID: r.VariantID, Qty: r.Qty})
	}
	return items, nil
}

// sortedItems orders items by variant so concurrent transfers lock rows in the same order.
func sortedItems(items []model.TransferItem) []model.TransferItem {
	sorted := make([]model.TransferItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].VariantID < sorted[j].VariantID })
	return sorted
}

func stockKeys(items []model.TransferItem, warehouseID uint64) []model.StockKey {
	keys := make([]model.StockKey, 0, len(items))
	for _, item := range items {
		keys = append(keys, model.StockKey{VariantID: item.VariantID, WarehouseID: warehouseID})
	}
	return keys
}
