package warehouse

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	stockrepo "github.com/muhammadheryan/inventory-service/repository/stock"
	txrepo "github.com/muhammadheryan/inventory-service/repository/tx"
	warehouserepo "github.com/muhammadheryan/inventory-service/repository/warehouse"
	"github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-service/utils/validator"
	"go.uber.org/zap"
)

// WarehouseApp is the warehouse registry. At most one warehouse is the default at any time.
type WarehouseApp interface {
	CreateWarehouse(ctx context.Context, req *model.WarehouseRequest) (*model.Warehouse, error)
	UpdateWarehouse(ctx context.Context, warehouseID uint64, req *model.WarehouseRequest) (*model.Warehouse, error)
	DeleteWarehouse(ctx context.Context, warehouseID uint64) error
	ActivateWarehouse(ctx context.Context, warehouseID uint64) error
	DeactivateWarehouse(ctx context.Context, warehouseID uint64) error
	GetWarehouse(ctx context.Context, warehouseID uint64) (*model.Warehouse, error)
	ListWarehouses(ctx context.Context, page, perPage int) (*model.WarehouseListResponse, error)
}

type warehouseAppImpl struct {
	txRepo        txrepo.TxRepository
	warehouseRepo warehouserepo.WarehouseRepository
	stockRepo     stockrepo.StockRepository
}

func NewWarehouseApp(txRepo txrepo.TxRepository, warehouseRepo warehouserepo.WarehouseRepository, stockRepo stockrepo.StockRepository) WarehouseApp {
	return &warehouseAppImpl{
		txRepo:        txRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
	}
}

func (s *warehouseAppImpl) CreateWarehouse(ctx context.Context, req *model.WarehouseRequest) (*model.Warehouse, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateWarehouse] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if req.IsDefault {
		if err := s.lockDefault(ctx, tx, "[CreateWarehouse]"); err != nil {
			return nil, err
		}
	}

	warehouse := &model.Warehouse{Status: constant.WarehouseStatusActive}
	applyRequest(warehouse, req)

	warehouseID, err := s.warehouseRepo.InsertWarehouseTx(ctx, tx, warehouse)
	if err != nil {
		if errors.Is(err, constant.ErrConflict) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[CreateWarehouse] insert warehouse failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	warehouse.ID = warehouseID

	if req.IsDefault {
		if err := s.clearOtherDefaults(ctx, tx, warehouseID, "[CreateWarehouse]"); err != nil {
			return nil, err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateWarehouse] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return warehouse, nil
}

func (s *warehouseAppImpl) UpdateWarehouse(ctx context.Context, warehouseID uint64, req *model.WarehouseRequest) (*model.Warehouse, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateWarehouse] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// The default lock is taken before the row lock, same order as CreateWarehouse.
	if req.IsDefault {
		if err := s.lockDefault(ctx, tx, "[UpdateWarehouse]"); err != nil {
			return nil, err
		}
	}

	warehouse, err := s.warehouseRepo.GetWarehouseByIDForUpdateTx(ctx, tx, warehouseID)
	if err != nil {
		logger.Error("[UpdateWarehouse] get warehouse failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	applyRequest(warehouse, req)
	if err := s.warehouseRepo.UpdateWarehouseTx(ctx, tx, warehouse); err != nil {
		if errors.Is(err, constant.ErrConflict) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[UpdateWarehouse] update warehouse failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if req.IsDefault {
		if err := s.clearOtherDefaults(ctx, tx, warehouseID, "[UpdateWarehouse]"); err != nil {
			return nil, err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateWarehouse] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return warehouse, nil
}

// DeleteWarehouse refuses while any stock level row, even an all-zero one, points at the warehouse.
func (s *warehouseAppImpl) DeleteWarehouse(ctx context.Context, warehouseID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteWarehouse] begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	warehouse, err := s.warehouseRepo.GetWarehouseByIDForUpdateTx(ctx, tx, warehouseID)
	if err != nil {
		logger.Error("[DeleteWarehouse] get warehouse failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	stockRows, err := s.stockRepo.CountByWarehouseTx(ctx, tx, warehouseID)
	if err != nil {
		logger.Error("[DeleteWarehouse] count stock levels failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if stockRows > 0 {
		return errors.SetCustomError(constant.ErrConflict)
	}

	if err := s.warehouseRepo.DeleteWarehouseTx(ctx, tx, warehouseID); err != nil {
		if errors.Is(err, constant.ErrConflict) {
			return errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[DeleteWarehouse] delete warehouse failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteWarehouse] commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return nil
}

func (s *warehouseAppImpl) ActivateWarehouse(ctx context.Context, warehouseID uint64) error {
	return s.setStatus(ctx, warehouseID, constant.WarehouseStatusActive, "[ActivateWarehouse]")
}

// DeactivateWarehouse refuses while stock is still reserved there; new reservations
// are refused once it is inactive.
func (s *warehouseAppImpl) DeactivateWarehouse(ctx context.Context, warehouseID uint64) error {
	return s.setStatus(ctx, warehouseID, constant.WarehouseStatusInactive, "[DeactivateWarehouse]")
}

func (s *warehouseAppImpl) setStatus(ctx context.Context, warehouseID uint64, status constant.WarehouseStatus, op string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error(op+" begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Check if warehouse exists
	warehouse, err := s.warehouseRepo.GetWarehouseByIDForUpdateTx(ctx, tx, warehouseID)
	if err != nil {
		logger.Error(op+" get warehouse failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if warehouse.Status == status {
		return nil
	}

	if status == constant.WarehouseStatusInactive {
		reservedStock, err := s.stockRepo.SumReservedByWarehouseTx(ctx, tx, warehouseID)
		if err != nil {
			logger.Error(op+" check reserved stock failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if reservedStock > 0 {
			return errors.SetCustomError(constant.ErrWarehouseHasReservedStock)
		}
	}

	if err := s.warehouseRepo.UpdateWarehouseStatusTx(ctx, tx, warehouseID, status); err != nil {
		logger.Error(op+" update status failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error(op+" commit tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return nil
}

func (s *warehouseAppImpl) GetWarehouse(ctx context.Context, warehouseID uint64) (*model.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetWarehouseByID(ctx, warehouseID)
	if err != nil {
		logger.Error("[GetWarehouse] get warehouse failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return warehouse, nil
}

func (s *warehouseAppImpl) ListWarehouses(ctx context.Context, page, perPage int) (*model.WarehouseListResponse, error) {
	page, perPage = model.Paginate(page, perPage)

	items, total, err := s.warehouseRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListWarehouses] list warehouses failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.WarehouseListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *warehouseAppImpl) lockDefault(ctx context.Context, tx *sqlx.Tx, op string) error {
	if _, err := s.warehouseRepo.LockDefaultTx(ctx, tx); err != nil {
		logger.Error(op+" lock default warehouse failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *warehouseAppImpl) clearOtherDefaults(ctx context.Context, tx *sqlx.Tx, keepID uint64, op string) error {
	if err := s.warehouseRepo.ClearDefaultExceptTx(ctx, tx, keepID); err != nil {
		if errors.Is(err, constant.ErrConflict) {
			return errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error(op+" clear other defaults failed", zap.Uint64("warehouse_id", keepID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func applyRequest(w *model.Warehouse, req *model.WarehouseRequest) {
	w.Name = req.Name
	w.Code = req.Code
	w.AddressLine1 = req.AddressLine1
	w.AddressLine2 = req.AddressLine2
	w.City = req.City
	w.Region = req.Region
	w.PostalCode = req.PostalCode
	w.Country = req.Country
	w.IsDefault = req.IsDefault
}
