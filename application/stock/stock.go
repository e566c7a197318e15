package stock

import (
	"context"
	"time"

	"github.com/muhammadheryan/inventory-service/cmd/config"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	movementrepo "github.com/muhammadheryan/inventory-service/repository/movement"
	redisrepo "github.com/muhammadheryan/inventory-service/repository/redis"
	stockrepo "github.com/muhammadheryan/inventory-service/repository/stock"
	"github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-service/utils/validator"
	"go.uber.org/zap"
)

// StockApp serves read-side queries. Balances come from a short-lived cache and may lag
// a committed write by up to the cache TTL. Nothing that decides on stock reads them.
type StockApp interface {
	GetStock(ctx context.Context, variantID, warehouseID uint64) (*model.StockBalance, error)
	ListStockByVariant(ctx context.Context, variantID uint64) (*model.StockListResponse, error)
	ListMovements(ctx context.Context, filter *model.MovementFilter) (*model.MovementListResponse, error)
	VerifyLedger(ctx context.Context, variantID, warehouseID uint64) (*model.LedgerVerification, error)
}

type stockAppImpl struct {
	config       *config.Config
	stockRepo    stockrepo.StockRepository
	movementRepo movementrepo.MovementRepository
	redisRepo    redisrepo.RedisRepository
}

func NewStockApp(config *config.Config, stockRepo stockrepo.StockRepository, movementRepo movementrepo.MovementRepository, redisRepo redisrepo.RedisRepository) StockApp {
	return &stockAppImpl{
		config:       config,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		redisRepo:    redisRepo,
	}
}

// GetStock reads through the cache. A miss that reads the row before a concurrent write
// commits can store its snapshot after that write's invalidation, so the stale balance
// stays cached until the TTL expires. The TTL bounds that window.
func (s *stockAppImpl) GetStock(ctx context.Context, variantID, warehouseID uint64) (*model.StockBalance, error) {
	if variantID == 0 || warehouseID == 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	cached, err := s.redisRepo.GetStockBalance(ctx, variantID, warehouseID)
	if err != nil {
		logger.Warn("[GetStock] read stock cache failed", append(logger.StockKey(variantID, warehouseID), zap.String("error", err.Error()))...)
	}
	if cached != nil {
		return cached, nil
	}

	level, err := s.stockRepo.Get(ctx, variantID, warehouseID)
	if err != nil {
		logger.Error("[GetStock] get stock level failed", append(logger.StockKey(variantID, warehouseID), zap.String("error", err.Error()))...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if level == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	balance := level.Balance()
	if err := s.redisRepo.SetStockBalance(ctx, balance, s.cacheTTL()); err != nil {
		logger.Warn("[GetStock] write stock cache failed", append(logger.StockKey(variantID, warehouseID), zap.String("error", err.Error()))...)
	}
	return balance, nil
}

func (s *stockAppImpl) ListStockByVariant(ctx context.Context, variantID uint64) (*model.StockListResponse, error) {
	if variantID == 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	levels, err := s.stockRepo.ListByVariant(ctx, variantID)
	if err != nil {
		logger.Error("[ListStockByVariant] list stock levels failed", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.StockListResponse{
		VariantID: variantID,
		Items:     make([]model.StockBalance, 0, len(levels)),
	}
	for _, level := range levels {
		resp.Items = append(resp.Items, *level.Balance())
		resp.OnHand += level.OnHand
		resp.Reserved += level.Reserved
	}
	resp.Available = resp.OnHand - resp.Reserved
	return resp, nil
}

func (s *stockAppImpl) ListMovements(ctx context.Context, filter *model.MovementFilter) (*model.MovementListResponse, error) {
	if filter == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(filter); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}
	filter.Page, filter.PerPage = model.Paginate(filter.Page, filter.PerPage)

	items, total, err := s.movementRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListMovements] list movements failed", zap.Uint64("variant_id", filter.VariantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.MovementListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

// VerifyLedger recomputes on_hand from the movement log. Reads are not taken in one
// snapshot, so a write landing between them shows up as transient drift.
func (s *stockAppImpl) VerifyLedger(ctx context.Context, variantID, warehouseID uint64) (*model.LedgerVerification, error) {
	if variantID == 0 || warehouseID == 0 {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	level, err := s.stockRepo.Get(ctx, variantID, warehouseID)
	if err != nil {
		logger.Error("[VerifyLedger] get stock level failed", append(logger.StockKey(variantID, warehouseID), zap.String("error", err.Error()))...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if level == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	sum, err := s.movementRepo.SumQtyChange(ctx, variantID, warehouseID)
	if err != nil {
		logger.Error("[VerifyLedger] sum movements failed", append(logger.StockKey(variantID, warehouseID), zap.String("error", err.Error()))...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := &model.LedgerVerification{
		VariantID:   variantID,
		WarehouseID: warehouseID,
		OnHand:      level.OnHand,
		MovementSum: sum,
		Drift:       level.OnHand - sum,
	}
	result.Consistent = result.Drift == 0
	if !result.Consistent {
		logger.Warn("[VerifyLedger] on_hand drifted from movement log",
			append(logger.StockKey(variantID, warehouseID), zap.Int64("drift", result.Drift))...)
	}
	return result, nil
}

func (s *stockAppImpl) cacheTTL() time.Duration {
	if s.config == nil {
		return 0
	}
	return s.config.Inventory.StockCacheTTL
}
