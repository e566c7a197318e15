package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	utilsContext "github.com/muhammadheryan/inventory-service/utils/context"
	"github.com/muhammadheryan/inventory-service/utils/errors"
)

// AdjustStock handler
// @Summary Adjust on-hand stock
// @Description Set or shift on_hand for a variant in a warehouse. The result may be negative.
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AdjustStockRequest true "Adjustment"
// @Success 201 {object} model.Adjustment
// @Failure 422 {object} Response
// @Router /v1/inventory/adjustments [post]
func (s *RestHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.Actor = utilsContext.ActorOrSystem(ctx)

	if s.AdjustmentApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AdjustmentApp.Adjust(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetAdjustment handler
// @Summary Get an adjustment
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Adjustment ID"
// @Success 200 {object} model.Adjustment
// @Failure 404 {object} Response
// @Router /v1/inventory/adjustments/{id} [get]
func (s *RestHandler) GetAdjustment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.AdjustmentApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.AdjustmentApp.GetAdjustment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReserveStock handler
// @Summary Reserve stock
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ReserveStockRequest true "Reservation"
// @Success 200 {object} model.StockBalance
// @Failure 422 {object} Response
// @Router /v1/inventory/reservations [post]
func (s *RestHandler) ReserveStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReserveStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.Actor = utilsContext.ActorOrSystem(ctx)

	if s.ReservationApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ReservationApp.Reserve(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReleaseStock handler
// @Summary Release reserved stock
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ReleaseStockRequest true "Release"
// @Success 200 {object} model.StockBalance
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /v1/inventory/releases [post]
func (s *RestHandler) ReleaseStock(w http.ResponseWriter, r *http.Request) {
	s.releaseStock(w, r, utilsContext.ActorOrSystem(r.Context()))
}

// InternalReleaseStock handler
// @Summary Release reserved stock (service to service)
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.ReleaseStockRequest true "Release"
// @Success 200 {object} model.StockBalance
// @Router /internal/v1/inventory/releases [post]
func (s *RestHandler) InternalReleaseStock(w http.ResponseWriter, r *http.Request) {
	s.releaseStock(w, r, constant.InternalActor)
}

func (s *RestHandler) releaseStock(w http.ResponseWriter, r *http.Request, actor string) {
	ctx := r.Context()

	var req model.ReleaseStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.Actor = actor

	if s.ReservationApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ReservationApp.Release(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetStock handler
// @Summary Stock balance of a variant in a warehouse
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param variant_id path int true "Variant ID"
// @Param warehouse_id path int true "Warehouse ID"
// @Success 200 {object} model.StockBalance
// @Failure 404 {object} Response
// @Router /v1/inventory/stock/{variant_id}/{warehouse_id} [get]
func (s *RestHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	variantID, ok1 := pathID(r, "variant_id")
	warehouseID, ok2 := pathID(r, "warehouse_id")
	if !ok1 || !ok2 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.StockApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.StockApp.GetStock(r.Context(), variantID, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListStockByVariant handler
// @Summary Stock balances of a variant across warehouses
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param variant_id path int true "Variant ID"
// @Success 200 {object} model.StockListResponse
// @Router /v1/inventory/stock/{variant_id} [get]
func (s *RestHandler) ListStockByVariant(w http.ResponseWriter, r *http.Request) {
	variantID, ok := pathID(r, "variant_id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.StockApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.StockApp.ListStockByVariant(r.Context(), variantID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyLedger handler
// @Summary Compare on_hand with the movement log
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param variant_id path int true "Variant ID"
// @Param warehouse_id path int true "Warehouse ID"
// @Success 200 {object} model.LedgerVerification
// @Router /v1/inventory/stock/{variant_id}/{warehouse_id}/verify [get]
func (s *RestHandler) VerifyLedger(w http.ResponseWriter, r *http.Request) {
	variantID, ok1 := pathID(r, "variant_id")
	warehouseID, ok2 := pathID(r, "warehouse_id")
	if !ok1 || !ok2 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.StockApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.StockApp.VerifyLedger(r.Context(), variantID, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListMovements handler
// @Summary List stock movements
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param variant_id query int false "Variant ID (required unless reference_type and reference_id are given)"
// @Param warehouse_id query int false "Warehouse ID"
// @Param reference_type query string false "Reference kind"
// @Param reference_id query int false "Reference ID"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.MovementListResponse
// @Router /v1/inventory/movements [get]
func (s *RestHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	variantID, ok1 := queryUint(r, "variant_id")
	warehouseID, ok2 := queryUint(r, "warehouse_id")
	referenceID, ok3 := queryUint(r, "reference_id")
	if !ok1 || !ok2 || !ok3 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.StockApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	filter := &model.MovementFilter{
		VariantID:     variantID,
		WarehouseID:   warehouseID,
		ReferenceType: r.URL.Query().Get("reference_type"),
		ReferenceID:   referenceID,
		Page:          queryInt(r, "page"),
		PerPage:       queryInt(r, "per_page"),
	}
	res, err := s.StockApp.ListMovements(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
