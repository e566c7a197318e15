package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/utils/errors"
)

// CreateWarehouse handler
// @Summary Create a warehouse
// @Description Creating with is_default=true clears the flag on every other warehouse.
// @Tags Warehouse
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.WarehouseRequest true "Warehouse"
// @Success 201 {object} model.Warehouse
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /v1/warehouses [post]
func (s *RestHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req model.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.WarehouseApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.WarehouseApp.CreateWarehouse(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateWarehouse handler
// @Summary Update a warehouse
// @Tags Warehouse
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Warehouse ID"
// @Param request body model.WarehouseRequest true "Warehouse"
// @Success 200 {object} model.Warehouse
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /v1/warehouses/{id} [put]
func (s *RestHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.WarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.WarehouseApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.WarehouseApp.UpdateWarehouse(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteWarehouse handler
// @Summary Delete a warehouse
// @Tags Warehouse
// @Produce json
// @Security BearerAuth
// @Param id path int true "Warehouse ID"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /v1/warehouses/{id} [delete]
func (s *RestHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	s.warehouseCommand(w, r, func(ctx context.Context, id uint64) error {
		return s.WarehouseApp.DeleteWarehouse(ctx, id)
	})
}

// ActivateWarehouse handler
// @Summary Activate a warehouse
// @Tags Warehouse
// @Produce json
// @Security BearerAuth
// @Param id path int true "Warehouse ID"
// @Success 200 {object} Response
// @Router /v1/warehouses/{id}/activate [post]
func (s *RestHandler) ActivateWarehouse(w http.ResponseWriter, r *http.Request) {
	s.warehouseCommand(w, r, func(ctx context.Context, id uint64) error {
		return s.WarehouseApp.ActivateWarehouse(ctx, id)
	})
}

// DeactivateWarehouse handler
// @Summary Deactivate a warehouse
// @Tags Warehouse
// @Produce json
// @Security BearerAuth
// @Param id path int true "Warehouse ID"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /v1/warehouses/{id}/deactivate [post]
func (s *RestHandler) DeactivateWarehouse(w http.ResponseWriter, r *http.Request) {
	s.warehouseCommand(w, r, func(ctx context.Context, id uint64) error {
		return s.WarehouseApp.DeactivateWarehouse(ctx, id)
	})
}

func (s *RestHandler) warehouseCommand(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id uint64) error) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.WarehouseApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := apply(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// GetWarehouse handler
// @Summary Get a warehouse
// @Tags Warehouse
// @Produce json
// @Security BearerAuth
// @Param id path int true "Warehouse ID"
// @Success 200 {object} model.Warehouse
// @Failure 404 {object} Response
// @Router /v1/warehouses/{id} [get]
func (s *RestHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.WarehouseApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.WarehouseApp.GetWarehouse(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListWarehouses handler
// @Summary List warehouses
// @Tags Warehouse
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.WarehouseListResponse
// @Router /v1/warehouses [get]
func (s *RestHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	if s.WarehouseApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.WarehouseApp.ListWarehouses(r.Context(), queryInt(r, "page"), queryInt(r, "per_page"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
