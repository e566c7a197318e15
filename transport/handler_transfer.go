package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	utilsContext "github.com/muhammadheryan/inventory-service/utils/context"
	"github.com/muhammadheryan/inventory-service/utils/errors"
)

// CreateTransfer handler
// @Summary Create a draft transfer
// @Tags Transfer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTransferRequest true "Transfer"
// @Success 201 {object} model.Transfer
// @Failure 422 {object} Response
// @Router /v1/transfers [post]
func (s *RestHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.Actor = utilsContext.ActorOrSystem(ctx)

	if s.TransferApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.TransferApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateTransfer handler
// @Summary Update a draft transfer
// @Description Items, when present, replace the whole item set.
// @Tags Transfer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Param request body model.UpdateTransferRequest true "Changes"
// @Success 200 {object} model.Transfer
// @Failure 409 {object} Response
// @Router /v1/transfers/{id} [put]
func (s *RestHandler) UpdateTransfer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.TransferApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.TransferApp.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DispatchTransfer handler
// @Summary Dispatch a draft transfer
// @Tags Transfer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.Transfer
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /v1/transfers/{id}/dispatch [post]
func (s *RestHandler) DispatchTransfer(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, func(ctx context.Context, id uint64, actor string) (*model.Transfer, error) {
		return s.TransferApp.Dispatch(ctx, id, actor)
	})
}

// ReceiveTransfer handler
// @Summary Receive an in-transit transfer
// @Tags Transfer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.Transfer
// @Failure 409 {object} Response
// @Router /v1/transfers/{id}/receive [post]
func (s *RestHandler) ReceiveTransfer(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, func(ctx context.Context, id uint64, actor string) (*model.Transfer, error) {
		return s.TransferApp.Receive(ctx, id, actor)
	})
}

// CancelTransfer handler
// @Summary Cancel a draft transfer
// @Tags Transfer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.Transfer
// @Failure 409 {object} Response
// @Router /v1/transfers/{id}/cancel [post]
func (s *RestHandler) CancelTransfer(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, func(ctx context.Context, id uint64, actor string) (*model.Transfer, error) {
		return s.TransferApp.Cancel(ctx, id, actor)
	})
}

func (s *RestHandler) transition(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id uint64, actor string) (*model.Transfer, error)) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.TransferApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	ctx := r.Context()
	res, err := apply(ctx, id, utilsContext.ActorOrSystem(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetTransfer handler
// @Summary Get a transfer with its items
// @Tags Transfer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transfer ID"
// @Success 200 {object} model.Transfer
// @Failure 404 {object} Response
// @Router /v1/transfers/{id} [get]
func (s *RestHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.TransferApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.TransferApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListTransfers handler
// @Summary List transfers
// @Tags Transfer
// @Produce json
// @Security BearerAuth
// @Param status query string false "draft, in_transit, received or canceled"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.TransferListResponse
// @Router /v1/transfers [get]
func (s *RestHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	if s.TransferApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	filter := &model.TransferFilter{
		Status:  r.URL.Query().Get("status"),
		Page:    queryInt(r, "page"),
		PerPage: queryInt(r, "per_page"),
	}
	res, err := s.TransferApp.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
