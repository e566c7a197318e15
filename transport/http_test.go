package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/inventory-service/constant"
	adjustmentmocks "github.com/muhammadheryan/inventory-service/mocks/application/adjustment"
	authmocks "github.com/muhammadheryan/inventory-service/mocks/application/auth"
	reservationmocks "github.com/muhammadheryan/inventory-service/mocks/application/reservation"
	stockmocks "github.com/muhammadheryan/inventory-service/mocks/application/stock"
	transfermocks "github.com/muhammadheryan/inventory-service/mocks/application/transfer"
	warehousemocks "github.com/muhammadheryan/inventory-service/mocks/application/warehouse"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/transport"
	cerr "github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const internalKey = "order-service-key"

type apps struct {
	auth        *authmocks.AuthApp
	adjustment  *adjustmentmocks.AdjustmentApp
	reservation *reservationmocks.ReservationApp
	transfer    *transfermocks.TransferApp
	warehouse   *warehousemocks.WarehouseApp
	stock       *stockmocks.StockApp
}

func newServer(t *testing.T) (http.Handler, apps) {
	t.Helper()
	a := apps{
		auth:        authmocks.NewAuthApp(t),
		adjustment:  adjustmentmocks.NewAdjustmentApp(t),
		reservation: reservationmocks.NewReservationApp(t),
		transfer:    transfermocks.NewTransferApp(t),
		warehouse:   warehousemocks.NewWarehouseApp(t),
		stock:       stockmocks.NewStockApp(t),
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(internalKey), bcrypt.MinCost)
	require.NoError(t, err)

	rh := &transport.RestHandler{
		AdjustmentApp:  a.adjustment,
		ReservationApp: a.reservation,
		TransferApp:    a.transfer,
		WarehouseApp:   a.warehouse,
		StockApp:       a.stock,
	}
	return transport.NewTransport(rh, a.auth, string(hash)), a
}

func do(h http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, transport.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp transport.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		mockCall   func(a apps)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing bearer",
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:  "rejected token",
			token: "bad",
			mockCall: func(a apps) {
				a.auth.On("ValidateToken", mock.Anything, "bad").Return("", errors.New("invalid token")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:  "subject becomes the actor",
			token: "good",
			mockCall: func(a apps) {
				a.auth.On("ValidateToken", mock.Anything, "good").Return("42", nil).Once()
				a.adjustment.On("Adjust", mock.Anything, mock.MatchedBy(func(req *model.AdjustStockRequest) bool {
					return req.Actor == "42" && req.Mode == "DELTA_ON_HAND" && req.Qty == 5
				})).Return(&model.Adjustment{ID: 1, QtyAfter: 5}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, a := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, resp := do(h, http.MethodPost, "/v1/inventory/adjustments", tt.token,
				`{"variant_id":1,"warehouse_id":2,"mode":"DELTA_ON_HAND","qty":5}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestHealthIsPublic(t *testing.T) {
	h, _ := newServer(t)
	rec, resp := do(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp.Message)
}

func TestInternalReleaseStock(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		mockCall   func(a apps)
		wantStatus int
	}{
		{
			name:       "missing key",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong key",
			key:        "guess",
			wantStatus: http.StatusForbidden,
		},
		{
			name: "valid key releases as the internal actor",
			key:  internalKey,
			mockCall: func(a apps) {
				a.reservation.On("Release", mock.Anything, mock.MatchedBy(func(req *model.ReleaseStockRequest) bool {
					return req.Actor == constant.InternalActor && req.ReferenceType == "order" && req.ReferenceID == 9
				})).Return(&model.StockBalance{VariantID: 1, WarehouseID: 2, OnHand: 5, Available: 5}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, a := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, _ := do(h, http.MethodPost, "/internal/v1/inventory/releases", tt.key,
				`{"variant_id":1,"warehouse_id":2,"qty":2,"reference_type":"order","reference_id":9}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestErrorEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		mockCall   func(a apps)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "insufficient stock on reserve",
			method: http.MethodPost,
			path:   "/v1/inventory/reservations",
			body:   `{"variant_id":1,"warehouse_id":2,"qty":50}`,
			mockCall: func(a apps) {
				a.reservation.On("Reserve", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrInsufficientStock)).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   constant.ErrorTypeCode[constant.ErrInsufficientStock],
		},
		{
			name:       "malformed body",
			method:     http.MethodPost,
			path:       "/v1/inventory/reservations",
			body:       `{"variant_id":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:       "non numeric path id",
			method:     http.MethodGet,
			path:       "/v1/inventory/stock/abc/2",
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name:   "plain errors become internal",
			method: http.MethodGet,
			path:   "/v1/inventory/stock/1/2/verify",
			mockCall: func(a apps) {
				a.stock.On("VerifyLedger", mock.Anything, uint64(1), uint64(2)).Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   constant.ErrorTypeCode[constant.ErrInternal],
		},
		{
			name:   "dispatching a received transfer",
			method: http.MethodPost,
			path:   "/v1/transfers/7/dispatch",
			mockCall: func(a apps) {
				a.transfer.On("Dispatch", mock.Anything, uint64(7), "42").
					Return(nil, cerr.SetCustomError(constant.ErrInvalidState)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidState],
		},
		{
			name:   "deactivating a warehouse with reservations",
			method: http.MethodPost,
			path:   "/v1/warehouses/3/deactivate",
			mockCall: func(a apps) {
				a.warehouse.On("DeactivateWarehouse", mock.Anything, uint64(3)).
					Return(cerr.SetCustomError(constant.ErrWarehouseHasReservedStock)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   constant.ErrorTypeCode[constant.ErrWarehouseHasReservedStock],
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, a := newServer(t)
			a.auth.On("ValidateToken", mock.Anything, "good").Return("42", nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, resp := do(h, tt.method, tt.path, "good", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestListMovements_QueryMapping(t *testing.T) {
	h, a := newServer(t)
	a.auth.On("ValidateToken", mock.Anything, "good").Return("42", nil).Once()
	a.stock.On("ListMovements", mock.Anything, &model.MovementFilter{
		VariantID: 1, WarehouseID: 2, ReferenceType: "transfer", ReferenceID: 8, Page: 2, PerPage: 25,
	}).Return(&model.MovementListResponse{TotalCount: 0, Page: 2, PerPage: 25}, nil).Once()

	rec, resp := do(h, http.MethodGet,
		"/v1/inventory/movements?variant_id=1&warehouse_id=2&reference_type=transfer&reference_id=8&page=2&per_page=25", "good", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.Successful], resp.Code)
}

func TestGetAdjustment(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mockCall   func(a apps)
		wantStatus int
		wantCode   string
	}{
		{
			name: "found",
			path: "/v1/inventory/adjustments/9",
			mockCall: func(a apps) {
				a.adjustment.On("GetAdjustment", mock.Anything, uint64(9)).
					Return(&model.Adjustment{ID: 9, QtyChange: -6}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
		{
			name: "missing",
			path: "/v1/inventory/adjustments/10",
			mockCall: func(a apps) {
				a.adjustment.On("GetAdjustment", mock.Anything, uint64(10)).
					Return(nil, cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   constant.ErrorTypeCode[constant.ErrNotFound],
		},
		{
			name:       "zero id",
			path:       "/v1/inventory/adjustments/0",
			wantStatus: http.StatusBadRequest,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, a := newServer(t)
			a.auth.On("ValidateToken", mock.Anything, "good").Return("42", nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, resp := do(h, http.MethodGet, tt.path, "good", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
