package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	adjustmentapp "github.com/muhammadheryan/inventory-service/application/adjustment"
	authapp "github.com/muhammadheryan/inventory-service/application/auth"
	reservationapp "github.com/muhammadheryan/inventory-service/application/reservation"
	stockapp "github.com/muhammadheryan/inventory-service/application/stock"
	transferapp "github.com/muhammadheryan/inventory-service/application/transfer"
	warehouseapp "github.com/muhammadheryan/inventory-service/application/warehouse"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AdjustmentApp  adjustmentapp.AdjustmentApp
	ReservationApp reservationapp.ReservationApp
	TransferApp    transferapp.TransferApp
	WarehouseApp   warehouseapp.WarehouseApp
	StockApp       stockapp.StockApp
}

// NewTransport builds the router. internalKeyHash is the bcrypt hash of the service key
// accepted on /internal routes.
func NewTransport(rh *RestHandler, authApp authapp.AuthApp, internalKeyHash string) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// inventory
	mux.HandleFunc("/v1/inventory/adjustments", rh.AdjustStock).Methods(http.MethodPost)
	mux.HandleFunc("/v1/inventory/adjustments/{id}", rh.GetAdjustment).Methods(http.MethodGet)
	mux.HandleFunc("/v1/inventory/reservations", rh.ReserveStock).Methods(http.MethodPost)
	mux.HandleFunc("/v1/inventory/releases", rh.ReleaseStock).Methods(http.MethodPost)
	mux.HandleFunc("/v1/inventory/movements", rh.ListMovements).Methods(http.MethodGet)
	mux.HandleFunc("/v1/inventory/stock/{variant_id}", rh.ListStockByVariant).Methods(http.MethodGet)
	mux.HandleFunc("/v1/inventory/stock/{variant_id}/{warehouse_id}", rh.GetStock).Methods(http.MethodGet)
	mux.HandleFunc("/v1/inventory/stock/{variant_id}/{warehouse_id}/verify", rh.VerifyLedger).Methods(http.MethodGet)

	// transfers
	mux.HandleFunc("/v1/transfers", rh.CreateTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/v1/transfers", rh.ListTransfers).Methods(http.MethodGet)
	mux.HandleFunc("/v1/transfers/{id}", rh.GetTransfer).Methods(http.MethodGet)
	mux.HandleFunc("/v1/transfers/{id}", rh.UpdateTransfer).Methods(http.MethodPut)
	mux.HandleFunc("/v1/transfers/{id}/dispatch", rh.DispatchTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/v1/transfers/{id}/receive", rh.ReceiveTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/v1/transfers/{id}/cancel", rh.CancelTransfer).Methods(http.MethodPost)

	// warehouses
	mux.HandleFunc("/v1/warehouses", rh.CreateWarehouse).Methods(http.MethodPost)
	mux.HandleFunc("/v1/warehouses", rh.ListWarehouses).Methods(http.MethodGet)
	mux.HandleFunc("/v1/warehouses/{id}", rh.GetWarehouse).Methods(http.MethodGet)
	mux.HandleFunc("/v1/warehouses/{id}", rh.UpdateWarehouse).Methods(http.MethodPut)
	mux.HandleFunc("/v1/warehouses/{id}", rh.DeleteWarehouse).Methods(http.MethodDelete)
	mux.HandleFunc("/v1/warehouses/{id}/activate", rh.ActivateWarehouse).Methods(http.MethodPost)
	mux.HandleFunc("/v1/warehouses/{id}/deactivate", rh.DeactivateWarehouse).Methods(http.MethodPost)

	// internal routes, called by the order service
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalKeyHash))
	internal.HandleFunc("/v1/inventory/releases", rh.InternalReleaseStock).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(authApp))

	return mux
}

// Health handler
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, nil)
}
