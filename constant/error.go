package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrValidation
	ErrUnauthorize
	ErrForbidden
	ErrInsufficientStock
	ErrInsufficientReserved
	ErrInvalidState
	ErrEmptyTransfer
	ErrConflict
	ErrWarehouseInactive
	ErrWarehouseHasReservedStock
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                   "success",
	ErrInternal:                  "error internal",
	ErrNotFound:                  "data not found",
	ErrInvalidRequest:            "invalid request",
	ErrValidation:                "validation failed",
	ErrUnauthorize:               "unauthorize request",
	ErrForbidden:                 "forbidden",
	ErrInsufficientStock:         "insufficient stock",
	ErrInsufficientReserved:      "insufficient reserved stock",
	ErrInvalidState:              "invalid transfer state",
	ErrEmptyTransfer:             "transfer has no items",
	ErrConflict:                  "conflict with existing data",
	ErrWarehouseInactive:         "warehouse is inactive",
	ErrWarehouseHasReservedStock: "warehouse still has reserved stock",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                   http.StatusOK,
	ErrInternal:                  http.StatusInternalServerError,
	ErrNotFound:                  http.StatusNotFound,
	ErrInvalidRequest:            http.StatusBadRequest,
	ErrValidation:                http.StatusUnprocessableEntity,
	ErrUnauthorize:               http.StatusUnauthorized,
	ErrForbidden:                 http.StatusForbidden,
	ErrInsufficientStock:         http.StatusUnprocessableEntity,
	ErrInsufficientReserved:      http.StatusUnprocessableEntity,
	ErrInvalidState:              http.StatusConflict,
	ErrEmptyTransfer:             http.StatusUnprocessableEntity,
	ErrConflict:                  http.StatusConflict,
	ErrWarehouseInactive:         http.StatusUnprocessableEntity,
	ErrWarehouseHasReservedStock: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                   "0000",
	ErrInternal:                  "0001",
	ErrNotFound:                  "0002",
	ErrInvalidRequest:            "0003",
	ErrValidation:                "0004",
	ErrUnauthorize:               "0005",
	ErrForbidden:                 "0006",
	ErrInsufficientStock:         "1001",
	ErrInsufficientReserved:      "1002",
	ErrInvalidState:              "1003",
	ErrEmptyTransfer:             "1004",
	ErrConflict:                  "1005",
	ErrWarehouseInactive:         "1006",
	ErrWarehouseHasReservedStock: "1007",
}
