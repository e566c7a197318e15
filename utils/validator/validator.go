package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/inventory-service/constant"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent) and registers the
// inventory enum tags: adjustment_mode, reference_kind, transfer_status.
func Init() {
	once.Do(func() {
		vv := gpvalidator.New()
		_ = vv.RegisterValidation("adjustment_mode", func(fl gpvalidator.FieldLevel) bool {
			return constant.AdjustmentMode(fl.Field().String()).Valid()
		})
		_ = vv.RegisterValidation("reference_kind", func(fl gpvalidator.FieldLevel) bool {
			return constant.ReferenceKind(fl.Field().String()).Valid()
		})
		_ = vv.RegisterValidation("transfer_status", func(fl gpvalidator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || constant.TransferStatus(s).Valid()
		})
		v = vv
	})
}

// ValidateStruct validates a struct using go-playground/validator. Safe for concurrent
// use before Init has been called.
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}
