package constant

type WarehouseStatus int

const (
	WarehouseStatusActive   WarehouseStatus = 1
	WarehouseStatusInactive WarehouseStatus = 2
)
