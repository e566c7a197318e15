package constant

// Routing keys on the inventory events exchange.
const (
	EventStockAdjusted          = "stock.adjusted"
	EventStockReserved          = "stock.reserved"
	EventStockReleased          = "stock.released"
	EventStockBelowReorderPoint = "stock.below_reorder_point"
	EventTransferCreated        = "transfer.created"
	EventTransferDispatched     = "transfer.dispatched"
	EventTransferReceived       = "transfer.received"
	EventTransferCanceled       = "transfer.canceled"
)
