package spot

import (
	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
)

// OrderRequest places a new order. Optional fields are nil when absent.
type OrderRequest struct {
	Symbol        string            `param:"symbol"`
	Side          core.OrderSide    `param:"side"`
	Type          core.OrderType    `param:"type"`
	TimeInForce   *core.TimeInForce `param:"timeInForce"`
	Quantity      *core.Decimal     `param:"quantity"`
	QuoteOrderQty *core.Decimal     `param:"quoteOrderQty"`
	Price         *core.Decimal     `param:"price"`
	// NewClientOrderID is generated by the exchange when absent.
	NewClientOrderID *string `param:"newClientOrderId"`
	// StopPrice applies to stop loss and take profit order types.
	StopPrice *core.Decimal `param:"stopPrice"`
	// IcebergQty turns a limit order into an iceberg order. Requires GTC.
	IcebergQty       *core.Decimal           `param:"icebergQty"`
	NewOrderRespType *core.OrderResponseType `param:"newOrderRespType"`
	// RecvWindow overrides the Account receive window. Nil or zero keeps the default.
	RecvWindow *uint64 `param:"-"`
}

// IcebergQuantity implements binance.IcebergOrder.
func (r *OrderRequest) IcebergQuantity() *core.Decimal { return r.IcebergQty }

// TimeInForceValue implements binance.IcebergOrder.
func (r *OrderRequest) TimeInForceValue() *core.TimeInForce { return r.TimeInForce }

// Validate checks the request locally before it is sent.
func (r *OrderRequest) Validate() error {
	return binance.ValidateIceberg(r)
}

// OrderCancellation cancels an active order identified by OrderID or OrigClientOrderID.
type OrderCancellation struct {
	Symbol            string  `param:"symbol"`
	OrderID           *uint64 `param:"orderId"`
	OrigClientOrderID *string `param:"origClientOrderId"`
	// NewClientOrderID identifies this cancel.
	NewClientOrderID *string `param:"newClientOrderId"`
	// RecvWindow overrides the Account receive window. Nil or zero keeps the default.
	RecvWindow *uint64 `param:"-"`
}

// CancelReplaceRequest cancels an existing order and places a new one on the same symbol.
type CancelReplaceRequest struct {
	Symbol                  string                  `param:"symbol"`
	Side                    core.OrderSide          `param:"side"`
	Type                    core.OrderType          `param:"type"`
	CancelReplaceMode       core.CancelReplaceMode  `param:"cancelReplaceMode"`
	TimeInForce             *core.TimeInForce       `param:"timeInForce"`
	Quantity                *core.Decimal           `param:"quantity"`
	QuoteOrderQty           *core.Decimal           `param:"quoteOrderQty"`
	Price                   *core.Decimal           `param:"price"`
	CancelNewClientOrderID  *string                 `param:"cancelNewClientOrderId"`
	CancelOrigClientOrderID *string                 `param:"cancelOrigClientOrderId"`
	CancelOrderID           *uint64                 `param:"cancelOrderId"`
	NewClientOrderID        *string                 `param:"newClientOrderId"`
	StopPrice               *core.Decimal           `param:"stopPrice"`
	IcebergQty              *core.Decimal           `param:"icebergQty"`
	NewOrderRespType        *core.OrderResponseType `param:"newOrderRespType"`
	// RecvWindow overrides the Account receive window. Nil or zero keeps the default.
	RecvWindow *uint64 `param:"-"`
}

// IcebergQuantity implements binance.IcebergOrder.
func (r *CancelReplaceRequest) IcebergQuantity() *core.Decimal { return r.IcebergQty }

// TimeInForceValue implements binance.IcebergOrder.
func (r *CancelReplaceRequest) TimeInForceValue() *core.TimeInForce { return r.TimeInForce }

// Validate checks the request locally before it is sent.
func (r *CancelReplaceRequest) Validate() error {
	return binance.ValidateIceberg(r)
}

// OrderStatusRequest looks up a single order.
type OrderStatusRequest struct {
	Symbol            string  `param:"symbol"`
	OrderID           *uint64 `param:"orderId"`
	OrigClientOrderID *string `param:"origClientOrderId"`
	// RecvWindow overrides the Account receive window. Nil or zero keeps the default.
	RecvWindow *uint64 `param:"-"`
}

// OrdersQuery pages through every order of a symbol.
type OrdersQuery struct {
	Symbol    string  `param:"symbol"`
	OrderID   *uint64 `param:"orderId"`
	StartTime *uint64 `param:"startTime"`
	EndTime   *uint64 `param:"endTime"`
	// Limit defaults to 500, max 1000.
	Limit *uint32 `param:"limit"`
	// RecvWindow overrides the Account receive window. Nil or zero keeps the default.
	RecvWindow *uint64 `param:"-"`
}
