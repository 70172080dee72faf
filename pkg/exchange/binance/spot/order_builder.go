package spot

import (
	"fmt"

	"github.com/google/uuid"

	"mbx/pkg/core"
)

// OrderBuilder provides a fluent interface for constructing order requests.
// It accumulates parse errors and reports them on Build.
//
// Example:
//
//	order, err := spot.NewOrderBuilder("BTCUSDT").
//	    Buy().
//	    Limit().
//	    Price("50000").
//	    Quantity("0.001").
//	    GTC().
//	    Build()
type OrderBuilder struct {
	order *OrderRequest
	err   error
}

// NewOrderBuilder creates a new order builder for the given trading symbol.
func NewOrderBuilder(symbol string) *OrderBuilder {
	return &OrderBuilder{
		order: &OrderRequest{Symbol: symbol},
	}
}

// Side sets the order side (buy or sell).
func (b *OrderBuilder) Side(side core.OrderSide) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.order.Side = side
	return b
}

// Buy sets the order side to buy.
func (b *OrderBuilder) Buy() *OrderBuilder {
	return b.Side(core.SideBuy)
}

// Sell sets the order side to sell.
func (b *OrderBuilder) Sell() *OrderBuilder {
	return b.Side(core.SideSell)
}

// Type sets the order type (market, limit, etc.).
func (b *OrderBuilder) Type(orderType core.OrderType) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.order.Type = orderType
	return b
}

// Market sets the order type to market.
func (b *OrderBuilder) Market() *OrderBuilder {
	return b.Type(core.TypeMarket)
}

// Limit sets the order type to limit.
func (b *OrderBuilder) Limit() *OrderBuilder {
	return b.Type(core.TypeLimit)
}

func (b *OrderBuilder) decimal(field, value string, dest **core.Decimal) *OrderBuilder {
	if b.err != nil {
		return b
	}
	d, err := core.NewDecimal(value)
	if err != nil {
		b.err = fmt.Errorf("parse %s: %w", field, err)
		return b
	}
	*dest = &d
	return b
}

// Price sets the limit price from a string representation.
func (b *OrderBuilder) Price(price string) *OrderBuilder {
	return b.decimal("price", price, &b.order.Price)
}

// Quantity sets the base asset quantity from a string representation.
func (b *OrderBuilder) Quantity(qty string) *OrderBuilder {
	return b.decimal("quantity", qty, &b.order.Quantity)
}

// QuoteQuantity sets the quote asset amount of a market order.
func (b *OrderBuilder) QuoteQuantity(qty string) *OrderBuilder {
	return b.decimal("quote order quantity", qty, &b.order.QuoteOrderQty)
}

// StopPrice sets the trigger price of stop and take profit orders.
func (b *OrderBuilder) StopPrice(price string) *OrderBuilder {
	return b.decimal("stop price", price, &b.order.StopPrice)
}

// IcebergQuantity sets the visible quantity of an iceberg order.
func (b *OrderBuilder) IcebergQuantity(qty string) *OrderBuilder {
	return b.decimal("iceberg quantity", qty, &b.order.IcebergQty)
}

// TimeInForce sets the time-in-force policy for the order.
func (b *OrderBuilder) TimeInForce(tif core.TimeInForce) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.order.TimeInForce = &tif
	return b
}

// GTC sets the time-in-force to Good-Till-Cancelled.
func (b *OrderBuilder) GTC() *OrderBuilder {
	return b.TimeInForce(core.GTC)
}

// IOC sets the time-in-force to Immediate-Or-Cancel.
func (b *OrderBuilder) IOC() *OrderBuilder {
	return b.TimeInForce(core.IOC)
}

// FOK sets the time-in-force to Fill-Or-Kill.
func (b *OrderBuilder) FOK() *OrderBuilder {
	return b.TimeInForce(core.FOK)
}

// ResponseType selects the detail level of the order response.
func (b *OrderBuilder) ResponseType(t core.OrderResponseType) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.order.NewOrderRespType = &t
	return b
}

// ClientOrderID sets a client-assigned identifier for order tracking.
func (b *OrderBuilder) ClientOrderID(id string) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.order.NewClientOrderID = &id
	return b
}

// WithGeneratedClientOrderID assigns a random UUID as the client order ID.
func (b *OrderBuilder) WithGeneratedClientOrderID() *OrderBuilder {
	return b.ClientOrderID(uuid.NewString())
}

// RecvWindow overrides the receive window for this order.
func (b *OrderBuilder) RecvWindow(ms uint64) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.order.RecvWindow = &ms
	return b
}

// Build validates and returns the constructed order.
// Returns an error if any required fields are missing or invalid.
func (b *OrderBuilder) Build() (*OrderRequest, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := validateOrder(b.order); err != nil {
		return nil, err
	}

	return b.order, nil
}

func validateOrder(order *OrderRequest) error {
	if order.Symbol == "" {
		return core.NewValidationError("symbol", "symbol is required")
	}

	if order.Quantity == nil && order.QuoteOrderQty == nil {
		return core.NewValidationError("quantity", "quantity or quote order quantity is required")
	}
	for _, q := range []*core.Decimal{order.Quantity, order.QuoteOrderQty} {
		if q != nil && (q.IsZero() || q.Negative) {
			return core.NewValidationError("quantity", "quantity must be positive")
		}
	}

	switch order.Type {
	case core.TypeLimit, core.TypeStopLossLimit, core.TypeTakeProfitLimit, core.TypeLimitMaker:
		if order.Price == nil || order.Price.IsZero() || order.Price.Negative {
			return core.NewValidationError("price", "price must be positive for limit orders")
		}
	}

	if order.Side != core.SideBuy && order.Side != core.SideSell {
		return core.NewValidationError("side", "invalid order side")
	}

	if order.Type < core.TypeMarket || order.Type > core.TypeLimitMaker {
		return core.NewValidationError("type", "invalid spot order type")
	}

	return order.Validate()
}
