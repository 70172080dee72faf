package core

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// OrderSide represents the direction of an order (buy or sell).
type OrderSide int

// Order side constants define the direction of a trade.
const (
	// SideBuy indicates an order to purchase an asset.
	SideBuy OrderSide = iota
	// SideSell indicates an order to sell an asset.
	SideSell
)

var orderSideNames = []string{"BUY", "SELL"}

// String returns the wire representation of the order side ("BUY" or "SELL").
func (s OrderSide) String() string { return enumName(orderSideNames, int(s)) }

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) { return quote(s.String()), nil }

// UnmarshalJSON implements json.Unmarshaler for OrderSide.
// It accepts both uppercase and lowercase formats.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum(data, "order side", orderSideNames)
	if err != nil {
		return err
	}
	*s = OrderSide(i)
	return nil
}

// ParseOrderSide parses "BUY" or "SELL" in any case.
func ParseOrderSide(s string) (OrderSide, error) {
	i, err := parseEnum(s, "order side", orderSideNames)
	return OrderSide(i), err
}

// OrderType represents the type of order to place on an exchange.
type OrderType int

// Order type constants define how an order is executed.
const (
	// TypeMarket executes immediately at the best available price.
	TypeMarket OrderType = iota
	// TypeLimit executes at a specified price or better.
	TypeLimit
	// TypeStopLoss triggers a market order when price reaches stop price.
	TypeStopLoss
	// TypeStopLossLimit triggers a limit order when price reaches stop price.
	TypeStopLossLimit
	// TypeTakeProfit triggers a market order when price reaches target.
	TypeTakeProfit
	// TypeTakeProfitLimit triggers a limit order when price reaches target.
	TypeTakeProfitLimit
	// TypeLimitMaker is a limit order rejected if it would match immediately.
	TypeLimitMaker
	// TypeStop is the futures stop-limit order.
	TypeStop
	// TypeStopMarket is the futures stop-market order.
	TypeStopMarket
	// TypeTakeProfitMarket is the futures take-profit market order.
	TypeTakeProfitMarket
	// TypeTrailingStopMarket is the futures trailing stop order.
	TypeTrailingStopMarket
)

var orderTypeNames = []string{
	"MARKET",
	"LIMIT",
	"STOP_LOSS",
	"STOP_LOSS_LIMIT",
	"TAKE_PROFIT",
	"TAKE_PROFIT_LIMIT",
	"LIMIT_MAKER",
	"STOP",
	"STOP_MARKET",
	"TAKE_PROFIT_MARKET",
	"TRAILING_STOP_MARKET",
}

// String returns the wire representation of the order type.
func (t OrderType) String() string { return enumName(orderTypeNames, int(t)) }

// MarshalJSON implements json.Marshaler for OrderType.
func (t OrderType) MarshalJSON() ([]byte, error) { return quote(t.String()), nil }

// UnmarshalJSON implements json.Unmarshaler for OrderType.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum(data, "order type", orderTypeNames)
	if err != nil {
		return err
	}
	*t = OrderType(i)
	return nil
}

// ParseOrderType parses an order type name in any case.
func ParseOrderType(s string) (OrderType, error) {
	i, err := parseEnum(s, "order type", orderTypeNames)
	return OrderType(i), err
}

// OrderStatus represents the current state of an order.
type OrderStatus int

// Order status constants define the lifecycle state of an order.
const (
	// StatusNew indicates the order has been accepted by the exchange.
	StatusNew OrderStatus = iota
	// StatusPartiallyFilled indicates the order has been partially filled.
	StatusPartiallyFilled
	// StatusFilled indicates the order has been completely filled.
	StatusFilled
	// StatusCanceled indicates the order has been canceled.
	StatusCanceled
	// StatusPendingCancel indicates a cancel request has been submitted.
	StatusPendingCancel
	// StatusRejected indicates the order was rejected by the exchange.
	StatusRejected
	// StatusExpired indicates the order has expired.
	StatusExpired
	// StatusExpiredInMatch indicates the order expired due to self-trade prevention.
	StatusExpiredInMatch
	// StatusNewInsurance is a futures liquidation order with insurance fund.
	StatusNewInsurance
	// StatusNewADL is a futures auto-deleveraging order.
	StatusNewADL
)

var orderStatusNames = []string{
	"NEW",
	"PARTIALLY_FILLED",
	"FILLED",
	"CANCELED",
	"PENDING_CANCEL",
	"REJECTED",
	"EXPIRED",
	"EXPIRED_IN_MATCH",
	"NEW_INSURANCE",
	"NEW_ADL",
}

// String returns the wire representation of the order status.
func (s OrderStatus) String() string { return enumName(orderStatusNames, int(s)) }

// IsTerminal returns true if the order is in a terminal state (no further changes possible).
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusFilled, StatusCanceled, StatusRejected, StatusExpired, StatusExpiredInMatch:
		return true
	}
	return false
}

// MarshalJSON implements json.Marshaler for OrderStatus.
func (s OrderStatus) MarshalJSON() ([]byte, error) { return quote(s.String()), nil }

// UnmarshalJSON implements json.Unmarshaler for OrderStatus.
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum(data, "order status", orderStatusNames)
	if err != nil {
		return err
	}
	*s = OrderStatus(i)
	return nil
}

// TimeInForce defines how long an order remains active.
type TimeInForce int

// Time in force constants define order lifetime behavior.
const (
	// GTC (Good Till Canceled) keeps the order active until filled or canceled.
	GTC TimeInForce = iota
	// IOC (Immediate Or Cancel) requires immediate execution; unfilled portion is canceled.
	IOC
	// FOK (Fill Or Kill) requires complete immediate execution or cancellation.
	FOK
	// GTX (Good Till Crossing) is the futures post-only mode.
	GTX
	// GTD (Good Till Date) expires at goodTillDate on futures.
	GTD
)

var timeInForceNames = []string{"GTC", "IOC", "FOK", "GTX", "GTD"}

// String returns the wire representation of time in force.
func (t TimeInForce) String() string { return enumName(timeInForceNames, int(t)) }

// MarshalJSON implements json.Marshaler for TimeInForce.
func (t TimeInForce) MarshalJSON() ([]byte, error) { return quote(t.String()), nil }

// UnmarshalJSON implements json.Unmarshaler for TimeInForce.
func (t *TimeInForce) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum(data, "time in force", timeInForceNames)
	if err != nil {
		return err
	}
	*t = TimeInForce(i)
	return nil
}

// ParseTimeInForce parses a time in force name in any case.
func ParseTimeInForce(s string) (TimeInForce, error) {
	i, err := parseEnum(s, "time in force", timeInForceNames)
	return TimeInForce(i), err
}

// OrderResponseType selects how much detail the exchange returns for a new order.
type OrderResponseType int

const (
	ResponseAck OrderResponseType = iota
	ResponseResult
	ResponseFull
)

var orderResponseTypeNames = []string{"ACK", "RESULT", "FULL"}

func (t OrderResponseType) String() string { return enumName(orderResponseTypeNames, int(t)) }

func (t OrderResponseType) MarshalJSON() ([]byte, error) { return quote(t.String()), nil }

func (t *OrderResponseType) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum(data, "order response type", orderResponseTypeNames)
	if err != nil {
		return err
	}
	*t = OrderResponseType(i)
	return nil
}

// CancelReplaceMode controls whether the new order is placed when the cancel leg fails.
type CancelReplaceMode int

const (
	StopOnFailure CancelReplaceMode = iota
	AllowFailure
)

var cancelReplaceModeNames = []string{"STOP_ON_FAILURE", "ALLOW_FAILURE"}

func (m CancelReplaceMode) String() string { return enumName(cancelReplaceModeNames, int(m)) }

func (m CancelReplaceMode) MarshalJSON() ([]byte, error) { return quote(m.String()), nil }

func (m *CancelReplaceMode) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum(data, "cancel replace mode", cancelReplaceModeNames)
	if err != nil {
		return err
	}
	*m = CancelReplaceMode(i)
	return nil
}

// CancelReplaceResult reports the outcome of one leg of a cancel-replace.
type CancelReplaceResult int

const (
	ReplaceSuccess CancelReplaceResult = iota
	ReplaceFailure
	ReplaceNotAttempted
)

var cancelReplaceResultNames = []string{"SUCCESS", "FAILURE", "NOT_ATTEMPTED"}

func (r CancelReplaceResult) String() string { return enumName(cancelReplaceResultNames, int(r)) }

func (r CancelReplaceResult) MarshalJSON() ([]byte, error) { return quote(r.String()), nil }

func (r *CancelReplaceResult) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum(data, "cancel replace result", cancelReplaceResultNames)
	if err != nil {
		return err
	}
	*r = CancelReplaceResult(i)
	return nil
}

// PositionSide is the futures position an order applies to in hedge mode.
type PositionSide int

const (
	PositionBoth PositionSide = iota
	PositionLong
	PositionShort
)

var positionSideNames = []string{"BOTH", "LONG", "SHORT"}

func (p PositionSide) String() string { return enumName(positionSideNames, int(p)) }

func (p PositionSide) MarshalJSON() ([]byte, error) { return quote(p.String()), nil }

func (p *PositionSide) UnmarshalJSON(data []byte) error {
	i, err := unmarshalEnum(data, "position side", positionSideNames)
	if err != nil {
		return err
	}
	*p = PositionSide(i)
	return nil
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "UNKNOWN"
	}
	return names[i]
}

func quote(s string) []byte {
	return []byte(`"` + s + `"`)
}

func unmarshalEnum(data []byte, kind string, names []string) (int, error) {
	var s string
	if err := sonic.Unmarshal(data, &s); err != nil {
		return 0, fmt.Errorf("decode %s: %w", kind, err)
	}
	return parseEnum(s, kind, names)
}

func parseEnum(s, kind string, names []string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}
