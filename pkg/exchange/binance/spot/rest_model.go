package spot

import (
	"time"

	"mbx/pkg/core"
)

// ServerTime is the exchange clock.
type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// Time returns the server time as a time.Time.
func (s ServerTime) Time() time.Time {
	return time.UnixMilli(s.ServerTime)
}

// RateLimit is one limit advertised by the exchange.
type RateLimit struct {
	RateLimitType string `json:"rateLimitType"`
	Interval      string `json:"interval"`
	IntervalNum   int    `json:"intervalNum"`
	Limit         int    `json:"limit"`
}

// Filter is a symbol or exchange trading rule. Only the fields relevant to
// FilterType are populated.
type Filter struct {
	FilterType       string       `json:"filterType"`
	MinPrice         core.Decimal `json:"minPrice"`
	MaxPrice         core.Decimal `json:"maxPrice"`
	TickSize         core.Decimal `json:"tickSize"`
	MinQty           core.Decimal `json:"minQty"`
	MaxQty           core.Decimal `json:"maxQty"`
	StepSize         core.Decimal `json:"stepSize"`
	MinNotional      core.Decimal `json:"minNotional"`
	MaxNotional      core.Decimal `json:"maxNotional"`
	Limit            int          `json:"limit,omitempty"`
	MaxNumOrders     int          `json:"maxNumOrders,omitempty"`
	MaxNumAlgoOrders int          `json:"maxNumAlgoOrders,omitempty"`
}

// Symbol describes a spot trading pair.
type Symbol struct {
	Symbol                     string   `json:"symbol"`
	Status                     string   `json:"status"`
	BaseAsset                  string   `json:"baseAsset"`
	BaseAssetPrecision         int      `json:"baseAssetPrecision"`
	QuoteAsset                 string   `json:"quoteAsset"`
	QuotePrecision             int      `json:"quotePrecision"`
	QuoteAssetPrecision        int      `json:"quoteAssetPrecision"`
	OrderTypes                 []string `json:"orderTypes"`
	IcebergAllowed             bool     `json:"icebergAllowed"`
	OcoAllowed                 bool     `json:"ocoAllowed"`
	QuoteOrderQtyMarketAllowed bool     `json:"quoteOrderQtyMarketAllowed"`
	IsSpotTradingAllowed       bool     `json:"isSpotTradingAllowed"`
	IsMarginTradingAllowed     bool     `json:"isMarginTradingAllowed"`
	Filters                    []Filter `json:"filters"`
	Permissions                []string `json:"permissions"`
}

// Filter returns the symbol filter of the given type.
func (s Symbol) Filter(filterType string) (Filter, bool) {
	for _, f := range s.Filters {
		if f.FilterType == filterType {
			return f, true
		}
	}
	return Filter{}, false
}

// ExchangeInformation holds the current trading rules and symbol list.
type ExchangeInformation struct {
	Timezone        string      `json:"timezone"`
	ServerTime      int64       `json:"serverTime"`
	RateLimits      []RateLimit `json:"rateLimits"`
	ExchangeFilters []Filter    `json:"exchangeFilters"`
	Symbols         []Symbol    `json:"symbols"`
}

// Symbol looks up a symbol by name.
func (e *ExchangeInformation) Symbol(name string) (Symbol, error) {
	for _, s := range e.Symbols {
		if s.Symbol == name {
			return s, nil
		}
	}
	return Symbol{}, &core.NotFoundError{Kind: "symbol", Key: name}
}

// Balance is the holding of one asset.
type Balance struct {
	Asset  string       `json:"asset"`
	Free   core.Decimal `json:"free"`
	Locked core.Decimal `json:"locked"`
}

// AccountInformation is the account snapshot returned by GetAccount.
// Balances keep the order the exchange sent them in.
type AccountInformation struct {
	MakerCommission  int64     `json:"makerCommission"`
	TakerCommission  int64     `json:"takerCommission"`
	BuyerCommission  int64     `json:"buyerCommission"`
	SellerCommission int64     `json:"sellerCommission"`
	CanTrade         bool      `json:"canTrade"`
	CanWithdraw      bool      `json:"canWithdraw"`
	CanDeposit       bool      `json:"canDeposit"`
	AccountType      string    `json:"accountType"`
	UpdateTime       int64     `json:"updateTime"`
	Balances         []Balance `json:"balances"`
	Permissions      []string  `json:"permissions"`
}

// Fill is one execution of a FULL order response.
type Fill struct {
	Price           core.Decimal `json:"price"`
	Qty             core.Decimal `json:"qty"`
	Commission      core.Decimal `json:"commission"`
	CommissionAsset string       `json:"commissionAsset"`
	TradeID         *uint64      `json:"tradeId,omitempty"`
}

// Transaction is the result of PlaceOrder. Fields beyond the identifiers are
// only present for RESULT and FULL responses.
type Transaction struct {
	Symbol              string           `json:"symbol"`
	OrderID             uint64           `json:"orderId"`
	OrderListID         int64            `json:"orderListId"`
	ClientOrderID       string           `json:"clientOrderId"`
	TransactTime        int64            `json:"transactTime"`
	Price               core.Decimal     `json:"price"`
	OrigQty             core.Decimal     `json:"origQty"`
	ExecutedQty         core.Decimal     `json:"executedQty"`
	CummulativeQuoteQty core.Decimal     `json:"cummulativeQuoteQty"`
	Status              core.OrderStatus `json:"status"`
	TimeInForce         core.TimeInForce `json:"timeInForce"`
	Type                core.OrderType   `json:"type"`
	Side                core.OrderSide   `json:"side"`
	Fills               []Fill           `json:"fills"`
}

// Order is an order as reported by the status and listing endpoints.
type Order struct {
	Symbol              string           `json:"symbol"`
	OrderID             uint64           `json:"orderId"`
	OrderListID         int64            `json:"orderListId"`
	ClientOrderID       string           `json:"clientOrderId"`
	Price               core.Decimal     `json:"price"`
	OrigQty             core.Decimal     `json:"origQty"`
	ExecutedQty         core.Decimal     `json:"executedQty"`
	CummulativeQuoteQty core.Decimal     `json:"cummulativeQuoteQty"`
	Status              core.OrderStatus `json:"status"`
	TimeInForce         core.TimeInForce `json:"timeInForce"`
	Type                core.OrderType   `json:"type"`
	Side                core.OrderSide   `json:"side"`
	StopPrice           core.Decimal     `json:"stopPrice"`
	IcebergQty          core.Decimal     `json:"icebergQty"`
	Time                int64            `json:"time"`
	UpdateTime          int64            `json:"updateTime"`
	IsWorking           bool             `json:"isWorking"`
	OrigQuoteOrderQty   core.Decimal     `json:"origQuoteOrderQty"`
}

// OrderCanceled is the result of CancelOrder.
type OrderCanceled struct {
	Symbol              string           `json:"symbol"`
	OrigClientOrderID   string           `json:"origClientOrderId"`
	OrderID             uint64           `json:"orderId"`
	OrderListID         int64            `json:"orderListId"`
	ClientOrderID       string           `json:"clientOrderId"`
	Price               core.Decimal     `json:"price"`
	OrigQty             core.Decimal     `json:"origQty"`
	ExecutedQty         core.Decimal     `json:"executedQty"`
	CummulativeQuoteQty core.Decimal     `json:"cummulativeQuoteQty"`
	Status              core.OrderStatus `json:"status"`
	TimeInForce         core.TimeInForce `json:"timeInForce"`
	Type                core.OrderType   `json:"type"`
	Side                core.OrderSide   `json:"side"`
}

// OrderCanceledReplaced is the result of CancelReplaceOrder.
type OrderCanceledReplaced struct {
	CancelResult     core.CancelReplaceResult `json:"cancelResult"`
	NewOrderResult   core.CancelReplaceResult `json:"newOrderResult"`
	CancelResponse   OrderCanceled            `json:"cancelResponse"`
	NewOrderResponse *Transaction             `json:"newOrderResponse,omitempty"`
}

// TestResponse is the empty body returned by the test endpoints.
type TestResponse struct{}

// TradeHistory is one of the account's trades.
type TradeHistory struct {
	ID              uint64       `json:"id"`
	Symbol          string       `json:"symbol"`
	OrderID         uint64       `json:"orderId"`
	OrderListID     int64        `json:"orderListId"`
	Price           core.Decimal `json:"price"`
	Qty             core.Decimal `json:"qty"`
	QuoteQty        core.Decimal `json:"quoteQty"`
	Commission      core.Decimal `json:"commission"`
	CommissionAsset string       `json:"commissionAsset"`
	Time            int64        `json:"time"`
	IsBuyer         bool         `json:"isBuyer"`
	IsMaker         bool         `json:"isMaker"`
	IsBestMatch     bool         `json:"isBestMatch"`
}
