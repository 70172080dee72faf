package futures

import (
	"mbx/pkg/core"
)

// HistoryQuery selects a window of history for a symbol. It is shared by the
// funding rate, historical trade and premium index kline endpoints of both
// futures venues.
type HistoryQuery struct {
	Symbol    string  `param:"symbol"`
	Interval  *string `param:"interval"`
	Period    *string `param:"period"`
	FromID    *uint64 `param:"fromId"`
	StartTime *uint64 `param:"startTime"`
	EndTime   *uint64 `param:"endTime"`
	Limit     *uint16 `param:"limit"`
}

// NewHistoryQuery builds a HistoryQuery. A zero limit is omitted so the
// exchange default applies.
func NewHistoryQuery(symbol string, startTime, endTime *uint64, limit uint16) HistoryQuery {
	q := HistoryQuery{Symbol: symbol, StartTime: startTime, EndTime: endTime}
	if limit > 0 {
		q.Limit = &limit
	}
	return q
}

// AccountBalance is the futures wallet balance of one asset.
type AccountBalance struct {
	AccountAlias       string       `json:"accountAlias"`
	Asset              string       `json:"asset"`
	Balance            core.Decimal `json:"balance"`
	WithdrawAvailable  core.Decimal `json:"withdrawAvailable"`
	CrossWalletBalance core.Decimal `json:"crossWalletBalance"`
	CrossUnPnl         core.Decimal `json:"crossUnPnl"`
	AvailableBalance   core.Decimal `json:"availableBalance"`
	MaxWithdrawAmount  core.Decimal `json:"maxWithdrawAmount"`
	MarginAvailable    bool         `json:"marginAvailable"`
	UpdateTime         int64        `json:"updateTime"`
}

// RateLimit is one limit advertised by the exchange.
type RateLimit struct {
	RateLimitType string `json:"rateLimitType"`
	Interval      string `json:"interval"`
	IntervalNum   int    `json:"intervalNum"`
	Limit         int    `json:"limit"`
}

// Filter is a symbol trading rule. Only the fields relevant to FilterType are populated.
type Filter struct {
	FilterType        string       `json:"filterType"`
	MinPrice          core.Decimal `json:"minPrice"`
	MaxPrice          core.Decimal `json:"maxPrice"`
	TickSize          core.Decimal `json:"tickSize"`
	MinQty            core.Decimal `json:"minQty"`
	MaxQty            core.Decimal `json:"maxQty"`
	StepSize          core.Decimal `json:"stepSize"`
	Notional          core.Decimal `json:"notional"`
	MultiplierUp      core.Decimal `json:"multiplierUp"`
	MultiplierDown    core.Decimal `json:"multiplierDown"`
	MultiplierDecimal core.Decimal `json:"multiplierDecimal"`
	Limit             int          `json:"limit,omitempty"`
}

// Asset is a margin asset of the futures venue.
type Asset struct {
	Asset             string       `json:"asset"`
	MarginAvailable   bool         `json:"marginAvailable"`
	AutoAssetExchange core.Decimal `json:"autoAssetExchange"`
}

// Symbol describes a futures contract. Coin-margined contracts also carry
// ContractSize and ContractStatus.
type Symbol struct {
	Symbol                string       `json:"symbol"`
	Pair                  string       `json:"pair"`
	ContractType          string       `json:"contractType"`
	DeliveryDate          int64        `json:"deliveryDate"`
	OnboardDate           int64        `json:"onboardDate"`
	Status                string       `json:"status,omitempty"`
	ContractStatus        string       `json:"contractStatus,omitempty"`
	ContractSize          int64        `json:"contractSize,omitempty"`
	MaintMarginPercent    core.Decimal `json:"maintMarginPercent"`
	RequiredMarginPercent core.Decimal `json:"requiredMarginPercent"`
	BaseAsset             string       `json:"baseAsset"`
	QuoteAsset            string       `json:"quoteAsset"`
	MarginAsset           string       `json:"marginAsset"`
	PricePrecision        int          `json:"pricePrecision"`
	QuantityPrecision     int          `json:"quantityPrecision"`
	BaseAssetPrecision    int          `json:"baseAssetPrecision"`
	QuotePrecision        int          `json:"quotePrecision"`
	UnderlyingType        string       `json:"underlyingType"`
	UnderlyingSubType     []string     `json:"underlyingSubType"`
	TriggerProtect        core.Decimal `json:"triggerProtect"`
	LiquidationFee        core.Decimal `json:"liquidationFee"`
	MarketTakeBound       core.Decimal `json:"marketTakeBound"`
	Filters               []Filter     `json:"filters"`
	OrderTypes            []string     `json:"orderTypes"`
	TimeInForce           []string     `json:"timeInForce"`
}

// ExchangeInformation holds the trading rules of a futures venue.
type ExchangeInformation struct {
	Timezone        string      `json:"timezone"`
	ServerTime      int64       `json:"serverTime"`
	RateLimits      []RateLimit `json:"rateLimits"`
	ExchangeFilters []Filter    `json:"exchangeFilters"`
	Assets          []Asset     `json:"assets,omitempty"`
	Symbols         []Symbol    `json:"symbols"`
}

// Symbol looks up a contract by name.
func (e *ExchangeInformation) Symbol(name string) (Symbol, error) {
	for _, s := range e.Symbols {
		if s.Symbol == name {
			return s, nil
		}
	}
	return Symbol{}, &core.NotFoundError{Kind: "symbol", Key: name}
}

// FundingRate is one funding event.
type FundingRate struct {
	Symbol      string       `json:"symbol"`
	FundingTime int64        `json:"fundingTime"`
	FundingRate core.Decimal `json:"fundingRate"`
	MarkPrice   core.Decimal `json:"markPrice"`
}

// Trade is a public trade as returned by the historical trades endpoint.
// BaseQty is only set by the coin-margined venue.
type Trade struct {
	ID           uint64       `json:"id"`
	Price        core.Decimal `json:"price"`
	Qty          core.Decimal `json:"qty"`
	QuoteQty     core.Decimal `json:"quoteQty"`
	BaseQty      core.Decimal `json:"baseQty"`
	Time         int64        `json:"time"`
	IsBuyerMaker bool         `json:"isBuyerMaker"`
}
