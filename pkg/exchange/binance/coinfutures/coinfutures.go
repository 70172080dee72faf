// Package coinfutures wraps the Binance coin-margined futures REST endpoints.
package coinfutures

import (
	"context"
	"net/http"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
	"mbx/pkg/exchange/binance/futures"
)

var (
	routeBalance            = signed(http.MethodGet, "/dapi/v1/balance")
	routeExchangeInfo       = public(http.MethodGet, "/dapi/v1/exchangeInfo")
	routeDepth              = public(http.MethodGet, "/dapi/v1/depth")
	routeHistoricalTrades   = signed(http.MethodGet, "/dapi/v1/historicalTrades").WithWeight(20)
	routePremiumIndex       = public(http.MethodGet, "/dapi/v1/premiumIndex").WithWeight(10)
	routeFundingRate        = signed(http.MethodGet, "/dapi/v1/fundingRate")
	routePremiumIndexKlines = public(http.MethodGet, "/dapi/v1/premiumIndexKlines")
)

func signed(method, path string) core.Route {
	return core.SignedRoute(core.MarketTypeCoinFutures, method, path)
}

func public(method, path string) core.Route {
	return core.PublicRoute(core.MarketTypeCoinFutures, method, path)
}

// MarkPrice is the mark and index price of a contract.
type MarkPrice struct {
	Symbol               string       `json:"symbol"`
	Pair                 string       `json:"pair"`
	MarkPrice            core.Decimal `json:"markPrice"`
	IndexPrice           core.Decimal `json:"indexPrice"`
	EstimatedSettlePrice core.Decimal `json:"estimatedSettlePrice"`
	LastFundingRate      core.Decimal `json:"lastFundingRate"`
	NextFundingTime      int64        `json:"nextFundingTime"`
	InterestRate         core.Decimal `json:"interestRate"`
	Time                 int64        `json:"time"`
}

type markPriceQuery struct {
	Symbol *string `param:"symbol"`
	Pair   *string `param:"pair"`
}

// Account wraps the signed coin-margined account endpoints.
type Account struct {
	client     *binance.Client
	recvWindow uint64
}

// NewAccount returns an Account using the client's default receive window.
func NewAccount(client *binance.Client) *Account {
	return &Account{client: client, recvWindow: client.RecvWindow()}
}

// AccountBalance returns the wallet balance of every coin-margined asset.
func (a *Account) AccountBalance(ctx context.Context) ([]futures.AccountBalance, error) {
	return binance.Call[[]futures.AccountBalance](ctx, a.client, routeBalance, nil, a.recvWindow)
}

// General wraps the coin-margined metadata endpoints.
type General struct {
	client *binance.Client
}

// NewGeneral returns a General bound to client.
func NewGeneral(client *binance.Client) *General {
	return &General{client: client}
}

// ExchangeInfo returns the current trading rules and contract list.
func (g *General) ExchangeInfo(ctx context.Context) (*futures.ExchangeInformation, error) {
	var out futures.ExchangeInformation
	if err := g.client.Do(ctx, routeExchangeInfo, nil, 0, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Market wraps the coin-margined market data endpoints. Historical trades and
// funding rates are signed.
type Market struct {
	client     *binance.Client
	recvWindow uint64
}

// NewMarket returns a Market using the client's default receive window.
func NewMarket(client *binance.Client) *Market {
	return &Market{client: client, recvWindow: client.RecvWindow()}
}

// GetDepth returns the order book of symbol at the default depth.
func (m *Market) GetDepth(ctx context.Context, symbol string) (*binance.OrderBook, error) {
	var out binance.OrderBook
	if err := m.client.Do(ctx, routeDepth.WithWeight(futures.DepthWeight(0)), binance.PairQuery{Symbol: symbol}, 0, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHistoricalTrades returns older trades of symbol, starting at fromID when set.
func (m *Market) GetHistoricalTrades(ctx context.Context, symbol string, fromID *uint64, limit uint16) ([]futures.Trade, error) {
	query := futures.NewHistoryQuery(symbol, nil, nil, limit)
	query.FromID = fromID
	return binance.Call[[]futures.Trade](ctx, m.client, routeHistoricalTrades, query, m.recvWindow)
}

// GetMarkPrices returns mark prices filtered by symbol or pair. Both nil
// returns every contract.
func (m *Market) GetMarkPrices(ctx context.Context, symbol, pair *string) ([]MarkPrice, error) {
	return binance.Call[[]MarkPrice](ctx, m.client, routePremiumIndex, markPriceQuery{Symbol: symbol, Pair: pair}, 0)
}

// GetFundingRate returns the funding rate history of symbol.
func (m *Market) GetFundingRate(ctx context.Context, symbol string, startTime, endTime *uint64, limit uint16) ([]futures.FundingRate, error) {
	query := futures.NewHistoryQuery(symbol, startTime, endTime, limit)
	return binance.Call[[]futures.FundingRate](ctx, m.client, routeFundingRate, query, m.recvWindow)
}

// GetPremiumIndexKlines returns up to limit premium index klines for symbol and
// interval ("1m", "5m", ...).
func (m *Market) GetPremiumIndexKlines(ctx context.Context, symbol, interval string, limit uint16, startTime, endTime *uint64) ([]binance.KlineSummary, error) {
	query := futures.NewHistoryQuery(symbol, startTime, endTime, limit)
	query.Interval = &interval
	return binance.Call[[]binance.KlineSummary](ctx, m.client, routePremiumIndexKlines, query, 0)
}
