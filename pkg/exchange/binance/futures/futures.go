// Package futures wraps the Binance USD-M futures REST endpoints. Its models
// are shared with the coin-margined venue.
package futures

import (
	"context"
	"net/http"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
)

var (
	routeBalance      = core.SignedRoute(core.MarketTypeFutures, http.MethodGet, "/fapi/v2/balance").WithWeight(5)
	routeExchangeInfo = core.PublicRoute(core.MarketTypeFutures, http.MethodGet, "/fapi/v1/exchangeInfo")
	routeDepth        = core.PublicRoute(core.MarketTypeFutures, http.MethodGet, "/fapi/v1/depth")
	routeFundingRate  = core.PublicRoute(core.MarketTypeFutures, http.MethodGet, "/fapi/v1/fundingRate")
)

// Account wraps the signed USD-M futures account endpoints.
type Account struct {
	client     *binance.Client
	recvWindow uint64
}

// NewAccount returns an Account using the client's default receive window.
func NewAccount(client *binance.Client) *Account {
	return &Account{client: client, recvWindow: client.RecvWindow()}
}

// AccountBalance returns the wallet balance of every futures asset.
func (a *Account) AccountBalance(ctx context.Context) ([]AccountBalance, error) {
	return binance.Call[[]AccountBalance](ctx, a.client, routeBalance, nil, a.recvWindow)
}

// General wraps the USD-M futures metadata endpoints.
type General struct {
	client *binance.Client
}

// NewGeneral returns a General bound to client.
func NewGeneral(client *binance.Client) *General {
	return &General{client: client}
}

// ExchangeInfo returns the current trading rules and contract list.
func (g *General) ExchangeInfo(ctx context.Context) (*ExchangeInformation, error) {
	var out ExchangeInformation
	if err := g.client.Do(ctx, routeExchangeInfo, nil, 0, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Market wraps the public USD-M futures market data endpoints.
type Market struct {
	client *binance.Client
}

// NewMarket returns a Market bound to client.
func NewMarket(client *binance.Client) *Market {
	return &Market{client: client}
}

// GetDepth returns the order book of symbol at the default depth.
func (m *Market) GetDepth(ctx context.Context, symbol string) (*binance.OrderBook, error) {
	var out binance.OrderBook
	if err := m.client.Do(ctx, routeDepth.WithWeight(DepthWeight(0)), binance.PairQuery{Symbol: symbol}, 0, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFundingRate returns the funding rate history of symbol.
func (m *Market) GetFundingRate(ctx context.Context, symbol string, startTime, endTime *uint64, limit uint16) ([]FundingRate, error) {
	query := NewHistoryQuery(symbol, startTime, endTime, limit)
	return binance.Call[[]FundingRate](ctx, m.client, routeFundingRate, query, 0)
}

// DepthWeight is the request weight of a futures depth snapshot. A zero limit
// is the default depth of 500.
func DepthWeight(limit uint16) int {
	switch {
	case limit == 0:
		return 10
	case limit <= 50:
		return 2
	case limit <= 100:
		return 5
	case limit <= 500:
		return 10
	default:
		return 20
	}
}
