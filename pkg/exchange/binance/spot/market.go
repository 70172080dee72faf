package spot

import (
	"context"
	"net/http"

	"mbx/pkg/exchange/binance"
)

var (
	routeDepth  = public(http.MethodGet, "/api/v3/depth")
	routeKlines = public(http.MethodGet, "/api/v3/klines").WithWeight(2)
)

// Market wraps the public spot market data endpoints.
type Market struct {
	client *binance.Client
}

// NewMarket returns a Market bound to client.
func NewMarket(client *binance.Client) *Market {
	return &Market{client: client}
}

// GetDepth returns the order book of symbol at the default depth of 100.
func (m *Market) GetDepth(ctx context.Context, symbol string) (*binance.OrderBook, error) {
	return m.GetDepthLimit(ctx, symbol, 0)
}

// GetDepthLimit returns the order book of symbol. A zero limit uses the exchange default.
func (m *Market) GetDepthLimit(ctx context.Context, symbol string, limit uint16) (*binance.OrderBook, error) {
	query := binance.DepthQuery{Symbol: symbol}
	if limit > 0 {
		query.Limit = &limit
	}
	var out binance.OrderBook
	if err := m.client.Do(ctx, routeDepth.WithWeight(depthWeight(limit)), query, 0, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// depthWeight follows the exchange's tiered depth weights.
func depthWeight(limit uint16) int {
	switch {
	case limit <= 100:
		return 5
	case limit <= 500:
		return 25
	case limit <= 1000:
		return 50
	default:
		return 250
	}
}

// GetKlines returns up to limit candlesticks for symbol and interval ("1m", "1h", "1d", ...).
// A zero limit and nil bounds are left to the exchange defaults.
func (m *Market) GetKlines(ctx context.Context, symbol, interval string, limit uint16, startTime, endTime *uint64) ([]binance.KlineSummary, error) {
	query := binance.KlineQuery{
		Symbol:    symbol,
		Interval:  interval,
		StartTime: startTime,
		EndTime:   endTime,
	}
	if limit > 0 {
		query.Limit = &limit
	}
	return binance.Call[[]binance.KlineSummary](ctx, m.client, routeKlines, query, 0)
}
