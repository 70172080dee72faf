package spot

import (
	"context"
	"net/http"

	"mbx/pkg/exchange/binance"
)

var (
	routePing         = public(http.MethodGet, "/api/v3/ping")
	routeTime         = public(http.MethodGet, "/api/v3/time")
	routeExchangeInfo = public(http.MethodGet, "/api/v3/exchangeInfo").WithWeight(20)
)

// General wraps the public connectivity and exchange metadata endpoints.
type General struct {
	client *binance.Client
}

// NewGeneral returns a General bound to client.
func NewGeneral(client *binance.Client) *General {
	return &General{client: client}
}

// Ping tests connectivity.
func (g *General) Ping(ctx context.Context) error {
	return g.client.Do(ctx, routePing, nil, 0, nil)
}

// ServerTime returns the exchange clock.
func (g *General) ServerTime(ctx context.Context) (*ServerTime, error) {
	var out ServerTime
	if err := g.client.Do(ctx, routeTime, nil, 0, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExchangeInfo returns the current trading rules and symbol list.
func (g *General) ExchangeInfo(ctx context.Context) (*ExchangeInformation, error) {
	var out ExchangeInformation
	if err := g.client.Do(ctx, routeExchangeInfo, nil, 0, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
