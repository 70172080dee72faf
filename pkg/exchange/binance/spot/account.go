package spot

import (
	"context"
	"net/http"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
)

var (
	routeAccount          = signed(http.MethodGet, "/api/v3/account").WithWeight(20)
	routeOpenOrders       = signed(http.MethodGet, "/api/v3/openOrders").WithWeight(6)
	routeAllOpenOrders    = signed(http.MethodGet, "/api/v3/openOrders").WithWeight(80)
	routeCancelOpenOrders = signed(http.MethodDelete, "/api/v3/openOrders").WithWeight(1)
	routeAllOrders        = signed(http.MethodGet, "/api/v3/allOrders").WithWeight(20)
	routeOrderStatus      = signed(http.MethodGet, "/api/v3/order").WithWeight(4)
	routeTestOrderStatus  = signed(http.MethodGet, "/api/v3/order/test").WithWeight(1)
	routePlaceOrder       = signed(http.MethodPost, "/api/v3/order").WithWeight(1)
	routeTestOrder        = signed(http.MethodPost, "/api/v3/order/test").WithWeight(1)
	routeCancelOrder      = signed(http.MethodDelete, "/api/v3/order").WithWeight(1)
	routeTestCancelOrder  = signed(http.MethodDelete, "/api/v3/order/test").WithWeight(1)
	routeCancelReplace    = signed(http.MethodPost, "/api/v3/order/cancelReplace").WithWeight(1)
	routeMyTrades         = signed(http.MethodGet, "/api/v3/myTrades").WithWeight(20)
)

func signed(method, path string) core.Route {
	return core.SignedRoute(core.MarketTypeSpot, method, path)
}

func public(method, path string) core.Route {
	return core.PublicRoute(core.MarketTypeSpot, method, path)
}

// Account wraps the signed spot account and order endpoints.
type Account struct {
	client     *binance.Client
	recvWindow uint64
}

// NewAccount returns an Account using the client's default receive window.
func NewAccount(client *binance.Client) *Account {
	return &Account{client: client, recvWindow: client.RecvWindow()}
}

// WithRecvWindow returns a copy of the Account with a different default receive window.
func (a *Account) WithRecvWindow(recvWindow uint64) *Account {
	cp := *a
	cp.recvWindow = recvWindow
	return &cp
}

// window resolves a per-request receive window. Nil and zero both mean the
// Account default.
func (a *Account) window(override *uint64) uint64 {
	if override != nil && *override != 0 {
		return *override
	}
	return a.recvWindow
}

// GetAccount returns balances and permissions of the account.
func (a *Account) GetAccount(ctx context.Context) (*AccountInformation, error) {
	var out AccountInformation
	if err := a.client.Do(ctx, routeAccount, nil, a.recvWindow, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBalance returns the balance of a single asset. A *core.NotFoundError is
// returned when the account holds no entry for asset.
func (a *Account) GetBalance(ctx context.Context, asset string) (*Balance, error) {
	account, err := a.GetAccount(ctx)
	if err != nil {
		return nil, err
	}
	for i := range account.Balances {
		if account.Balances[i].Asset == asset {
			return &account.Balances[i], nil
		}
	}
	return nil, &core.NotFoundError{Kind: "asset", Key: asset}
}

// GetOpenOrders returns the open orders of one symbol.
func (a *Account) GetOpenOrders(ctx context.Context, symbol string) ([]Order, error) {
	return binance.Call[[]Order](ctx, a.client, routeOpenOrders, binance.PairQuery{Symbol: symbol}, a.recvWindow)
}

// GetAllOpenOrders returns the open orders of every symbol.
func (a *Account) GetAllOpenOrders(ctx context.Context) ([]Order, error) {
	return binance.Call[[]Order](ctx, a.client, routeAllOpenOrders, nil, a.recvWindow)
}

// GetAllOrders returns active, canceled and filled orders matching query.
func (a *Account) GetAllOrders(ctx context.Context, query OrdersQuery) ([]Order, error) {
	return binance.Call[[]Order](ctx, a.client, routeAllOrders, query, a.window(query.RecvWindow))
}

// CancelAllOpenOrders cancels every open order of symbol.
func (a *Account) CancelAllOpenOrders(ctx context.Context, symbol string) ([]Order, error) {
	return binance.Call[[]Order](ctx, a.client, routeCancelOpenOrders, binance.PairQuery{Symbol: symbol}, a.recvWindow)
}

// OrderStatus looks up one order.
func (a *Account) OrderStatus(ctx context.Context, req OrderStatusRequest) (*Order, error) {
	var out Order
	if err := a.client.Do(ctx, routeOrderStatus, req, a.window(req.RecvWindow), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TestOrderStatus sends an order status request to the test endpoint.
func (a *Account) TestOrderStatus(ctx context.Context, req OrderStatusRequest) (*TestResponse, error) {
	var out TestResponse
	if err := a.client.Do(ctx, routeTestOrderStatus, req, a.window(req.RecvWindow), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder validates and submits an order.
func (a *Account) PlaceOrder(ctx context.Context, order OrderRequest) (*Transaction, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	var out Transaction
	if err := a.client.Do(ctx, routePlaceOrder, &order, a.window(order.RecvWindow), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceTestOrder validates an order and submits it to the test endpoint, which
// checks it without reaching the matching engine.
func (a *Account) PlaceTestOrder(ctx context.Context, order OrderRequest) (*TestResponse, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	var out TestResponse
	if err := a.client.Do(ctx, routeTestOrder, &order, a.window(order.RecvWindow), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder cancels an active order.
func (a *Account) CancelOrder(ctx context.Context, req OrderCancellation) (*OrderCanceled, error) {
	var out OrderCanceled
	if err := a.client.Do(ctx, routeCancelOrder, req, a.window(req.RecvWindow), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelReplaceOrder cancels an order and places a new one in a single request.
func (a *Account) CancelReplaceOrder(ctx context.Context, req CancelReplaceRequest) (*OrderCanceledReplaced, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out OrderCanceledReplaced
	if err := a.client.Do(ctx, routeCancelReplace, &req, a.window(req.RecvWindow), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TestCancelOrder sends a cancellation to the test endpoint.
func (a *Account) TestCancelOrder(ctx context.Context, req OrderCancellation) (*TestResponse, error) {
	var out TestResponse
	if err := a.client.Do(ctx, routeTestCancelOrder, req, a.window(req.RecvWindow), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TradeHistory returns the account's trades on symbol.
func (a *Account) TradeHistory(ctx context.Context, symbol string) ([]TradeHistory, error) {
	return binance.Call[[]TradeHistory](ctx, a.client, routeMyTrades, binance.PairQuery{Symbol: symbol}, a.recvWindow)
}
