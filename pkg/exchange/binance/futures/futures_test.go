package futures

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
)

type lastRequest struct {
	method string
	path   string
	raw    string
	query  url.Values
	apiKey string
}

func newServer(t *testing.T, body string) (*binance.Client, *atomic.Pointer[lastRequest]) {
	t.Helper()
	var last atomic.Pointer[lastRequest]
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.Store(&lastRequest{
			method: r.Method,
			path:   r.URL.Path,
			raw:    r.URL.RawQuery,
			query:  r.URL.Query(),
			apiKey: r.Header.Get(binance.HeaderAPIKey),
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	config := core.DefaultConfig().
		WithBaseURL(srv.URL).
		WithCredentials(&core.Credentials{APIKey: "futures-key", SecretKey: "futures-secret"})
	c, err := binance.New(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, &last
}

func TestAccount_AccountBalance(t *testing.T) {
	body := `[{
		"accountAlias": "SgsR",
		"asset": "USDT",
		"balance": "122607.35137903",
		"crossWalletBalance": "23.72469206",
		"crossUnPnl": "0.00000000",
		"availableBalance": "23.72469206",
		"maxWithdrawAmount": "23.72469206",
		"marginAvailable": true,
		"updateTime": 1617939110373
	}]`
	c, last := newServer(t, body)

	balances, err := NewAccount(c).AccountBalance(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "USDT", balances[0].Asset)
	assert.Equal(t, "122607.35137903", balances[0].Balance.String())
	assert.True(t, balances[0].MarginAvailable)

	req := last.Load()
	assert.Equal(t, "/fapi/v2/balance", req.path)
	assert.Equal(t, "futures-key", req.apiKey)
	assert.True(t, strings.HasPrefix(req.raw, "recvWindow=5000&timestamp="), req.raw)
	assert.NotEmpty(t, req.query.Get("signature"))
}

func TestGeneral_ExchangeInfo(t *testing.T) {
	body := `{
		"timezone": "UTC",
		"serverTime": 1565613908500,
		"rateLimits": [{"rateLimitType": "REQUEST_WEIGHT", "interval": "MINUTE", "intervalNum": 1, "limit": 2400}],
		"exchangeFilters": [],
		"assets": [{"asset": "BUSD", "marginAvailable": true, "autoAssetExchange": "0"}],
		"symbols": [{
			"symbol": "BLZUSDT",
			"pair": "BLZUSDT",
			"contractType": "PERPETUAL",
			"deliveryDate": 4133404800000,
			"onboardDate": 1598252400000,
			"status": "TRADING",
			"maintMarginPercent": "2.5000",
			"requiredMarginPercent": "5.0000",
			"baseAsset": "BLZ",
			"quoteAsset": "USDT",
			"marginAsset": "USDT",
			"pricePrecision": 5,
			"quantityPrecision": 0,
			"baseAssetPrecision": 8,
			"quotePrecision": 8,
			"underlyingType": "COIN",
			"underlyingSubType": ["STORAGE"],
			"triggerProtect": "0.15",
			"filters": [{"filterType": "PRICE_FILTER", "maxPrice": "300", "minPrice": "0.0001", "tickSize": "0.0001"}],
			"orderTypes": ["LIMIT", "MARKET"],
			"timeInForce": ["GTC", "IOC", "FOK", "GTX"],
			"liquidationFee": "0.010000",
			"marketTakeBound": "0.30"
		}]
	}`
	c, last := newServer(t, body)

	info, err := NewGeneral(c).ExchangeInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/fapi/v1/exchangeInfo", last.Load().path)
	assert.Empty(t, last.Load().apiKey)

	sym, err := info.Symbol("BLZUSDT")
	require.NoError(t, err)
	assert.Equal(t, "PERPETUAL", sym.ContractType)
	assert.Equal(t, "2.5000", sym.MaintMarginPercent.String())
	assert.Equal(t, "0.0001", sym.Filters[0].TickSize.String())

	_, err = info.Symbol("ETHUSDT")
	assert.True(t, core.IsNotFoundError(err))
}

func TestMarket_GetDepth(t *testing.T) {
	body := `{"lastUpdateId":1027024,"E":1589436922972,"T":1589436922959,"bids":[["4.00000000","431.00000000"]],"asks":[["4.00000200","12.00000000"]]}`
	c, last := newServer(t, body)

	book, err := NewMarket(c).GetDepth(context.Background(), "BTCUSDT")
	require.NoError(t, err)
	assert.Equal(t, int64(1589436922959), book.TransactionTime)
	assert.Equal(t, "4.00000200", book.Asks[0].Price.String())

	req := last.Load()
	assert.Equal(t, "/fapi/v1/depth", req.path)
	assert.Equal(t, "symbol=BTCUSDT", req.raw)
}

func TestMarket_GetFundingRate(t *testing.T) {
	body := `[
		{"symbol": "BTCUSDT", "fundingRate": "-0.03750000", "fundingTime": 1570608000000, "markPrice": "34287.54619963"},
		{"symbol": "BTCUSDT", "fundingRate": "0.00010000", "fundingTime": 1570636800000, "markPrice": "34651.40000000"}
	]`
	c, last := newServer(t, body)

	start := uint64(1570608000000)
	rates, err := NewMarket(c).GetFundingRate(context.Background(), "BTCUSDT", &start, nil, 100)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "-0.03750000", rates[0].FundingRate.String())
	assert.Equal(t, int64(1570636800000), rates[1].FundingTime)

	req := last.Load()
	assert.Equal(t, "/fapi/v1/fundingRate", req.path)
	assert.Equal(t, "symbol=BTCUSDT&startTime=1570608000000&limit=100", req.raw)
}

func TestHistoryQuery_Encoding(t *testing.T) {
	tests := []struct {
		name  string
		query HistoryQuery
		want  string
	}{
		{"symbol_only", NewHistoryQuery("BTCUSD_PERP", nil, nil, 0), "symbol=BTCUSD_PERP"},
		{"window", NewHistoryQuery("BTCUSD_PERP", ptr(uint64(1)), ptr(uint64(2)), 10), "symbol=BTCUSD_PERP&startTime=1&endTime=2&limit=10"},
		{"from_id", HistoryQuery{Symbol: "BTCUSD_PERP", FromID: ptr(uint64(42)), Limit: ptr(uint16(5))}, "symbol=BTCUSD_PERP&fromId=42&limit=5"},
		{"interval", HistoryQuery{Symbol: "BTCUSD_PERP", Interval: ptr("1h")}, "symbol=BTCUSD_PERP&interval=1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := binance.EncodeQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDepthWeight(t *testing.T) {
	assert.Equal(t, 10, DepthWeight(0))
	assert.Equal(t, 2, DepthWeight(5))
	assert.Equal(t, 5, DepthWeight(100))
	assert.Equal(t, 10, DepthWeight(500))
	assert.Equal(t, 20, DepthWeight(1000))
}

func ptr[T any](v T) *T { return &v }
