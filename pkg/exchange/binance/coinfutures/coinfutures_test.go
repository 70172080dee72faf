package coinfutures

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
)

type captured struct {
	path   string
	raw    string
	apiKey string
}

func setup(t *testing.T, body string, creds bool) (*binance.Client, *atomic.Pointer[captured], *atomic.Int32) {
	t.Helper()
	var (
		last  atomic.Pointer[captured]
		calls atomic.Int32
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		last.Store(&captured{path: r.URL.Path, raw: r.URL.RawQuery, apiKey: r.Header.Get(binance.HeaderAPIKey)})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	config := core.DefaultConfig().WithBaseURL(srv.URL)
	if creds {
		config.WithCredentials(&core.Credentials{APIKey: "coin-key", SecretKey: "coin-secret"})
	}
	c, err := binance.New(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, &last, &calls
}

func TestAccount_AccountBalance(t *testing.T) {
	body := `[{
		"accountAlias": "SgsR",
		"asset": "BTC",
		"balance": "0.00250000",
		"withdrawAvailable": "0.00250000",
		"crossWalletBalance": "0.00241969",
		"crossUnPnl": "0.00000000",
		"availableBalance": "0.00241969",
		"updateTime": 1592468353979
	}]`
	c, last, _ := setup(t, body, true)

	balances, err := NewAccount(c).AccountBalance(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "0.00250000", balances[0].WithdrawAvailable.String())

	req := last.Load()
	assert.Equal(t, "/dapi/v1/balance", req.path)
	assert.Equal(t, "coin-key", req.apiKey)
	assert.True(t, strings.HasPrefix(req.raw, "recvWindow=5000&timestamp="), req.raw)
	assert.Contains(t, req.raw, "&signature=")
}

func TestGeneral_ExchangeInfo(t *testing.T) {
	body := `{
		"timezone": "UTC",
		"serverTime": 1597667052958,
		"rateLimits": [],
		"exchangeFilters": [],
		"symbols": [{
			"symbol": "BTCUSD_200925",
			"pair": "BTCUSD",
			"contractType": "CURRENT_QUARTER",
			"deliveryDate": 1601020800000,
			"onboardDate": 1590739200000,
			"contractStatus": "TRADING",
			"contractSize": 100,
			"marginAsset": "BTC",
			"maintMarginPercent": "2.5000",
			"requiredMarginPercent": "5.0000",
			"baseAsset": "BTC",
			"quoteAsset": "USD",
			"pricePrecision": 1,
			"quantityPrecision": 0,
			"baseAssetPrecision": 8,
			"quotePrecision": 8,
			"filters": [],
			"orderTypes": ["LIMIT"],
			"timeInForce": ["GTC"]
		}]
	}`
	c, last, _ := setup(t, body, false)

	info, err := NewGeneral(c).ExchangeInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/dapi/v1/exchangeInfo", last.Load().path)

	sym, err := info.Symbol("BTCUSD_200925")
	require.NoError(t, err)
	assert.Equal(t, int64(100), sym.ContractSize)
	assert.Equal(t, "TRADING", sym.ContractStatus)
}

func TestMarket_GetDepth(t *testing.T) {
	body := `{"lastUpdateId":16769853,"symbol":"BTCUSD_PERP","pair":"BTCUSD","E":1591250106370,"T":1591250106368,` +
		`"bids":[["9638.0","431"]],"asks":[["9638.2","12"]]}`
	c, last, _ := setup(t, body, false)

	book, err := NewMarket(c).GetDepth(context.Background(), "BTCUSD_PERP")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSD_PERP", book.Symbol)
	assert.Equal(t, "BTCUSD", book.Pair)
	assert.Equal(t, "9638.2", book.Asks[0].Price.String())

	req := last.Load()
	assert.Equal(t, "/dapi/v1/depth", req.path)
	assert.Equal(t, "symbol=BTCUSD_PERP", req.raw)
	assert.Empty(t, req.apiKey)
}

func TestMarket_GetHistoricalTrades(t *testing.T) {
	body := `[{"id":595103,"price":"9642.2","qty":"1","baseQty":"0.01037108","time":1499865549590,"isBuyerMaker":true}]`
	c, last, _ := setup(t, body, true)

	from := uint64(595100)
	trades, err := NewMarket(c).GetHistoricalTrades(context.Background(), "BTCUSD_PERP", &from, 50)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "0.01037108", trades[0].BaseQty.String())
	assert.True(t, trades[0].IsBuyerMaker)

	req := last.Load()
	assert.Equal(t, "/dapi/v1/historicalTrades", req.path)
	assert.Equal(t, "coin-key", req.apiKey)
	assert.True(t, strings.HasPrefix(req.raw, "symbol=BTCUSD_PERP&fromId=595100&limit=50&recvWindow=5000&timestamp="), req.raw)
}

func TestMarket_SignedWithoutCredentials(t *testing.T) {
	c, _, calls := setup(t, `[]`, false)
	market := NewMarket(c)

	_, err := market.GetHistoricalTrades(context.Background(), "BTCUSD_PERP", nil, 10)
	assert.ErrorIs(t, err, core.ErrNoCredentials)
	_, err = market.GetFundingRate(context.Background(), "BTCUSD_PERP", nil, nil, 10)
	assert.ErrorIs(t, err, core.ErrNoCredentials)
	assert.Equal(t, int32(0), calls.Load())
}

func TestMarket_GetMarkPrices(t *testing.T) {
	body := `[{
		"symbol": "BTCUSD_PERP",
		"pair": "BTCUSD",
		"markPrice": "11029.69574559",
		"indexPrice": "10979.14437500",
		"estimatedSettlePrice": "10981.74168236",
		"lastFundingRate": "0.00071003",
		"interestRate": "0.00010000",
		"nextFundingTime": 1596096000000,
		"time": 1596094042000
	}]`

	tests := []struct {
		name   string
		symbol *string
		pair   *string
		want   string
	}{
		{"all", nil, nil, ""},
		{"symbol", ptr("BTCUSD_PERP"), nil, "symbol=BTCUSD_PERP"},
		{"pair", nil, ptr("BTCUSD"), "pair=BTCUSD"},
		{"both", ptr("BTCUSD_PERP"), ptr("BTCUSD"), "symbol=BTCUSD_PERP&pair=BTCUSD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, last, _ := setup(t, body, false)

			prices, err := NewMarket(c).GetMarkPrices(context.Background(), tt.symbol, tt.pair)
			require.NoError(t, err)
			require.Len(t, prices, 1)
			assert.Equal(t, "11029.69574559", prices[0].MarkPrice.String())
			assert.Equal(t, int64(1596096000000), prices[0].NextFundingTime)

			req := last.Load()
			assert.Equal(t, "/dapi/v1/premiumIndex", req.path)
			assert.Equal(t, tt.want, req.raw)
		})
	}
}

func TestMarket_GetFundingRate(t *testing.T) {
	body := `[{"symbol":"BTCUSD_PERP","fundingTime":1596038400000,"fundingRate":"-0.00300000"}]`
	c, last, _ := setup(t, body, true)

	end := uint64(1596038400000)
	rates, err := NewMarket(c).GetFundingRate(context.Background(), "BTCUSD_PERP", nil, &end, 0)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "-0.00300000", rates[0].FundingRate.String())

	req := last.Load()
	assert.Equal(t, "/dapi/v1/fundingRate", req.path)
	assert.True(t, strings.HasPrefix(req.raw, "symbol=BTCUSD_PERP&endTime=1596038400000&recvWindow=5000&"), req.raw)
}

func TestMarket_GetPremiumIndexKlines(t *testing.T) {
	body := `[
		[1591256400000,"-0.00025929","-0.00025929","-0.00025929","-0.00025929","0",1591256459999,"0",0,"0","0","0"],
		[1591256460000,"-0.00025929","-0.00025929","-0.00025929","-0.00025929","0",1591256519999,"0",0,"0","0","0"]
	]`
	c, last, _ := setup(t, body, false)

	klines, err := NewMarket(c).GetPremiumIndexKlines(context.Background(), "BTCUSD", "1m", 2, nil, nil)
	require.NoError(t, err)
	require.Len(t, klines, 2)
	assert.Equal(t, int64(1591256400000), klines[0].OpenTime)
	assert.Equal(t, "-0.00025929", klines[0].Open.String())
	assert.Equal(t, int64(1591256519999), klines[1].CloseTime)

	req := last.Load()
	assert.Equal(t, "/dapi/v1/premiumIndexKlines", req.path)
	assert.Equal(t, "symbol=BTCUSD&interval=1m&limit=2", req.raw)
}

func ptr[T any](v T) *T { return &v }
