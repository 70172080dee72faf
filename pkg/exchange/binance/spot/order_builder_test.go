package spot

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
)

func TestOrderBuilder_Build(t *testing.T) {
	order, err := NewOrderBuilder("BTCUSDT").
		Buy().
		Limit().
		Price("50000").
		Quantity("0.001").
		GTC().
		IcebergQuantity("0.0005").
		ResponseType(core.ResponseResult).
		RecvWindow(10000).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", order.Symbol)
	assert.Equal(t, core.SideBuy, order.Side)
	assert.Equal(t, core.TypeLimit, order.Type)
	require.NotNil(t, order.TimeInForce)
	assert.Equal(t, core.GTC, *order.TimeInForce)
	assert.Equal(t, uint64(10000), *order.RecvWindow)

	query, err := binance.EncodeQuery(order)
	require.NoError(t, err)
	assert.Equal(t, "symbol=BTCUSDT&side=BUY&type=LIMIT&timeInForce=GTC&quantity=0.001&price=50000&icebergQty=0.0005&newOrderRespType=RESULT", query)
}

func TestOrderBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *OrderBuilder
		want    string
	}{
		{"bad_price", NewOrderBuilder("BTCUSDT").Buy().Limit().Price("abc").Quantity("1"), "parse price"},
		{"bad_quantity", NewOrderBuilder("BTCUSDT").Buy().Market().Quantity("1..0"), "parse quantity"},
		{"missing_symbol", NewOrderBuilder("").Buy().Market().Quantity("1"), "symbol is required"},
		{"missing_quantity", NewOrderBuilder("BTCUSDT").Buy().Market(), "quantity or quote order quantity is required"},
		{"zero_quantity", NewOrderBuilder("BTCUSDT").Buy().Market().Quantity("0"), "quantity must be positive"},
		{"negative_quote", NewOrderBuilder("BTCUSDT").Buy().Market().QuoteQuantity("-5"), "quantity must be positive"},
		{"limit_without_price", NewOrderBuilder("BTCUSDT").Sell().Limit().Quantity("1").GTC(), "price must be positive"},
		{"futures_type", NewOrderBuilder("BTCUSDT").Sell().Type(core.TypeStopMarket).Quantity("1"), "invalid spot order type"},
		{"iceberg_ioc", NewOrderBuilder("BTCUSDT").Buy().Limit().Price("1").Quantity("1").IOC().IcebergQuantity("0.1"), "GTC for iceberg"},
		{"first_error_wins", NewOrderBuilder("BTCUSDT").Price("x").Quantity("y"), "parse price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := tt.builder.Build()
			require.Error(t, err)
			assert.Nil(t, order)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOrderBuilder_ValidationErrorType(t *testing.T) {
	_, err := NewOrderBuilder("BTCUSDT").Buy().Limit().Quantity("1").Build()
	assert.True(t, core.IsValidationError(err))
}

func TestOrderBuilder_GeneratedClientOrderID(t *testing.T) {
	a, err := NewOrderBuilder("BTCUSDT").Sell().Market().Quantity("1").WithGeneratedClientOrderID().Build()
	require.NoError(t, err)
	b, err := NewOrderBuilder("BTCUSDT").Sell().Market().Quantity("1").WithGeneratedClientOrderID().Build()
	require.NoError(t, err)

	require.NotNil(t, a.NewClientOrderID)
	require.NotNil(t, b.NewClientOrderID)
	assert.NotEqual(t, *a.NewClientOrderID, *b.NewClientOrderID)

	_, err = uuid.Parse(*a.NewClientOrderID)
	assert.NoError(t, err)
}

func TestOrderBuilder_StopLimit(t *testing.T) {
	order, err := NewOrderBuilder("ETHUSDT").
		Sell().
		Type(core.TypeStopLossLimit).
		Quantity("2").
		Price("1800").
		StopPrice("1810").
		FOK().
		ClientOrderID("stop-1").
		Build()
	require.NoError(t, err)

	query, err := binance.EncodeQuery(order)
	require.NoError(t, err)
	assert.Equal(t, "symbol=ETHUSDT&side=SELL&type=STOP_LOSS_LIMIT&timeInForce=FOK&quantity=2&price=1800&newClientOrderId=stop-1&stopPrice=1810", query)
}
