package core

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSide_String(t *testing.T) {
	tests := []struct {
		name string
		side OrderSide
		want string
	}{
		{"buy", SideBuy, "BUY"},
		{"sell", SideSell, "SELL"},
		{"out_of_range", OrderSide(7), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.side.String())
		})
	}
}

func TestOrderType_String(t *testing.T) {
	tests := []struct {
		name      string
		orderType OrderType
		want      string
	}{
		{"market", TypeMarket, "MARKET"},
		{"limit", TypeLimit, "LIMIT"},
		{"stop_loss", TypeStopLoss, "STOP_LOSS"},
		{"stop_loss_limit", TypeStopLossLimit, "STOP_LOSS_LIMIT"},
		{"take_profit", TypeTakeProfit, "TAKE_PROFIT"},
		{"take_profit_limit", TypeTakeProfitLimit, "TAKE_PROFIT_LIMIT"},
		{"limit_maker", TypeLimitMaker, "LIMIT_MAKER"},
		{"trailing_stop_market", TypeTrailingStopMarket, "TRAILING_STOP_MARKET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.orderType.String())
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   bool
	}{
		{StatusNew, false},
		{StatusPartiallyFilled, false},
		{StatusPendingCancel, false},
		{StatusFilled, true},
		{StatusCanceled, true},
		{StatusRejected, true},
		{StatusExpired, true},
		{StatusExpiredInMatch, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestEnums_JSON(t *testing.T) {
	type payload struct {
		Side        OrderSide           `json:"side"`
		Type        OrderType           `json:"type"`
		Status      OrderStatus         `json:"status"`
		TimeInForce TimeInForce         `json:"timeInForce"`
		Resp        OrderResponseType   `json:"newOrderRespType"`
		Mode        CancelReplaceMode   `json:"cancelReplaceMode"`
		Result      CancelReplaceResult `json:"cancelResult"`
		Position    PositionSide        `json:"positionSide"`
	}

	in := `{"side":"SELL","type":"LIMIT_MAKER","status":"PENDING_CANCEL","timeInForce":"GTX",` +
		`"newOrderRespType":"FULL","cancelReplaceMode":"ALLOW_FAILURE","cancelResult":"NOT_ATTEMPTED","positionSide":"SHORT"}`

	var p payload
	require.NoError(t, sonic.Unmarshal([]byte(in), &p))

	assert.Equal(t, SideSell, p.Side)
	assert.Equal(t, TypeLimitMaker, p.Type)
	assert.Equal(t, StatusPendingCancel, p.Status)
	assert.Equal(t, GTX, p.TimeInForce)
	assert.Equal(t, ResponseFull, p.Resp)
	assert.Equal(t, AllowFailure, p.Mode)
	assert.Equal(t, ReplaceNotAttempted, p.Result)
	assert.Equal(t, PositionShort, p.Position)

	out, err := sonic.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestEnums_UnmarshalLowercase(t *testing.T) {
	var side OrderSide
	require.NoError(t, sonic.Unmarshal([]byte(`"buy"`), &side))
	assert.Equal(t, SideBuy, side)
}

func TestEnums_UnmarshalUnknown(t *testing.T) {
	var status OrderStatus
	err := sonic.Unmarshal([]byte(`"HALF_FILLED"`), &status)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HALF_FILLED")
}

func TestParseEnums(t *testing.T) {
	side, err := ParseOrderSide("sell")
	require.NoError(t, err)
	assert.Equal(t, SideSell, side)

	typ, err := ParseOrderType("stop_loss_limit")
	require.NoError(t, err)
	assert.Equal(t, TypeStopLossLimit, typ)

	tif, err := ParseTimeInForce("IOC")
	require.NoError(t, err)
	assert.Equal(t, IOC, tif)

	_, err = ParseOrderSide("hold")
	assert.Error(t, err)
}
