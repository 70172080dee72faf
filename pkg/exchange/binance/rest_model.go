package binance

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"mbx/pkg/core"
)

// PairQuery selects a single symbol.
type PairQuery struct {
	Symbol string `param:"symbol"`
}

// DepthQuery selects a symbol and an optional book depth.
type DepthQuery struct {
	Symbol string  `param:"symbol"`
	Limit  *uint16 `param:"limit"`
}

// KlineQuery selects candlesticks for a symbol and interval ("1m", "1h", "1d", ...).
type KlineQuery struct {
	Symbol    string  `param:"symbol"`
	Interval  string  `param:"interval"`
	StartTime *uint64 `param:"startTime"`
	EndTime   *uint64 `param:"endTime"`
	Limit     *uint16 `param:"limit"`
}

// OrderBookLevel is one price level of a depth snapshot.
type OrderBookLevel struct {
	Price    core.Decimal `json:"price"`
	Quantity core.Decimal `json:"qty"`
}

// UnmarshalJSON decodes the ["price", "qty"] pair sent by the exchange.
func (l *OrderBookLevel) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := sonic.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode book level: %w", err)
	}
	if len(pair) < 2 {
		return fmt.Errorf("decode book level: expected 2 elements, got %d", len(pair))
	}
	if err := l.Price.UnmarshalJSON(pair[0]); err != nil {
		return fmt.Errorf("parse price: %w", err)
	}
	if err := l.Quantity.UnmarshalJSON(pair[1]); err != nil {
		return fmt.Errorf("parse quantity: %w", err)
	}
	return nil
}

// OrderBook is a depth snapshot. Futures venues also set the event and transaction times.
type OrderBook struct {
	LastUpdateID    int64            `json:"lastUpdateId"`
	Symbol          string           `json:"symbol,omitempty"`
	Pair            string           `json:"pair,omitempty"`
	EventTime       int64            `json:"E,omitempty"`
	TransactionTime int64            `json:"T,omitempty"`
	Bids            []OrderBookLevel `json:"bids"`
	Asks            []OrderBookLevel `json:"asks"`
}

// KlineSummary is one candlestick. The exchange sends it as a positional array.
type KlineSummary struct {
	OpenTime                 int64
	Open                     core.Decimal
	High                     core.Decimal
	Low                      core.Decimal
	Close                    core.Decimal
	Volume                   core.Decimal
	CloseTime                int64
	QuoteAssetVolume         core.Decimal
	NumberOfTrades           int64
	TakerBuyBaseAssetVolume  core.Decimal
	TakerBuyQuoteAssetVolume core.Decimal
}

// OpenAt returns OpenTime as a time.Time.
func (k KlineSummary) OpenAt() time.Time {
	return time.UnixMilli(k.OpenTime)
}

// CloseAt returns CloseTime as a time.Time.
func (k KlineSummary) CloseAt() time.Time {
	return time.UnixMilli(k.CloseTime)
}

// UnmarshalJSON decodes a kline row. Rows shorter than eleven elements are rejected.
func (k *KlineSummary) UnmarshalJSON(data []byte) error {
	var row []json.RawMessage
	if err := sonic.Unmarshal(data, &row); err != nil {
		return fmt.Errorf("decode kline: %w", err)
	}
	if len(row) < 11 {
		return fmt.Errorf("insufficient kline data elements: %d", len(row))
	}

	var err error
	if k.OpenTime, err = parseInt(row[0]); err != nil {
		return fmt.Errorf("parse open time: %w", err)
	}
	if k.CloseTime, err = parseInt(row[6]); err != nil {
		return fmt.Errorf("parse close time: %w", err)
	}
	if k.NumberOfTrades, err = parseInt(row[8]); err != nil {
		return fmt.Errorf("parse number of trades: %w", err)
	}

	decimals := []struct {
		name string
		dest *core.Decimal
		raw  json.RawMessage
	}{
		{"open", &k.Open, row[1]},
		{"high", &k.High, row[2]},
		{"low", &k.Low, row[3]},
		{"close", &k.Close, row[4]},
		{"volume", &k.Volume, row[5]},
		{"quote asset volume", &k.QuoteAssetVolume, row[7]},
		{"taker buy base asset volume", &k.TakerBuyBaseAssetVolume, row[9]},
		{"taker buy quote asset volume", &k.TakerBuyQuoteAssetVolume, row[10]},
	}
	for _, d := range decimals {
		if err := d.dest.UnmarshalJSON(d.raw); err != nil {
			return fmt.Errorf("parse %s: %w", d.name, err)
		}
	}
	return nil
}

func parseInt(raw json.RawMessage) (int64, error) {
	s := string(raw)
	if n := len(s); n >= 2 && s[0] == '"' && s[n-1] == '"' {
		s = s[1 : n-1]
	}
	return strconv.ParseInt(s, 10, 64)
}
