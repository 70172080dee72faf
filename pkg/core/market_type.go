package core

// MarketType identifies the venue a route is served from.
type MarketType int

// Market type constants define the available venues.
const (
	// MarketTypeSpot is the spot venue (/api).
	MarketTypeSpot MarketType = iota
	// MarketTypeFutures is the USD-margined futures venue (/fapi).
	MarketTypeFutures
	// MarketTypeCoinFutures is the coin-margined futures venue (/dapi).
	MarketTypeCoinFutures
)

// String returns the string representation of the market type.
func (m MarketType) String() string {
	switch m {
	case MarketTypeSpot:
		return "spot"
	case MarketTypeFutures:
		return "futures"
	case MarketTypeCoinFutures:
		return "coin_futures"
	default:
		return "unknown"
	}
}
