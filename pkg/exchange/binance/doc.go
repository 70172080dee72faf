// Package binance implements the authenticated request pipeline shared by the
// spot, futures and coin-futures wrappers.
//
// A call flows through four steps:
//   - validation of business rules the exchange would reject (ValidateIceberg)
//   - parameter encoding in struct field order (EncodeParams)
//   - signing with recvWindow, timestamp and an HMAC-SHA256 signature (Signer)
//   - dispatch and decoding of either the typed result or a {code, msg} error (Client)
//
// Example usage:
//
//	client, err := binance.New(core.DefaultConfig().WithCredentials(creds))
//	var account spot.AccountInformation
//	err = client.GetSigned(ctx, core.MarketTypeSpot, "/api/v3/account", nil, 0, &account)
package binance
