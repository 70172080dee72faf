// Package spot wraps the Binance spot REST endpoints.
//
// Account covers the signed account and order endpoints, General the
// connectivity and exchange metadata endpoints and Market the public market
// data. All three share a single binance.Client:
//
//	client, err := binance.New(core.DefaultConfig().WithCredentials(creds))
//	if err != nil {
//	    return err
//	}
//	account := spot.NewAccount(client)
//	balance, err := account.GetBalance(ctx, "BTC")
package spot
