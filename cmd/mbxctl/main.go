// Command mbxctl queries and trades Binance spot and futures accounts from the
// command line. Credentials are read from BINANCE_* environment variables,
// optionally loaded from a dotenv file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
