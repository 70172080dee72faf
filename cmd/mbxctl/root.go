package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
)

var (
	client *binance.Client
	logger zerolog.Logger
)

func init() {
	rootCmd.PersistentFlags().String("dotenv", ".env.local", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().Bool("sandbox", false, "use the testnet venues")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64("recv-window", 0, "receive window in milliseconds for signed requests")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().Bool("json", false, "print raw JSON instead of tables")
}

var rootCmd = &cobra.Command{
	Use:   "mbxctl",
	Short: "query and trade Binance accounts over the REST API",

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dotenv, err := cmd.Flags().GetString("dotenv")
		if err != nil {
			return err
		}
		if dotenv != "" {
			if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load %s: %w", dotenv, err)
			}
		}

		config, err := core.ConfigFromEnv()
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, config); err != nil {
			return err
		}

		logger = core.NewLogger(config, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

		client, err = binance.New(config, binance.WithLogger(logger))
		if err != nil {
			return err
		}
		logger.Debug().
			Bool("sandbox", config.Sandbox).
			Bool("credentials", client.HasCredentials()).
			Str("spot_url", config.BaseURL(core.MarketTypeSpot)).
			Msg("client ready")
		return nil
	},

	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if client != nil {
			return client.Close()
		}
		return nil
	},
}

func applyFlags(cmd *cobra.Command, config *core.Config) error {
	flags := cmd.Flags()

	if flags.Changed("sandbox") {
		sandbox, err := flags.GetBool("sandbox")
		if err != nil {
			return err
		}
		config.WithSandbox(sandbox)
	}

	if flags.Changed("log-level") {
		level, err := flags.GetString("log-level")
		if err != nil {
			return err
		}
		config.LogLevel = level
	}

	if flags.Changed("recv-window") {
		rw, err := flags.GetUint64("recv-window")
		if err != nil {
			return err
		}
		config.WithRecvWindow(rw)
	}

	timeout, err := flags.GetDuration("timeout")
	if err != nil {
		return err
	}
	config.WithTimeout(timeout)

	return config.Validate()
}

func parseMarket(cmd *cobra.Command) (core.MarketType, error) {
	name, err := cmd.Flags().GetString("market")
	if err != nil {
		return 0, err
	}
	switch name {
	case "spot", "":
		return core.MarketTypeSpot, nil
	case "futures", "usdm":
		return core.MarketTypeFutures, nil
	case "coin-futures", "coinm":
		return core.MarketTypeCoinFutures, nil
	}
	return 0, fmt.Errorf("unknown market %q", name)
}
