package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
	"mbx/pkg/exchange/binance/coinfutures"
	"mbx/pkg/exchange/binance/futures"
	"mbx/pkg/exchange/binance/spot"
)

func init() {
	depthCmd.Flags().String("market", "spot", "market (spot, futures, coin-futures)")
	depthCmd.Flags().Int("rows", 10, "number of price levels to print")

	klinesCmd.Flags().String("interval", "1h", "kline interval")
	klinesCmd.Flags().Uint16("limit", 24, "number of klines")
	klinesCmd.Flags().Bool("premium", false, "coin-futures premium index klines")

	fundingCmd.Flags().String("market", "futures", "market (futures, coin-futures)")
	fundingCmd.Flags().Uint16("limit", 10, "number of funding events")

	markPriceCmd.Flags().String("pair", "", "filter by pair")

	rootCmd.AddCommand(pingCmd, timeCmd, depthCmd, klinesCmd, fundingCmd, markPriceCmd)
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "test connectivity to the spot venue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := spot.NewGeneral(client).Ping(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("pong")
		return nil
	},
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "print the exchange server time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := spot.NewGeneral(client).ServerTime(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, st, func() {
			fmt.Println(formatMillis(st.ServerTime))
		})
	},
}

var depthCmd = &cobra.Command{
	Use:   "depth SYMBOL",
	Short: "print an order book snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		market, err := parseMarket(cmd)
		if err != nil {
			return err
		}
		rows, err := cmd.Flags().GetInt("rows")
		if err != nil {
			return err
		}

		symbol := args[0]
		var book *binance.OrderBook
		switch market {
		case core.MarketTypeFutures:
			book, err = futures.NewMarket(client).GetDepth(cmd.Context(), symbol)
		case core.MarketTypeCoinFutures:
			book, err = coinfutures.NewMarket(client).GetDepth(cmd.Context(), symbol)
		default:
			book, err = spot.NewMarket(client).GetDepth(cmd.Context(), symbol)
		}
		if err != nil {
			return err
		}

		return render(cmd, book, func() {
			renderOrderBook(symbol, book, rows)
		})
	},
}

var klinesCmd = &cobra.Command{
	Use:   "klines SYMBOL",
	Short: "print recent spot klines, or coin-futures premium index klines with --premium",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := cmd.Flags().GetString("interval")
		if err != nil {
			return err
		}
		limit, err := cmd.Flags().GetUint16("limit")
		if err != nil {
			return err
		}
		premium, err := cmd.Flags().GetBool("premium")
		if err != nil {
			return err
		}

		symbol := args[0]
		var klines []binance.KlineSummary
		if premium {
			klines, err = coinfutures.NewMarket(client).GetPremiumIndexKlines(cmd.Context(), symbol, interval, limit, nil, nil)
		} else {
			klines, err = spot.NewMarket(client).GetKlines(cmd.Context(), symbol, interval, limit, nil, nil)
		}
		if err != nil {
			return err
		}

		return render(cmd, klines, func() {
			renderKlines(fmt.Sprintf("%s %s", symbol, interval), klines)
		})
	},
}

var fundingCmd = &cobra.Command{
	Use:   "funding SYMBOL",
	Short: "print funding rate history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		market, err := parseMarket(cmd)
		if err != nil {
			return err
		}
		limit, err := cmd.Flags().GetUint16("limit")
		if err != nil {
			return err
		}

		symbol := args[0]
		var rates []futures.FundingRate
		switch market {
		case core.MarketTypeFutures:
			rates, err = futures.NewMarket(client).GetFundingRate(cmd.Context(), symbol, nil, nil, limit)
		case core.MarketTypeCoinFutures:
			rates, err = coinfutures.NewMarket(client).GetFundingRate(cmd.Context(), symbol, nil, nil, limit)
		default:
			return fmt.Errorf("funding rates are not available on the spot market")
		}
		if err != nil {
			return err
		}

		return render(cmd, rates, func() {
			t := newTable(symbol+" funding", table.Row{"Time", "Rate", "Mark Price"})
			for _, r := range rates {
				t.AppendRow(table.Row{formatMillis(r.FundingTime), r.FundingRate.String(), r.MarkPrice.String()})
			}
			t.Render()
		})
	},
}

var markPriceCmd = &cobra.Command{
	Use:   "mark-price [SYMBOL]",
	Short: "print coin-futures mark and index prices",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var symbol, pair *string
		if len(args) == 1 {
			symbol = &args[0]
		}
		if p, err := cmd.Flags().GetString("pair"); err != nil {
			return err
		} else if p != "" {
			pair = &p
		}

		prices, err := coinfutures.NewMarket(client).GetMarkPrices(cmd.Context(), symbol, pair)
		if err != nil {
			return err
		}

		return render(cmd, prices, func() {
			t := newTable("mark prices", table.Row{"Symbol", "Mark", "Index", "Funding Rate", "Next Funding"})
			for _, p := range prices {
				t.AppendRow(table.Row{p.Symbol, p.MarkPrice.String(), p.IndexPrice.String(), p.LastFundingRate.String(), formatMillis(p.NextFundingTime)})
			}
			t.Render()
		})
	},
}
