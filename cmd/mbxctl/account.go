package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance/coinfutures"
	"mbx/pkg/exchange/binance/futures"
	"mbx/pkg/exchange/binance/spot"
)

func init() {
	balancesCmd.Flags().String("market", "spot", "market (spot, futures, coin-futures)")
	balancesCmd.Flags().Bool("all", false, "include zero balances")

	rootCmd.AddCommand(balancesCmd, balanceCmd, tradesCmd)
}

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "print account balances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		market, err := parseMarket(cmd)
		if err != nil {
			return err
		}
		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		switch market {
		case core.MarketTypeFutures:
			balances, err := futures.NewAccount(client).AccountBalance(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, balances, func() { renderFuturesBalances("futures balances", balances, all) })
		case core.MarketTypeCoinFutures:
			balances, err := coinfutures.NewAccount(client).AccountBalance(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, balances, func() { renderFuturesBalances("coin-futures balances", balances, all) })
		}

		account, err := spot.NewAccount(client).GetAccount(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, account, func() {
			t := newTable(fmt.Sprintf("%s account", account.AccountType), table.Row{"Asset", "Free", "Locked"})
			for _, b := range account.Balances {
				if !all && b.Free.IsZero() && b.Locked.IsZero() {
					continue
				}
				t.AppendRow(table.Row{b.Asset, b.Free.String(), b.Locked.String()})
			}
			t.Render()
		})
	},
}

func renderFuturesBalances(title string, balances []futures.AccountBalance, all bool) {
	t := newTable(title, table.Row{"Asset", "Balance", "Available", "Unrealized PnL", "Updated"})
	for _, b := range balances {
		if !all && b.Balance.IsZero() {
			continue
		}
		t.AppendRow(table.Row{b.Asset, b.Balance.String(), b.AvailableBalance.String(), b.CrossUnPnl.String(), formatMillis(b.UpdateTime)})
	}
	t.Render()
}

var balanceCmd = &cobra.Command{
	Use:   "balance ASSET",
	Short: "print the spot balance of one asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		balance, err := spot.NewAccount(client).GetBalance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd, balance, func() {
			fmt.Printf("%s free=%s locked=%s\n", balance.Asset, balance.Free.String(), balance.Locked.String())
		})
	},
}

var tradesCmd = &cobra.Command{
	Use:   "trades SYMBOL",
	Short: "print the account's spot trades on a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trades, err := spot.NewAccount(client).TradeHistory(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd, trades, func() {
			t := newTable(args[0]+" trades", table.Row{"Time", "ID", "Side", "Price", "Qty", "Commission"})
			for _, tr := range trades {
				side := "SELL"
				if tr.IsBuyer {
					side = "BUY"
				}
				t.AppendRow(table.Row{formatMillis(tr.Time), tr.ID, side, tr.Price.String(), tr.Qty.String(), tr.Commission.String() + " " + tr.CommissionAsset})
			}
			t.Render()
		})
	},
}
