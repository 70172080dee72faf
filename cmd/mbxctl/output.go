package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"mbx/pkg/exchange/binance"
)

func newTable(title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	t.AppendHeader(header)
	return t
}

// render prints v as indented JSON when --json is set, otherwise calls draw.
func render(cmd *cobra.Command, v any, draw func()) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if !asJSON {
		draw()
		return nil
	}
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(time.DateTime)
}

func renderOrderBook(symbol string, book *binance.OrderBook, depth int) {
	t := newTable(fmt.Sprintf("%s order book #%d", symbol, book.LastUpdateID), table.Row{"#", "Bid Qty", "Bid", "Ask", "Ask Qty"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Colors: text.Colors{text.FgGreen}},
		{Number: 4, Colors: text.Colors{text.FgRed}},
	})
	for i := 0; i < depth; i++ {
		row := table.Row{i + 1, "", "", "", ""}
		if i < len(book.Bids) {
			row[1], row[2] = book.Bids[i].Quantity.String(), book.Bids[i].Price.String()
		}
		if i < len(book.Asks) {
			row[3], row[4] = book.Asks[i].Price.String(), book.Asks[i].Quantity.String()
		}
		if i >= len(book.Bids) && i >= len(book.Asks) {
			break
		}
		t.AppendRow(row)
	}
	t.Render()
}

func renderKlines(title string, klines []binance.KlineSummary) {
	t := newTable(title, table.Row{"Open Time", "Open", "High", "Low", "Close", "Volume", "Trades"})
	for _, k := range klines {
		t.AppendRow(table.Row{
			formatMillis(k.OpenTime),
			k.Open.String(),
			k.High.String(),
			k.Low.String(),
			k.Close.String(),
			k.Volume.String(),
			k.NumberOfTrades,
		})
	}
	t.Render()
}
