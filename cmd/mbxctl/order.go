package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance/spot"
)

func init() {
	for _, c := range []*cobra.Command{orderPlaceCmd, orderTestCmd} {
		c.Flags().String("side", "", "BUY or SELL")
		c.Flags().String("type", "LIMIT", "order type")
		c.Flags().String("quantity", "", "base asset quantity")
		c.Flags().String("quote-quantity", "", "quote asset amount for market orders")
		c.Flags().String("price", "", "limit price")
		c.Flags().String("stop-price", "", "stop price")
		c.Flags().String("iceberg", "", "iceberg visible quantity")
		c.Flags().String("tif", "GTC", "time in force")
		c.Flags().String("client-id", "", "client order ID, generated when empty")
		_ = c.MarkFlagRequired("side")
	}

	for _, c := range []*cobra.Command{orderCancelCmd, orderStatusCmd} {
		c.Flags().Uint64("id", 0, "exchange order ID")
		c.Flags().String("client-id", "", "client order ID")
		c.MarkFlagsOneRequired("id", "client-id")
	}

	orderCmd.AddCommand(orderPlaceCmd, orderTestCmd, orderCancelCmd, orderStatusCmd, orderOpenCmd, orderCancelAllCmd)
	rootCmd.AddCommand(orderCmd)
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "place, inspect and cancel spot orders",
}

func buildOrder(cmd *cobra.Command, symbol string) (*spot.OrderRequest, error) {
	flags := cmd.Flags()
	get := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}

	side, err := core.ParseOrderSide(get("side"))
	if err != nil {
		return nil, err
	}
	orderType, err := core.ParseOrderType(get("type"))
	if err != nil {
		return nil, err
	}

	b := spot.NewOrderBuilder(symbol).Side(side).Type(orderType)
	if v := get("quantity"); v != "" {
		b.Quantity(v)
	}
	if v := get("quote-quantity"); v != "" {
		b.QuoteQuantity(v)
	}
	if v := get("price"); v != "" {
		b.Price(v)
	}
	if v := get("stop-price"); v != "" {
		b.StopPrice(v)
	}
	if v := get("iceberg"); v != "" {
		b.IcebergQuantity(v)
	}
	if orderType != core.TypeMarket {
		tif, err := core.ParseTimeInForce(get("tif"))
		if err != nil {
			return nil, err
		}
		b.TimeInForce(tif)
	}
	if v := get("client-id"); v != "" {
		b.ClientOrderID(v)
	} else {
		b.WithGeneratedClientOrderID()
	}
	return b.Build()
}

var orderPlaceCmd = &cobra.Command{
	Use:   "place SYMBOL",
	Short: "place a spot order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := buildOrder(cmd, args[0])
		if err != nil {
			return err
		}

		tx, err := spot.NewAccount(client).PlaceOrder(cmd.Context(), *order)
		if err != nil {
			return err
		}
		logger.Info().
			Str("symbol", tx.Symbol).
			Uint64("order_id", tx.OrderID).
			Str("client_order_id", tx.ClientOrderID).
			Str("status", tx.Status.String()).
			Msg("order placed")

		return render(cmd, tx, func() {
			t := newTable(fmt.Sprintf("order %d", tx.OrderID), table.Row{"Price", "Qty", "Commission"})
			for _, f := range tx.Fills {
				t.AppendRow(table.Row{f.Price.String(), f.Qty.String(), f.Commission.String() + " " + f.CommissionAsset})
			}
			t.AppendFooter(table.Row{"executed", tx.ExecutedQty.String(), tx.Status.String()})
			t.Render()
		})
	},
}

var orderTestCmd = &cobra.Command{
	Use:   "test SYMBOL",
	Short: "validate a spot order against the test endpoint without placing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := buildOrder(cmd, args[0])
		if err != nil {
			return err
		}
		if _, err := spot.NewAccount(client).PlaceTestOrder(cmd.Context(), *order); err != nil {
			return err
		}
		fmt.Println("order accepted")
		return nil
	},
}

func orderRef(cmd *cobra.Command) (*uint64, *string, error) {
	var (
		id       *uint64
		clientID *string
	)
	if cmd.Flags().Changed("id") {
		v, err := cmd.Flags().GetUint64("id")
		if err != nil {
			return nil, nil, err
		}
		id = &v
	}
	if v, err := cmd.Flags().GetString("client-id"); err != nil {
		return nil, nil, err
	} else if v != "" {
		clientID = &v
	}
	return id, clientID, nil
}

var orderCancelCmd = &cobra.Command{
	Use:   "cancel SYMBOL",
	Short: "cancel a spot order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, clientID, err := orderRef(cmd)
		if err != nil {
			return err
		}

		canceled, err := spot.NewAccount(client).CancelOrder(cmd.Context(), spot.OrderCancellation{
			Symbol:            args[0],
			OrderID:           id,
			OrigClientOrderID: clientID,
		})
		if err != nil {
			return err
		}
		return render(cmd, canceled, func() {
			fmt.Printf("order %d %s\n", canceled.OrderID, canceled.Status)
		})
	},
}

var orderStatusCmd = &cobra.Command{
	Use:   "status SYMBOL",
	Short: "print the status of a spot order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, clientID, err := orderRef(cmd)
		if err != nil {
			return err
		}

		order, err := spot.NewAccount(client).OrderStatus(cmd.Context(), spot.OrderStatusRequest{
			Symbol:            args[0],
			OrderID:           id,
			OrigClientOrderID: clientID,
		})
		if err != nil {
			return err
		}
		return render(cmd, order, func() { renderOrders("order", []spot.Order{*order}) })
	},
}

var orderOpenCmd = &cobra.Command{
	Use:   "open [SYMBOL]",
	Short: "list open spot orders",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account := spot.NewAccount(client)

		var (
			orders []spot.Order
			err    error
		)
		if len(args) == 1 {
			orders, err = account.GetOpenOrders(cmd.Context(), args[0])
		} else {
			orders, err = account.GetAllOpenOrders(cmd.Context())
		}
		if err != nil {
			return err
		}
		return render(cmd, orders, func() { renderOrders("open orders", orders) })
	},
}

var orderCancelAllCmd = &cobra.Command{
	Use:   "cancel-all SYMBOL",
	Short: "cancel every open spot order on a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := spot.NewAccount(client).CancelAllOpenOrders(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd, orders, func() { renderOrders("canceled", orders) })
	},
}

func renderOrders(title string, orders []spot.Order) {
	t := newTable(title, table.Row{"ID", "Symbol", "Side", "Type", "Price", "Qty", "Executed", "Status", "Time"})
	for _, o := range orders {
		t.AppendRow(table.Row{
			o.OrderID, o.Symbol, o.Side.String(), o.Type.String(),
			o.Price.String(), o.OrigQty.String(), o.ExecutedQty.String(),
			o.Status.String(), formatMillis(o.Time),
		})
	}
	t.Render()
}
