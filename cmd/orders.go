package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"superstar/internal/domain"
)

func newOrdersCmd() *cobra.Command {
	var ordersCmd = &cobra.Command{
		Use:   "orders",
		Short: "Inspect and change orders",
	}

	// orders list
	var listStatus string
	var listJSON bool
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter domain.OrderStatus
			if listStatus != "" {
				st, err := parseStatusArg(listStatus)
				if err != nil {
					return err
				}
				filter = st
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			var out []domain.Order
			for _, o := range a.Orders.ListOrders(cmd.Context()) {
				if filter == "" || o.Status == filter {
					out = append(out, o)
				}
			}
			if listJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			return printOrders(cmd.OutOrStdout(), out)
		},
	}
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "only this status (literal or new|prep|ready|shipping|delivered|cancelled)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON")
	ordersCmd.AddCommand(listCmd)

	// orders create
	var in domain.NewOrder
	var company string
	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if company != "" {
				in.DeliveryCompany = domain.DeliveryCompanyID(strings.TrimSpace(company)).Ptr()
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			o, err := a.Orders.CreateOrder(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printOrders(cmd.OutOrStdout(), []domain.Order{*o})
		},
	}
	createCmd.Flags().StringVar(&in.CustomerName, "name", "", "customer name")
	createCmd.Flags().StringVar(&in.Phone, "phone", "", "phone number")
	createCmd.Flags().StringVar(&in.Address, "address", "", "delivery address")
	createCmd.Flags().StringVar(&in.Items, "items", "", "items, free text")
	createCmd.Flags().Float64Var(&in.TotalAmount, "amount", 0, "total amount")
	createCmd.Flags().StringVar(&in.Notes, "notes", "", "notes")
	createCmd.Flags().StringVar(&company, "company", "", "delivery company id (aramex|faster|partner|other)")
	for _, name := range []string{"name", "phone", "address", "items", "amount"} {
		_ = createCmd.MarkFlagRequired(name)
	}
	ordersCmd.AddCommand(createCmd)

	// orders status <id> <status>
	var statusCmd = &cobra.Command{
		Use:   "status <order_id> <status>",
		Short: "Set an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStatusArg(args[1])
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			o, err := a.Orders.UpdateStatus(cmd.Context(), args[0], st)
			if err != nil {
				return err
			}
			return printOrders(cmd.OutOrStdout(), []domain.Order{*o})
		},
	}
	ordersCmd.AddCommand(statusCmd)

	// orders assign <id> <company>
	var assignCmd = &cobra.Command{
		Use:   "assign <order_id> <company>",
		Short: "Hand an order to a delivery company",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			o, err := a.Orders.AssignDelivery(cmd.Context(), args[0], domain.DeliveryCompanyID(strings.TrimSpace(args[1])))
			if err != nil {
				return err
			}
			return printOrders(cmd.OutOrStdout(), []domain.Order{*o})
		},
	}
	ordersCmd.AddCommand(assignCmd)

	// orders stats
	var statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Per delivery company statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			return printStats(cmd.OutOrStdout(), a.Delivery.Statistics(cmd.Context()))
		},
	}
	ordersCmd.AddCommand(statsCmd)

	return ordersCmd
}

// parseStatusArg accepts the stored literal or the short badge name.
func parseStatusArg(raw string) (domain.OrderStatus, error) {
	if st, ok := domain.ParseStatus(raw); ok {
		return st, nil
	}
	short := strings.ToLower(strings.TrimSpace(raw))
	for _, st := range domain.AllStatuses() {
		if strings.TrimPrefix(st.BadgeClass(), "badge-") == short {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", raw)
}
