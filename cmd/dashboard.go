package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	var dashboardCmd = &cobra.Command{
		Use:   "dashboard",
		Short: "Dashboard summaries",
	}

	var sellerCmd = &cobra.Command{
		Use:   "seller",
		Short: "Seller cards: totals, pending, ready, today",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			return printSellerSummary(cmd.OutOrStdout(), a.Orders.SellerSummary(cmd.Context(), time.Now()))
		},
	}
	dashboardCmd.AddCommand(sellerCmd)

	var adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Admin cards and delivery statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			return printAdminSummary(cmd.OutOrStdout(), a.Orders.AdminSummary(cmd.Context()))
		},
	}
	dashboardCmd.AddCommand(adminCmd)

	return dashboardCmd
}
