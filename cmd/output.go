package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"superstar/internal/domain"
	"superstar/internal/service"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printOrders(w io.Writer, orders []domain.Order) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tPHONE\tAMOUNT\tSTATUS\tDELIVERY\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
			o.ID, o.CustomerName, o.Phone, o.TotalAmount, o.Status, domain.DeliveryName(o.DeliveryCompany), o.CreatedAt)
	}
	return tw.Flush()
}

func printStats(w io.Writer, stats []domain.CompanyStat) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPANY\tNAME\tORDERS\tDELIVERED\tREVENUE")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.2f\n", s.ID, s.Name, s.Orders, s.Delivered, s.Revenue)
	}
	return tw.Flush()
}

func printSellerSummary(w io.Writer, s service.SellerSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total\t%d\n", s.Total)
	fmt.Fprintf(tw, "Pending\t%d\n", s.Pending)
	fmt.Fprintf(tw, "Ready to ship\t%d\n", s.ReadyToShip)
	fmt.Fprintf(tw, "Awaiting dispatch\t%d\n", s.AwaitingDispatch)
	fmt.Fprintf(tw, "Today\t%d\n", s.Today)
	return tw.Flush()
}

func printAdminSummary(w io.Writer, s service.AdminSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Orders\t%d\n", s.TotalOrders)
	fmt.Fprintf(tw, "Revenue\t%.2f\n", s.TotalRevenue)
	fmt.Fprintf(tw, "Delivered revenue\t%.2f\n", s.DeliveredRevenue)
	fmt.Fprintf(tw, "Delivery companies\t%d\n", s.Companies)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return printStats(w, s.Delivery)
}
