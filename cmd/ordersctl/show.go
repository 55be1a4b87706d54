package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/pkg/format"
)

func newShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show ORDER_ID",
		Short: "Print one order with details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := root.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			order, found := svc.GetOrder(cmd.Context(), args[0])
			if !found {
				return fmt.Errorf("order %q not found", args[0])
			}
			return printOrder(root.stdout, order, root.unreadable)
		},
	}
}

func printOrder(w io.Writer, o *domain.Order, raw rawCells) error {
	details := o.Details
	if details == "" {
		details = "-"
	}
	items, itemsRaw := raw.cell(o.ID, "items", strconv.Itoa(o.Items))
	if itemsRaw {
		items += " (unreadable, counted as 0)"
	}
	amount, amountRaw := raw.cell(o.ID, "amount", format.INR(o.Amount))
	if amountRaw {
		amount += " (unreadable, counted as 0)"
	}
	_, err := fmt.Fprintf(w, "Order:    %s\nDate:     %s\nCustomer: %s\nItems:    %s\nAmount:   %s\nStatus:   %s\nDetails:  %s\n",
		o.ID, format.Date(o.Date), o.Customer, items, amount, o.Status, details)
	return err
}
