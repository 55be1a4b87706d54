package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/pkg/format"
)

func newViewCmd(root *rootOptions) *cobra.Command {
	var status, query, sortKey string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print filtered and sorted orders with summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := domain.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			svc, closeFn, err := root.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			ctx := cmd.Context()
			svc.SetStatusFilter(ctx, status)
			svc.SetSearchQuery(ctx, query)
			_, view := svc.SetSortKey(ctx, key)
			return printView(root.stdout, view, root.unreadable)
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", domain.StatusAll, "status filter (all, pending, shipped, ...)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search by id, customer, status or amount")
	cmd.Flags().StringVar(&sortKey, "sort", string(domain.SortDateDesc), "date_desc|date_asc|amount_desc|amount_asc")
	return cmd
}

func printView(w io.Writer, view domain.View, raw rawCells) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER ID\tDATE\tCUSTOMER\tITEMS\tAMOUNT\tSTATUS")
	shown := 0
	for i := range view.Orders {
		o := &view.Orders[i]
		items, itemsRaw := raw.cell(o.ID, "items", strconv.Itoa(o.Items))
		amount, amountRaw := raw.cell(o.ID, "amount", format.INR(o.Amount))
		if itemsRaw {
			shown++
		}
		if amountRaw {
			shown++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, format.Date(o.Date), o.Customer, items, amount, o.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	a := view.Aggregates
	if _, err := fmt.Fprintf(w, "\nOrders: %d  Total: %s  Pending: %d  Delivered: %d\n",
		a.Count, format.INR(a.Total), a.Pending, a.Delivered); err != nil {
		return err
	}
	if shown > 0 {
		_, err := fmt.Fprintf(w, "Unreadable cells shown as typed (counted as 0): %d\n", shown)
		return err
	}
	return nil
}

// rawCells — исходный текст нечитаемых ячеек: id заказа → колонка → текст.
type rawCells map[string]map[string]string

func newRawCells(warns []domain.ImportWarning) rawCells {
	if len(warns) == 0 {
		return nil
	}
	rc := make(rawCells, len(warns))
	for _, w := range warns {
		if rc[w.OrderID] == nil {
			rc[w.OrderID] = make(map[string]string, 2)
		}
		rc[w.OrderID][w.Column] = w.Value
	}
	return rc
}

// cell — исходный текст, если ячейка не прочиталась; иначе parsed.
func (rc rawCells) cell(id, column, parsed string) (string, bool) {
	if v, ok := rc[id][column]; ok {
		return v, true
	}
	return parsed, false
}
