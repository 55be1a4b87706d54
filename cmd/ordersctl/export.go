package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/jm_orders/internal/export"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all orders as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := root.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if out == "-" {
				return svc.ExportCSV(cmd.Context(), root.stdout)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := svc.ExportCSV(cmd.Context(), f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			fmt.Fprintf(root.stderr, "exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", export.DefaultFilename, `output file ("-" for stdout)`)
	return cmd
}
