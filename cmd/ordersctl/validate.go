package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/jm_orders/pkg/validate"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var (
		strict bool
		emit   bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check an order file (.json, .jsonl, .yaml, .csv, .xlsx) before import or seeding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []validate.Option
			if strict {
				opts = append(opts, validate.WithStrictStatus())
			}

			out := io.Discard
			if emit {
				out = root.stdout
			}

			rep, err := validate.ValidateFile(cmd.Context(), validate.NewOrderValidator(opts...), args[0], validate.InputFormat(format), out)
			if err != nil {
				return fmt.Errorf("validation: %w", err)
			}
			for _, is := range rep.Issues {
				fmt.Fprintf(root.stderr, "#%d %s: %v\n", is.Index, is.ID, is.Err)
			}
			if rep.Invalid > 0 {
				return fmt.Errorf("validation failed (%s)", rep)
			}
			fmt.Fprintf(root.stderr, "validation ok (%s)\n", rep)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "require a known status")
	cmd.Flags().BoolVar(&emit, "emit", false, "print valid orders to stdout as JSONL")
	cmd.Flags().StringVar(&format, "as", "auto", "input format: auto|json|jsonl|yaml|csv|xlsx")
	return cmd
}
