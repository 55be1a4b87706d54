package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	viewcache "github.com/Gunvolt24/jm_orders/internal/cache/memory"
	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/importer"
	"github.com/Gunvolt24/jm_orders/internal/seed"
	"github.com/Gunvolt24/jm_orders/internal/store/memory"
	"github.com/Gunvolt24/jm_orders/internal/usecase"
	"github.com/Gunvolt24/jm_orders/pkg/logger"
)

// rootOptions — общие флаги всех команд.
type rootOptions struct {
	file    string
	format  string
	verbose bool

	// исходный текст нечитаемых числовых ячеек импортированного файла
	unreadable rawCells

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "ordersctl",
		Short:         "Jewel Market order dashboard from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.file, "file", "f", "", "spreadsheet to import (.xlsx or .csv); built-in sample orders when empty")
	pf.StringVar(&opts.format, "format", "auto", "spreadsheet format: auto|xlsx|csv")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		newViewCmd(opts),
		newShowCmd(opts),
		newExportCmd(opts),
		newValidateCmd(opts),
	)
	return cmd
}

// openService — сервис панели над встроенным набором или импортированным файлом.
func (o *rootOptions) openService(ctx context.Context) (*usecase.DashboardService, func(), error) {
	level := "error"
	if o.verbose {
		level = "info"
	}
	logg, cleanup, err := logger.NewZapLogger(false, logger.WithLevel(level))
	if err != nil {
		return nil, func() {}, err
	}
	closeFn := func() { _ = cleanup() }

	svc := usecase.NewDashboardService(
		memory.NewOrderStore(seed.Builtin()),
		viewcache.NewViewCacheLRU(16, time.Minute),
		importer.New(0),
		logg,
	)
	if o.file == "" {
		return svc, closeFn, nil
	}

	f, err := os.Open(o.file)
	if err != nil {
		closeFn()
		return nil, func() {}, fmt.Errorf("open %s: %w", o.file, err)
	}
	defer f.Close()

	kind := domain.ParseImportFormat(o.format)
	if kind == domain.ImportAuto {
		kind = domain.ImportFormatFromName(o.file)
	}
	out, err := svc.Import(ctx, f, kind)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	for _, w := range out.Warnings {
		fmt.Fprintf(o.stderr, "warning: row %d column %s: cannot read %q (order %s), using 0\n", w.Row, w.Column, w.Value, w.OrderID)
	}
	o.unreadable = newRawCells(out.Warnings)
	return svc, closeFn, nil
}
