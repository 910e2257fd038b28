package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Veraticus/prodchart/internal/chart"
	"github.com/Veraticus/prodchart/internal/cli"
	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/dashboard"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	category    string
	format      string
	productIDs  []int
	allProducts bool
	plot        bool
}

func (a *app) reportCmd() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run a product report without the interactive dashboard",
		Long: `Select a category and products, run the report and print the resulting
chart. Without a category or products the report does not run and the
category distribution is printed instead.`,
		Example: `  prodchart report --category beauty --product 1 --product 2
  prodchart report --category groceries --all --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.format != "text" && opts.format != "json" {
				return common.NewUserError(fmt.Sprintf("unknown format %q (use text or json)", opts.format), nil)
			}
			return a.runReport(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "category to report on")
	cmd.Flags().IntSliceVarP(&opts.productIDs, "product", "p", nil, "product id to include (repeatable, order is kept)")
	cmd.Flags().BoolVar(&opts.allProducts, "all", false, "include every product in the category")
	cmd.Flags().BoolVar(&opts.plot, "plot", false, "add a braille line plot under the report")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")

	return cmd
}

func (a *app) runReport(ctx context.Context, out, errOut io.Writer, opts reportOptions) error {
	products, err := a.fetchProducts(ctx, errOut)
	if err != nil {
		return err
	}

	d := dashboard.New()
	d.Load(products)

	if opts.category != "" {
		if err := d.SelectCategory(opts.category); err != nil {
			return common.NewUserError(
				fmt.Sprintf("unknown category %q (available: %s)", opts.category, strings.Join(d.Categories(), ", ")),
				err,
			)
		}
	}

	ids := opts.productIDs
	if opts.allProducts {
		for _, p := range d.FilteredProducts() {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) > 0 {
		if err := d.SelectProducts(ids); err != nil {
			return common.NewUserError("cannot select those products", err)
		}
	}

	req, ok := d.Run()
	if !ok {
		if opts.format == "text" {
			fmt.Fprintln(errOut, cli.FormatWarning("Select a category and at least one product to run a report. Showing the distribution instead."))
		}
		return writeChart(out, d.ActiveChart(), opts)
	}

	err = cli.NewSpinner(errOut, "Generating report...").Wait(func() error {
		return sleep(ctx, a.settings.ReportDelay)
	})
	if err != nil {
		return err
	}

	if !d.Complete(req) {
		return fmt.Errorf("report generation %d was superseded", req.Generation)
	}
	return writeChart(out, d.ActiveChart(), opts)
}

func writeChart(out io.Writer, cfg *chart.Config, opts reportOptions) error {
	if cfg == nil {
		return fmt.Errorf("no chart to display")
	}

	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	renderer := chart.NewRenderer(chart.DefaultStyles(), min(terminalWidth(out, 80), 100)-4)
	body := renderer.Render(*cfg)
	if opts.plot && cfg.Kind == chart.KindReport {
		if plot := renderer.RenderPlot(*cfg, 10); plot != "" {
			body += "\n\n" + plot
		}
	}

	_, err := fmt.Fprintln(out, cli.RenderBox(body))
	return err
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
