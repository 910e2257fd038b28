package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/prodchart/internal/catalog"
	"github.com/Veraticus/prodchart/internal/chart"
	"github.com/Veraticus/prodchart/internal/cli"
	"github.com/Veraticus/prodchart/internal/common"
	"github.com/spf13/cobra"
)

func (a *app) categoriesCmd() *cobra.Command {
	var (
		category string
		noChart  bool
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories and their product counts",
		Long: `Fetch the catalog and print each category with its product count, followed
by the category distribution chart. With --category, list that category's
products instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			products, err := a.fetchProducts(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c := catalog.New(products)

			if category != "" {
				return listProducts(out, c, category)
			}

			if c.Len() == 0 {
				fmt.Fprintln(out, cli.FormatWarning("The catalog is empty."))
				return nil
			}

			if err := writeCategoryTable(out, c); err != nil {
				return err
			}

			if !noChart {
				renderer := chart.NewRenderer(chart.DefaultStyles(), min(terminalWidth(out, 80), 100)-4)
				fmt.Fprintln(out)
				fmt.Fprintln(out, cli.RenderBox(renderer.Render(chart.Distribution(c.Products(), c.Categories()))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "list the products of this category")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "skip the distribution chart")

	return cmd
}

func writeCategoryTable(out io.Writer, c *catalog.Catalog) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Products"),
		cli.TableHeaderStyle.Render("Share"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		strings.Repeat("-", 20),
		strings.Repeat("-", 8),
		strings.Repeat("-", 6))

	total := c.Len()
	for _, cc := range c.Counts() {
		fmt.Fprintf(w, "%s\t%d\t%5.1f%%\n", cc.Category, cc.Count, 100*float64(cc.Count)/float64(total))
	}

	return w.Flush()
}

func listProducts(out io.Writer, c *catalog.Catalog, category string) error {
	if !c.HasCategory(category) {
		return common.NewUserError(
			fmt.Sprintf("unknown category %q (available: %s)", category, strings.Join(c.Categories(), ", ")),
			common.ErrUnknownCategory,
		)
	}

	fmt.Fprintln(out, cli.FormatTitle(category))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Title"))
	for _, p := range c.Filter(category) {
		fmt.Fprintf(w, "%d\t%s\n", p.ID, p.Title)
	}
	return w.Flush()
}
