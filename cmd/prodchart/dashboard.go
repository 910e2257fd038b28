package main

import (
	"os"

	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/tui"
	"github.com/Veraticus/prodchart/internal/tui/themes"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

func (a *app) dashboardCmd() *cobra.Command {
	var noAltScreen bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive product dashboard",
		Long: `Fetch the catalog and open the dashboard. Pick a category, select products
and press r to chart a report. Press c to clear back to the category
distribution.`,
		Annotations: map[string]string{quietLogsAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(os.Stdout.Fd()) {
				return common.NewUserError("the dashboard needs an interactive terminal; try 'prodchart report' instead", nil)
			}

			s := a.settings
			return tui.Run(cmd.Context(),
				tui.WithSource(a.source()),
				tui.WithTheme(themes.GetTheme(s.UI.Theme)),
				tui.WithTimings(s.FetchTimeout, s.ReportDelay),
				tui.WithPlot(s.UI.ShowPlot),
				tui.WithAltScreen(s.UI.AltScreen && !noAltScreen),
			)
		},
	}

	cmd.Flags().BoolVar(&noAltScreen, "inline", false, "render inline instead of taking over the screen")
	return cmd
}
