package components

import (
	"strings"

	"github.com/Veraticus/prodchart/internal/chart"
	"github.com/Veraticus/prodchart/internal/tui/themes"
	"github.com/Veraticus/prodchart/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const plotHeight = 8

// ChartPanelModel draws the active chart, or a spinner while a report runs.
type ChartPanelModel struct {
	view     viewmodel.ChartView
	spinner  spinner.Model
	theme    themes.Theme
	width    int
	height   int
	showPlot bool
}

// NewChartPanel creates a chart panel.
func NewChartPanel(theme themes.Theme) ChartPanelModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return ChartPanelModel{
		theme:   theme,
		spinner: s,
		width:   60,
		height:  20,
	}
}

// Update advances the spinner while a report is loading.
func (m ChartPanelModel) Update(msg tea.Msg) (ChartPanelModel, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok || !m.view.ShowSpinner() {
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// Tick starts the spinner animation.
func (m ChartPanelModel) Tick() tea.Cmd {
	return m.spinner.Tick
}

// View renders the panel body.
func (m ChartPanelModel) View() string {
	if m.view.ShowSpinner() {
		return m.spinner.View() + " " + m.theme.StatusPending.Render("Generating report...")
	}

	if !m.view.Visible() {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render("Select a category and products, then press r to run a report.")
	}

	renderer := chart.NewRenderer(m.theme.ChartStyles(), m.width)
	var b strings.Builder
	b.WriteString(renderer.Render(*m.view.Chart))

	if m.showPlot && m.view.IsReport() {
		if plot := renderer.RenderPlot(*m.view.Chart, plotHeight); plot != "" {
			b.WriteString("\n\n")
			b.WriteString(plot)
		}
	}

	return b.String()
}

// SetView replaces the chart projection.
func (m *ChartPanelModel) SetView(view viewmodel.ChartView) {
	m.view = view
}

// ChartView returns the current projection.
func (m ChartPanelModel) ChartView() viewmodel.ChartView {
	return m.view
}

// TogglePlot flips the braille plot under report charts.
func (m *ChartPanelModel) TogglePlot() {
	m.showPlot = !m.showPlot
}

// SetShowPlot sets whether the braille plot is drawn.
func (m *ChartPanelModel) SetShowPlot(show bool) {
	m.showPlot = show
}

// ShowPlot reports whether the braille plot is drawn.
func (m ChartPanelModel) ShowPlot() bool {
	return m.showPlot
}

// Resize updates the component size.
func (m *ChartPanelModel) Resize(width, height int) {
	m.width = max(width, 10)
	m.height = max(height, 1)
}
