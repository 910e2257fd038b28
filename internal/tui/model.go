package tui

import (
	"context"

	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/dashboard"
	"github.com/Veraticus/prodchart/internal/tui/components"
	"github.com/Veraticus/prodchart/internal/tui/themes"
	"github.com/Veraticus/prodchart/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus identifies which list receives navigation keys.
type Focus int

const (
	FocusCategories Focus = iota
	FocusProducts
)

// Model holds the main TUI state.
type Model struct {
	ctx        context.Context
	dash       *dashboard.Dashboard
	theme      themes.Theme
	help       help.Model
	keymap     KeyMap
	config     Config
	categories components.CategorySelectModel
	products   components.ProductSelectModel
	chart      components.ChartPanelModel
	width      int
	height     int
	focus      Focus
	fetching   bool
	quitting   bool
}

// New creates the dashboard model. The catalog is fetched by Init.
func New(ctx context.Context, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(ctx, cfg)
}

func newModel(ctx context.Context, cfg Config) Model {
	var dashOpts []dashboard.Option
	if cfg.Values != nil {
		dashOpts = append(dashOpts, dashboard.WithValueSource(cfg.Values))
	}

	m := Model{
		ctx:        ctx,
		dash:       dashboard.New(dashOpts...),
		theme:      cfg.Theme,
		help:       help.New(),
		keymap:     cfg.KeyMap,
		config:     cfg,
		categories: components.NewCategorySelect(cfg.Theme, cfg.KeyMap.ListKeys()),
		products:   components.NewProductSelect(cfg.Theme, cfg.KeyMap.ListKeys()),
		chart:      components.NewChartPanel(cfg.Theme),
		width:      cfg.Width,
		height:     cfg.Height,
		fetching:   true,
	}
	m.help.ShowAll = cfg.ShowHelp
	m.chart.SetShowPlot(cfg.ShowPlot)
	m.handleResize()
	m.sync()
	return m
}

// Init starts the one-time catalog fetch.
func (m Model) Init() tea.Cmd {
	return m.fetchCatalog()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case catalogLoadedMsg:
		m.fetching = false
		if msg.err != nil {
			m.dash.LoadFailed(msg.err)
		} else {
			m.dash.Load(msg.products)
		}
		m.sync()

	case components.CategorySelectedMsg:
		if err := m.dash.SelectCategory(msg.Category); err != nil {
			common.LogError(err, "category selection rejected", common.Fields{"category": msg.Category})
		} else if len(m.dash.FilteredProducts()) > 0 {
			m.focus = FocusProducts
		}
		m.sync()

	case components.ProductsSelectedMsg:
		if err := m.dash.SelectProducts(msg.IDs); err != nil {
			common.LogError(err, "product selection rejected", common.Fields{"ids": msg.IDs})
		}
		m.sync()

	case reportReadyMsg:
		m.dash.Complete(msg.req)
		m.sync()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.chart, cmd = m.chart.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Focus):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keymap.Run):
		return m.startReport()

	case key.Matches(msg, m.keymap.Clear):
		m.dash.Clear()
		m.focus = FocusCategories
		m.sync()
		return m, nil

	case key.Matches(msg, m.keymap.TogglePlot):
		m.chart.TogglePlot()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusCategories:
		m.categories, cmd = m.categories.Update(msg)
	case FocusProducts:
		m.products, cmd = m.products.Update(msg)
	}
	return m, cmd
}

// startReport runs the report when the run control is enabled. The
// dashboard's own guard covers headless callers.
func (m Model) startReport() (tea.Model, tea.Cmd) {
	if !m.dash.RunEnabled() {
		return m, nil
	}

	req, ok := m.dash.Run()
	m.sync()
	if !ok {
		return m, nil
	}

	common.LogDebug("report started", common.Fields{
		"generation": req.Generation,
		"products":   len(req.Products),
	})
	return m, tea.Batch(waitForReport(req, m.config.ReportDelay), m.chart.Tick())
}

func (m *Model) toggleFocus() {
	if m.focus == FocusCategories && len(m.dash.FilteredProducts()) > 0 {
		m.focus = FocusProducts
	} else {
		m.focus = FocusCategories
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	if _, ok := m.dash.Selection().Category(); !ok {
		m.focus = FocusCategories
	}

	switch m.focus {
	case FocusCategories:
		m.categories.Focus()
		m.products.Blur()
	case FocusProducts:
		m.products.Focus()
		m.categories.Blur()
	}
}

// sync pushes dashboard state into the components.
func (m *Model) sync() {
	sel := m.dash.Selection()
	category, hasCategory := sel.Category()

	m.categories.SetCategories(m.dash.Categories())
	m.categories.SetSelected(category, hasCategory)
	m.products.SetProducts(m.dash.FilteredProducts())
	m.products.SetSelected(sel.ProductIDs())

	state := m.dash.View()
	m.chart.SetView(viewmodel.ChartView{
		Chart:            m.dash.ActiveChart(),
		ShowDistribution: state.ShowDistribution,
		Loading:          state.Loading,
		HasCategory:      hasCategory,
	})

	m.applyFocus()
}

func (m *Model) handleResize() {
	sidebarWidth := m.sidebarWidth()
	listHeight := max((m.height-12)/2, 3)

	m.categories.Resize(sidebarWidth-4, listHeight)
	m.products.Resize(sidebarWidth-4, listHeight)
	m.chart.Resize(m.width-sidebarWidth-6, m.height-6)
	m.help.Width = m.width
}

func (m Model) sidebarWidth() int {
	return min(max(m.width/3, 24), 40)
}

// Dashboard exposes the underlying state machine.
func (m Model) Dashboard() *dashboard.Dashboard {
	return m.dash
}

// Focused returns the list that receives navigation keys.
func (m Model) Focused() Focus {
	return m.focus
}

// controlsView projects the sidebar state for rendering.
func (m Model) controlsView() viewmodel.ControlsView {
	sel := m.dash.Selection()
	category, hasCategory := sel.Category()
	runEnabled := m.dash.RunEnabled()

	return viewmodel.ControlsView{
		Category:      category,
		HasCategory:   hasCategory,
		SelectedCount: len(sel.ProductIDs()),
		ProductCount:  len(m.dash.FilteredProducts()),
		RunEnabled:    runEnabled,
		KeyBindings: []viewmodel.KeyBinding{
			{Key: "tab", Description: "switch list", IsActive: hasCategory},
			{Key: "space", Description: "select", IsActive: m.dash.Loaded()},
			{Key: "r", Description: "run report", IsActive: runEnabled},
			{Key: "c", Description: "clear", IsActive: m.dash.Loaded()},
			{Key: "p", Description: "plot", IsActive: m.chart.ChartView().IsReport()},
			{Key: "q", Description: "quit", IsActive: true},
		},
	}
}
