package components

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/prodchart/internal/model"
	"github.com/Veraticus/prodchart/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProductSelectModel is a multi-choice list of products. It never changes
// its own selection; it emits ProductsSelectedMsg and waits for SetSelected.
type ProductSelectModel struct {
	keys     ListKeys
	theme    themes.Theme
	products []model.Product
	selected []int
	cursor   int
	offset   int
	width    int
	height   int
	focused  bool
}

// NewProductSelect creates an empty product selector.
func NewProductSelect(theme themes.Theme, keys ListKeys) ProductSelectModel {
	return ProductSelectModel{
		keys:   keys,
		theme:  theme,
		width:  30,
		height: 10,
	}
}

// Update handles messages.
func (m ProductSelectModel) Update(msg tea.Msg) (ProductSelectModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.products) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(m.products)-1)
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, m.keys.Top):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.Bottom):
		m.cursor = len(m.products) - 1
	case key.Matches(keyMsg, m.keys.Select):
		return m, m.emit(m.toggled(m.products[m.cursor].ID))
	case key.Matches(keyMsg, m.keys.SelectAll):
		return m, m.emit(m.withAll())
	case key.Matches(keyMsg, m.keys.DeselectAll):
		return m, m.emit([]int{})
	}

	m.ensureVisible()
	return m, nil
}

// View renders the product list.
func (m ProductSelectModel) View() string {
	if len(m.products) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No products")
	}

	end := min(m.offset+m.height, len(m.products))
	lines := make([]string, 0, end-m.offset+1)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i))
	}

	lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(fmt.Sprintf("%d of %d selected", len(m.selected), len(m.products))))

	return strings.Join(lines, "\n")
}

func (m ProductSelectModel) renderRow(i int) string {
	p := m.products[i]
	marker := "[ ]"
	if slices.Contains(m.selected, p.ID) {
		marker = "[x]"
	}

	row := truncate(fmt.Sprintf("%s %s", marker, p.Title), m.width)
	switch {
	case m.focused && i == m.cursor:
		return m.theme.Selected.Render(row)
	case i == m.cursor:
		return m.theme.Highlighted.Render(row)
	default:
		return m.theme.Normal.Render(row)
	}
}

// toggled returns the selection with id added at the end or removed.
func (m ProductSelectModel) toggled(id int) []int {
	if i := slices.Index(m.selected, id); i >= 0 {
		return slices.Delete(slices.Clone(m.selected), i, i+1)
	}
	return append(slices.Clone(m.selected), id)
}

// withAll appends every unselected product, keeping existing order first.
func (m ProductSelectModel) withAll() []int {
	ids := slices.Clone(m.selected)
	for _, p := range m.products {
		if !slices.Contains(ids, p.ID) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (m ProductSelectModel) emit(ids []int) tea.Cmd {
	return func() tea.Msg {
		return ProductsSelectedMsg{IDs: ids}
	}
}

// SetProducts replaces the options. The cursor resets when the list changes.
func (m *ProductSelectModel) SetProducts(products []model.Product) {
	if !slices.Equal(model.ProductIDs(m.products), model.ProductIDs(products)) {
		m.cursor = 0
		m.offset = 0
	}
	m.products = products
}

// SetSelected marks the chosen ids.
func (m *ProductSelectModel) SetSelected(ids []int) {
	m.selected = slices.Clone(ids)
}

// Selected returns the marked ids in selection order.
func (m ProductSelectModel) Selected() []int {
	return slices.Clone(m.selected)
}

// Cursor returns the highlighted index.
func (m ProductSelectModel) Cursor() int {
	return m.cursor
}

// Focus gives the list keyboard input.
func (m *ProductSelectModel) Focus() {
	m.focused = true
}

// Blur removes keyboard input.
func (m *ProductSelectModel) Blur() {
	m.focused = false
}

// Focused reports whether the list has keyboard input.
func (m ProductSelectModel) Focused() bool {
	return m.focused
}

// Resize updates the component size.
func (m *ProductSelectModel) Resize(width, height int) {
	m.width = max(width, 8)
	m.height = max(height, 1)
	m.ensureVisible()
}

func (m *ProductSelectModel) ensureVisible() {
	m.offset = scrollOffset(m.cursor, m.offset, m.height)
}
