package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/prodchart/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CategorySelectModel is a single-choice list of categories.
type CategorySelectModel struct {
	keys        ListKeys
	theme       themes.Theme
	selected    string
	categories  []string
	cursor      int
	offset      int
	width       int
	height      int
	hasSelected bool
	focused     bool
}

// NewCategorySelect creates an empty category selector.
func NewCategorySelect(theme themes.Theme, keys ListKeys) CategorySelectModel {
	return CategorySelectModel{
		keys:   keys,
		theme:  theme,
		width:  30,
		height: 8,
	}
}

// Update handles messages.
func (m CategorySelectModel) Update(msg tea.Msg) (CategorySelectModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.categories) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(m.categories)-1)
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, m.keys.Top):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.Bottom):
		m.cursor = len(m.categories) - 1
	case key.Matches(keyMsg, m.keys.Select):
		category := m.categories[m.cursor]
		return m, func() tea.Msg {
			return CategorySelectedMsg{Category: category}
		}
	}

	m.ensureVisible()
	return m, nil
}

// View renders the category list.
func (m CategorySelectModel) View() string {
	if len(m.categories) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No categories")
	}

	end := min(m.offset+m.height, len(m.categories))
	lines := make([]string, 0, end-m.offset+1)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i))
	}

	if len(m.categories) > m.height {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.categories))))
	}

	return strings.Join(lines, "\n")
}

func (m CategorySelectModel) renderRow(i int) string {
	category := m.categories[i]
	marker := "( )"
	if m.hasSelected && category == m.selected {
		marker = "(•)"
	}

	row := truncate(fmt.Sprintf("%s %s", marker, category), m.width)
	switch {
	case m.focused && i == m.cursor:
		return m.theme.Selected.Render(row)
	case i == m.cursor:
		return m.theme.Highlighted.Render(row)
	default:
		return m.theme.Normal.Render(row)
	}
}

// SetCategories replaces the options, keeping the cursor in range.
func (m *CategorySelectModel) SetCategories(categories []string) {
	m.categories = categories
	if m.cursor >= len(categories) {
		m.cursor = max(len(categories)-1, 0)
	}
	m.ensureVisible()
}

// SetSelected marks the chosen category.
func (m *CategorySelectModel) SetSelected(category string, ok bool) {
	m.selected = category
	m.hasSelected = ok
}

// Cursor returns the highlighted index.
func (m CategorySelectModel) Cursor() int {
	return m.cursor
}

// Focus gives the list keyboard input.
func (m *CategorySelectModel) Focus() {
	m.focused = true
}

// Blur removes keyboard input.
func (m *CategorySelectModel) Blur() {
	m.focused = false
}

// Focused reports whether the list has keyboard input.
func (m CategorySelectModel) Focused() bool {
	return m.focused
}

// Resize updates the component size.
func (m *CategorySelectModel) Resize(width, height int) {
	m.width = max(width, 8)
	m.height = max(height, 1)
	m.ensureVisible()
}

func (m *CategorySelectModel) ensureVisible() {
	m.offset = scrollOffset(m.cursor, m.offset, m.height)
}
