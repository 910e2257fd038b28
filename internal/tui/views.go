package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.renderHeader()
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(),
		m.renderChartPanel(),
	)

	return m.wrapWithBorder(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("Product Filter")
	if m.fetching {
		return title + "  " + m.theme.StatusPending.Render("Loading catalog...")
	}

	c := m.dash.Catalog()
	if c == nil {
		return title + "  " + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("no catalog")
	}
	return title + "  " + m.theme.Subtitle.Render(
		fmt.Sprintf("%d products in %d categories", c.Len(), len(c.Categories())))
}

func (m Model) renderSidebar() string {
	cv := m.controlsView()
	width := m.sidebarWidth()

	sections := []string{
		m.theme.Bold.Render("Filters"),
		"",
		m.sectionTitle("Category", m.focus == FocusCategories),
		m.categories.View(),
	}

	if cv.ShowProducts() {
		sections = append(sections,
			"",
			m.sectionTitle("Products", m.focus == FocusProducts),
			m.products.View(),
		)
	}

	button := m.theme.ButtonOff.Render("Run Report")
	if cv.RunEnabled {
		button = m.theme.Button.Render("Run Report")
	}
	sections = append(sections, "", button)

	return m.theme.BorderedBox.
		Width(width - 2).
		Render(strings.Join(sections, "\n"))
}

func (m Model) sectionTitle(title string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render("▸ " + title)
	}
	return m.theme.Subtitle.Render("  " + title)
}

func (m Model) renderChartPanel() string {
	width := max(m.width-m.sidebarWidth()-2, 12)
	return m.theme.BorderedBox.
		Width(width - 2).
		Render(m.chart.View())
}

func (m Model) wrapWithBorder(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderStatusBar(),
		m.help.View(m.keymap),
	)
}

func (m Model) renderStatusBar() string {
	cv := m.controlsView()

	left := "No category"
	if cv.HasCategory {
		left = fmt.Sprintf("%s · %d/%d selected", cv.Category, cv.SelectedCount, cv.ProductCount)
	}

	state := m.dash.Phase().Name()
	right := make([]string, 0, len(cv.KeyBindings))
	for _, kb := range cv.GetActiveKeyBindings() {
		right = append(right, kb.Key+" "+kb.Description)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		m.theme.StatusInfo.Render(left),
		"  ",
		m.theme.StatusSuccess.Render(state),
		"  ",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(right, " • ")),
	)
}
