package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/dashboard"
	tea "github.com/charmbracelet/bubbletea"
)

// fetchCatalog loads the product catalog from the configured source.
func (m Model) fetchCatalog() tea.Cmd {
	source := m.config.Source
	timeout := m.config.FetchTimeout
	return func() tea.Msg {
		if source == nil {
			return catalogLoadedMsg{err: common.FetchError(fmt.Errorf("catalog source not configured"))}
		}

		ctx := m.ctx
		if ctx == nil {
			ctx = context.Background()
		}
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		products, err := source.FetchProducts(ctx)
		return catalogLoadedMsg{products: products, err: err}
	}
}

// waitForReport delivers req back to Update after delay.
func waitForReport(req dashboard.Request, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return reportReadyMsg{req: req}
		}
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return reportReadyMsg{req: req}
	})
}
