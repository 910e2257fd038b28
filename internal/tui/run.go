package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/prodchart/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive dashboard and blocks until the user quits or
// ctx is canceled.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == nil {
		return fmt.Errorf("%w: catalog source is required", common.ErrMissingConfig)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	program := tea.NewProgram(newModel(ctx, cfg), programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("dashboard exited: %w", err)
	}
	return nil
}
