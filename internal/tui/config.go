package tui

import (
	"time"

	"github.com/Veraticus/prodchart/internal/dashboard"
	"github.com/Veraticus/prodchart/internal/service"
	"github.com/Veraticus/prodchart/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	KeyMap       KeyMap
	Source       service.CatalogSource
	Values       service.ValueSource
	FetchTimeout time.Duration
	ReportDelay  time.Duration
	Width        int
	Height       int
	ShowPlot     bool
	AltScreen    bool
	ShowHelp     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		KeyMap:       DefaultKeyMap(),
		Values:       dashboard.RandomValues,
		FetchTimeout: 10 * time.Second,
		ReportDelay:  2 * time.Second,
		Width:        100,
		Height:       30,
		AltScreen:    true,
	}
}

// WithSource sets the catalog source.
func WithSource(source service.CatalogSource) Option {
	return func(c *Config) {
		c.Source = source
	}
}

// WithValues sets the value source used for report data points.
func WithValues(values service.ValueSource) Option {
	return func(c *Config) {
		c.Values = values
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithTimings sets the catalog fetch timeout and the report delay.
func WithTimings(fetchTimeout, reportDelay time.Duration) Option {
	return func(c *Config) {
		c.FetchTimeout = fetchTimeout
		c.ReportDelay = reportDelay
	}
}

// WithPlot shows the braille plot under report charts on start.
func WithPlot(enabled bool) Option {
	return func(c *Config) {
		c.ShowPlot = enabled
	}
}

// WithAltScreen controls whether the program takes over the full screen.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithHelp expands the help bar to show every binding on start.
func WithHelp(enabled bool) Option {
	return func(c *Config) {
		c.ShowHelp = enabled
	}
}

// WithKeyMap replaces the key bindings. The list bindings are passed on to
// the category and product lists.
func WithKeyMap(keymap KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keymap
	}
}
