// Package config loads and validates prodchart settings from viper.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/prodchart/internal/common"
	"github.com/spf13/viper"
)

const (
	// AppName names the config directory and env prefix.
	AppName = "prodchart"

	// DefaultCatalogURL is the public catalog endpoint.
	DefaultCatalogURL = "https://dummyjson.com/products"
)

// ThemeNames lists the accepted ui.theme values.
var ThemeNames = []string{"default", "catppuccin-mocha"}

// Settings is the effective configuration.
type Settings struct {
	CatalogURL   string        `mapstructure:"catalog_url" yaml:"catalog_url"`
	Logging      Logging       `mapstructure:"logging" yaml:"logging"`
	UI           UI            `mapstructure:"ui" yaml:"ui"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout" yaml:"fetch_timeout"`
	ReportDelay  time.Duration `mapstructure:"report_delay" yaml:"report_delay"`
}

// Logging controls slog output.
type Logging struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file,omitempty"`
}

// UI controls the interactive dashboard.
type UI struct {
	Theme     string `mapstructure:"theme" yaml:"theme"`
	AltScreen bool   `mapstructure:"alt_screen" yaml:"alt_screen"`
	ShowPlot  bool   `mapstructure:"show_plot" yaml:"show_plot"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog_url", DefaultCatalogURL)
	v.SetDefault("fetch_timeout", 10*time.Second)
	v.SetDefault("report_delay", 2*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.show_plot", false)
}

// Load reads settings from v and validates them.
func Load(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	s.Logging.File = ExpandPath(s.Logging.File)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that settings are usable.
func (s Settings) Validate() error {
	if s.CatalogURL == "" {
		return fmt.Errorf("%w: catalog_url is required", common.ErrMissingConfig)
	}
	u, err := url.Parse(s.CatalogURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: catalog_url %q must be an absolute URL", common.ErrInvalidConfig, s.CatalogURL)
	}
	if s.FetchTimeout < 0 {
		return fmt.Errorf("%w: fetch_timeout must not be negative", common.ErrInvalidConfig)
	}
	if s.ReportDelay < 0 {
		return fmt.Errorf("%w: report_delay must not be negative", common.ErrInvalidConfig)
	}
	if _, err := common.ParseLevel(s.Logging.Level); err != nil {
		return err
	}
	if f := strings.ToLower(s.Logging.Format); f != "console" && f != "json" && f != "" {
		return fmt.Errorf("%w: logging.format %q must be console or json", common.ErrInvalidConfig, s.Logging.Format)
	}
	if !slices.Contains(ThemeNames, s.UI.Theme) {
		return fmt.Errorf("%w: ui.theme %q is not one of %s",
			common.ErrInvalidConfig, s.UI.Theme, strings.Join(ThemeNames, ", "))
	}
	return nil
}

// Dir returns the default config directory, $HOME/.config/prodchart.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// ExpandPath expands a leading ~ and environment variables in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}
