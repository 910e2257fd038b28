package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// fileView mirrors Settings with durations spelled the way the config
// file accepts them.
type fileView struct {
	CatalogURL   string  `yaml:"catalog_url"`
	FetchTimeout string  `yaml:"fetch_timeout"`
	ReportDelay  string  `yaml:"report_delay"`
	Logging      Logging `yaml:"logging"`
	UI           UI      `yaml:"ui"`
}

// MarshalYAML renders settings as a config file.
func (s Settings) MarshalYAML() (any, error) {
	return fileView{
		CatalogURL:   s.CatalogURL,
		FetchTimeout: s.FetchTimeout.String(),
		ReportDelay:  s.ReportDelay.String(),
		Logging:      s.Logging,
		UI:           s.UI,
	}, nil
}

// Encode returns settings as YAML.
func (s Settings) Encode() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return out, nil
}
