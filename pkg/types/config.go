// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Defaults applied when a configuration value is left at its zero value.
const (
	DefaultInputPath       = "googleMapsSaved.json"
	DefaultOutputDir       = "places"
	DefaultTag             = "camping"
	DefaultRedirectTimeout = 5 * time.Second
	DefaultLookupTimeout   = 10 * time.Second
	DefaultUserAgent       = "places-notes/0.1"
)

// HTTPConfig holds shared HTTP settings for the resolver and lookup stages.
type HTTPConfig struct {
	// RedirectTimeout bounds the HEAD request that expands shortened links.
	RedirectTimeout time.Duration `json:"redirect_timeout" yaml:"redirect_timeout"`

	// LookupTimeout bounds the place lookup request.
	LookupTimeout time.Duration `json:"lookup_timeout" yaml:"lookup_timeout"`

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PlacesConfig holds settings for the place lookup stage.
type PlacesConfig struct {
	// APIKey authenticates against the place-information service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the service root (tests point it at httptest servers).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// Config is the run configuration, built once at start-up and passed into
// the batch driver.
type Config struct {
	HTTP   HTTPConfig   `json:"http" yaml:"http"`
	Places PlacesConfig `json:"places" yaml:"places"`

	// InputPath is the saved-places JSON export.
	InputPath string `json:"input" yaml:"input"`

	// OutputDir receives one Markdown note per resolved place.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Tag is the fixed label written into every note's tags.
	Tag string `json:"tag" yaml:"tag"`
}

// WithDefaults returns a copy of c with zero values replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Tag == "" {
		c.Tag = DefaultTag
	}
	if c.HTTP.RedirectTimeout <= 0 {
		c.HTTP.RedirectTimeout = DefaultRedirectTimeout
	}
	if c.HTTP.LookupTimeout <= 0 {
		c.HTTP.LookupTimeout = DefaultLookupTimeout
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = DefaultUserAgent
	}
	return c
}
