// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/places-notes/internal/batch"
	"github.com/pdiddy/places-notes/internal/secrets"
	"github.com/pdiddy/places-notes/pkg/types"
)

// Configuration keys. Each can be set in the config file or through a
// PLACES_NOTES_ environment variable (dots become underscores).
const (
	keyInput           = "input"
	keyOutputDir       = "output_dir"
	keyTag             = "tag"
	keyRedirectTimeout = "http.redirect_timeout"
	keyLookupTimeout   = "http.lookup_timeout"
	keyUserAgent       = "http.user_agent"
	keyBaseURL         = "places.base_url"
	keyAPIKey          = "places.api_key"
)

// loadConfig folds viper settings and loaded secrets into a types.Config.
func loadConfig(v *viper.Viper, loaded map[string]string) types.Config {
	cfg := types.Config{
		HTTP: types.HTTPConfig{
			RedirectTimeout: v.GetDuration(keyRedirectTimeout),
			LookupTimeout:   v.GetDuration(keyLookupTimeout),
			UserAgent:       v.GetString(keyUserAgent),
		},
		Places: types.PlacesConfig{
			APIKey:  secrets.Resolve(v.GetString(keyAPIKey), loaded, secrets.GoogleMapsAPIKey),
			BaseURL: v.GetString(keyBaseURL),
		},
		InputPath: v.GetString(keyInput),
		OutputDir: v.GetString(keyOutputDir),
		Tag:       v.GetString(keyTag),
	}
	return cfg.WithDefaults()
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper(), loadedSecrets)
	_, err := batch.Run(cmd.Context(), cfg, cmd.OutOrStdout())
	return err
}
