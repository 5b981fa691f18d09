// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files. Each
// file is one secret: the filename is the key name and the trimmed contents
// are the value.
//
// The only key places-notes reads is google-maps-api-key; the environment
// variable GOOGLE_MAPS_API_KEY takes precedence over it.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the secrets directory relative to the working directory.
const DefaultDir = ".secrets"

// GoogleMapsAPIKey is the file name holding the place lookup API key.
const GoogleMapsAPIKey = "google-maps-api-key"

// Load reads all regular, non-hidden files in dir and returns a map of
// filename to trimmed contents. A missing directory yields an empty map.
// Unreadable files are reported on warn and skipped; empty values are dropped.
func Load(dir string, warn io.Writer) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// Resolve returns the first non-empty value among the explicit value and the
// named secret in secrets.
func Resolve(explicit string, secrets map[string]string, name string) string {
	if v := strings.TrimSpace(explicit); v != "" {
		return v
	}
	return secrets[name]
}
