// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapsurl turns saved map links into something the place lookup
// service understands: shortened links are expanded by following redirects,
// and the expanded URL is parsed for a place identifier or a place name.
package mapsurl

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/places-notes/internal/httputil"
	"github.com/pdiddy/places-notes/pkg/types"
)

// DefaultShorteners lists the link-shortener patterns that trigger redirect
// resolution. A URL matches when it contains a pattern as a substring.
var DefaultShorteners = []string{
	"maps.app.goo.gl",
	"goo.gl/maps",
}

// Resolver expands shortened map links.
type Resolver struct {
	HTTP       *http.Client
	Shorteners []string
	UserAgent  string
}

// NewResolver returns a Resolver using the default shortener patterns and an
// HTTP client bounded by cfg.RedirectTimeout.
func NewResolver(cfg types.HTTPConfig) *Resolver {
	return &Resolver{
		HTTP:       httputil.NewClient(cfg.RedirectTimeout),
		Shorteners: DefaultShorteners,
		UserAgent:  cfg.UserAgent,
	}
}

// IsShortened reports whether rawURL matches one of the shortener patterns.
func (r *Resolver) IsShortened(rawURL string) bool {
	for _, p := range r.Shorteners {
		if p != "" && strings.Contains(rawURL, p) {
			return true
		}
	}
	return false
}

// Resolve returns the canonical form of rawURL. Shortened links are expanded
// with a redirect-following HEAD request. The returned URL is always usable:
// when expansion fails it is rawURL itself and err describes the failure, so
// callers can report it and carry on.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (string, error) {
	if !r.IsShortened(rawURL) {
		return rawURL, nil
	}

	final, err := httputil.FinalURL(ctx, r.HTTP, rawURL, r.UserAgent)
	if err != nil {
		return rawURL, fmt.Errorf("unshortening %s: %w", rawURL, err)
	}
	return final, nil
}
