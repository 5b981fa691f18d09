// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// NewClient returns an HTTP client whose requests, redirects included, are
// bounded by timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// FinalURL issues a HEAD request for rawURL, following redirects, and returns
// the URL of the last request in the chain. A non-2xx final status is an error.
func FinalURL(ctx context.Context, client *http.Client, rawURL, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HEAD request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, resp.Request.URL.Redacted())
	}
	return resp.Request.URL.String(), nil
}

// GetJSON issues a GET request for rawURL and decodes the JSON body into out.
// Any status other than 200 is an error. Error messages carry the request URL
// with sensitive query parameters removed.
func GetJSON(ctx context.Context, client *http.Client, rawURL, userAgent string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		// *url.Error embeds the full URL, key included.
		if uerr, ok := err.(*url.Error); ok {
			return fmt.Errorf("GET %s: %w", Redact(rawURL), uerr.Err)
		}
		return fmt.Errorf("GET %s: %w", Redact(rawURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, Redact(rawURL))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response from %s: %w", Redact(rawURL), err)
	}
	return nil
}

// sensitiveParams lists query parameters that are masked by Redact.
var sensitiveParams = []string{"key", "api_key", "apikey"}

// Redact returns rawURL with the values of credential query parameters
// replaced by "REDACTED". Unparseable input is returned as "<invalid url>".
func Redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	changed := false
	for _, p := range sensitiveParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.Redacted()
}
