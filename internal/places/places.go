// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package places looks up saved map links in the Google Places API and
// normalizes the answer into a types.Place.
package places

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/places-notes/internal/httputil"
	"github.com/pdiddy/places-notes/internal/mapsurl"
	"github.com/pdiddy/places-notes/pkg/types"
)

// DefaultBaseURL is the Places API root. Client.BaseURL overrides it.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Fields is the field set requested from both endpoints.
const Fields = "name,formatted_address,website,formatted_phone_number,url,geometry,editorial_summary"

// UnknownName is used when the service returns a place without a name.
const UnknownName = "Unknown Place"

// API-level status values.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

var (
	// ErrZeroResults is wrapped by StatusError when the service found nothing.
	ErrZeroResults = errors.New("no results")

	// ErrEmptyResult is returned for an OK response without a usable result.
	ErrEmptyResult = errors.New("OK response without a result")
)

// StatusError reports a response whose status field was not OK.
type StatusError struct {
	Status  string
	Message string

	// Retried is set when the error comes from the zero-results fallback attempt.
	Retried bool
}

func (e *StatusError) Error() string {
	msg := "places API status " + e.Status
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Retried {
		msg += " (after fallback attempt)"
	}
	return msg
}

// Unwrap lets errors.Is match ErrZeroResults.
func (e *StatusError) Unwrap() error {
	if e.Status == StatusZeroResults {
		return ErrZeroResults
	}
	return nil
}

// Client queries the details and text search endpoints.
type Client struct {
	HTTP      *http.Client
	APIKey    string
	BaseURL   string
	UserAgent string
}

// NewClient returns a Client with an HTTP client bounded by the lookup timeout.
func NewClient(httpCfg types.HTTPConfig, cfg types.PlacesConfig) *Client {
	return &Client{
		HTTP:      httputil.NewClient(httpCfg.LookupTimeout),
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		UserAgent: httpCfg.UserAgent,
	}
}

// Lookup resolves the place referenced by resolvedURL. originalURL is the
// bookmark URL before redirect resolution and is recorded on the result.
//
// A ZERO_RESULTS answer to an identifier lookup triggers exactly one fallback
// attempt that repeats extraction and lookup from resolvedURL.
func (c *Client) Lookup(ctx context.Context, resolvedURL, originalURL string) (*types.Place, error) {
	return c.lookup(ctx, resolvedURL, originalURL, false)
}

func (c *Client) lookup(ctx context.Context, resolvedURL, originalURL string, retried bool) (*types.Place, error) {
	target, err := mapsurl.Extract(resolvedURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resolvedURL, err)
	}

	var resp placesResponse
	if err := httputil.GetJSON(ctx, c.HTTP, c.requestURL(target), c.UserAgent, &resp); err != nil {
		return nil, fmt.Errorf("places API request: %w", err)
	}

	if resp.Status != StatusOK {
		if resp.Status == StatusZeroResults && target.HasPlaceID() && !retried {
			return c.lookup(ctx, resolvedURL, originalURL, true)
		}
		return nil, &StatusError{Status: resp.Status, Message: resp.ErrorMessage, Retried: retried}
	}

	r := resp.pick(target.HasPlaceID())
	if r == nil {
		return nil, ErrEmptyResult
	}
	place := r.normalize()
	place.OriginalURL = originalURL
	return place, nil
}

// requestURL builds the details URL for an identifier target and the text
// search URL otherwise.
func (c *Client) requestURL(target mapsurl.Target) string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	params := url.Values{
		"fields": {Fields},
		"key":    {c.APIKey},
	}
	if target.HasPlaceID() {
		params.Set("place_id", target.PlaceID)
		return base + "/details/json?" + params.Encode()
	}
	params.Set("query", target.Name)
	return base + "/textsearch/json?" + params.Encode()
}
