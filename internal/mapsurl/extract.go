// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapsurl

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrUnresolvable is returned when a URL yields neither a place identifier
// nor a place name.
var ErrUnresolvable = errors.New("no place identifier or name in url")

// Target is what a map URL points at. PlaceID is preferred; Name is only set
// when no identifier was found.
type Target struct {
	PlaceID string
	Name    string
}

// HasPlaceID reports whether the target carries an identifier.
func (t Target) HasPlaceID() bool { return t.PlaceID != "" }

var (
	// dataPlaceIDPattern matches "!5s<token>:" inside the data parameter.
	dataPlaceIDPattern = regexp.MustCompile(`!5s(.*?):`)

	// dataFeatureIDPattern matches "!1s<token>:", the second data layout.
	dataFeatureIDPattern = regexp.MustCompile(`!1s(.*?):`)

	// atPattern matches "@<token>," in a /place/ path.
	atPattern = regexp.MustCompile(`@(.*?),`)

	// placeNamePattern captures the segment after /place/ up to '/' or '@'.
	placeNamePattern = regexp.MustCompile(`/place/([^/@]+)`)
)

const placePathPrefix = "/place/"

// Extract parses rawURL for a place target. It tries, in order: the data
// query parameter ("!5s" then "!1s" token), an "@token," in a path starting
// with /place/, and finally the /place/<name> path segment.
func Extract(rawURL string) (Target, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, ErrUnresolvable
	}

	if id := placeIDFromData(u.Query()); id != "" {
		return Target{PlaceID: id}, nil
	}

	path := u.EscapedPath()
	if strings.HasPrefix(path, placePathPrefix) {
		if m := atPattern.FindStringSubmatch(path); m != nil && m[1] != "" {
			return Target{PlaceID: m[1]}, nil
		}
	}

	if m := placeNamePattern.FindStringSubmatch(path); m != nil {
		if name := placeName(m[1]); name != "" {
			return Target{Name: name}, nil
		}
	}
	return Target{}, ErrUnresolvable
}

func placeIDFromData(q url.Values) string {
	data := q.Get("data")
	if data == "" {
		return ""
	}
	m := dataPlaceIDPattern.FindStringSubmatch(data)
	if m == nil {
		m = dataFeatureIDPattern.FindStringSubmatch(data)
	}
	if m == nil {
		return ""
	}
	return m[1]
}

// placeName converts a raw path segment into a search string.
func placeName(segment string) string {
	name := strings.ReplaceAll(segment, "+", " ")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name
}
