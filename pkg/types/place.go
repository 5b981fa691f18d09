// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strconv"

// Coordinates is a WGS84 point as returned in a place geometry.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// String formats the point as "lat,lng" using the shortest decimal form,
// so integral values render without a fractional part ("1,2").
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Place is the normalized result of a place lookup. Both the details and the
// text search response shapes are mapped into it.
type Place struct {
	// Name is the place name; "Unknown Place" when the service omits it.
	Name string `json:"name" yaml:"name"`

	// Address is the formatted postal address.
	Address string `json:"address,omitempty" yaml:"address,omitempty"`

	// Location is nil when the response carried no geometry.
	Location *Coordinates `json:"location,omitempty" yaml:"location,omitempty"`

	// URL is the canonical maps URL of the place.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Website is the place's own website.
	Website string `json:"website,omitempty" yaml:"website,omitempty"`

	// Phone is the formatted phone number.
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`

	// Summary is the editorial summary overview, used as the note body.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// OriginalURL is the bookmark URL before redirect resolution.
	OriginalURL string `json:"original_url" yaml:"original_url"`
}
