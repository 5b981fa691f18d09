// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the places-notes pipeline:
// the bookmark entries read from the saved-places export, the normalized place
// records returned by the lookup stage, and the stage configurations.
package types

// Bookmark is one entry of the saved-places export. Only URL is required;
// Comment and Note are free-text annotations carried into the note header.
type Bookmark struct {
	// URL is the saved map link, possibly a shortened maps.app.goo.gl link.
	URL string `json:"URL" yaml:"url"`

	// Comment is the user's comment attached to the saved place.
	Comment string `json:"Comment,omitempty" yaml:"comment,omitempty"`

	// Note is the user's note attached to the saved place.
	Note string `json:"Note,omitempty" yaml:"note,omitempty"`
}
