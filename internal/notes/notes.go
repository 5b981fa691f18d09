// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notes renders place records as Markdown notes with a YAML header
// block and writes them to the output directory.
//
// A note looks like:
//
//	# Test Camp
//	---
//	location: 1,2
//	address: 1 Rd
//	tags: [camping]
//	comment: nice
//	---
//	Optional editorial summary.
package notes

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/places-notes/pkg/types"
)

// Extension is appended to every note filename.
const Extension = ".md"

const (
	delimiter    = "---\n"
	fallbackStem = "Unknown Place"
)

// ErrNoPlace is returned by Write when there is no place record to write.
var ErrNoPlace = errors.New("no place data")

// header is the structured block between the delimiters. Empty fields are
// omitted; tags is always written.
type header struct {
	Location    string   `yaml:"location,omitempty"`
	Address     string   `yaml:"address,omitempty"`
	Tags        []string `yaml:"tags,flow"`
	URL         string   `yaml:"url,omitempty"`
	OriginalURL string   `yaml:"original_url,omitempty"`
	Comment     string   `yaml:"comment,omitempty"`
	Note        string   `yaml:"note,omitempty"`
}

// Render returns the note document for place, annotated with the bookmark's
// comment and note. tag is the fixed label written into tags.
func Render(place *types.Place, b types.Bookmark, tag string) ([]byte, error) {
	h := header{
		Address:     place.Address,
		Tags:        []string{tag},
		URL:         place.URL,
		OriginalURL: place.OriginalURL,
		Comment:     b.Comment,
		Note:        b.Note,
	}
	if place.Location != nil {
		h.Location = place.Location.String()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", place.Name)
	buf.WriteString(delimiter)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(h); err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}

	buf.WriteString(delimiter)
	if place.Summary != "" {
		buf.WriteString(place.Summary)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// Filename derives the note filename from a place name: every character
// outside [A-Za-z0-9 _-] becomes '_', surrounding whitespace is trimmed and
// Extension is appended.
func Filename(name string) string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
	stem = strings.TrimSpace(stem)
	if stem == "" {
		stem = fallbackStem
	}
	return stem + Extension
}

// Writer writes notes into Dir, which must already exist.
type Writer struct {
	Dir string
	Tag string
}

// Write renders place and stores it as Dir/Filename(place.Name), replacing
// any existing note of the same name. It returns the written path. The file
// is written to a temporary name first so a failure never leaves a partial
// note behind.
func (w *Writer) Write(place *types.Place, b types.Bookmark) (string, error) {
	if place == nil {
		return "", ErrNoPlace
	}

	tag := w.Tag
	if tag == "" {
		tag = types.DefaultTag
	}
	data, err := Render(place, b, tag)
	if err != nil {
		return "", err
	}

	path := filepath.Join(w.Dir, Filename(place.Name))
	if err := writeFile(path, data); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// writeFile writes data to a temp file next to destPath and renames it over
// destPath.
func writeFile(destPath string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".note-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
