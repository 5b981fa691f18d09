// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/places-notes/pkg/types"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Test Camp", "Test Camp.md"},
		{"punctuation replaced", "Joe's Camp/Site #2", "Joe_s Camp_Site _2.md"},
		{"keeps hyphen and underscore", "Lake-View_Site 3", "Lake-View_Site 3.md"},
		{"trims surrounding spaces", "  Spaced Out  ", "Spaced Out.md"},
		{"non-ascii replaced", "Café", "Caf_.md"},
		{"dots replaced", "St. John's", "St_ John_s.md"},
		{"empty falls back", "", "Unknown Place.md"},
		{"whitespace only falls back", "   ", "Unknown Place.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.in))
		})
	}
}

func TestFilenameCharacterSet(t *testing.T) {
	got := Filename("Joe's Camp/Site #2")
	for _, bad := range []string{"/", "'", "#"} {
		assert.NotContains(t, got, bad)
	}
	assert.True(t, strings.HasSuffix(got, Extension))
	stem := strings.TrimSuffix(got, Extension)
	for _, r := range stem {
		ok := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == ' ' || r == '_' || r == '-'
		assert.True(t, ok, "unexpected rune %q in %q", r, got)
	}
}

func TestRenderMinimal(t *testing.T) {
	place := &types.Place{
		Name:     "Test Camp",
		Address:  "1 Rd",
		Location: &types.Coordinates{Lat: 1, Lng: 2},
	}
	got, err := Render(place, types.Bookmark{Comment: "nice"}, "camping")
	require.NoError(t, err)

	want := "# Test Camp\n" +
		"---\n" +
		"location: 1,2\n" +
		"address: 1 Rd\n" +
		"tags: [camping]\n" +
		"comment: nice\n" +
		"---\n"
	assert.Equal(t, want, string(got))
}

func TestRenderAllFields(t *testing.T) {
	place := &types.Place{
		Name:        "Pine Ridge Campground",
		Address:     "12 Forest Rd, Ridgeville",
		Location:    &types.Coordinates{Lat: 45.5, Lng: -73.25},
		URL:         "https://maps.google.com/?cid=123",
		Website:     "https://pineridge.example",
		Summary:     "Quiet sites under tall pines.",
		OriginalURL: "https://maps.app.goo.gl/short",
	}
	b := types.Bookmark{Comment: "site 14: best view", Note: "bring water\nno firewood sold"}

	got, err := Render(place, b, "camping")
	require.NoError(t, err)
	content := string(got)

	assert.True(t, strings.HasPrefix(content, "# Pine Ridge Campground\n---\n"))
	assert.True(t, strings.HasSuffix(content, "---\nQuiet sites under tall pines.\n"))
	assert.NotContains(t, content, "pineridge.example", "website is not part of the header")

	h := parseHeader(t, content)
	assert.Equal(t, map[string]any{
		"location":     "45.5,-73.25",
		"address":      "12 Forest Rd, Ridgeville",
		"tags":         []any{"camping"},
		"url":          "https://maps.google.com/?cid=123",
		"original_url": "https://maps.app.goo.gl/short",
		"comment":      "site 14: best view",
		"note":         "bring water\nno firewood sold",
	}, h)

	// Field order follows the header layout.
	order := []string{"location:", "address:", "tags:", "url:", "original_url:", "comment:", "note:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(content, "\n"+key)
		require.NotEqual(t, -1, idx, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}
}

func TestRenderOmitsEmptyFields(t *testing.T) {
	got, err := Render(&types.Place{Name: "Bare"}, types.Bookmark{}, "camping")
	require.NoError(t, err)
	assert.Equal(t, "# Bare\n---\ntags: [camping]\n---\n", string(got))
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir, Tag: "camping"}

	place := &types.Place{Name: "Joe's Camp/Site #2", Address: "2 Rd", Summary: "Lakeside."}
	path, err := w.Write(place, types.Bookmark{Note: "n"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Joe_s Camp_Site _2.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Joe's Camp/Site #2\n"))
	assert.True(t, strings.HasSuffix(string(data), "Lakeside.\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}

	existing := filepath.Join(dir, "Test Camp.md")
	require.NoError(t, os.WriteFile(existing, []byte("old content"), 0o644))

	path, err := w.Write(&types.Place{Name: "Test Camp"}, types.Bookmark{})
	require.NoError(t, err)
	assert.Equal(t, existing, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Test Camp\n---\ntags: [camping]\n---\n", string(data), "default tag applies")
}

func TestWriteNilPlace(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}

	path, err := w.Write(nil, types.Bookmark{URL: "https://example.com"})
	assert.ErrorIs(t, err, ErrNoPlace)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteMissingDir(t *testing.T) {
	w := &Writer{Dir: filepath.Join(t.TempDir(), "missing")}
	_, err := w.Write(&types.Place{Name: "X"}, types.Bookmark{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating temp file")
}

// parseHeader decodes the YAML block between the two delimiters.
func parseHeader(t *testing.T, content string) map[string]any {
	t.Helper()
	parts := strings.SplitN(content, "---\n", 3)
	require.Len(t, parts, 3, "expected two delimiter lines")
	var h map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &h))
	return h
}
