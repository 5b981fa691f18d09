// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch drives the bookmark-to-note pipeline: it loads the bookmark
// list and, entry by entry, resolves the link, looks up the place and writes
// the note, reporting each outcome to the operator.
package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pdiddy/places-notes/internal/mapsurl"
	"github.com/pdiddy/places-notes/internal/notes"
	"github.com/pdiddy/places-notes/internal/places"
	"github.com/pdiddy/places-notes/pkg/types"
)

var (
	// ErrMissingAPIKey is returned by Run when no API key is configured.
	ErrMissingAPIKey = errors.New("missing places API key")

	// ErrInputNotFound is returned when the bookmark file does not exist.
	ErrInputNotFound = errors.New("bookmark file not found")

	// ErrInputInvalid is returned when the bookmark file is not a JSON array
	// of bookmark objects.
	ErrInputInvalid = errors.New("invalid bookmark file")
)

// Result holds the outcome of a batch run.
type Result struct {
	Created int
	Skipped int
	Failed  int
	Notes   []string
}

// Total returns the number of entries processed.
func (r Result) Total() int {
	return r.Created + r.Skipped + r.Failed
}

// HasFailures reports whether any entry failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// LoadBookmarks reads the bookmark list at path.
func LoadBookmarks(path string) ([]types.Bookmark, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var bookmarks []types.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputInvalid, path, err)
	}
	return bookmarks, nil
}

// Pipeline is the per-entry chain of resolver, lookup client and writer.
type Pipeline struct {
	Resolver *mapsurl.Resolver
	Places   *places.Client
	Notes    *notes.Writer
}

// NewPipeline builds the pipeline stages from cfg.
func NewPipeline(cfg types.Config) *Pipeline {
	return &Pipeline{
		Resolver: mapsurl.NewResolver(cfg.HTTP),
		Places:   places.NewClient(cfg.HTTP, cfg.Places),
		Notes:    &notes.Writer{Dir: cfg.OutputDir, Tag: cfg.Tag},
	}
}

// Process turns one bookmark into a note and returns the written path.
// Redirect resolution failures are reported on w and processing continues
// with the original URL.
func (p *Pipeline) Process(ctx context.Context, b types.Bookmark, w io.Writer) (string, error) {
	resolved, err := p.Resolver.Resolve(ctx, b.URL)
	if err != nil {
		fmt.Fprintf(w, "warning: %v (using original URL)\n", err)
	}

	place, err := p.Places.Lookup(ctx, resolved, b.URL)
	if err != nil {
		return "", fmt.Errorf("lookup: %w", err)
	}

	path, err := p.Notes.Write(place, b)
	if err != nil {
		return "", err
	}
	return path, nil
}

// Run checks the preconditions, ensures the output directory exists, loads
// the bookmark list and processes every entry in order. Per-entry failures
// are printed to w and counted; only precondition failures are returned.
func Run(ctx context.Context, cfg types.Config, w io.Writer) (Result, error) {
	cfg = cfg.WithDefaults()
	if cfg.Places.APIKey == "" {
		return Result{}, ErrMissingAPIKey
	}
	return RunPipeline(ctx, NewPipeline(cfg), cfg, w)
}

// RunPipeline is Run with caller-supplied pipeline stages.
func RunPipeline(ctx context.Context, p *Pipeline, cfg types.Config, w io.Writer) (Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	bookmarks, err := LoadBookmarks(cfg.InputPath)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for i, b := range bookmarks {
		if b.URL == "" {
			fmt.Fprintf(w, "skipped: entry %d (no URL)\n", i+1)
			result.Skipped++
			continue
		}

		path, err := p.Process(ctx, b, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", b.URL, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "created: %s\n", path)
		result.Created++
		result.Notes = append(result.Notes, path)
	}

	fmt.Fprintf(w, "\nBatch summary: %d created, %d skipped, %d failed (total: %d)\n",
		result.Created, result.Skipped, result.Failed, result.Total())
	return result, nil
}
