package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"clipgrep/internal/domain/search"
	"clipgrep/internal/ports"
)

// ensure the adapter implements both ports
var (
	_ ports.TranscriptSource = (*Adapter)(nil)
	_ ports.SearchService    = (*Adapter)(nil)
)

// ErrNotFound marks a transcript identifier with no backing file.
var ErrNotFound = errors.New("transcript not found")

var transcriptExts = map[string]struct{}{
	".vtt": {},
	".srt": {},
	".txt": {},
}

// Adapter serves transcripts from a flat directory and runs searches over
// them locally. It implements both the TranscriptSource and SearchService
// ports.
type Adapter struct {
	root string
}

func New(root string) *Adapter {
	if root == "" {
		root = "."
	}
	return &Adapter{root: root}
}

func (a *Adapter) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(a.root)
	if err != nil {
		return nil, fmt.Errorf("list transcripts in %s: %w", a.root, err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := transcriptExts[strings.ToLower(filepath.Ext(e.Name()))]; !ok {
			continue
		}
		ids = append(ids, e.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

func (a *Adapter) Load(ctx context.Context, id string) (string, error) {
	// Identifiers are bare file names; anything path-like is rejected rather
	// than resolved outside the root.
	if id == "" || id != filepath.Base(id) {
		return "", fmt.Errorf("transcript id %q: %w", id, ErrNotFound)
	}
	b, err := os.ReadFile(filepath.Join(a.root, id))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("load transcript %s: %w", id, err)
	}
	return string(b), nil
}

// Search runs the matcher over every requested transcript (or all of them
// when ids is nil) and reports matching line numbers keyed by identifier.
// Transcripts without matches are omitted from the result.
func (a *Adapter) Search(ctx context.Context, query string, ids []string) (map[string][]int, error) {
	if !search.Active(query) {
		return nil, nil
	}
	if ids == nil {
		var err error
		ids, err = a.List(ctx)
		if err != nil {
			return nil, err
		}
	}
	out := make(map[string][]int)
	for _, id := range ids {
		raw, err := a.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		if lines := search.MatchLines(raw, query); len(lines) > 0 {
			out[id] = lines
		}
	}
	return out, nil
}
