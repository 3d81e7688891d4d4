package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"clipgrep/internal/domain/clip"
	"clipgrep/internal/domain/render"
	"clipgrep/internal/domain/search"
	"clipgrep/internal/domain/segment"
	"clipgrep/internal/domain/window"
	"clipgrep/internal/ports"
	"clipgrep/internal/types"
)

type Deps struct {
	Source ports.TranscriptSource
	Search ports.SearchService
	Logf   func(format string, args ...any)
}

// Session ties segmentation, windowing, rendering and the single clip
// selection together for one run of the application. Segmentation is
// memoized on a content hash and recomputed only when the source text
// changes. All operations run on one logical thread; there is no locking.
type Session struct {
	source ports.TranscriptSource
	search ports.SearchService
	logf   func(format string, args ...any)

	docs    map[string]*doc
	windows map[string]*window.Window
	matched []string
	sel     *clip.Selection
}

type doc struct {
	hash   string
	blocks []types.Block
}

func New(d Deps) *Session {
	logf := d.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Session{
		source:  d.Source,
		search:  d.Search,
		logf:    logf,
		docs:    make(map[string]*doc),
		windows: make(map[string]*window.Window),
		sel:     clip.New(),
	}
}

// Open loads and segments a transcript, reusing cached blocks while the text
// is unchanged.
func (s *Session) Open(ctx context.Context, id string) ([]types.Block, error) {
	raw, err := s.source.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	h := contentHash(raw)
	if d, ok := s.docs[id]; ok && d.hash == h {
		return d.blocks, nil
	}
	blocks := segment.Blocks(raw)
	s.docs[id] = &doc{hash: h, blocks: blocks}
	s.logf("segmented %s: %d blocks", id, len(blocks))
	return blocks, nil
}

// Query runs a search across the given transcripts (all of them when ids is
// nil) and replaces every window with a fresh filter generation: matched
// transcripts get their match sets, searched-but-unmatched transcripts get
// the no-matches state. A blank query clears all filters instead.
func (s *Session) Query(ctx context.Context, query string, ids []string) error {
	s.windows = make(map[string]*window.Window)
	s.matched = nil

	if !search.Active(query) {
		s.logf("filter cleared")
		return nil
	}

	if ids == nil {
		var err error
		ids, err = s.source.List(ctx)
		if err != nil {
			return err
		}
	}
	hits, err := s.search.Search(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	for _, id := range ids {
		w := window.New()
		w.ApplyMatches(hits[id])
		s.windows[id] = w
		if len(hits[id]) > 0 {
			s.matched = append(s.matched, id)
		}
	}
	sort.Strings(s.matched)
	s.logf("query %q: %d of %d transcripts matched", query, len(s.matched), len(ids))
	return nil
}

// Matched returns the transcripts with at least one hit in the current
// filter generation, sorted.
func (s *Session) Matched() []string { return s.matched }

// ExpandAll switches a transcript's window to the show-everything sentinel.
func (s *Session) ExpandAll(id string) {
	w, ok := s.windows[id]
	if !ok {
		return
	}
	w.ExpandAll()
}

// ExpandContext reveals up to 16 lines around pivot. Hidden-run markers
// pivot on a visible block's first line, which is not necessarily itself a
// set member (the block may be visible through its content line), so the
// pivot is resolved to a member line of the same block before the window op.
func (s *Session) ExpandContext(id string, dir types.Direction, pivot int) {
	w, ok := s.windows[id]
	if !ok {
		return
	}
	member := pivot
	if !w.Contains(pivot) {
		if d, ok := s.docs[id]; ok {
			if b, ok := blockAt(d.blocks, pivot); ok {
				for _, n := range b.Lines {
					if w.Contains(n) {
						member = n
						break
					}
				}
			}
		}
	}
	w.ExpandContext(dir, member)
}

// Render produces the transcript's display sequence, with clip highlight
// flags filled in on block items. A no-matches window yields nothing.
func (s *Session) Render(ctx context.Context, id string) ([]types.RenderItem, error) {
	blocks, err := s.Open(ctx, id)
	if err != nil {
		return nil, err
	}
	items := render.Items(blocks, s.windows[id])
	for i := range items {
		if items[i].Kind == types.ItemBlock {
			items[i].Highlight = s.sel.Highlight(items[i].Block, id)
		}
	}
	return items, nil
}

// Selection exposes the process-wide clip selection.
func (s *Session) Selection() *clip.Selection { return s.sel }

func blockAt(blocks []types.Block, line int) (types.Block, bool) {
	for _, b := range blocks {
		for _, n := range b.Lines {
			if n == line {
				return b, true
			}
		}
	}
	return types.Block{}, false
}

func contentHash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])[:12]
}
