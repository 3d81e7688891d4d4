package types

import "clipgrep/internal/timecode"

// Block is one timed or untimed unit of transcript content together with the
// 1-based source line numbers it occupies. Start/End are meaningful only when
// Timed is set; both are always set together.
type Block struct {
	Start timecode.Timecode
	End   timecode.Timecode
	Timed bool
	Text  string

	// Lines is [timestampLine, contentLine] for a timed block with content,
	// or a single line number otherwise. Always ascending, never empty.
	Lines []int
}

// FirstLine returns the first source line the block occupies.
func (b Block) FirstLine() int { return b.Lines[0] }

// Direction tags which way a hidden run expands.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// ItemKind discriminates renderable items.
type ItemKind int

const (
	ItemBlock ItemKind = iota
	ItemHiddenRun
)

// Highlight reports how a block relates to the current clip selection.
type Highlight struct {
	ContainsStart bool
	ContainsEnd   bool
	FullyWithin   bool
}

// Any reports whether the block should be highlighted at all.
func (h Highlight) Any() bool {
	return h.ContainsStart || h.ContainsEnd || h.FullyWithin
}

// RenderItem is one entry of the final display sequence: either a block or a
// collapsed "N lines hidden" marker that carries a valid expansion pivot.
type RenderItem struct {
	Kind ItemKind

	// Block fields, valid when Kind == ItemBlock.
	Block     Block
	Highlight Highlight

	// Hidden-run fields, valid when Kind == ItemHiddenRun.
	Hidden    int // number of source lines collapsed into the marker
	PivotLine int // already-visible anchor for a context expansion
	Direction Direction
}
