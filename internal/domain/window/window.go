package window

import (
	"clipgrep/internal/types"
)

// ContextLines is how many neighboring lines a single context expansion
// reveals. Fixed policy: bounds the cost of one expansion click while giving
// enough context to read a conversational exchange.
const ContextLines = 16

// sentinel member meaning "show everything"; distinct from the empty set,
// which means "zero matches, hide the transcript entirely".
const showAll = -1

// Window is the per-transcript sparse set of line numbers confirmed visible.
// With no active filter every block is visible. Set membership, not block
// membership, is authoritative: a block is visible iff any of its line
// numbers is in the set.
type Window struct {
	active bool
	lines  map[int]struct{}
}

func New() *Window { return &Window{} }

// ApplyMatches replaces the window with the supplied sparse set. Passing no
// lines produces the "no matches" state. Non-positive line numbers are
// ignored.
func (w *Window) ApplyMatches(lines []int) {
	w.active = true
	w.lines = make(map[int]struct{}, len(lines))
	for _, n := range lines {
		if n > 0 {
			w.lines[n] = struct{}{}
		}
	}
}

// ExpandAll replaces the window with the show-everything sentinel.
func (w *Window) ExpandAll() {
	w.active = true
	w.lines = map[int]struct{}{showAll: {}}
}

// Clear removes the filter; every block becomes visible again.
func (w *Window) Clear() {
	w.active = false
	w.lines = nil
}

// ExpandContext adds up to ContextLines candidate lines strictly above or
// below pivot. The pivot must already be a member of the set; otherwise the
// call is a documented no-op. The set only grows, never shrinks, until a
// fresh ApplyMatches.
func (w *Window) ExpandContext(dir types.Direction, pivot int) {
	if !w.active {
		return
	}
	if _, ok := w.lines[pivot]; !ok {
		return
	}
	step := 1
	if dir == types.Up {
		step = -1
	}
	for i := 1; i <= ContextLines; i++ {
		n := pivot + step*i
		if n <= 0 {
			break
		}
		w.lines[n] = struct{}{}
	}
}

// Filtered reports whether an active search gates visibility.
func (w *Window) Filtered() bool { return w.active }

// NoMatches reports the "zero matches found" state, in which the transcript
// must not be rendered at all.
func (w *Window) NoMatches() bool { return w.active && len(w.lines) == 0 }

// ShowsAll reports the explicit expand-all sentinel state.
func (w *Window) ShowsAll() bool {
	if !w.active {
		return false
	}
	_, ok := w.lines[showAll]
	return ok
}

// Contains reports set membership for a single line.
func (w *Window) Contains(line int) bool {
	_, ok := w.lines[line]
	return ok
}

// Visible reports whether the block passes the window.
func (w *Window) Visible(b types.Block) bool {
	if !w.active || w.ShowsAll() {
		return true
	}
	for _, n := range b.Lines {
		if _, ok := w.lines[n]; ok {
			return true
		}
	}
	return false
}

// MaxLine returns the largest visible line number, or 0 when the set holds
// none. The sentinel is excluded. Used as the anchor for a trailing hidden
// run.
func (w *Window) MaxLine() int {
	max := 0
	for n := range w.lines {
		if n > max {
			max = n
		}
	}
	return max
}
