package clip

import (
	"errors"
	"fmt"

	"clipgrep/internal/timecode"
	"clipgrep/internal/types"
)

// ErrIncomplete is returned by consumers that need a complete selection.
var ErrIncomplete = errors.New("clip selection is not complete")

// State of the selection: Empty (nothing chosen), Partial (one bound chosen),
// Complete (both bounds chosen with start < end).
type State int

const (
	Empty State = iota
	Partial
	Complete
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Partial:
		return "partial"
	default:
		return "complete"
	}
}

// Selection is the single in-progress or complete clip, owned by at most one
// transcript at a time. Not persisted; a process holds exactly one. All
// mutation happens on the UI event thread, so no locking.
type Selection struct {
	start *timecode.Timecode
	end   *timecode.Timecode
	owner string
	label string
}

func New() *Selection { return &Selection{} }

// SetStart binds the start of the clip to transcript. Switching to a
// different owner discards only the other bound: the end is reset, the new
// start is kept.
func (s *Selection) SetStart(t timecode.Timecode, transcript string) {
	if s.owner != "" && s.owner != transcript {
		s.end = nil
		s.label = ""
	}
	v := t
	s.start = &v
	s.owner = transcript
}

// SetEnd is symmetric to SetStart: a differing owner resets the start before
// the end is bound.
func (s *Selection) SetEnd(t timecode.Timecode, transcript string) {
	if s.owner != "" && s.owner != transcript {
		s.start = nil
		s.label = ""
	}
	v := t
	s.end = &v
	s.owner = transcript
}

// SetRange unconditionally overwrites all fields with an already-valid span,
// used when a whole block span becomes the clip in one action.
func (s *Selection) SetRange(start, end timecode.Timecode, transcript, label string) error {
	if !start.Before(end) {
		return fmt.Errorf("clip range %s..%s: start must precede end", start, end)
	}
	sv, ev := start, end
	s.start = &sv
	s.end = &ev
	s.owner = transcript
	s.label = label
	return nil
}

// Clear resets the selection to all-null.
func (s *Selection) Clear() {
	s.start = nil
	s.end = nil
	s.owner = ""
	s.label = ""
}

func (s *Selection) State() State {
	if s.owner == "" {
		return Empty
	}
	if s.start != nil && s.end != nil && s.start.Before(*s.end) {
		return Complete
	}
	return Partial
}

func (s *Selection) Start() (timecode.Timecode, bool) {
	if s.start == nil {
		return 0, false
	}
	return *s.start, true
}

func (s *Selection) End() (timecode.Timecode, bool) {
	if s.end == nil {
		return 0, false
	}
	return *s.end, true
}

func (s *Selection) Owner() string { return s.owner }
func (s *Selection) Label() string { return s.label }

// CanSetStart is the guard the calling menu applies before offering "set
// start": with an end already bound on the same transcript, the candidate
// must lie strictly before it. Switching transcripts discards the end, so
// any candidate is fine there.
func (s *Selection) CanSetStart(t timecode.Timecode, transcript string) bool {
	if s.owner != transcript || s.end == nil {
		return true
	}
	return t.Before(*s.end)
}

// CanSetEnd mirrors CanSetStart for the end bound.
func (s *Selection) CanSetEnd(t timecode.Timecode, transcript string) bool {
	if s.owner != transcript || s.start == nil {
		return true
	}
	return s.start.Before(t)
}

// Highlight answers the membership query for one block: whether the
// selection's start or end falls inside the block's inclusive time range,
// and whether the block lies fully within a complete selection. Blocks of
// other transcripts and untimed blocks never highlight.
func (s *Selection) Highlight(b types.Block, transcript string) types.Highlight {
	var h types.Highlight
	if s.owner == "" || s.owner != transcript || !b.Timed {
		return h
	}
	if s.start != nil && b.Start <= *s.start && *s.start <= b.End {
		h.ContainsStart = true
	}
	if s.end != nil && b.Start <= *s.end && *s.end <= b.End {
		h.ContainsEnd = true
	}
	if s.start != nil && s.end != nil && b.Start >= *s.start && b.End <= *s.end {
		h.FullyWithin = true
	}
	return h
}
