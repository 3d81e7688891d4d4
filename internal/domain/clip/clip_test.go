package clip

import (
	"testing"

	"clipgrep/internal/timecode"
	"clipgrep/internal/types"
)

func tc(t *testing.T, s string) timecode.Timecode {
	t.Helper()
	v, err := timecode.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestOwnershipSwitchDiscardsOtherBound(t *testing.T) {
	s := New()
	s.SetStart(tc(t, "00:00:10.000"), "a")
	s.SetEnd(tc(t, "00:00:20.000"), "a")
	if s.State() != Complete || s.Owner() != "a" {
		t.Fatalf("want Complete on a, got %v on %q", s.State(), s.Owner())
	}

	s.SetStart(tc(t, "00:00:05.000"), "b")
	if s.State() != Partial || s.Owner() != "b" {
		t.Fatalf("want Partial on b, got %v on %q", s.State(), s.Owner())
	}
	if start, ok := s.Start(); !ok || start != tc(t, "00:00:05.000") {
		t.Fatalf("start = %v,%v", start, ok)
	}
	if _, ok := s.End(); ok {
		t.Fatal("prior end must be discarded, not carried over")
	}
}

func TestOwnershipSwitchOnSetEnd(t *testing.T) {
	s := New()
	s.SetStart(tc(t, "00:00:10.000"), "a")
	s.SetEnd(tc(t, "00:00:30.000"), "b")
	if s.Owner() != "b" {
		t.Fatalf("owner = %q, want b", s.Owner())
	}
	if _, ok := s.Start(); ok {
		t.Fatal("start must be reset when the end switches transcripts")
	}
	if s.State() != Partial {
		t.Fatalf("state = %v, want Partial", s.State())
	}
}

func TestStateTransitions(t *testing.T) {
	s := New()
	if s.State() != Empty {
		t.Fatalf("new selection state = %v, want Empty", s.State())
	}
	s.SetEnd(tc(t, "00:00:20.000"), "a")
	if s.State() != Partial {
		t.Fatalf("state = %v, want Partial", s.State())
	}
	s.SetStart(tc(t, "00:00:10.000"), "a")
	if s.State() != Complete {
		t.Fatalf("state = %v, want Complete", s.State())
	}
	s.Clear()
	if s.State() != Empty || s.Owner() != "" {
		t.Fatalf("after Clear: state = %v owner = %q", s.State(), s.Owner())
	}
}

func TestSetRange(t *testing.T) {
	s := New()
	s.SetStart(tc(t, "00:00:01.000"), "a")

	if err := s.SetRange(tc(t, "00:00:12.000"), tc(t, "00:00:18.000"), "b", "intro"); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	if s.State() != Complete || s.Owner() != "b" || s.Label() != "intro" {
		t.Fatalf("unexpected selection: %v %q %q", s.State(), s.Owner(), s.Label())
	}

	if err := s.SetRange(tc(t, "00:00:18.000"), tc(t, "00:00:18.000"), "b", ""); err == nil {
		t.Fatal("zero-length range must be rejected")
	}
	if err := s.SetRange(tc(t, "00:00:20.000"), tc(t, "00:00:10.000"), "b", ""); err == nil {
		t.Fatal("inverted range must be rejected")
	}
	// A rejected range leaves the selection untouched.
	if s.State() != Complete || s.Label() != "intro" {
		t.Fatalf("selection mutated by rejected SetRange: %v %q", s.State(), s.Label())
	}
}

func TestGuards(t *testing.T) {
	s := New()
	s.SetEnd(tc(t, "00:00:20.000"), "a")

	if s.CanSetStart(tc(t, "00:00:20.000"), "a") {
		t.Fatal("start == end must be disallowed")
	}
	if s.CanSetStart(tc(t, "00:00:25.000"), "a") {
		t.Fatal("start after end must be disallowed")
	}
	if !s.CanSetStart(tc(t, "00:00:10.000"), "a") {
		t.Fatal("start before end must be allowed")
	}
	// A different transcript discards the end anyway, so any start is fine.
	if !s.CanSetStart(tc(t, "00:00:25.000"), "b") {
		t.Fatal("owner switch must not be guarded")
	}

	s = New()
	s.SetStart(tc(t, "00:00:10.000"), "a")
	if s.CanSetEnd(tc(t, "00:00:10.000"), "a") || s.CanSetEnd(tc(t, "00:00:05.000"), "a") {
		t.Fatal("end at or before start must be disallowed")
	}
	if !s.CanSetEnd(tc(t, "00:00:11.000"), "a") {
		t.Fatal("end after start must be allowed")
	}
}

func TestHighlight(t *testing.T) {
	s := New()
	if err := s.SetRange(tc(t, "00:00:12.000"), tc(t, "00:00:18.000"), "a", ""); err != nil {
		t.Fatalf("SetRange: %v", err)
	}

	block := func(start, end string) types.Block {
		return types.Block{
			Start: tc(t, start),
			End:   tc(t, end),
			Timed: true,
			Lines: []int{1, 2},
		}
	}

	tests := []struct {
		name       string
		b          types.Block
		transcript string
		want       types.Highlight
	}{
		{
			// 12 lies inside [10,15] inclusive.
			name:       "contains start",
			b:          block("00:00:10.000", "00:00:15.000"),
			transcript: "a",
			want:       types.Highlight{ContainsStart: true},
		},
		{
			name:       "contains end",
			b:          block("00:00:16.000", "00:00:19.000"),
			transcript: "a",
			want:       types.Highlight{ContainsEnd: true},
		},
		{
			name:       "fully within",
			b:          block("00:00:13.000", "00:00:17.000"),
			transcript: "a",
			want:       types.Highlight{FullyWithin: true},
		},
		{
			// Boundary block equals the selection: every test holds.
			name:       "exact span",
			b:          block("00:00:12.000", "00:00:18.000"),
			transcript: "a",
			want:       types.Highlight{ContainsStart: true, ContainsEnd: true, FullyWithin: true},
		},
		{
			name:       "outside",
			b:          block("00:00:01.000", "00:00:05.000"),
			transcript: "a",
			want:       types.Highlight{},
		},
		{
			name:       "other transcript",
			b:          block("00:00:13.000", "00:00:17.000"),
			transcript: "b",
			want:       types.Highlight{},
		},
		{
			name:       "untimed block",
			b:          types.Block{Text: "x", Lines: []int{1}},
			transcript: "a",
			want:       types.Highlight{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Highlight(tt.b, tt.transcript); got != tt.want {
				t.Fatalf("Highlight = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHighlight_PartialSelection(t *testing.T) {
	s := New()
	s.SetStart(tc(t, "00:00:12.000"), "a")
	b := types.Block{
		Start: tc(t, "00:00:10.000"),
		End:   tc(t, "00:00:15.000"),
		Timed: true,
		Lines: []int{1, 2},
	}
	got := s.Highlight(b, "a")
	if !got.ContainsStart || got.ContainsEnd || got.FullyWithin {
		t.Fatalf("partial selection highlight = %+v", got)
	}
}
