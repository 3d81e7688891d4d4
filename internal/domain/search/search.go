package search

import (
	"strings"

	"clipgrep/internal/types"
)

// Active reports whether the query constitutes an active filter. An empty or
// whitespace-only query clears any prior windowing instead of hiding
// everything.
func Active(query string) bool {
	return strings.TrimSpace(query) != ""
}

// MatchLines returns the sorted 1-based line numbers of raw whose text
// contains query, case-insensitively. A blank query yields nil ("no active
// filter"), never an empty non-nil slice.
func MatchLines(raw, query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []int
	for i, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.Contains(strings.ToLower(line), q) {
			out = append(out, i+1)
		}
	}
	return out
}

// MatchBlock is the client-side fallback: substring containment on a single
// block's text.
func MatchBlock(b types.Block, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(b.Text), q)
}
