package ports

import "context"

// TranscriptSource supplies raw transcript text for a transcript identifier
// (a string key, typically a file name). The core treats the text as an
// opaque blob to segment.
type TranscriptSource interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, id string) (string, error)
}

// SearchService returns, per matching transcript identifier, the list of
// matching line numbers. A transcript with no matches is absent from the
// map, so "no matches" stays distinguishable from "not searched".
type SearchService interface {
	Search(ctx context.Context, query string, ids []string) (map[string][]int, error)
}
