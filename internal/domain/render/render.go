package render

import (
	"clipgrep/internal/domain/window"
	"clipgrep/internal/types"
)

// Items flattens an ordered block list through the visibility window into the
// final display sequence. Invisible blocks accumulate into "N lines hidden"
// markers; each marker carries a pivot that is guaranteed to be a valid,
// already-visible anchor for a follow-up context expansion, so the UI can
// route a click on the marker straight back into the window.
//
// A nil or unfiltered window shows every block. A no-matches window yields
// nothing: the transcript is not rendered at all.
func Items(blocks []types.Block, w *window.Window) []types.RenderItem {
	if w == nil || !w.Filtered() {
		out := make([]types.RenderItem, 0, len(blocks))
		for _, b := range blocks {
			out = append(out, types.RenderItem{Kind: types.ItemBlock, Block: b})
		}
		return out
	}
	if w.NoMatches() {
		return nil
	}

	var out []types.RenderItem
	hidden := 0
	for _, b := range blocks {
		if !w.Visible(b) {
			hidden += len(b.Lines)
			continue
		}
		if hidden > 0 {
			out = append(out, types.RenderItem{
				Kind:      types.ItemHiddenRun,
				Hidden:    hidden,
				PivotLine: b.FirstLine(),
				Direction: types.Up,
			})
			hidden = 0
		}
		out = append(out, types.RenderItem{Kind: types.ItemBlock, Block: b})
	}
	if hidden > 0 {
		out = append(out, types.RenderItem{
			Kind:      types.ItemHiddenRun,
			Hidden:    hidden,
			PivotLine: w.MaxLine(),
			Direction: types.Down,
		})
	}
	return out
}
