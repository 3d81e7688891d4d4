package segment

import (
	"regexp"
	"strings"

	"clipgrep/internal/timecode"
	"clipgrep/internal/types"
)

const (
	separator = "-->"
	header    = "WEBVTT"
)

var stampRe = regexp.MustCompile(timecode.Pattern)

// Blocks splits raw newline-delimited transcript text into an ordered list
// of blocks, scanning lines top to bottom with 1-based numbering.
//
// A line containing the "-->" separator and exactly two canonical timecodes
// is a timestamp line: the following line (when present) becomes the block's
// content and both line numbers are recorded on the block. A timestamp line
// whose two timecodes are equal is a degenerate range; the pair is consumed
// and no block is emitted. Blank lines and the WEBVTT header never produce
// blocks, and anything that fails the timestamp test is plain text, so
// segmentation cannot fail on arbitrary input.
func Blocks(raw string) []types.Block {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var out []types.Block
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		num := i + 1

		if line == "" || line == header {
			continue
		}

		start, end, ok := parseTimestampLine(line)
		if !ok {
			out = append(out, types.Block{Text: line, Lines: []int{num}})
			continue
		}

		if start == end {
			// Degenerate placeholder range: drop it together with its
			// content line.
			i++
			continue
		}

		if i+1 < len(lines) {
			text := strings.TrimSpace(lines[i+1])
			out = append(out, types.Block{
				Start: start,
				End:   end,
				Timed: true,
				Text:  text,
				Lines: []int{num, num + 1},
			})
			i++
			continue
		}

		// Timestamp line at end of input: a timed block with no content.
		out = append(out, types.Block{
			Start: start,
			End:   end,
			Timed: true,
			Lines: []int{num},
		})
	}
	return out
}

func parseTimestampLine(line string) (start, end timecode.Timecode, ok bool) {
	if !strings.Contains(line, separator) {
		return 0, 0, false
	}
	stamps := stampRe.FindAllString(line, -1)
	if len(stamps) != 2 {
		return 0, 0, false
	}
	s, err := timecode.Parse(stamps[0])
	if err != nil {
		return 0, 0, false
	}
	e, err := timecode.Parse(stamps[1])
	if err != nil {
		return 0, 0, false
	}
	return s, e, true
}
