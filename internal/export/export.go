package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"clipgrep/internal/domain/clip"
	"clipgrep/internal/timecode"
)

// mediaExts are tried in order when resolving the media file that belongs to
// a transcript.
var mediaExts = []string{".mp4", ".mov", ".mkv", ".webm", ".m4a", ".mp3", ".wav"}

// MediaFor resolves the media file a transcript belongs to by trying common
// extensions next to the transcript's base name. Language suffixes like
// "talk.en.vtt" are stripped as well.
func MediaFor(transcriptID, mediaDir string) (string, error) {
	base := strings.TrimSuffix(transcriptID, filepath.Ext(transcriptID))
	if ext := filepath.Ext(base); len(ext) == 3 { // ".en", ".fr", ...
		base = strings.TrimSuffix(base, ext)
	}
	for _, ext := range mediaExts {
		candidate := filepath.Join(mediaDir, base+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no media file for transcript %s in %s", transcriptID, mediaDir)
}

// Command builds the ffmpeg argv that cuts the selected range out of media.
// The selection must be complete; running the command is left to the caller.
func Command(ffmpegPath, media string, sel *clip.Selection) ([]string, error) {
	if sel == nil || sel.State() != clip.Complete {
		return nil, clip.ErrIncomplete
	}
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	start, _ := sel.Start()
	end, _ := sel.End()

	return []string{
		ffmpegPath,
		"-y",
		"-ss", fmtSeconds(start),
		"-to", fmtSeconds(end),
		"-i", media,
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "18",
		"-c:a", "aac",
		"-b:a", "192k",
		OutputName(media, sel),
	}, nil
}

// CommandLine renders the argv as a single shell line, quoting arguments
// that need it.
func CommandLine(ffmpegPath, media string, sel *clip.Selection) (string, error) {
	args, err := Command(ffmpegPath, media, sel)
	if err != nil {
		return "", err
	}
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " "), nil
}

// OutputName derives the clip file name from the media name, the label when
// one is set, and the selected range.
func OutputName(media string, sel *clip.Selection) string {
	base := strings.TrimSuffix(filepath.Base(media), filepath.Ext(media))
	start, _ := sel.Start()
	end, _ := sel.End()

	tag := normalizeSegment(sel.Label())
	if tag == "" {
		tag = "clip"
	}
	span := fmt.Sprintf("%s-%s", compactTime(start), compactTime(end))
	return fmt.Sprintf("%s_%s_%s.mp4", base, tag, span)
}

func fmtSeconds(t timecode.Timecode) string {
	sec := float64(t.Duration()) / float64(time.Second)
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

// compactTime is the canonical form with separators made file-name safe.
func compactTime(t timecode.Timecode) string {
	return strings.ReplaceAll(strings.ReplaceAll(t.String(), ":", "."), " ", "")
}

func normalizeSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.ContainsAny(s, " \t'\"\\$&|;<>()*?[]#~") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}
