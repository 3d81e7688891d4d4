package timecode

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Pattern matches the canonical textual form HH:MM:SS.mmm anywhere in a
// string. Hours are at least two digits and unbounded (not wrapped at 24).
const Pattern = `\d{2,}:[0-5]\d:[0-5]\d\.\d{3}`

var canonicalRe = regexp.MustCompile(`^(\d{2,}):([0-5]\d):([0-5]\d)\.(\d{3})$`)

// Timecode is a point in media time with millisecond precision.
type Timecode time.Duration

// Parse converts a canonical HH:MM:SS.mmm string into a Timecode.
// Parse and String are inverses for every canonical string.
func Parse(s string) (Timecode, error) {
	m := canonicalRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("timecode %q: want HH:MM:SS.mmm", s)
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("timecode %q: hours: %w", s, err)
	}
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	millis, _ := strconv.Atoi(m[4])

	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
	return Timecode(d), nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Timecode {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Timecode) String() string {
	d := time.Duration(t)
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func (t Timecode) Before(o Timecode) bool { return t < o }

// Add offsets the timecode, clamping at zero.
func (t Timecode) Add(d time.Duration) Timecode {
	out := Timecode(time.Duration(t) + d)
	if out < 0 {
		out = 0
	}
	return out
}

func (t Timecode) Duration() time.Duration { return time.Duration(t) }
