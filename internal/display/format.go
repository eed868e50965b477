// Package display formats console output: the banner, rename lines and
// summary counters.
package display

import (
	"fmt"
	"time"
)

// Kind labels the item a rename line refers to.
type Kind string

const (
	KindAlbum Kind = "ALBUM"
	KindFile  Kind = "FILE"
)

// FormatRename returns a rename line such as "[FILE] a.mp3 -> b.mp3".
// Dry runs are prefixed with "[DRY]".
func FormatRename(kind Kind, from, to string, dry bool) string {
	s := fmt.Sprintf("[%s] %s -> %s", kind, from, to)
	if dry {
		return "[DRY] " + s
	}
	return s
}

// FormatCount returns "1 album" or "3 albums". Only regular English plurals
// are produced.
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FormatDuration rounds d for the summary line: milliseconds below one
// second, tenths of a second below a minute, whole seconds above.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	case d < time.Minute:
		return d.Round(100 * time.Millisecond).String()
	default:
		return d.Round(time.Second).String()
	}
}
