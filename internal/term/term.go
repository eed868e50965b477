// Package term holds the ANSI color state shared by the logger and the
// banner, and decides whether colors should be used at all.
//
// [Configure] runs once at startup. With colors off every color variable
// is the empty string, so callers can concatenate them unconditionally.
package term

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/backmassage/cyrlat/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // reset
)

type palette struct {
	red, green, yellow, blue, cyan, magenta, reset string
}

var ansi = palette{
	red:     "\033[1;91m",
	green:   "\033[1;92m",
	yellow:  "\033[1;93m",
	blue:    "\033[1;94m",
	cyan:    "\033[1;96m",
	magenta: "\033[1;95m",
	reset:   "\033[0m",
}

// Configure sets the color variables for output written to w. In auto
// mode colors are used only when w is a terminal, NO_COLOR is unset
// (https://no-color.org) and TERM is not "dumb".
func Configure(mode config.ColorMode, w io.Writer) {
	p := palette{}
	if resolve(mode, w) {
		p = ansi
	}
	Red, Green, Yellow, Blue, Cyan, Magenta, NC =
		p.red, p.green, p.yellow, p.blue, p.cyan, p.magenta, p.reset
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// Paint wraps s in color and a reset. With colors disabled it returns s.
func Paint(color, s string) string {
	if color == "" || !Enabled() {
		return s
	}
	return color + s + NC
}

func resolve(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && IsTerminal(f) &&
		os.Getenv("NO_COLOR") == "" &&
		!strings.EqualFold(os.Getenv("TERM"), "dumb")
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
