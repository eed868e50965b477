// Package config holds runtime configuration: defaults, loading from file,
// environment and CLI flags, and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// Layout selects how album folders are located under the root.
type Layout string

const (
	LayoutRecursive Layout = "recursive" // Any "YYYY - Title" folder at any depth (default).
	LayoutHierarchy Layout = "hierarchy" // Only root/<genre>/<band>/<album>.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then overridden by [Load] from the config file, environment and flags,
// and passed by pointer to the packages that need it.
type Config struct {
	// Library root (positional arg or "root" key). Default: ".".
	Root string `mapstructure:"root"`

	// Discovery.
	Layout     Layout   `mapstructure:"layout"`     // Default: "recursive".
	Extensions []string `mapstructure:"extensions"` // Default: .mp3 .jpg .jpeg .png.

	// Behavior.
	DryRun bool `mapstructure:"dry_run"`

	// Watch mode: quiet period after the last filesystem event before a
	// rescan. Default: 2s.
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`

	// Display and logging.
	Verbose   bool      `mapstructure:"verbose"`
	ColorMode ColorMode `mapstructure:"color"`   // Default: "auto".
	LogFile   string    `mapstructure:"log_file"` // Optional log file path.
}

// DefaultExtensions are the file types renamed inside album folders.
var DefaultExtensions = []string{".mp3", ".jpg", ".jpeg", ".png"}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Root:          ".",
		Layout:        LayoutRecursive,
		Extensions:    append([]string(nil), DefaultExtensions...),
		DryRun:        false,
		WatchDebounce: 2 * time.Second,
		Verbose:       false,
		ColorMode:     ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// NormalizeExtensions lowercases each extension, adds a missing leading
// dot, and drops blanks and duplicates. Order is preserved.
func NormalizeExtensions(exts []string) []string {
	seen := make(map[string]bool, len(exts))
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || e == "." {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

// Validate checks enum fields and normalizes paths and extensions in place.
func (c *Config) Validate() error {
	switch c.Layout {
	case LayoutRecursive, LayoutHierarchy:
		// valid
	default:
		return fmt.Errorf("invalid layout %q (use 'recursive' or 'hierarchy')", c.Layout)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	c.Extensions = NormalizeExtensions(c.Extensions)
	if len(c.Extensions) == 0 {
		return errors.New("at least one file extension is required")
	}

	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch debounce must be positive (got %s)", c.WatchDebounce)
	}

	if strings.TrimSpace(c.Root) == "" {
		return errors.New("library root must not be empty")
	}
	c.Root = NormalizeDirArg(c.Root)
	return nil
}

// HasExtension reports whether path has one of the configured extensions
// (case-insensitive). Extensions must already be normalized by [Validate].
func (c *Config) HasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
