// Package check provides library diagnostics (the check command) and the
// preflight validation run before every rename pass.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/cyrlat/internal/config"
	"github.com/backmassage/cyrlat/internal/naming"
	"github.com/backmassage/cyrlat/internal/pipeline"
	"github.com/backmassage/cyrlat/internal/translit"
)

// Sentinel errors returned by CheckRoot.
var (
	ErrRootNotFound    = errors.New("library root not found")
	ErrRootNotDir      = errors.New("library root is not a directory")
	ErrRootNotWritable = errors.New("library root is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here so check stays testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckRoot verifies that cfg.Root exists and is a directory. Unless the
// run is a dry run, it also verifies that entries can be created in it.
func CheckRoot(cfg *config.Config) error {
	fi, err := os.Stat(cfg.Root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, cfg.Root)
		}
		return fmt.Errorf("stat %s: %w", cfg.Root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, cfg.Root)
	}
	if cfg.DryRun {
		return nil
	}
	return checkWritable(cfg.Root)
}

// checkWritable creates and removes a scratch file in dir.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".cyrlat-check-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRootNotWritable, dir, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// RunCheck reports on the configured library without renaming anything:
// root status, layout, extensions and the number of album folders that
// would be processed. It returns false if the root is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Library Check ===")
	log.Info("Root:       %s", cfg.Root)
	log.Info("Layout:     %s", cfg.Layout)
	log.Info("Extensions: %v", cfg.Extensions)

	if err := CheckRoot(cfg); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Root is usable")

	albums, err := pipeline.Discover(cfg.Root, cfg.Layout)
	if err != nil {
		log.Error("Album discovery failed: %v", err)
		return false
	}
	if len(albums) == 0 {
		log.Warn("No album folders found (expected \"YYYY - Title\")")
		return true
	}
	log.Success("Album folders: %d", len(albums))

	if n := countUnmapped(albums); n > 0 {
		log.Warn("%d album title(s) contain Cyrillic letters with no Latin form; those letters are kept as-is", n)
	}
	return true
}

// countUnmapped returns how many album titles contain a Cyrillic letter
// missing from the transliteration table.
func countUnmapped(albums []string) int {
	n := 0
	for _, album := range albums {
		_, title, _ := naming.SplitAlbum(filepath.Base(album))
		for _, r := range title {
			if translit.IsCyrillic(r) && !translit.Mapped(r) {
				n++
				break
			}
		}
	}
	return n
}
