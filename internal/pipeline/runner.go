package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/cyrlat/internal/config"
	"github.com/backmassage/cyrlat/internal/display"
	"github.com/backmassage/cyrlat/internal/logging"
	"github.com/backmassage/cyrlat/internal/naming"
)

// renameFunc performs the actual move. Replaced in tests to inject failures.
var renameFunc = os.Rename

// Run is the top-level batch entry point. It discovers album folders,
// renames each folder and then the files inside it, and returns aggregate
// stats. Cancelling ctx stops the run between items.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	start := time.Now()
	r := &runner{
		cfg:     cfg,
		log:     log,
		tracker: naming.NewCollisionTracker(),
	}

	albums, err := Discover(cfg.Root, cfg.Layout)
	if err != nil {
		log.Error("Album discovery failed: %v", err)
		r.stats.Failed++
		return r.stats
	}

	r.stats.Albums = len(albums)
	log.Info("Found %s.", display.FormatCount(len(albums), "album folder"))

	for i, album := range albums {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		log.Debug("[%d/%d] %s", i+1, len(albums), album)

		current := r.renameAlbum(album)
		r.renameFiles(ctx, current)
	}

	logSummary(cfg, log, &r.stats, time.Since(start))
	return r.stats
}

// runner carries the state of one Run.
type runner struct {
	cfg     *config.Config
	log     *logging.Logger
	stats   RunStats
	tracker *naming.CollisionTracker
}

// renameAlbum renames one album folder if its title needs it and returns
// the folder's current path (the new one on success, the old one otherwise).
func (r *runner) renameAlbum(path string) string {
	name := filepath.Base(path)
	if _, title, ok := naming.SplitAlbum(name); ok && naming.IsAlreadyTransliterated(title) {
		r.log.Debug("Already transliterated: %s", name)
		r.stats.Unchanged++
		return path
	}

	newName, ok := naming.ComputeAlbumName(name)
	if !ok {
		r.stats.Unchanged++
		return path
	}

	newPath := filepath.Join(filepath.Dir(path), newName)
	if !r.apply(display.KindAlbum, path, newPath) {
		return path
	}
	r.stats.AlbumsRenamed++
	if r.cfg.DryRun {
		return path
	}
	return newPath
}

// renameFiles renames every supported file below albumDir.
func (r *runner) renameFiles(ctx context.Context, albumDir string) {
	files, err := DiscoverFiles(albumDir, r.cfg)
	if err != nil {
		r.log.Error("Cannot list files in '%s': %v", albumDir, err)
		r.stats.Failed++
		return
	}

	for _, path := range files {
		if ctx.Err() != nil {
			return
		}
		r.stats.Files++

		base := filepath.Base(path)
		ext := filepath.Ext(base)
		nameNoExt := strings.TrimSuffix(base, ext)

		title := nameNoExt
		if _, t, ok := naming.SplitTrack(nameNoExt); ok {
			title = t
		}
		if naming.IsAlreadyTransliterated(title) {
			r.log.Debug("Already transliterated: %s", base)
			r.stats.Unchanged++
			continue
		}

		newName, ok := naming.ComputeFileName(nameNoExt, ext)
		if !ok {
			r.stats.Unchanged++
			continue
		}

		newPath := filepath.Join(filepath.Dir(path), newName)
		if r.apply(display.KindFile, path, newPath) {
			r.stats.FilesRenamed++
		}
	}
}

// apply performs (or, in a dry run, announces) one rename and reports
// whether it counts as renamed. A target already claimed in this run is
// logged and then overwritten.
func (r *runner) apply(kind display.Kind, from, to string) bool {
	if from == to {
		r.stats.Unchanged++
		return false
	}

	if prev, clash := r.tracker.Claim(from, to); clash {
		r.stats.Collisions++
		r.log.Warn("Target already claimed by '%s': %s", filepath.Base(prev), filepath.Base(to))
	}

	line := display.FormatRename(kind, filepath.Base(from), filepath.Base(to), r.cfg.DryRun)
	if r.cfg.DryRun {
		r.log.Info("%s", line)
		return true
	}

	if err := renameFunc(from, to); err != nil {
		r.log.Error("Cannot rename '%s' -> '%s': %v", from, to, err)
		r.stats.Failed++
		return false
	}
	r.log.Success("%s", line)
	return true
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats, elapsed time.Duration) {
	verb := "Renamed"
	if cfg.DryRun {
		verb = "Would rename"
	}
	log.Info("")
	log.Info("=== Summary (%s) ===", display.FormatDuration(elapsed))
	log.Info("%s %s and %s.", verb,
		display.FormatCount(stats.AlbumsRenamed, "album"),
		display.FormatCount(stats.FilesRenamed, "file"))
	log.Info("Unchanged: %d", stats.Unchanged)
	if stats.Collisions > 0 {
		log.Warn("Collisions: %d", stats.Collisions)
	}
	if stats.Failed > 0 {
		log.Error("Failed: %d", stats.Failed)
		return
	}
	log.Success("Done.")
}
