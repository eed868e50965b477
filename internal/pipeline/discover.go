package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/cyrlat/internal/config"
	"github.com/backmassage/cyrlat/internal/naming"
)

// hierarchyDepth is the album depth below the root in the hierarchy
// layout: genre/band/album.
const hierarchyDepth = 3

// Discover returns the album folders under root for the given layout,
// deepest first and then in lexical order. The root itself is never an
// album. Unreadable subdirectories are skipped.
func Discover(root string, layout config.Layout) ([]string, error) {
	var albums []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}

		depth := relDepth(root, path)
		if layout == config.LayoutHierarchy {
			if depth < hierarchyDepth {
				return nil
			}
			if naming.IsAlbumName(d.Name()) {
				albums = append(albums, path)
			}
			return filepath.SkipDir
		}

		if naming.IsAlbumName(d.Name()) {
			albums = append(albums, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortDeepestFirst(albums)
	return albums, nil
}

// DiscoverFiles walks albumDir recursively and returns the files whose
// extension is enabled in cfg, sorted lexicographically. Symlinks to
// regular files are included. In the recursive layout, nested album
// folders are left out: [Discover] returns them as albums of their own.
func DiscoverFiles(albumDir string, cfg *config.Config) ([]string, error) {
	var files []string
	err := filepath.WalkDir(albumDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != albumDir && cfg.Layout == config.LayoutRecursive && naming.IsAlbumName(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if cfg.HasExtension(path) && isRegularFile(path, d) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// isRegularFile reports whether d is a regular file or a symlink that
// resolves to one.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// relDepth returns how many path elements path lies below root.
func relDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}

func sortDeepestFirst(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		di := strings.Count(filepath.ToSlash(paths[i]), "/")
		dj := strings.Count(filepath.ToSlash(paths[j]), "/")
		if di != dj {
			return di > dj
		}
		return paths[i] < paths[j]
	})
}
