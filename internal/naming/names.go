package naming

import (
	"regexp"

	"github.com/backmassage/cyrlat/internal/translit"
)

var (
	// reAlbum matches album folders: "YYYY - Title".
	reAlbum = regexp.MustCompile(`^(\d{4})\s-\s(.+)$`)
	// reTrack matches track files (extension already removed): "NN - Title".
	reTrack = regexp.MustCompile(`^(\d{2})\s-\s(.+)$`)
)

// IsAlbumName reports whether name looks like an album folder.
func IsAlbumName(name string) bool { return reAlbum.MatchString(name) }

// SplitAlbum returns the year and title of an album folder name.
func SplitAlbum(name string) (year, title string, ok bool) {
	m := reAlbum.FindStringSubmatch(name)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// SplitTrack returns the track number and title of a track name without
// extension.
func SplitTrack(name string) (number, title string, ok bool) {
	m := reTrack.FindStringSubmatch(name)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// PlainName wraps the transliterated title around the original one:
// prefix + "Lat (Cyr)" + suffix. It returns false when title has nothing
// to transliterate.
func PlainName(prefix, title, suffix string) (string, bool) {
	latin := translit.Transliterate(title)
	if latin == title {
		return "", false
	}
	return prefix + latin + " (" + title + ")" + suffix, true
}

// ComputeAlbumName returns the new name for an album folder, or false when
// the folder does not match "YYYY - Title" or its title has no Cyrillic.
func ComputeAlbumName(folder string) (string, bool) {
	year, title, ok := SplitAlbum(folder)
	if !ok {
		return "", false
	}
	return PlainName(year+" - ", title, "")
}

// ComputeFileName returns the new file name for nameNoExt+ext, or false
// when nothing changes. Track names ("NN - Title") try the cover layout
// first and fall back to the plain layout; any other name (cover art,
// booklets) gets the plain layout with no prefix.
func ComputeFileName(nameNoExt, ext string) (string, bool) {
	number, title, ok := SplitTrack(nameNoExt)
	if !ok {
		return PlainName("", nameNoExt, ext)
	}
	if name, ok := BuildCoverTitle(number, title); ok {
		return name + ext, true
	}
	return PlainName(number+" - ", title, ext)
}

// IsAlreadyTransliterated reports whether title is already in one of the
// layouts produced by this package, so a second pass would only nest it
// again. It looks for a top-level group whose text transliterates to
// exactly the text in front of it, which covers "Lat (Cyr)",
// "Lat (Cyr) (cover)" and "Lat (coverLat) (Cyr (coverCyr))" even when the
// original title itself starts with a group.
func IsAlreadyTransliterated(title string) bool {
	for _, g := range topLevelSpans(title) {
		inner := title[g.start+1 : g.end-1]
		latin := translit.Transliterate(inner)
		if latin == inner {
			continue
		}
		if prefix := trimRight(title[:g.start]); prefix != "" && prefix == latin {
			return true
		}
	}
	return false
}
