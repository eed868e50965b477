package naming

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/backmassage/cyrlat/internal/translit"
)

// CoverDecision describes a track title recognized as a cover version.
type CoverDecision struct {
	// TitleBase is the Cyrillic song title without any cover annotation.
	TitleBase string
	// LatinTitle is TitleBase transliterated; it always differs from TitleBase.
	LatinTitle string
	// CoverText is the content of the first group mentioning "cover".
	CoverText string
	// CoverHasCyrillic is true when CoverText needs transliterating too.
	CoverHasCyrillic bool
}

// reTrailingCover matches a title that ends in its own "(... cover ...)".
var reTrailingCover = regexp.MustCompile(
	`(?i)^(?P<base>.*?)(\s*\((?P<cover>[^()]*cover[^()]*)\))\s*$`)

func containsCover(s string) bool {
	return strings.Contains(strings.ToLower(s), "cover")
}

// firstMatch returns the first element of items satisfying pred.
func firstMatch(items []string, pred func(string) bool) (string, bool) {
	for _, s := range items {
		if pred(s) {
			return s, true
		}
	}
	return "", false
}

// DecideCover reports whether rawTitle is a cover title and, if so, which
// parts of it make up the new name. The Cyrillic title is taken from the
// text before the parentheses when that has Cyrillic, otherwise from the
// first Cyrillic group. Titles whose base would not change under
// transliteration are not covers for renaming purposes.
func DecideCover(rawTitle string) (CoverDecision, bool) {
	if strings.TrimSpace(rawTitle) == "" || !containsCover(rawTitle) {
		return CoverDecision{}, false
	}

	p := ExtractTopLevelParens(rawTitle)
	if len(p.Groups) == 0 {
		return CoverDecision{}, false
	}

	coverText, ok := firstMatch(p.Groups, containsCover)
	if !ok {
		return CoverDecision{}, false
	}

	var cyrTitle string
	if translit.HasCyrillic(p.Before) {
		cyrTitle = strings.TrimSpace(p.Before)
	} else if cyrTitle, ok = firstMatch(p.Groups, translit.HasCyrillic); !ok {
		return CoverDecision{}, false
	}

	base := cyrTitle
	if m := reTrailingCover.FindStringSubmatch(cyrTitle); m != nil {
		base = trimRight(m[reTrailingCover.SubexpIndex("base")])
		// coverText is non-empty here, so the inner annotation is only a
		// fallback and never replaces it.
		if coverText == "" {
			coverText = strings.TrimSpace(m[reTrailingCover.SubexpIndex("cover")])
		}
	}

	latin := translit.Transliterate(base)
	if latin == base {
		return CoverDecision{}, false
	}

	return CoverDecision{
		TitleBase:        base,
		LatinTitle:       latin,
		CoverText:        coverText,
		CoverHasCyrillic: translit.HasCyrillic(coverText),
	}, true
}

// Format renders the decision as a track name (without extension).
//
//	Latin cover:    NN - Lat (Cyr) (Band cover)
//	Cyrillic cover: NN - Lat (BandLat cover) (Cyr (BandCyr cover))
func (d CoverDecision) Format(number string) string {
	if !d.CoverHasCyrillic {
		return fmt.Sprintf("%s - %s (%s) (%s)", number, d.LatinTitle, d.TitleBase, d.CoverText)
	}
	coverLat := translit.Transliterate(d.CoverText)
	return fmt.Sprintf("%s - %s (%s) (%s (%s))", number, d.LatinTitle, coverLat, d.TitleBase, d.CoverText)
}

// BuildCoverTitle returns the new track name for a cover title, or false
// when rawTitle needs no special handling.
func BuildCoverTitle(number, rawTitle string) (string, bool) {
	d, ok := DecideCover(rawTitle)
	if !ok {
		return "", false
	}
	return d.Format(number), true
}
