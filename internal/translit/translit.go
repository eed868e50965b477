// Package translit converts Cyrillic letters to Latin using a fixed table.
//
// The table covers the Russian alphabet plus Ukrainian І/Ї/Є/Ґ and
// Belarusian Ў, in both cases. Every other code point passes through
// unchanged. The mapping is per character with no surrounding context, so
// the only multi-letter outputs are the fixed entries (Ж→Zh, Щ→Shch, ...).
//
// All functions are pure and safe for concurrent use.
package translit

import "strings"

// softSign is the typographic apostrophe used for Ь/ь.
const softSign = "’"

var table = map[rune]string{
	// Upper case.
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ё': "Yo",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "I", 'К': "K", 'Л': "L", 'М': "M",
	'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "Kh", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Shch",
	'Ъ': "", 'Ы': "Y", 'Ь': softSign, 'Э': "E", 'Ю': "Yu", 'Я': "Ya",

	// Lower case.
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "i", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': softSign, 'э': "e", 'ю': "yu", 'я': "ya",

	// Ukrainian.
	'І': "I", 'Ї': "Yi", 'Є': "Ye", 'Ґ': "G",
	'і': "i", 'ї': "yi", 'є': "ye", 'ґ': "g",

	// Belarusian.
	'Ў': "U", 'ў': "u",
}

// Transliterate returns s with every mapped Cyrillic letter replaced by its
// Latin form. Unmapped code points are copied as-is.
func Transliterate(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if lat, ok := table[r]; ok {
			b.WriteString(lat)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HasCyrillic reports whether s contains any code point from the Cyrillic
// block (U+0400–U+04FF).
func HasCyrillic(s string) bool {
	for _, r := range s {
		if IsCyrillic(r) {
			return true
		}
	}
	return false
}

// IsCyrillic reports whether r lies in the Cyrillic block. The supplement
// and extended blocks are not included.
func IsCyrillic(r rune) bool {
	return r >= 0x0400 && r <= 0x04FF
}

// Mapped reports whether r has an entry in the transliteration table.
func Mapped(r rune) bool {
	_, ok := table[r]
	return ok
}
