package naming

import (
	"strings"
	"unicode"
)

// ParsedTitle is a title split into the text outside parentheses and the
// contents of each top-level parenthetical group, left to right.
type ParsedTitle struct {
	Before string
	Groups []string
}

// ExtractTopLevelParens splits s into the leading text and its top-level
// (...) groups. Nested opening parens stay inside their group; nested
// closing parens are dropped, so "A (B) (C(D))" yields Before "A" and
// Groups ["B", "C(D"]. Unbalanced input never fails: a ')' at depth zero
// is ignored and an unterminated group is discarded.
//
// Before is captured at every depth-zero '(' and therefore holds all
// outside text up to the last top-level group, with trailing whitespace
// removed.
func ExtractTopLevelParens(s string) ParsedTitle {
	var (
		p       ParsedTitle
		outside strings.Builder
		current strings.Builder
		depth   int
	)

	for _, r := range s {
		switch {
		case r == '(':
			if depth == 0 {
				p.Before = trimRight(outside.String())
				current.Reset()
			}
			depth++
			if depth == 1 {
				continue
			}
		case r == ')' && depth == 1:
			p.Groups = append(p.Groups, strings.TrimSpace(current.String()))
			current.Reset()
			depth--
			continue
		case r == ')' && depth > 1:
			depth--
			continue
		case r == ')':
			continue
		}

		if depth == 0 {
			outside.WriteRune(r)
		} else {
			current.WriteRune(r)
		}
	}

	// Also taken when the title starts with a group: "(cover) Песня" has
	// Before " Песня".
	if p.Before == "" {
		p.Before = trimRight(outside.String())
	}
	return p
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// groupSpan is the byte range of one top-level "(...)" in a string,
// parentheses included.
type groupSpan struct {
	start, end int
}

// topLevelSpans returns the top-level parenthetical groups of s with
// their nested parens intact. Unterminated groups and stray ')' are
// skipped, as in [ExtractTopLevelParens].
func topLevelSpans(s string) []groupSpan {
	var (
		spans []groupSpan
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				spans = append(spans, groupSpan{start: start, end: i + 1})
			}
		}
	}
	return spans
}
