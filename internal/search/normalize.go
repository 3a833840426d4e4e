package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinQueryLength is the number of characters a query needs after
// normalization before it is matched at all.
const MinQueryLength = 2

// Normalize folds s into the form used for every comparison in this package:
// accents removed, lower-cased, letters and digits only, single spaces.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// transform.Chain is stateful, one per call.
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(folder, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	b := strings.Builder{}
	b.Grow(len(s))
	lastWasSpace := false

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
			continue
		}
		// drop all other characters
	}

	return strings.TrimSpace(b.String())
}

// tooShort reports whether a normalized query has too few characters to match.
func tooShort(normalized string) bool {
	return utf8.RuneCountInString(normalized) < MinQueryLength
}
