package caseconv

import (
	"strings"
	"unicode"
)

// emojiRanges covers the emoji-presentation and extended-pictographic
// blocks: Miscellaneous Symbols, Dingbats, regional indicators,
// Miscellaneous Symbols and Pictographs, Emoticons, Transport and Map
// Symbols, Supplemental Symbols and Pictographs, and Symbols and
// Pictographs Extended-A.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1},
	},
}

// isSeparator reports whether r is an explicit word separator. Runs of
// separators, in any mixture, are equivalent to a single boundary.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', '/', '\\':
		return true
	}
	return unicode.IsSpace(r)
}

// isEmoji reports whether r is in the emoji/pictograph blocks, which pass
// through the filter untouched.
func isEmoji(r rune) bool {
	return unicode.Is(emojiRanges, r)
}

// filterText collapses every separator run to a single space and deletes
// every remaining character that is not a letter, a number, or an emoji.
// The result has no leading or trailing space and no multi-space run; it
// is empty when nothing survives.
func filterText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingBoundary := false
	for _, r := range s {
		switch {
		case isSeparator(r):
			if b.Len() > 0 {
				pendingBoundary = true
			}
		case unicode.IsLetter(r) || unicode.IsNumber(r) || isEmoji(r):
			if pendingBoundary {
				b.WriteByte(' ')
				pendingBoundary = false
			}
			b.WriteRune(r)
		default:
			// punctuation and control characters are dropped without
			// introducing a boundary
		}
	}

	return b.String()
}
