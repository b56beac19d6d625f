package caseconv

import (
	"strings"
	"unicode"
)

// tokenize splits filtered text into ordered word tokens. Words are
// separated by the single-space boundary produced by filterText, then each
// word is further split at case and digit transitions. Pure-digit tokens
// survive only when opts.PreserveNumbers is set; empty tokens never do.
func tokenize(s string, opts *Options) []string {
	if s == "" {
		return nil
	}

	words := strings.Split(s, " ")
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		if isDigits(word) {
			// Pure-number words are never transition-split.
			if opts.PreserveNumbers {
				tokens = append(tokens, word)
			}
			continue
		}
		for _, part := range splitTransitions(word) {
			if isDigits(part) && !opts.PreserveNumbers {
				continue
			}
			tokens = append(tokens, part)
		}
	}

	return tokens
}

// isDigits reports whether s is one or more digit runes and nothing else.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// splitTransitions breaks a word at casing boundaries:
//
//   - lower to upper:       "fooBar"  -> "foo", "Bar"
//   - digit boundary:       "v2ray"   -> "v", "2", "ray"
//   - end of acronym run:   "XMLHttp" -> "XML", "Http"
//
// The acronym rule splits before the last capital of an uppercase run when
// it is followed by a lowercase continuation. A trailing acronym ("fooXML")
// needs no extra rule: the lower-to-upper transition already places the
// boundary before its first capital. Scripts without letter case trigger no
// transitions and pass through as single words.
func splitTransitions(word string) []string {
	runes := []rune(word)
	if len(runes) < 2 {
		return []string{word}
	}

	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, curr := runes[i-1], runes[i]

		split := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(curr):
			split = true
		case unicode.IsDigit(prev) != unicode.IsDigit(curr):
			split = true
		case unicode.IsUpper(prev) && unicode.IsUpper(curr) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			split = true
		}

		if split && i > start {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))

	return parts
}
