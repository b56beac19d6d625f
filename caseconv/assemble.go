package caseconv

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style identifies the target casing convention.
type Style int

const (
	// StyleKebab joins lower-cased tokens with hyphens: "hello-world"
	StyleKebab Style = iota
	// StyleDot joins lower-cased tokens with periods: "hello.world"
	StyleDot
	// StyleCamel concatenates tokens with medial capitals: "helloWorld"
	StyleCamel
)

// String returns the string representation of Style
func (s Style) String() string {
	switch s {
	case StyleKebab:
		return "kebab"
	case StyleDot:
		return "dot"
	case StyleCamel:
		return "camel"
	default:
		return "unknown"
	}
}

// assemble joins tokens under the target style. Token order is always the
// order of appearance in the input.
func assemble(tokens []string, style Style, opts *Options) string {
	if len(tokens) == 0 {
		return ""
	}

	tag := localeTag(opts)

	switch style {
	case StyleKebab:
		return joinLower(tokens, "-", tag)
	case StyleDot:
		return joinLower(tokens, ".", tag)
	case StyleCamel:
		return joinCamel(tokens, opts, tag)
	default:
		return ""
	}
}

// localeTag resolves opts.Locale to a language tag, falling back to the
// undetermined tag (default case folding) when absent or malformed.
func localeTag(opts *Options) language.Tag {
	if opts.Locale == "" {
		return language.Und
	}
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// joinLower lower-cases every token and joins with sep.
func joinLower(tokens []string, sep string, tag language.Tag) string {
	lower := cases.Lower(tag)
	lowered := make([]string, len(tokens))
	for i, tok := range tokens {
		lowered[i] = lower.String(tok)
	}
	return strings.Join(lowered, sep)
}

// joinCamel concatenates tokens with no separator. The first token is
// lower-cased (capitalized when opts.Pascal); every other token gets a
// leading capital with the remainder lower-cased. With
// opts.PreserveAcronyms, multi-letter all-uppercase tokens keep their
// original characters, first token included.
func joinCamel(tokens []string, opts *Options, tag language.Tag) string {
	lower := cases.Lower(tag)
	title := cases.Title(tag)

	var b strings.Builder
	for i, tok := range tokens {
		switch {
		case opts.PreserveAcronyms && isAcronym(tok):
			b.WriteString(tok)
		case i == 0 && !opts.Pascal:
			b.WriteString(lower.String(tok))
		default:
			b.WriteString(title.String(tok))
		}
	}
	return b.String()
}

// isAcronym reports whether tok is entirely uppercase letters and digits
// and longer than one rune.
func isAcronym(tok string) bool {
	n := 0
	for _, r := range tok {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
		n++
	}
	return n > 1
}
