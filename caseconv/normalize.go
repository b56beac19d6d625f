package caseconv

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining diacritical marks after canonical
// decomposition, then recomposes to NFC.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize coerces the raw input to canonical text. Sequence inputs are
// joined with a single space. The returned text is in Unicode NFC so that
// downstream codepoint comparisons are stable across composed and
// decomposed source forms.
func normalize(input any, opts *Options) (string, error) {
	text, err := coerceInput(input, opts.Strict)
	if err != nil || text == "" {
		return "", err
	}

	text = norm.NFC.String(text)

	if opts.NormalizeDiacritics {
		if stripped, _, err := transform.String(stripMarks, text); err == nil {
			text = stripped
		}
	}

	return text, nil
}

// coerceInput converts the accepted input kinds to a plain string. Nil
// sequence elements become empty text; anything non-textual is invalid
// input, which errors in strict mode and short-circuits to empty text
// otherwise.
func coerceInput(input any, strict bool) (string, error) {
	switch v := input.(type) {
	case string:
		return v, nil
	case []string:
		return strings.Join(v, " "), nil
	case []any:
		parts := make([]string, len(v))
		for i, elem := range v {
			switch e := elem.(type) {
			case nil:
				// absent elements become empty text
			case string:
				parts[i] = e
			case fmt.Stringer:
				parts[i] = e.String()
			default:
				if strict {
					return "", &InvalidInputError{Reason: fmt.Sprintf("element %d is %T, not text", i, elem)}
				}
				return "", nil
			}
		}
		return strings.Join(parts, " "), nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		if strict {
			return "", &InvalidInputError{Reason: "input is nil"}
		}
		return "", nil
	default:
		if strict {
			return "", &InvalidInputError{Reason: fmt.Sprintf("input is %T, not text", input)}
		}
		return "", nil
	}
}
