package caseconv

import "golang.org/x/text/language"

// Options configures the conversion pipeline.
type Options struct {
	// NormalizeDiacritics strips combining diacritical marks after
	// canonical decomposition ("café" -> "cafe").
	NormalizeDiacritics bool

	// Locale is a BCP 47 tag governing case folding (e.g. "tr" for
	// Turkish dotless i). Empty means default folding. A malformed tag
	// behaves as if absent.
	Locale string

	// Strict makes invalid input and wrong-kind option values fail with a
	// typed error instead of degrading to empty output / field defaults.
	Strict bool

	// PreserveNumbers keeps pure-digit tokens in the output.
	PreserveNumbers bool

	// PreserveAcronyms keeps multi-letter all-uppercase tokens unchanged.
	// Only meaningful for the camel style.
	PreserveAcronyms bool

	// Pascal capitalizes the first token too. Only meaningful for the
	// camel style.
	Pascal bool
}

// DefaultOptions returns a fully-defaulted Options record.
func DefaultOptions() *Options {
	return &Options{PreserveNumbers: true}
}

// Option bag keys accepted by ParseOptions.
const (
	optNormalizeDiacritics = "normalizeDiacritics"
	optLocale              = "locale"
	optThrowOnInvalid      = "throwOnInvalid"
	optPreserveNumbers     = "preserveNumbers"
	optPreserveAcronyms    = "preserveAcronyms"
	optPascalCase          = "pascalCase"
)

// ParseOptions builds an Options record from a loosely-typed option bag,
// the shape produced by config files and CLI flag merging. Each field is
// validated independently: a wrong-kind value is coerced to the field
// default, or reported as an *InvalidOptionError when the bag enables
// strict mode via "throwOnInvalid". Unknown keys are ignored.
func ParseOptions(raw map[string]any) (*Options, error) {
	opts := DefaultOptions()
	if raw == nil {
		return opts, nil
	}

	// throwOnInvalid gates error reporting for every other field, so it is
	// resolved first. A wrong-kind value coerces to its own default (false).
	if v, ok := raw[optThrowOnInvalid]; ok {
		if b, ok := v.(bool); ok {
			opts.Strict = b
		}
	}

	var err error
	if opts.NormalizeDiacritics, err = boolOption(raw, optNormalizeDiacritics, false, opts.Strict); err != nil {
		return nil, err
	}
	if opts.PreserveNumbers, err = boolOption(raw, optPreserveNumbers, true, opts.Strict); err != nil {
		return nil, err
	}
	if opts.PreserveAcronyms, err = boolOption(raw, optPreserveAcronyms, false, opts.Strict); err != nil {
		return nil, err
	}
	if opts.Pascal, err = boolOption(raw, optPascalCase, false, opts.Strict); err != nil {
		return nil, err
	}

	if v, ok := raw[optLocale]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			if opts.Strict {
				return nil, &InvalidOptionError{Option: optLocale, Want: "string", Value: v}
			}
		} else {
			opts.Locale = s
		}
	}

	// A malformed locale tag falls back to absent rather than failing,
	// even in strict mode.
	if opts.Locale != "" {
		if _, err := language.Parse(opts.Locale); err != nil {
			opts.Locale = ""
		}
	}

	return opts, nil
}

// boolOption reads a boolean field from the bag, substituting def when the
// key is missing or (in non-strict mode) has the wrong kind.
func boolOption(raw map[string]any, key string, def, strict bool) (bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}
	b, isBool := v.(bool)
	if !isBool {
		if strict {
			return def, &InvalidOptionError{Option: key, Want: "bool", Value: v}
		}
		return def, nil
	}
	return b, nil
}
