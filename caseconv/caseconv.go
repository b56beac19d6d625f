// Package caseconv converts free-form text between casing conventions
// (kebab-case, dot.case, camelCase/PascalCase).
//
// All three converters share one pipeline: the input is canonicalized to
// Unicode NFC, separator runs are collapsed to word boundaries, punctuation
// is stripped, words are split at case and digit transitions, and the
// resulting tokens are reassembled under the target style. Each call is a
// pure function of its arguments and safe for concurrent use.
package caseconv

// Convert runs the shared conversion pipeline and assembles the result
// under the given style. A nil opts uses DefaultOptions.
//
// When opts.Strict is false (the default) invalid input yields an empty
// string and a nil error; when Strict is true it yields an
// *InvalidInputError instead.
func Convert(input any, style Style, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	text, err := normalize(input, opts)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	tokens := tokenize(filterText(text), opts)
	return assemble(tokens, style, opts), nil
}

// Kebab converts input to kebab-case: lower-cased tokens joined by hyphens.
//
//	Kebab("Hello World", nil) // "hello-world"
func Kebab(input any, opts *Options) (string, error) {
	return Convert(input, StyleKebab, opts)
}

// Dot converts input to dot.case: lower-cased tokens joined by periods.
//
//	Dot("Hello World", nil) // "hello.world"
func Dot(input any, opts *Options) (string, error) {
	return Convert(input, StyleDot, opts)
}

// Camel converts input to camelCase (or PascalCase when opts.Pascal is set).
//
//	Camel("hello world", nil) // "helloWorld"
func Camel(input any, opts *Options) (string, error) {
	return Convert(input, StyleCamel, opts)
}
