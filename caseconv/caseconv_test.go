package caseconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKebab(t *testing.T) {
	tests := []struct {
		name  string
		input any
		opts  *Options
		want  string
	}{
		{name: "two words", input: "hello world", want: "hello-world"},
		{name: "mixed separators and casing", input: " Hello__WORLD--test ", want: "hello-world-test"},
		{name: "sequence input", input: []string{"  multiple", "SEPARATORS_here"}, want: "multiple-separators-here"},
		{name: "camel input", input: "fooBarBaz", want: "foo-bar-baz"},
		{name: "acronym run", input: "XMLHttpRequest", want: "xml-http-request"},
		{name: "path separators", input: "a/b\\c.d", want: "a-b-c-d"},
		{name: "punctuation stripped", input: "hello, world!", want: "hello-world"},
		{name: "digits split", input: "user2name", want: "user-2-name"},
		{name: "pure number token", input: "version 2", want: "version-2"},
		{name: "drop numbers", input: "version 2", opts: &Options{}, want: "version"},
		{name: "empty string", input: "", want: ""},
		{name: "whitespace only", input: " \t\n ", want: ""},
		{name: "nil input", input: nil, want: ""},
		{name: "emoji passes through", input: "hello 🌍 world", want: "hello-🌍-world"},
		{name: "diacritics kept by default", input: "Café au Lait", want: "café-au-lait"},
		{name: "diacritics stripped", input: "Café au Lait", opts: &Options{NormalizeDiacritics: true, PreserveNumbers: true}, want: "cafe-au-lait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Kebab(tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "two words", input: "hello world", want: "hello.world"},
		{name: "sequence input", input: []string{"  multiple", "SEPARATORS_here"}, want: "multiple.separators.here"},
		{name: "already dotted", input: "already.dotted.name", want: "already.dotted.name"},
		{name: "empty string", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dot(tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		name  string
		input any
		opts  *Options
		want  string
	}{
		{name: "two words", input: "hello world", want: "helloWorld"},
		{name: "snake input", input: "foo_bar_baz", want: "fooBarBaz"},
		{name: "upper input", input: "FOO BAR", want: "fooBar"},
		{
			name:  "acronym preserved pascal",
			input: "XML_http_request",
			opts:  &Options{PreserveAcronyms: true, Pascal: true, PreserveNumbers: true},
			want:  "XMLHttpRequest",
		},
		{
			name:  "acronym folded without preserve",
			input: "XML_http_request",
			want:  "xmlHttpRequest",
		},
		{
			name:  "leading acronym stays intact when not pascal",
			input: "API key",
			opts:  &Options{PreserveAcronyms: true, PreserveNumbers: true},
			want:  "APIKey",
		},
		{name: "pascal", input: "hello world", opts: &Options{Pascal: true, PreserveNumbers: true}, want: "HelloWorld"},
		{name: "nil input lenient", input: nil, opts: &Options{PreserveNumbers: true}, want: ""},
		{name: "empty string", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Camel(tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertStrictInvalidInput(t *testing.T) {
	strict := &Options{Strict: true, PreserveNumbers: true}

	for _, style := range []Style{StyleKebab, StyleDot, StyleCamel} {
		t.Run(style.String(), func(t *testing.T) {
			_, err := Convert(nil, style, strict)
			require.Error(t, err)

			var invalid *InvalidInputError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestConvertStrictNonTextualInput(t *testing.T) {
	strict := &Options{Strict: true, PreserveNumbers: true}

	_, err := Kebab(42, strict)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Error(), "int")

	_, err = Kebab([]any{"ok", 42}, strict)
	require.ErrorAs(t, err, &invalid)
}

func TestConvertLenientNonTextualInput(t *testing.T) {
	got, err := Kebab(42, nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = Kebab([]any{"ok", 42}, nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestConvertIdempotence(t *testing.T) {
	inputs := []string{
		"Hello World",
		"XMLHttpRequest",
		" Hello__WORLD--test ",
		"version 2 beta",
		"café au lait",
	}

	for _, style := range []Style{StyleKebab, StyleDot, StyleCamel} {
		for _, input := range inputs {
			once, err := Convert(input, style, nil)
			require.NoError(t, err)

			twice, err := Convert(once, style, nil)
			require.NoError(t, err)

			assert.Equal(t, once, twice, "style %s input %q", style, input)
		}
	}
}

func TestConvertJoinerPurity(t *testing.T) {
	inputs := []string{
		"a_b-c.d/e\\f",
		"  lots   of \t whitespace  ",
		"MiXeD CaSe WORDS",
	}

	for _, input := range inputs {
		kebab, err := Kebab(input, nil)
		require.NoError(t, err)
		assert.NotContains(t, kebab, ".")
		assert.NotContains(t, kebab, " ")
		assert.False(t, len(kebab) > 0 && (kebab[0] == '-' || kebab[len(kebab)-1] == '-'))

		dot, err := Dot(input, nil)
		require.NoError(t, err)
		assert.NotContains(t, dot, "-")
		assert.NotContains(t, dot, " ")
		assert.False(t, len(dot) > 0 && (dot[0] == '.' || dot[len(dot)-1] == '.'))

		camel, err := Camel(input, nil)
		require.NoError(t, err)
		assert.NotContains(t, camel, "-")
		assert.NotContains(t, camel, ".")
		assert.NotContains(t, camel, " ")
	}
}

func TestConvertPreserveNumbersRemovesOnlyDigitTokens(t *testing.T) {
	opts := &Options{PreserveNumbers: false}

	got, err := Kebab("release 2024 build 7 final", opts)
	require.NoError(t, err)
	assert.Equal(t, "release-build-final", got)

	// Digit runs inside a word split into their own tokens and are dropped
	// the same way.
	got, err = Kebab("v2ray", opts)
	require.NoError(t, err)
	assert.Equal(t, "v-ray", got)
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "kebab", StyleKebab.String())
	assert.Equal(t, "dot", StyleDot.String())
	assert.Equal(t, "camel", StyleCamel.String())
	assert.Equal(t, "unknown", Style(99).String())
}
