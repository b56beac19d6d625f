package caseconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.False(t, opts.NormalizeDiacritics)
	assert.Empty(t, opts.Locale)
	assert.False(t, opts.Strict)
	assert.True(t, opts.PreserveNumbers)
	assert.False(t, opts.PreserveAcronyms)
	assert.False(t, opts.Pascal)
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want *Options
	}{
		{
			name: "nil bag yields defaults",
			raw:  nil,
			want: DefaultOptions(),
		},
		{
			name: "empty bag yields defaults",
			raw:  map[string]any{},
			want: DefaultOptions(),
		},
		{
			name: "all fields set",
			raw: map[string]any{
				"normalizeDiacritics": true,
				"locale":              "tr",
				"throwOnInvalid":      true,
				"preserveNumbers":     false,
				"preserveAcronyms":    true,
				"pascalCase":          true,
			},
			want: &Options{
				NormalizeDiacritics: true,
				Locale:              "tr",
				Strict:              true,
				PreserveNumbers:     false,
				PreserveAcronyms:    true,
				Pascal:              true,
			},
		},
		{
			name: "wrong kinds coerce to defaults when lenient",
			raw: map[string]any{
				"normalizeDiacritics": "yes",
				"preserveNumbers":     1,
				"pascalCase":          []string{"true"},
				"locale":              42,
			},
			want: DefaultOptions(),
		},
		{
			name: "malformed locale falls back to absent",
			raw:  map[string]any{"locale": "not a locale!"},
			want: DefaultOptions(),
		},
		{
			name: "malformed locale falls back even in strict mode",
			raw:  map[string]any{"throwOnInvalid": true, "locale": "???"},
			want: &Options{Strict: true, PreserveNumbers: true},
		},
		{
			name: "malformed throwOnInvalid coerces to false",
			raw:  map[string]any{"throwOnInvalid": "true", "pascalCase": 1},
			want: DefaultOptions(),
		},
		{
			name: "unknown keys ignored",
			raw:  map[string]any{"unknownOption": true},
			want: DefaultOptions(),
		},
		{
			name: "nil values treated as absent",
			raw:  map[string]any{"preserveNumbers": nil, "locale": nil},
			want: DefaultOptions(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionsStrictErrors(t *testing.T) {
	tests := []struct {
		name   string
		raw    map[string]any
		option string
	}{
		{
			name:   "wrong kind bool field",
			raw:    map[string]any{"throwOnInvalid": true, "preserveNumbers": "nope"},
			option: "preserveNumbers",
		},
		{
			name:   "wrong kind locale",
			raw:    map[string]any{"throwOnInvalid": true, "locale": 7},
			option: "locale",
		},
		{
			name:   "wrong kind pascalCase",
			raw:    map[string]any{"throwOnInvalid": true, "pascalCase": 0},
			option: "pascalCase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions(tt.raw)
			require.Error(t, err)

			var invalid *InvalidOptionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.option, invalid.Option)
			assert.Contains(t, invalid.Error(), tt.option)
		})
	}
}
