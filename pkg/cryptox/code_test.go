package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"invite code length", 8},
		{"short code", 4},
		{"long code", 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateCode(tt.length)
			require.NoError(t, err)
			require.Len(t, code, tt.length)

			// Every character must come from the alphabet
			for _, c := range code {
				require.True(t, strings.ContainsRune(CodeAlphabet, c),
					"unexpected character %q in code %q", c, code)
			}
		})
	}
}

func TestGenerateCode_InvalidLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"zero length", 0},
		{"negative length", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateCode(tt.length)
			require.Error(t, err)
			require.Empty(t, code)
		})
	}
}

func TestGenerateCode_Uniqueness(t *testing.T) {
	// 8 chars over a 36-char alphabet gives ~2.8e12 combinations, so 1000
	// draws colliding would point at a broken generator.
	const count = 1000
	codes := make(map[string]bool, count)

	for range count {
		code, err := GenerateCode(8)
		require.NoError(t, err)
		require.NotContains(t, codes, code, "duplicate code generated")
		codes[code] = true
	}
}

func TestMustGenerateCode(t *testing.T) {
	code := MustGenerateCode(8)
	require.Len(t, code, 8)
}

func TestMustGenerateCode_Panics(t *testing.T) {
	require.Panics(t, func() {
		MustGenerateCode(0)
	})
}
