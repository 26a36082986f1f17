package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanGenreNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "dedupes preserving order",
			input: []string{"Strategy", "Family", "Strategy"},
			want:  []string{"Strategy", "Family"},
		},
		{
			name:  "trims and drops blanks",
			input: []string{"  Party ", "", "   ", "Co-op"},
			want:  []string{"Party", "Co-op"},
		},
		{
			name:  "trimmed duplicates collapse",
			input: []string{"Strategy", " Strategy "},
			want:  []string{"Strategy"},
		},
		{
			name:  "empty input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanGenreNames(tt.input))
		})
	}
}

func TestTrimToNil(t *testing.T) {
	assert.Nil(t, TrimToNil("   "))
	assert.Nil(t, TrimToNil(""))

	got := TrimToNil("  hello ")
	if assert.NotNil(t, got) {
		assert.Equal(t, "hello", *got)
	}
}

func TestParseOptionalInt(t *testing.T) {
	assert.Nil(t, ParseOptionalInt(""))
	assert.Nil(t, ParseOptionalInt("abc"))
	assert.Nil(t, ParseOptionalInt(" "))

	got := ParseOptionalInt(" 4 ")
	if assert.NotNil(t, got) {
		assert.Equal(t, 4, *got)
	}
}
