package braille

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		input    string
		expected Code
	}{
		{"nemeth", Nemeth},
		{"NEMETH", Nemeth},
		{"Nemeth", Nemeth},
		{"ueb", UEB},
		{"UEB", UEB},
		{"cmu", CMU},
		{"Cmu", CMU},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, err := ParseCode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}

	_, err := ParseCode("braille")
	require.Error(t, err)
	assert.Equal(t, "Unknown braille code: 'braille'. Supported codes are: Nemeth, UEB, CMU", err.Error())
}

func TestCodeDisplay(t *testing.T) {
	assert.Equal(t, "Nemeth", Nemeth.String())
	assert.Equal(t, "UEB", UEB.String())
	assert.Equal(t, "CMU", CMU.String())

	assert.Equal(t, "Nemeth Braille Code for Mathematics", Nemeth.Description())
	assert.Equal(t, "Unified English Braille (Technical)", UEB.Description())
	assert.Equal(t, "CMU - Codigo Matematico Unificado (Spanish)", CMU.Description())

	assert.Equal(t, "en-US", Nemeth.Language())
	assert.Equal(t, "en", UEB.Language())
	assert.Equal(t, "es", CMU.Language())
}

func TestCodeText(t *testing.T) {
	data, err := json.Marshal(map[string]Code{"code": UEB})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"UEB"}`, string(data))

	var decoded map[string]Code
	require.NoError(t, json.Unmarshal([]byte(`{"code":"cmu"}`), &decoded))
	assert.Equal(t, CMU, decoded["code"])
}

func TestIndicatorLiterals(t *testing.T) {
	assert.Equal(t, "⠸⠩", NemethOpen)
	assert.Equal(t, "⠸⠱", NemethClose)
	assert.Equal(t, "⠰", Grade1Symbol)
	assert.Equal(t, "⠰⠰", Grade1Word)
	assert.Equal(t, "⠰⠰⠰", Grade1Passage)
	assert.Equal(t, "⠰⠄", Grade1Terminator)
	assert.Equal(t, "⠹", EnlargedLeftParen)
	assert.Equal(t, "⠼", EnlargedRightParen)
	assert.Equal(t, "⠈⠹", EnlargedLeftBracket)
	assert.Equal(t, "⠈⠼", EnlargedRightBracket)
	assert.Equal(t, "⠳", EnlargedVertBar)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("⠼⠂"))
	assert.True(t, IsValid("⠁ ⠃\n⠉"))
	assert.True(t, IsValid(""))
	assert.False(t, IsValid("⠁x"))
}

func TestDots(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5, 6}, Dots('⠼'))
	assert.Empty(t, Dots('⠀'))
	assert.Nil(t, Dots('a'))
}

func TestFromASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single cell letters", "a", "⠁"},
		{"two cells", "a b", "⠁⠂"},
		{"digits", "1 2", "⠁⠂"},
		{"dash separator", "12-45", "⠃⠘"},
		{"all dots", "12345678", "⣿"},
		{"leading separator gives blank", " a", "⠀⠁"},
		{"repeated separators", "a  b", "⠁⠂"},
		{"numeric indicator", "3456", "⠼"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromASCII(tt.input))
		})
	}
}
