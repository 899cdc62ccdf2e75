package lexer

import "fmt"

// TokenType represents the structural role of one or more braille cells.
//
// The token set is shared by every code: each code maps its own cell
// patterns onto these types, and the parser only ever sees tokens.
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Atoms
	NUMBER      // numeric indicator followed by digits; Text is the decoded value
	DIGIT       // digit cell with no numeric indicator (Nemeth only)
	LETTER      // Latin letter; Text is the lowercase letter
	GREEK       // Greek letter; Text is the letter in its rendered case
	OPERATOR    // Text is the rendered operator symbol
	GROUP_OPEN  // Text is the opening delimiter
	GROUP_CLOSE // Text is the closing delimiter

	// Fractions and radicals
	FRAC_OPEN
	FRAC_LINE
	FRAC_CLOSE
	RADICAL_OPEN
	RADICAL_INDEX
	RADICAL_CLOSE

	// Scripts
	SUPERSCRIPT
	SUBSCRIPT
	BASELINE
	SCRIPT_OPEN
	SCRIPT_CLOSE
)

var tokenNames = [...]string{
	EOF:           "EOF",
	ILLEGAL:       "ILLEGAL",
	NUMBER:        "NUMBER",
	DIGIT:         "DIGIT",
	LETTER:        "LETTER",
	GREEK:         "GREEK",
	OPERATOR:      "OPERATOR",
	GROUP_OPEN:    "GROUP_OPEN",
	GROUP_CLOSE:   "GROUP_CLOSE",
	FRAC_OPEN:     "FRAC_OPEN",
	FRAC_LINE:     "FRAC_LINE",
	FRAC_CLOSE:    "FRAC_CLOSE",
	RADICAL_OPEN:  "RADICAL_OPEN",
	RADICAL_INDEX: "RADICAL_INDEX",
	RADICAL_CLOSE: "RADICAL_CLOSE",
	SUPERSCRIPT:   "SUPERSCRIPT",
	SUBSCRIPT:     "SUBSCRIPT",
	BASELINE:      "BASELINE",
	SCRIPT_OPEN:   "SCRIPT_OPEN",
	SCRIPT_CLOSE:  "SCRIPT_CLOSE",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) && int(t) >= 0 {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexical token with its location in the input.
type Token struct {
	Type TokenType
	Text string

	// Cells is the raw braille the token was read from.
	Cells string

	// Pos is the rune offset of the first cell.
	Pos int

	// Capital is set on LETTER and GREEK tokens read after a capital
	// indicator.
	Capital bool
}

func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%s@%d", t.Type, t.Pos)
	}
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Text, t.Pos)
}

// End returns the rune offset just past the token.
func (t Token) End() int {
	return t.Pos + len([]rune(t.Cells))
}
