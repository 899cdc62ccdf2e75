package lexer

import (
	"sort"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
)

const greekIndicator = '⠨' // dots 46, all three codes

type symbol struct {
	cells []rune
	typ   TokenType
	text  string
}

type scheme struct {
	symbols []symbol // longest first
	digits  map[rune]rune
	decimal rune

	// bareDigits lexes a digit cell without a numeric indicator as DIGIT.
	bareDigits bool

	// letterPrefix may sit between the capital indicator and a letter.
	letterPrefix rune

	// skip returns how many leading cells are a mode indicator with no
	// structural meaning, or 0.
	skip func(rest []rune) int
}

func newScheme(s scheme, table []symbol) *scheme {
	sorted := make([]symbol, len(table))
	copy(sorted, table)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].cells) > len(sorted[j].cells)
	})
	s.symbols = sorted
	return &s
}

func sym(cells string, typ TokenType, text string) symbol {
	return symbol{cells: []rune(cells), typ: typ, text: text}
}

func op(cells, text string) symbol {
	return sym(cells, OPERATOR, text)
}

func schemeFor(code braille.Code) *scheme {
	switch code {
	case braille.Nemeth:
		return nemethScheme
	case braille.UEB:
		return uebScheme
	case braille.CMU:
		return cmuScheme
	}
	return nil
}

var latinLetters = map[rune]rune{
	'⠁': 'a', '⠃': 'b', '⠉': 'c', '⠙': 'd', '⠑': 'e',
	'⠋': 'f', '⠛': 'g', '⠓': 'h', '⠊': 'i', '⠚': 'j',
	'⠅': 'k', '⠇': 'l', '⠍': 'm', '⠝': 'n', '⠕': 'o',
	'⠏': 'p', '⠟': 'q', '⠗': 'r', '⠎': 's', '⠞': 't',
	'⠥': 'u', '⠧': 'v', '⠺': 'w', '⠭': 'x', '⠽': 'y',
	'⠵': 'z',
}

// greekLetters is shared by Nemeth, UEB and CMU after the Greek indicator.
var greekLetters = map[rune]rune{
	'⠁': 'α', '⠃': 'β', '⠛': 'γ', '⠙': 'δ', '⠑': 'ε',
	'⠵': 'ζ', '⠱': 'η', '⠹': 'θ', '⠊': 'ι', '⠅': 'κ',
	'⠇': 'λ', '⠍': 'μ', '⠝': 'ν', '⠭': 'ξ', '⠕': 'ο',
	'⠏': 'π', '⠗': 'ρ', '⠎': 'σ', '⠞': 'τ', '⠥': 'υ',
	'⠋': 'φ', '⠯': 'χ', '⠽': 'ψ', '⠺': 'ω',
}

// letterDigits are the a-j digit cells of UEB and CMU.
var letterDigits = map[rune]rune{
	'⠁': '1', '⠃': '2', '⠉': '3', '⠙': '4', '⠑': '5',
	'⠋': '6', '⠛': '7', '⠓': '8', '⠊': '9', '⠚': '0',
}

// Nemeth digits are the a-j patterns dropped to the lower part of the cell.
var nemethDigits = map[rune]rune{
	'⠂': '1', '⠆': '2', '⠒': '3', '⠲': '4', '⠢': '5',
	'⠖': '6', '⠶': '7', '⠦': '8', '⠔': '9', '⠴': '0',
}

var nemethScheme = newScheme(scheme{
	digits:     nemethDigits,
	decimal:    '⠨',
	bareDigits: true,
}, []symbol{
	op("⠬", "+"),
	op("⠤", "-"),
	op("⠬⠤", "±"),
	op("⠈⠡", "×"),
	op("⠨⠌", "÷"),
	op("⠨⠅", "="),
	op("⠌⠨⠅", "≠"),
	op("⠐⠅", "<"),
	op("⠨⠂", ">"),
	op("⠐⠅⠱", "≤"),
	op("⠨⠂⠱", "≥"),

	sym("⠹", FRAC_OPEN, ""),
	sym("⠌", FRAC_LINE, ""),
	sym("⠼", FRAC_CLOSE, ""),
	sym("⠜", RADICAL_OPEN, ""),
	sym("⠣", RADICAL_INDEX, ""),
	sym("⠻", RADICAL_CLOSE, ""),

	sym("⠷", GROUP_OPEN, "("),
	sym("⠾", GROUP_CLOSE, ")"),
	sym("⠈⠷", GROUP_OPEN, "["),
	sym("⠈⠾", GROUP_CLOSE, "]"),
	sym("⠨⠷", GROUP_OPEN, "{"),
	sym("⠨⠾", GROUP_CLOSE, "}"),

	sym("⠘", SUPERSCRIPT, ""),
	sym("⠰", SUBSCRIPT, ""),
	sym("⠐", BASELINE, ""),
})

var uebScheme = newScheme(scheme{
	digits:       letterDigits,
	decimal:      '⠲',
	letterPrefix: '⠰',
	skip:         skipGrade1,
}, []symbol{
	op("⠐⠮", "+"),
	op("⠐⠤", "-"),
	op("⠐⠬", "×"),
	op("⠐⠌", "÷"),
	op("⠐⠶", "="),
	op("⠈⠣", "<"),
	op("⠈⠜", ">"),
	op("⠸⠖", "±"),
	op("⠠⠿", "∞"),
	op("⠘⠚", "°"),
	op("⠨⠴", "%"),
	op("⠠⠡", "∴"),
	op("⠘⠑", "∈"),

	sym("⠐⠣", GROUP_OPEN, "("),
	sym("⠐⠜", GROUP_CLOSE, ")"),
	sym("⠨⠣", GROUP_OPEN, "["),
	sym("⠨⠜", GROUP_CLOSE, "]"),
	sym("⠸⠣", GROUP_OPEN, "{"),
	sym("⠸⠜", GROUP_CLOSE, "}"),

	sym("⠷", FRAC_OPEN, ""),
	sym("⠌", FRAC_LINE, ""),
	sym("⠾", FRAC_CLOSE, ""),
	sym("⠩", RADICAL_OPEN, ""),
	sym("⠬", RADICAL_CLOSE, ""),

	sym("⠔", SUPERSCRIPT, ""),
	sym("⠢", SUBSCRIPT, ""),
	sym("⠣", SCRIPT_OPEN, ""),
	sym("⠜", SCRIPT_CLOSE, ""),
})

var grade1Indicators = [][]rune{
	[]rune(braille.Grade1Terminator),
	[]rune(braille.Grade1Passage),
	[]rune(braille.Grade1Word),
	[]rune(braille.Grade1Symbol),
}

// skipGrade1 consumes UEB grade 1 indicators. They only affect how the
// cells after them are read, and every cell here is already read as
// grade 1.
func skipGrade1(rest []rune) int {
	for _, ind := range grade1Indicators {
		if hasPrefix(rest, ind) {
			return len(ind)
		}
	}
	return 0
}

var cmuScheme = newScheme(scheme{
	digits:  letterDigits,
	decimal: '⠂',
}, []symbol{
	op("⠮", "+"),
	op("⠤", "−"),
	op("⠬", "×"),
	op("⠲", "÷"),
	op("⠶", "="),
	op("⠪", "<"),
	op("⠕", ">"),

	op("⠘⠶", "≠"),
	op("⠪⠶", "≤"),
	op("⠕⠶", "≥"),
	op("⠪⠪", "≪"),
	op("⠕⠕", "≫"),
	op("⠶⠶", "≡"),
	op("⠣⠄", "⊂"),
	op("⠣⠆", "⊆"),
	op("⠸⠜", "∪"),
	op("⠸⠱", "∩"),
	op("⠸⠢", "∧"),
	op("⠸⠊", "∨"),
	op("⠒⠕", "⇒"),
	op("⠒⠂", "→"),
	op("⠐⠒", "←"),

	sym("⠣", GROUP_OPEN, "("),
	sym("⠜", GROUP_CLOSE, ")"),
	sym("⠷", GROUP_OPEN, "["),
	sym("⠾", GROUP_CLOSE, "]"),

	sym("⠡", SUPERSCRIPT, ""),
	sym("⠌", SUBSCRIPT, ""),
})
