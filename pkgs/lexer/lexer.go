// Package lexer turns Unicode braille into structural tokens for one
// braille mathematics code at a time.
//
// Each code supplies a scheme: a longest-match symbol table, its digit
// cells and decimal point, and any mode indicators it consumes silently.
// Numbers, letters and Greek letters are recognised outside the table
// because they combine an indicator with a following cell.
package lexer

import (
	"unicode"

	"github.com/NSoiffer/MathCAT-sub003/internal/invariant"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
)

// LexerOpt represents a lexer configuration option
type LexerOpt func(*LexerConfig)

// DebugLevel controls debug tracing (development only)
type DebugLevel int

const (
	DebugOff      DebugLevel = iota // No debug info (default)
	DebugPaths                      // One event per token
	DebugDetailed                   // Also records skipped cells
)

// LexerConfig holds lexer configuration
type LexerConfig struct {
	debug DebugLevel
}

// WithDebugPaths records an event for every token produced.
func WithDebugPaths() LexerOpt {
	return func(c *LexerConfig) {
		c.debug = DebugPaths
	}
}

// WithDebugDetailed records skipped blanks and mode indicators as well.
func WithDebugDetailed() LexerOpt {
	return func(c *LexerConfig) {
		c.debug = DebugDetailed
	}
}

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Event    string // "token", "skip_blank", "skip_indicator"
	Position int    // rune offset
	Context  string // token or cells involved
}

// Lexer tokenizes braille for a single code.
type Lexer struct {
	scheme *scheme
	input  []rune
	pos    int

	debugLevel  DebugLevel
	debugEvents []DebugEvent
}

// New creates a lexer for input written in code.
func New(code braille.Code, input string, opts ...LexerOpt) *Lexer {
	config := &LexerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	l := &Lexer{
		scheme:     schemeFor(code),
		input:      []rune(input),
		debugLevel: config.debug,
	}
	if config.debug > DebugOff {
		l.debugEvents = make([]DebugEvent, 0, 64)
	}
	invariant.NotNil(l.scheme, "scheme")
	return l
}

// Tokenize returns every remaining token. The last token is always EOF.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, len(l.input)/2+1)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	start := l.pos
	tok := l.lexToken()
	invariant.Postcondition(tok.Type == EOF || l.pos > start, "lexer must advance past %s", tok.Type)

	if l.debugLevel > DebugOff {
		l.trace("token", tok.Pos, tok.String())
	}
	return tok
}

// DebugEvents returns a copy of the recorded debug events.
func (l *Lexer) DebugEvents() []DebugEvent {
	if l.debugLevel == DebugOff {
		return nil
	}
	events := make([]DebugEvent, len(l.debugEvents))
	copy(events, l.debugEvents)
	return events
}

func (l *Lexer) lexToken() Token {
	for {
		l.skipBlanks()
		if l.pos >= len(l.input) {
			return Token{Type: EOF, Pos: len(l.input)}
		}
		if l.scheme.skip == nil {
			break
		}
		start := l.pos
		if n := l.scheme.skip(l.input[l.pos:]); n > 0 {
			l.pos += n
			if l.debugLevel >= DebugDetailed {
				l.trace("skip_indicator", start, string(l.input[start:l.pos]))
			}
			continue
		}
		break
	}

	if tok, ok := l.lexNumber(); ok {
		return tok
	}
	if tok, ok := l.lexSymbol(); ok {
		return tok
	}
	if tok, ok := l.lexGreek(); ok {
		return tok
	}
	if tok, ok := l.lexLetter(); ok {
		return tok
	}

	r := l.input[l.pos]
	if d, ok := l.scheme.digits[r]; ok && l.scheme.bareDigits {
		return l.emit(DIGIT, string(d), 1, false)
	}
	return l.emit(ILLEGAL, string(r), 1, false)
}

func (l *Lexer) skipBlanks() {
	start := l.pos
	for l.pos < len(l.input) {
		r := l.input[l.pos]
		if r != braille.BlankCell && !unicode.IsSpace(r) {
			break
		}
		l.pos++
	}
	if l.pos > start && l.debugLevel >= DebugDetailed {
		l.trace("skip_blank", start, string(l.input[start:l.pos]))
	}
}

// lexNumber reads a numeric indicator and the digits after it. A decimal
// point is accepted once, and only when a digit follows it.
func (l *Lexer) lexNumber() (Token, bool) {
	if l.input[l.pos] != braille.NumericIndicator {
		return Token{}, false
	}

	var value []rune
	seenDecimal := false
	j := l.pos + 1
	for j < len(l.input) {
		c := l.input[j]
		if d, ok := l.scheme.digits[c]; ok {
			value = append(value, d)
			j++
			continue
		}
		if c == l.scheme.decimal && !seenDecimal && j+1 < len(l.input) {
			if _, ok := l.scheme.digits[l.input[j+1]]; ok {
				value = append(value, '.')
				seenDecimal = true
				j++
				continue
			}
		}
		break
	}
	if len(value) == 0 {
		return Token{}, false
	}
	return l.emit(NUMBER, string(value), j-l.pos, false), true
}

func (l *Lexer) lexSymbol() (Token, bool) {
	rest := l.input[l.pos:]
	for _, sym := range l.scheme.symbols {
		if hasPrefix(rest, sym.cells) {
			return l.emit(sym.typ, sym.text, len(sym.cells), false), true
		}
	}
	return Token{}, false
}

func (l *Lexer) lexGreek() (Token, bool) {
	if l.input[l.pos] != greekIndicator {
		return Token{}, false
	}
	j := l.pos + 1
	capital := j < len(l.input) && l.input[j] == braille.CapitalIndicator
	if capital {
		j++
	}
	if j >= len(l.input) {
		return Token{}, false
	}
	ch, ok := greekLetters[l.input[j]]
	if !ok {
		return Token{}, false
	}
	if capital {
		ch = unicode.ToUpper(ch)
	}
	return l.emit(GREEK, string(ch), j+1-l.pos, capital), true
}

func (l *Lexer) lexLetter() (Token, bool) {
	j := l.pos
	capital := l.input[j] == braille.CapitalIndicator
	if capital {
		j++
		if p := l.scheme.letterPrefix; p != 0 && j < len(l.input) && l.input[j] == p {
			j++
		}
	}
	if j >= len(l.input) {
		return Token{}, false
	}
	ch, ok := latinLetters[l.input[j]]
	if !ok {
		return Token{}, false
	}
	return l.emit(LETTER, string(ch), j+1-l.pos, capital), true
}

func (l *Lexer) emit(typ TokenType, text string, width int, capital bool) Token {
	tok := Token{
		Type:    typ,
		Text:    text,
		Cells:   string(l.input[l.pos : l.pos+width]),
		Pos:     l.pos,
		Capital: capital,
	}
	l.pos += width
	return tok
}

func (l *Lexer) trace(event string, pos int, context string) {
	l.debugEvents = append(l.debugEvents, DebugEvent{Event: event, Position: pos, Context: context})
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

// Tokenize is a convenience for New(code, input).Tokenize().
func Tokenize(code braille.Code, input string) []Token {
	return New(code, input).Tokenize()
}
