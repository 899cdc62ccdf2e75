// Package parser builds semantic trees from single-code braille.
//
// One recursive-descent grammar serves Nemeth, UEB and CMU. The lexer maps
// each code's cells onto a shared token set, and a per-code dialect
// decides how scripts attach and how unknown cells are reported.
package parser

import (
	"fmt"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/ast"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/lexer"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

// stopSet is a bitmask of token types that end a sequence.
type stopSet uint64

func stops(types ...lexer.TokenType) stopSet {
	var s stopSet
	for _, t := range types {
		s |= 1 << uint(t)
	}
	return s
}

func (s stopSet) has(t lexer.TokenType) bool {
	return s&(1<<uint(t)) != 0
}

var closers = stops(
	lexer.GROUP_CLOSE,
	lexer.FRAC_LINE,
	lexer.FRAC_CLOSE,
	lexer.RADICAL_CLOSE,
	lexer.SCRIPT_CLOSE,
	lexer.BASELINE,
)

var closingDelimiter = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// parser is the internal parser state
type parser struct {
	tokens  []lexer.Token
	pos     int
	dialect *dialect
	config  *ParserConfig

	depth       int
	aborted     bool
	bareDigitOK int // > 0 inside scripts and radical indexes

	errors      []result.Error
	warnings    []result.Warning
	debugEvents []DebugEvent
}

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) at(t lexer.TokenType) bool {
	return p.tokens[p.pos].Type == t
}

func (p *parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	if p.config.debug >= DebugDetailed {
		p.recordDebugEvent("consume", tok.String())
	}
	return tok
}

func (p *parser) done() bool {
	return p.aborted || p.at(lexer.EOF)
}

// errorf records err. Once the depth bound has stopped the parse, nothing
// further is recorded.
func (p *parser) errorf(err result.Error) {
	if p.aborted {
		return
	}
	p.errors = append(p.errors, err)
}

func (p *parser) warn(w result.Warning) {
	p.warnings = append(p.warnings, w)
}

// recordDebugEvent records debug events when debug tracing is enabled
func (p *parser) recordDebugEvent(event, context string) {
	if p.config.debug == DebugOff {
		return
	}
	p.debugEvents = append(p.debugEvents, DebugEvent{
		Event:    event,
		TokenPos: p.pos,
		Context:  context,
	})
}

// enter descends one nesting level. It returns false, and stops the parse,
// once the configured depth is exceeded.
func (p *parser) enter(construct string) bool {
	p.depth++
	if p.depth > p.config.maxDepth {
		if !p.aborted {
			p.errorf(result.ParseErrorAt(p.current().Pos,
				"maximum nesting depth %d exceeded", p.config.maxDepth))
			p.aborted = true
		}
		return false
	}
	if p.config.debug > DebugOff {
		p.recordDebugEvent("enter_"+construct, fmt.Sprintf("depth=%d", p.depth))
	}
	return true
}

func (p *parser) leave(construct string) {
	p.depth--
	if p.config.debug > DebugOff && !p.aborted {
		p.recordDebugEvent("exit_"+construct, fmt.Sprintf("depth=%d", p.depth))
	}
}

// math parses the whole token stream.
func (p *parser) math() []ast.Node {
	p.recordDebugEvent("enter_math", p.dialect.code.String())
	nodes := p.sequence(0, 0, true)
	p.recordDebugEvent("exit_math", fmt.Sprintf("nodes=%d", len(nodes)))
	return nodes
}

// sequence parses siblings until EOF or a token in end. Nested constructs
// stop at the tokens in inherit as well as at their own closers. Closers
// that belong to no open construct are reported and skipped.
func (p *parser) sequence(end, inherit stopSet, withScripts bool) []ast.Node {
	var nodes []ast.Node
	for !p.done() {
		tok := p.current()
		if end.has(tok.Type) {
			break
		}
		if closers.has(tok.Type) {
			p.stray(tok)
			continue
		}

		var n ast.Node
		if withScripts {
			n = p.term(inherit)
		} else {
			n = p.atom(inherit)
		}
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (p *parser) stray(tok lexer.Token) {
	p.advance()
	switch tok.Type {
	case lexer.GROUP_CLOSE:
		p.errorf(result.UnbalancedGrouping(0, firstRune(tok.Text), tok.Pos))
	case lexer.BASELINE:
		p.warn(result.UnexpectedIndicator("baseline", tok.Pos))
	case lexer.FRAC_LINE:
		p.errorf(result.ParseErrorAt(tok.Pos, "fraction line outside a fraction"))
	case lexer.FRAC_CLOSE:
		p.errorf(result.ParseErrorAt(tok.Pos, "fraction close without an open fraction"))
	case lexer.RADICAL_CLOSE:
		p.errorf(result.ParseErrorAt(tok.Pos, "radical close without an open radical"))
	case lexer.SCRIPT_CLOSE:
		p.errorf(result.UnbalancedGrouping(0, 0, tok.Pos))
	}
}

// term parses an atom and any scripts attached to it.
func (p *parser) term(inherit stopSet) ast.Node {
	base := p.atom(inherit)
	if base == nil {
		return nil
	}

	lastWasSub := false
	for !p.aborted && (p.at(lexer.SUPERSCRIPT) || p.at(lexer.SUBSCRIPT)) {
		indicator := p.advance()
		content := p.scriptContent(indicator, inherit)
		if content == nil {
			if p.aborted {
				break
			}
			what := "superscript"
			if indicator.Type == lexer.SUBSCRIPT {
				what = "subscript"
			}
			p.errorf(result.InvalidScript(indicator.Pos, "missing "+what+" content"))
			break
		}

		if indicator.Type == lexer.SUBSCRIPT {
			base = ast.Sub(base, content)
			lastWasSub = true
			continue
		}
		if sub, ok := base.(*ast.Subscript); ok && lastWasSub {
			base = ast.SubSup(sub.Base, sub.Sub, content)
		} else {
			base = ast.Sup(base, content)
		}
		lastWasSub = false
	}
	return base
}

func (p *parser) scriptContent(indicator lexer.Token, inherit stopSet) ast.Node {
	if !p.enter("script") {
		return nil
	}
	defer p.leave("script")
	p.bareDigitOK++
	defer func() { p.bareDigitOK-- }()

	if p.dialect.scripts == scriptLevel {
		level := stops(lexer.SUPERSCRIPT, lexer.SUBSCRIPT, lexer.BASELINE) | inherit
		nodes := p.sequence(level, inherit, false)
		if p.at(lexer.BASELINE) {
			p.advance()
		}
		if len(nodes) == 0 {
			return nil
		}
		return ast.RowOrSingle(nodes)
	}

	if p.at(lexer.SCRIPT_OPEN) {
		open := p.advance()
		inner := inherit | stops(lexer.SCRIPT_CLOSE)
		nodes := p.sequence(inner, inner, true)
		if !p.at(lexer.SCRIPT_CLOSE) {
			p.errorf(result.InvalidScript(open.Pos, "unclosed script group"))
			return ast.RowOrSingle(nodes)
		}
		p.advance()
		if len(nodes) == 0 {
			return nil
		}
		return ast.RowOrSingle(nodes)
	}

	if p.done() || inherit.has(p.current().Type) || closers.has(p.current().Type) {
		return nil
	}
	return p.atom(inherit)
}

// atom parses one item without scripts. It returns nil when the token
// produced no node (an unknown cell, or a reported error).
func (p *parser) atom(inherit stopSet) ast.Node {
	tok := p.current()
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return ast.Num(tok.Text)

	case lexer.DIGIT:
		return p.bareNumber()

	case lexer.LETTER:
		p.advance()
		if tok.Capital {
			return ast.CapitalIdent(tok.Text)
		}
		return ast.Ident(tok.Text)

	case lexer.GREEK:
		p.advance()
		ch := firstRune(tok.Text)
		if tok.Capital {
			return ast.GreekNode(ast.GreekUpper(ch))
		}
		return ast.GreekNode(ast.GreekLower(ch))

	case lexer.OPERATOR:
		p.advance()
		return ast.Op(tok.Text)

	case lexer.GROUP_OPEN:
		return p.group(inherit)

	case lexer.SCRIPT_OPEN:
		return p.invisibleGroup(inherit)

	case lexer.FRAC_OPEN:
		return p.fraction(inherit)

	case lexer.RADICAL_OPEN, lexer.RADICAL_INDEX:
		return p.radical(inherit)

	case lexer.SUPERSCRIPT, lexer.SUBSCRIPT:
		p.advance()
		p.errorf(result.InvalidScript(tok.Pos, "script indicator without a base"))
		return nil

	case lexer.ILLEGAL:
		p.advance()
		if p.dialect.unknownIsWarning {
			p.warn(result.UnexpectedIndicator("Unknown character: "+tok.Text, tok.Pos))
		} else {
			p.errorf(result.UnrecognizedSymbol(tok.Pos, tok.Cells))
		}
		return nil
	}

	p.stray(tok)
	return nil
}

// bareNumber joins consecutive digit cells written without a numeric
// indicator. Outside scripts and radical indexes the indicator was
// required, so a warning is recorded.
func (p *parser) bareNumber() ast.Node {
	start := p.current()
	value := ""
	for p.at(lexer.DIGIT) {
		value += p.advance().Text
	}
	if p.bareDigitOK == 0 {
		p.warn(result.MissingIndicator("numeric", start.Pos))
	}
	return ast.Num(value)
}

func (p *parser) group(inherit stopSet) ast.Node {
	open := p.advance()
	expected := closingDelimiter[open.Text]
	if !p.enter("group") {
		return nil
	}
	defer p.leave("group")

	inner := inherit | stops(lexer.GROUP_CLOSE)
	content := ast.RowOrSingle(p.sequence(inner, inner, true))

	if !p.at(lexer.GROUP_CLOSE) {
		p.errorf(result.UnbalancedGrouping(firstRune(expected), 0, p.current().Pos))
		return ast.Group(open.Text, expected, content)
	}
	closeTok := p.advance()
	if closeTok.Text != expected {
		p.errorf(result.UnbalancedGrouping(firstRune(expected), firstRune(closeTok.Text), closeTok.Pos))
	}
	return ast.Group(open.Text, closeTok.Text, content)
}

// invisibleGroup parses a grouping that has no rendered delimiters.
func (p *parser) invisibleGroup(inherit stopSet) ast.Node {
	open := p.advance()
	if !p.enter("group") {
		return nil
	}
	defer p.leave("group")

	inner := inherit | stops(lexer.SCRIPT_CLOSE)
	nodes := p.sequence(inner, inner, true)
	if !p.at(lexer.SCRIPT_CLOSE) {
		p.errorf(result.UnbalancedGrouping(0, 0, open.Pos))
	} else {
		p.advance()
	}
	return ast.RowOrSingle(nodes)
}

func (p *parser) fraction(inherit stopSet) ast.Node {
	open := p.advance()
	if !p.enter("fraction") {
		return nil
	}
	defer p.leave("fraction")

	nested := inherit | stops(lexer.FRAC_LINE, lexer.FRAC_CLOSE)
	numerator := ast.RowOrSingle(p.sequence(nested, nested, true))
	if !p.at(lexer.FRAC_LINE) {
		p.errorf(result.UnclosedFraction(open.Pos))
		return ast.Frac(numerator, &ast.Empty{})
	}
	p.advance()

	denominator := ast.RowOrSingle(p.sequence(nested, nested, true))
	if !p.at(lexer.FRAC_CLOSE) {
		p.errorf(result.UnclosedFraction(open.Pos))
		return ast.Frac(numerator, denominator)
	}
	p.advance()
	return ast.Frac(numerator, denominator)
}

func (p *parser) radical(inherit stopSet) ast.Node {
	start := p.current()
	if !p.enter("radical") {
		return nil
	}
	defer p.leave("radical")

	var index ast.Node
	if p.at(lexer.RADICAL_INDEX) {
		p.advance()
		p.bareDigitOK++
		indexStops := inherit | stops(lexer.RADICAL_OPEN, lexer.RADICAL_CLOSE)
		index = ast.RowOrSingle(p.sequence(indexStops, indexStops, true))
		p.bareDigitOK--
		if !p.at(lexer.RADICAL_OPEN) {
			p.errorf(result.UnclosedRadical(start.Pos))
			return ast.NRoot(index, &ast.Empty{})
		}
	}
	p.advance()

	nested := inherit | stops(lexer.RADICAL_CLOSE)
	radicand := ast.RowOrSingle(p.sequence(nested, nested, true))
	if !p.at(lexer.RADICAL_CLOSE) {
		p.errorf(result.UnclosedRadical(start.Pos))
	} else {
		p.advance()
	}
	if index == nil {
		return ast.Sqrt(radicand)
	}
	return ast.NRoot(index, radicand)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
