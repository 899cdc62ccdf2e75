package parser

import (
	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

// Parser turns braille written entirely in one code into a ParseResult.
// The input must not contain code switch indicators.
type Parser interface {
	Parse(input string) result.ParseResult
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(input string) result.ParseResult

func (f ParserFunc) Parse(input string) result.ParseResult { return f(input) }

type codeParser struct {
	code braille.Code
	opts []ParserOpt
}

func (c codeParser) Parse(input string) result.ParseResult {
	return Parse(c.code, input, c.opts...)
}

// For returns the parser for code.
func For(code braille.Code, opts ...ParserOpt) Parser {
	return codeParser{code: code, opts: opts}
}

// Registry maps each code to its parser.
type Registry map[braille.Code]Parser

// DefaultRegistry returns parsers for every supported code.
func DefaultRegistry(opts ...ParserOpt) Registry {
	r := make(Registry, len(braille.Codes))
	for _, code := range braille.Codes {
		r[code] = For(code, opts...)
	}
	return r
}

// Parse dispatches to the parser registered for code.
func (r Registry) Parse(code braille.Code, input string) result.ParseResult {
	p, ok := r[code]
	if !ok || p == nil {
		return result.Failure(result.UnsupportedCode(code.String()))
	}
	return p.Parse(input)
}
