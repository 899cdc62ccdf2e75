package parser

import (
	"errors"
	"strings"
	"unicode"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/ast"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/generator"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/lexer"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

// Tree is the outcome of parsing one single-code braille string.
type Tree struct {
	Code        braille.Code
	Source      string
	Tokens      []lexer.Token
	Root        ast.Node // nil when parsing stopped before any tree was built
	Errors      []result.Error
	Warnings    []result.Warning
	DebugEvents []DebugEvent // nil unless debug tracing is enabled

	output generator.Options
}

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Event    string // "enter_fraction", "consume", "recover_truncate"
	TokenPos int    // index into Tokens
	Context  string
}

// ParseTree parses braille written entirely in code.
func ParseTree(code braille.Code, input string, opts ...ParserOpt) *Tree {
	config := newConfig(opts)
	d, ok := dialects[code]
	if !ok {
		return &Tree{
			Code:   code,
			Source: input,
			Errors: []result.Error{result.UnsupportedCode(code.String())},
			output: config.output,
		}
	}

	tree := parseWith(d, input, config)
	if len(tree.Errors) > 0 && d.truncatable != "" {
		if recovered := recoverTruncated(d, input, config); recovered != nil {
			return recovered
		}
	}
	return tree
}

func parseWith(d *dialect, input string, config *ParserConfig) *Tree {
	tree := &Tree{Code: d.code, Source: input, output: config.output}

	if strings.TrimSpace(input) == "" {
		tree.Errors = []result.Error{result.EmptyInput()}
		return tree
	}

	if d.rejectNonBraille {
		for i, r := range []rune(input) {
			if !braille.IsCell(r) && !unicode.IsSpace(r) {
				tree.Errors = append(tree.Errors, result.UnrecognizedSymbol(i, string(r)))
			}
		}
		if len(tree.Errors) > 0 {
			return tree
		}
	}

	tree.Tokens = lexer.New(d.code, input).Tokenize()

	p := &parser{
		tokens:  tree.Tokens,
		dialect: d,
		config:  config,
	}
	if config.debug > DebugOff {
		p.debugEvents = make([]DebugEvent, 0, 32)
	}

	nodes := p.math()
	if len(nodes) == 0 && len(p.errors) == 0 {
		p.errorf(result.ParseError("No valid content found"))
	}

	tree.Root = ast.RowOrSingle(nodes)
	tree.Errors = p.errors
	tree.Warnings = p.warnings
	tree.DebugEvents = p.debugEvents
	return tree
}

// recoverTruncated drops trailing cells that can only begin a structure and
// parses again. It returns nil when that does not produce a clean tree.
func recoverTruncated(d *dialect, input string, config *ParserConfig) *Tree {
	trimmed := strings.TrimRightFunc(input, func(r rune) bool {
		return strings.ContainsRune(d.truncatable, r) || unicode.IsSpace(r) || r == braille.BlankCell
	})
	if trimmed == input || strings.TrimSpace(trimmed) == "" {
		return nil
	}

	tree := parseWith(d, trimmed, config)
	if len(tree.Errors) > 0 {
		return nil
	}
	cut := len([]rune(trimmed))
	tree.Source = input
	tree.Warnings = append(tree.Warnings, result.AutoInserted("truncated incomplete structure", cut))
	if config.debug > DebugOff {
		tree.DebugEvents = append(tree.DebugEvents, DebugEvent{
			Event:    "recover_truncate",
			TokenPos: len(tree.Tokens) - 1,
			Context:  input[len(trimmed):],
		})
	}
	return tree
}

// Result renders the tree. A tree with errors yields no MathML.
func (t *Tree) Result() result.ParseResult {
	if len(t.Errors) > 0 || t.Root == nil {
		return result.Incomplete("", t.Errors, t.Warnings)
	}
	mathml, err := generator.Generate(t.Root, t.output)
	if err != nil {
		rerr := result.ParseError("%v", err)
		errors.As(err, &rerr)
		return result.Incomplete("", []result.Error{rerr}, t.Warnings)
	}
	if len(t.Warnings) > 0 {
		return result.Partial(mathml, t.Warnings)
	}
	return result.Success(mathml)
}

// String returns the display form of the tree, or "" if none was built.
func (t *Tree) String() string {
	if t.Root == nil {
		return ""
	}
	return t.Root.String()
}

// Parse parses braille written entirely in code and renders it.
func Parse(code braille.Code, input string, opts ...ParserOpt) result.ParseResult {
	return ParseTree(code, input, opts...).Result()
}
