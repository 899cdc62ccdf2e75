// Package generator renders a semantic tree as Presentation MathML.
package generator

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/ast"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

const (
	// Namespace is the MathML namespace URI.
	Namespace = "http://www.w3.org/1998/Math/MathML"

	// Declaration is emitted before <math> when IncludeDeclaration is set.
	Declaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

	// DefaultMaxDepth bounds tree nesting during generation.
	DefaultMaxDepth = 100
)

// Options controls the generated document.
type Options struct {
	IncludeDeclaration bool
	DisplayBlock       bool

	// Indent is accepted for compatibility. Output is always compact.
	Indent bool

	// MaxDepth is the deepest node nesting rendered before generation
	// fails. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns compact inline output with the default depth bound.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// OpenTag returns the root <math> start tag for the options.
func (o Options) OpenTag() string {
	if o.DisplayBlock {
		return `<math xmlns="` + Namespace + `" display="block">`
	}
	return `<math xmlns="` + Namespace + `">`
}

// Generate renders node as a complete <math> document. It fails only when
// the tree is nested deeper than the configured maximum.
func Generate(node ast.Node, opts Options) (string, error) {
	g := &generator{max: opts.maxDepth()}
	if opts.IncludeDeclaration {
		g.out.WriteString(Declaration)
	}
	g.out.WriteString(opts.OpenTag())
	g.node(node, 1)
	if g.err != nil {
		return "", *g.err
	}
	g.out.WriteString("</math>")
	return g.out.String(), nil
}

type generator struct {
	out strings.Builder
	max int
	err *result.Error
}

func (g *generator) node(n ast.Node, depth int) {
	if g.err != nil {
		return
	}
	if depth > g.max {
		err := result.ParseError("maximum nesting depth %d exceeded", g.max)
		g.err = &err
		return
	}
	next := depth + 1

	switch v := n.(type) {
	case *ast.Number:
		g.leaf("mn", v.Value)
	case *ast.Operator:
		g.leaf("mo", v.Symbol)
	case *ast.Text:
		g.leaf("mtext", v.Value)
	case *ast.Identifier:
		g.identifier(v.Info)
	case *ast.Greek:
		g.leaf("mi", string(v.Letter.Char))
	case *ast.Fraction:
		g.out.WriteString("<mfrac>")
		g.node(v.Numerator, next)
		g.node(v.Denominator, next)
		g.out.WriteString("</mfrac>")
	case *ast.Radical:
		if v.Index == nil {
			g.out.WriteString("<msqrt>")
			g.node(v.Radicand, next)
			g.out.WriteString("</msqrt>")
			return
		}
		g.out.WriteString("<mroot>")
		g.node(v.Radicand, next)
		g.node(v.Index, next)
		g.out.WriteString("</mroot>")
	case *ast.Superscript:
		g.out.WriteString("<msup>")
		g.node(v.Base, next)
		g.node(v.Sup, next)
		g.out.WriteString("</msup>")
	case *ast.Subscript:
		g.out.WriteString("<msub>")
		g.node(v.Base, next)
		g.node(v.Sub, next)
		g.out.WriteString("</msub>")
	case *ast.SubSuperscript:
		g.out.WriteString("<msubsup>")
		g.node(v.Base, next)
		g.node(v.Sub, next)
		g.node(v.Sup, next)
		g.out.WriteString("</msubsup>")
	case *ast.Grouped:
		g.out.WriteString("<mrow>")
		g.leaf("mo", v.Open)
		g.node(v.Content, next)
		g.leaf("mo", v.Close)
		g.out.WriteString("</mrow>")
	case *ast.Row:
		// Operands of mfrac, mroot and the script elements rely on this:
		// a multi-child row is wrapped and a single child is not.
		if len(v.Children) == 1 {
			g.node(v.Children[0], next)
			return
		}
		g.out.WriteString("<mrow>")
		for _, c := range v.Children {
			g.node(c, next)
		}
		g.out.WriteString("</mrow>")
	case *ast.Empty, nil:
	}
}

func (g *generator) identifier(info ast.IdentifierInfo) {
	ch, size := utf8.DecodeRuneInString(info.Name)
	if size == 0 {
		ch = 'x'
	}
	if info.IsCapital {
		ch = upperFirst(ch)
	}

	if variant, ok := info.FontStyle.MathVariant(); ok {
		g.out.WriteString(`<mi mathvariant="` + variant + `">`)
	} else {
		g.out.WriteString("<mi>")
	}
	g.out.WriteString(Escape(string(ch)))
	g.out.WriteString("</mi>")
}

// upperFirst returns the first rune of the uppercase expansion of ch.
func upperFirst(ch rune) rune {
	up := cases.Upper(language.Und).String(string(ch))
	r, size := utf8.DecodeRuneInString(up)
	if size == 0 {
		return 'X'
	}
	return r
}

func (g *generator) leaf(tag, text string) {
	g.out.WriteString("<" + tag + ">")
	g.out.WriteString(Escape(text))
	g.out.WriteString("</" + tag + ">")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five XML special characters with entity references.
func Escape(s string) string {
	return escaper.Replace(s)
}
