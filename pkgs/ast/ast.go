// Package ast is the code-independent semantic tree for a back-translated
// mathematical expression.
//
// A node owns its children. Trees are built bottom-up and are not modified
// after construction. Sequences of siblings must be assembled with
// RowOrSingle so that a Row never holds fewer than two children.
package ast

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Node is any node of the semantic tree. The set of implementations is
// closed; switch on the concrete type.
type Node interface {
	String() string
	node()
}

// Number is a digit string, optionally containing a decimal point.
type Number struct {
	Value string
}

// Identifier is a variable or named letter.
type Identifier struct {
	Info IdentifierInfo
}

// Operator is an operator or relation symbol, stored as rendered.
type Operator struct {
	Symbol string
}

// Fraction is a numerator over a denominator.
type Fraction struct {
	Numerator   Node
	Denominator Node
}

// Radical is a square root when Index is nil.
type Radical struct {
	Index    Node
	Radicand Node
}

// Superscript raises Sup above Base.
type Superscript struct {
	Base Node
	Sup  Node
}

// Subscript lowers Sub below Base.
type Subscript struct {
	Base Node
	Sub  Node
}

// SubSuperscript carries both scripts on one base.
type SubSuperscript struct {
	Base Node
	Sub  Node
	Sup  Node
}

// Grouped is content between delimiters that are rendered verbatim.
type Grouped struct {
	Open    string
	Close   string
	Content Node
}

// Row is an ordered sequence of siblings.
type Row struct {
	Children []Node
}

// Text is literal text rendered as mtext.
type Text struct {
	Value string
}

// Greek is a single Greek letter.
type Greek struct {
	Letter GreekLetter
}

// Empty produces no markup.
type Empty struct{}

func (*Number) node()         {}
func (*Identifier) node()     {}
func (*Operator) node()       {}
func (*Fraction) node()       {}
func (*Radical) node()        {}
func (*Superscript) node()    {}
func (*Subscript) node()      {}
func (*SubSuperscript) node() {}
func (*Grouped) node()        {}
func (*Row) node()            {}
func (*Text) node()           {}
func (*Greek) node()          {}
func (*Empty) node()          {}

func (n *Number) String() string   { return n.Value }
func (n *Operator) String() string { return n.Symbol }
func (n *Text) String() string     { return `"` + n.Value + `"` }
func (n *Greek) String() string    { return string(n.Letter.Char) }
func (*Empty) String() string      { return "" }

func (n *Identifier) String() string {
	if n.Info.IsCapital {
		return cases.Upper(language.Und).String(n.Info.Name)
	}
	return n.Info.Name
}

func (n *Fraction) String() string {
	return "(" + n.Numerator.String() + "/" + n.Denominator.String() + ")"
}

func (n *Radical) String() string {
	if n.Index == nil {
		return "sqrt(" + n.Radicand.String() + ")"
	}
	return "root[" + n.Index.String() + "](" + n.Radicand.String() + ")"
}

func (n *Superscript) String() string { return n.Base.String() + "^" + n.Sup.String() }
func (n *Subscript) String() string   { return n.Base.String() + "_" + n.Sub.String() }

func (n *SubSuperscript) String() string {
	return n.Base.String() + "_" + n.Sub.String() + "^" + n.Sup.String()
}

func (n *Grouped) String() string {
	return n.Open + n.Content.String() + n.Close
}

func (n *Row) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// FontStyle selects a MathML mathvariant. Each style maps to the
// mathvariant value of the same name.
type FontStyle int

const (
	StyleNormal FontStyle = iota // no mathvariant
	StyleBold
	StyleItalic
	StyleBoldItalic
	StyleScript
	StyleFraktur
	StyleDoubleStruck
	StyleSansSerif
	StyleMonospace
)

// MathVariant returns the mathvariant attribute value. Normal has none.
func (s FontStyle) MathVariant() (string, bool) {
	switch s {
	case StyleBold:
		return "bold", true
	case StyleItalic:
		return "italic", true
	case StyleBoldItalic:
		return "bold-italic", true
	case StyleScript:
		return "script", true
	case StyleFraktur:
		return "fraktur", true
	case StyleDoubleStruck:
		return "double-struck", true
	case StyleSansSerif:
		return "sans-serif", true
	case StyleMonospace:
		return "monospace", true
	}
	return "", false
}

// Language is the alphabet an identifier was written in. It is carried for
// consumers of the tree and does not affect generated MathML.
type Language int

// Alphabets an identifier can come from.
const (
	LangEnglish Language = iota
	LangGreek
	LangHebrew
	LangRussian
	LangGerman
)

// IdentifierInfo describes how an identifier was written.
type IdentifierInfo struct {
	Name      string
	IsCapital bool
	FontStyle FontStyle
	Language  Language
}

// NewIdentifierInfo returns a lowercase, normal-style English identifier.
func NewIdentifierInfo(name string) IdentifierInfo {
	return IdentifierInfo{Name: name}
}

// WithCapital returns a copy marked as a capital letter.
func (i IdentifierInfo) WithCapital() IdentifierInfo {
	i.IsCapital = true
	return i
}

// WithStyle returns a copy with the given font style.
func (i IdentifierInfo) WithStyle(style FontStyle) IdentifierInfo {
	i.FontStyle = style
	return i
}

// WithLanguage returns a copy with the given alphabet.
func (i IdentifierInfo) WithLanguage(lang Language) IdentifierInfo {
	i.Language = lang
	return i
}

// GreekLetter is a Greek character and its case and variant flags.
type GreekLetter struct {
	Char        rune
	IsUppercase bool
	IsVariant   bool
}

// GreekLower, GreekUpper and GreekVariant build a GreekLetter for ch.
func GreekLower(ch rune) GreekLetter   { return GreekLetter{Char: ch} }
func GreekUpper(ch rune) GreekLetter   { return GreekLetter{Char: ch, IsUppercase: true} }
func GreekVariant(ch rune) GreekLetter { return GreekLetter{Char: ch, IsVariant: true} }
