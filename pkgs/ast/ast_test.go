package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRowOrSingle(t *testing.T) {
	x := Ident("x")
	y := Ident("y")

	assert.True(t, IsEmpty(RowOrSingle(nil)))
	assert.Same(t, x, RowOrSingle([]Node{x}))

	row, ok := RowOrSingle([]Node{x, Op("+"), y}).(*Row)
	if assert.True(t, ok) {
		assert.Len(t, row.Children, 3)
	}
}

func TestRowOrSingleCopiesInput(t *testing.T) {
	nodes := []Node{Num("1"), Num("2")}
	row := RowOrSingle(nodes).(*Row)

	nodes[0] = Num("9")
	assert.Equal(t, "1", row.Children[0].String())
}

func TestIdentifierDefaults(t *testing.T) {
	id := Ident("x").(*Identifier)

	expected := IdentifierInfo{Name: "x", IsCapital: false, FontStyle: StyleNormal, Language: LangEnglish}
	if diff := cmp.Diff(expected, id.Info); diff != "" {
		t.Errorf("identifier defaults mismatch (-expected +actual):\n%s", diff)
	}

	capital := CapitalIdent("a").(*Identifier)
	assert.True(t, capital.Info.IsCapital)
}

func TestIdentifierInfoBuilders(t *testing.T) {
	info := NewIdentifierInfo("v").WithCapital().WithStyle(StyleBold).WithLanguage(LangGerman)

	assert.Equal(t, IdentifierInfo{Name: "v", IsCapital: true, FontStyle: StyleBold, Language: LangGerman}, info)
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		node       Node
		operator   bool
		number     bool
		identifier bool
		empty      bool
	}{
		{Op("+"), true, false, false, false},
		{Num("42"), false, true, false, false},
		{Ident("x"), false, false, true, false},
		{GreekNode(GreekLower('α')), false, false, true, false},
		{&Empty{}, false, false, false, true},
		{Frac(Num("1"), Num("2")), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.node.String(), func(t *testing.T) {
			assert.Equal(t, tt.operator, IsOperator(tt.node))
			assert.Equal(t, tt.number, IsNumber(tt.node))
			assert.Equal(t, tt.identifier, IsIdentifier(tt.node))
			assert.Equal(t, tt.empty, IsEmpty(tt.node))
		})
	}
}

func TestMathVariant(t *testing.T) {
	tests := map[FontStyle]string{
		StyleBold:         "bold",
		StyleItalic:       "italic",
		StyleBoldItalic:   "bold-italic",
		StyleScript:       "script",
		StyleFraktur:      "fraktur",
		StyleDoubleStruck: "double-struck",
		StyleSansSerif:    "sans-serif",
		StyleMonospace:    "monospace",
	}
	for style, expected := range tests {
		v, ok := style.MathVariant()
		assert.True(t, ok)
		assert.Equal(t, expected, v)
	}

	_, ok := StyleNormal.MathVariant()
	assert.False(t, ok)
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"fraction", Frac(Num("1"), Num("2")), "(1/2)"},
		{"sqrt", Sqrt(Num("2")), "sqrt(2)"},
		{"root", NRoot(Num("3"), Num("8")), "root[3](8)"},
		{"sup", Sup(Ident("x"), Num("2")), "x^2"},
		{"sub", Sub(Ident("x"), Num("1")), "x_1"},
		{"subsup", SubSup(Ident("x"), Num("1"), Num("2")), "x_1^2"},
		{"parens", Parens(Ident("x")), "(x)"},
		{"row", RowOrSingle([]Node{Ident("x"), Op("+"), Num("1")}), "x + 1"},
		{"text", TextNode("if"), `"if"`},
		{"capital", CapitalIdent("x"), "X"},
		{"greek", GreekNode(GreekUpper('Δ')), "Δ"},
		{"empty", &Empty{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.String())
		})
	}
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 1, Depth(Num("1")))
	assert.Equal(t, 2, Depth(Frac(Num("1"), Num("2"))))
	assert.Equal(t, 3, Depth(Sqrt(Frac(Num("1"), Num("2")))))
}

func TestChildrenRadicalOrder(t *testing.T) {
	idx := Num("3")
	rad := Num("8")

	children := Children(NRoot(idx, rad))
	assert.Equal(t, []Node{rad, idx}, children)
	assert.Len(t, Children(Sqrt(rad)), 1)
	assert.Nil(t, Children(Num("1")))
}
