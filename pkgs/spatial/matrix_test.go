package spatial

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/generator"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/parser"
)

const mathOpen = `<math xmlns="http://www.w3.org/1998/Math/MathML">`

func TestHasLayout(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"two lines", "⠼⠂\n⠼⠆", true},
		{"single line", "⠼⠂", false},
		{"trailing newline", "⠼⠂\n", false},
		{"blank second line", "⠭\n  \n", false},
		{"enlarged bracket", "⠈⠹⠭", true},
		{"vertical bar", "⠳⠭⠳", true},
		{"enlarged paren alone", "⠹⠭", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasLayout(tt.input))
		})
	}
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{""}, Lines("\n"))
	assert.Equal(t, []string{"a", "b"}, Lines("a\r\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\n\nb"))
}

func TestSplitRowCells(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{"a  b  c", []string{"a", "b", "c"}},
		{"⠼⠂⠀⠀⠼⠆", []string{"⠼⠂", "⠼⠆"}},
		{"a\t b", []string{"a", "b"}},
		{"a⠀⠀b  c", []string{"a", "b  c"}},
		{" abc ", []string{"abc"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.expected, SplitRowCells(tt.line)); diff != "" {
			t.Errorf("SplitRowCells(%q) mismatch (-expected +actual):\n%s", tt.line, diff)
		}
	}
}

func TestParseMatrix(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		m, err := ParseMatrix("⠼⠂  ⠼⠆\n⠼⠒  ⠼⠲", braille.Nemeth)
		require.NoError(t, err)
		assert.Equal(t, &Matrix{
			Cells: []Cell{
				{Content: "⠼⠂", Row: 0, Col: 0},
				{Content: "⠼⠆", Row: 0, Col: 1},
				{Content: "⠼⠒", Row: 1, Col: 0},
				{Content: "⠼⠲", Row: 1, Col: 1},
			},
			Rows: 2,
			Cols: 2,
			Type: Plain,
		}, m)
	})

	t.Run("delimiters stay in cells", func(t *testing.T) {
		m, err := ParseMatrix("⠈⠹⠼⠂⠀⠀⠼⠆⠈⠼\n⠈⠹⠼⠒⠀⠀⠼⠲⠈⠼", braille.Nemeth)
		require.NoError(t, err)
		assert.Equal(t, Brackets, m.Type)
		c, ok := m.Cell(0, 0)
		require.True(t, ok)
		assert.Equal(t, "⠈⠹⠼⠂", c.Content)
		c, ok = m.Cell(1, 1)
		require.True(t, ok)
		assert.Equal(t, "⠼⠲⠈⠼", c.Content)
		_, ok = m.Cell(2, 0)
		assert.False(t, ok)
	})

	t.Run("fraction rows", func(t *testing.T) {
		m, err := ParseMatrix("⠹⠂⠌⠆⠼\n⠹⠒⠌⠲⠼", braille.Nemeth)
		require.NoError(t, err)
		assert.Equal(t, Parentheses, m.Type)
		expected := []Cell{
			{Content: "⠹⠂⠌⠆⠼", Row: 0, Col: 0},
			{Content: "⠹⠒⠌⠲⠼", Row: 1, Col: 0},
		}
		if diff := cmp.Diff(expected, m.Cells); diff != "" {
			t.Errorf("cells mismatch (-expected +actual):\n%s", diff)
		}
	})

	t.Run("type from first line", func(t *testing.T) {
		for input, expected := range map[string]MatrixType{
			"⠳⠭⠳\n⠳⠽⠳":     Determinant,
			"⠹⠭⠼\n⠹⠽⠼":     Parentheses,
			"  ⠈⠹⠭\n⠈⠹⠽": Brackets,
			"⠭\n⠽":         Plain,
		} {
			m, err := ParseMatrix(input, braille.Nemeth)
			require.NoError(t, err)
			assert.Equal(t, expected, m.Type, "input %q", input)
		}
	})

	t.Run("blank lines keep their row", func(t *testing.T) {
		m, err := ParseMatrix("⠭\n\n⠽", braille.Nemeth)
		require.NoError(t, err)
		assert.Equal(t, 3, m.Rows)
		assert.Equal(t, 1, m.Cols)
		assert.Len(t, m.Cells, 2)
		assert.Equal(t, 2, m.Cells[1].Row)
	})

	t.Run("single row", func(t *testing.T) {
		_, err := ParseMatrix("⠭⠀⠀⠽", braille.Nemeth)
		require.Error(t, err)
		assert.Equal(t, "Parse error: Matrix requires at least 2 rows", err.Error())
	})
}

func TestMatrixToMathML(t *testing.T) {
	m := &Matrix{
		Cells: []Cell{
			{Content: "⠼⠂", Row: 0, Col: 0},
			{Content: "⠼⠆", Row: 0, Col: 1},
			{Content: "⠼⠒", Row: 1, Col: 0},
			{Content: "⠼⠲", Row: 1, Col: 1},
		},
		Rows: 2,
		Cols: 2,
		Type: Brackets,
	}

	mathml, err := m.ToMathML(braille.UEB)
	require.NoError(t, err)
	expected := mathOpen + "<mrow><mo>[</mo><mtable>" +
		"<mtr><mtd><mn>1</mn></mtd><mtd><mn>2</mn></mtd></mtr>" +
		"<mtr><mtd><mn>3</mn></mtd><mtd><mn>4</mn></mtd></mtr>" +
		"</mtable><mo>]</mo></mrow></math>"
	if diff := cmp.Diff(expected, mathml); diff != "" {
		t.Errorf("MathML mismatch (-expected +actual):\n%s", diff)
	}

	m.Type = Plain
	m.Cells = m.Cells[:1]
	mathml, err = m.ToMathML(braille.Nemeth)
	require.NoError(t, err)
	assert.Equal(t, mathOpen+"<mrow><mtable>"+
		"<mtr><mtd><mn>1</mn></mtd><mtd></mtd></mtr>"+
		"<mtr><mtd></mtd><mtd></mtd></mtr>"+
		"</mtable></mrow></math>", mathml)

	m.Cells = append(m.Cells, Cell{Content: "⠭", Row: 2, Col: 0})
	_, err = m.ToMathML(braille.Nemeth)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside 2x2")

	assert.Panics(t, func() { _, _ = (&Matrix{Rows: -1}).ToMathML(braille.Nemeth) })
}

func TestDeterminantDelimiters(t *testing.T) {
	m, err := ParseMatrix("⠳⠭⠳\n⠳⠽⠳", braille.Nemeth)
	require.NoError(t, err)
	mathml, err := m.ToMathML(braille.Nemeth)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(mathml, mathOpen+"<mrow><mo>|</mo><mtable><mtr><mtd>"))
	assert.True(t, strings.HasSuffix(mathml, "</mtd></mtr></mtable><mo>|</mo></mrow></math>"))
}

func TestFractionRows(t *testing.T) {
	res := Parse("⠹⠂⠌⠆⠼\n⠹⠒⠌⠲⠼", braille.Nemeth)
	require.True(t, res.IsSuccess())
	assert.Contains(t, res.MathML, "<mo>(</mo><mtable>")
	assert.Contains(t, res.MathML, "<mtr><mtd><mfrac><mn>1</mn><mn>2</mn></mfrac></mtd></mtr>")
	assert.Contains(t, res.MathML, "<mtr><mtd><mfrac><mn>3</mn><mn>4</mn></mfrac></mtd></mtr>")
	assert.NotContains(t, res.MathML, "<mtd></mtd>")
}

func TestExtractInner(t *testing.T) {
	assert.Equal(t, "<mn>1</mn>", extractInner(mathOpen+"<mn>1</mn></math>"))
	assert.Equal(t, "<mn>1</mn>", extractInner(`<math display="block"><mn>1</mn></math>`))
	assert.Equal(t, "plain", extractInner("plain"))
	assert.Equal(t, "<mn>1</mn>", extractInner(generator.Declaration+mathOpen+"<mn>1</mn></math>"))
}

func TestMatrixOutputOptions(t *testing.T) {
	res := Parse("⠭\n⠽", braille.Nemeth, WithOutput(generator.Options{DisplayBlock: true}))
	require.True(t, res.IsSuccess())
	assert.True(t, strings.HasPrefix(res.MathML, `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mrow><mtable>`))
}

func TestMatrixWithDeclaration(t *testing.T) {
	opts := generator.Options{IncludeDeclaration: true}
	reg := parser.DefaultRegistry(parser.WithOutput(opts))

	res := Parse("⠼⠂⠀⠀⠼⠆\n⠼⠒⠀⠀⠼⠲", braille.Nemeth, WithParsers(reg), WithOutput(opts))
	require.True(t, res.IsSuccess())
	expected := generator.Declaration + mathOpen + "<mrow><mtable>" +
		"<mtr><mtd><mn>1</mn></mtd><mtd><mn>2</mn></mtd></mtr>" +
		"<mtr><mtd><mn>3</mn></mtd><mtd><mn>4</mn></mtd></mtr>" +
		"</mtable></mrow></math>"
	if diff := cmp.Diff(expected, res.MathML); diff != "" {
		t.Errorf("MathML mismatch (-expected +actual):\n%s", diff)
	}
	assert.Equal(t, 1, strings.Count(res.MathML, "<?xml"))
}
