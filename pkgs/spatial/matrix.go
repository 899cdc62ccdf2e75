// Package spatial reads two-dimensional braille layouts: matrices and
// determinants written one row per line, and expressions broken across
// lines.
package spatial

import (
	"fmt"
	"strings"

	"github.com/NSoiffer/MathCAT-sub003/internal/invariant"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/generator"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

// MatrixCellCode is the code every matrix cell is read in.
const MatrixCellCode = braille.Nemeth

// MatrixType is the delimiter drawn around a matrix.
type MatrixType int

const (
	Parentheses MatrixType = iota
	Brackets
	Determinant
	Plain
)

func (t MatrixType) String() string {
	switch t {
	case Parentheses:
		return "Parentheses"
	case Brackets:
		return "Brackets"
	case Determinant:
		return "Determinant"
	case Plain:
		return "Plain"
	}
	return fmt.Sprintf("MatrixType(%d)", int(t))
}

// delimiters returns the rendered open and close operators.
func (t MatrixType) delimiters() (string, string) {
	switch t {
	case Parentheses:
		return "(", ")"
	case Brackets:
		return "[", "]"
	case Determinant:
		return "|", "|"
	}
	return "", ""
}

// Cell is one matrix entry, still in braille.
type Cell struct {
	Content string
	Row     int
	Col     int
}

// Matrix is a parsed spatial layout.
type Matrix struct {
	Cells []Cell
	Rows  int
	Cols  int
	Type  MatrixType
}

// HasLayout reports whether input looks two-dimensional: several non-blank
// lines, or an enlarged bracket or vertical bar.
func HasLayout(input string) bool {
	if strings.Contains(input, "\n") {
		filled := 0
		for _, line := range Lines(input) {
			if strings.TrimSpace(line) != "" {
				filled++
			}
		}
		if filled > 1 {
			return true
		}
	}
	return strings.Contains(input, braille.EnlargedLeftBracket) ||
		strings.Contains(input, braille.EnlargedVertBar)
}

// Lines splits input on newlines. A trailing carriage return is dropped
// from each line and a final newline does not produce an empty line.
func Lines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func detectType(line string) MatrixType {
	switch {
	case strings.HasPrefix(line, braille.EnlargedLeftBracket):
		return Brackets
	case strings.HasPrefix(line, braille.EnlargedVertBar):
		return Determinant
	case strings.HasPrefix(line, braille.EnlargedLeftParen):
		return Parentheses
	}
	return Plain
}

// ParseMatrix reads input as one matrix row per line. The delimiter type is
// taken from the first line. Rows are split into cells as written; the
// enlarged delimiters stay in the cell content. Blank lines keep their row
// and hold no cells.
func ParseMatrix(input string, code braille.Code) (*Matrix, error) {
	lines := Lines(input)
	if len(lines) < 2 {
		return nil, result.ParseError("Matrix requires at least 2 rows")
	}

	m := &Matrix{
		Rows: len(lines),
		Type: detectType(strings.TrimSpace(lines[0])),
	}

	for row, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cells := SplitRowCells(line)
		m.Cols = max(m.Cols, len(cells))
		for col, content := range cells {
			m.Cells = append(m.Cells, Cell{Content: content, Row: row, Col: col})
		}
	}
	return m, nil
}

var cellSeparators = []string{"⠀⠀", "\t", "  "}

// SplitRowCells splits a row on the first separator it contains: two blank
// cells, a tab, or two spaces.
func SplitRowCells(line string) []string {
	for _, sep := range cellSeparators {
		parts := strings.Split(line, sep)
		if len(parts) < 2 {
			continue
		}
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		return parts
	}
	return []string{strings.TrimSpace(line)}
}

// Cell returns the entry at row, col.
func (m *Matrix) Cell(row, col int) (Cell, bool) {
	for _, c := range m.Cells {
		if c.Row == row && c.Col == col {
			return c, true
		}
	}
	return Cell{}, false
}

// ToMathML renders the matrix as an mtable. Cells are read in
// MatrixCellCode whatever code is.
func (m *Matrix) ToMathML(code braille.Code) (string, error) {
	return m.render(newConfig(nil))
}

func (m *Matrix) render(config *SpatialConfig) (string, error) {
	invariant.NotNil(m, "matrix")
	invariant.Precondition(m.Rows >= 0 && m.Cols >= 0, "matrix dimensions %dx%d", m.Rows, m.Cols)

	for _, c := range m.Cells {
		if c.Row < 0 || c.Row >= m.Rows || c.Col < 0 || c.Col >= m.Cols {
			return "", result.ParseError("matrix cell (%d, %d) outside %dx%d", c.Row, c.Col, m.Rows, m.Cols)
		}
	}

	left, right := m.Type.delimiters()
	var b strings.Builder
	if config.output.IncludeDeclaration {
		b.WriteString(generator.Declaration)
	}
	b.WriteString(config.output.OpenTag())
	b.WriteString("<mrow>")
	if left != "" {
		b.WriteString("<mo>" + left + "</mo>")
	}
	b.WriteString("<mtable>")
	for row := 0; row < m.Rows; row++ {
		b.WriteString("<mtr>")
		for col := 0; col < m.Cols; col++ {
			b.WriteString("<mtd>")
			if cell, ok := m.Cell(row, col); ok {
				res := config.parsers.Parse(MatrixCellCode, cell.Content)
				if res.HasMathML() {
					b.WriteString(extractInner(res.MathML))
				}
			}
			b.WriteString("</mtd>")
		}
		b.WriteString("</mtr>")
	}
	b.WriteString("</mtable>")
	if right != "" {
		b.WriteString("<mo>" + right + "</mo>")
	}
	b.WriteString("</mrow></math>")
	return b.String(), nil
}

// extractInner returns the children of the root <math> element. Anything
// before the root start tag, such as an XML declaration, is dropped.
func extractInner(mathml string) string {
	start := 0
	if root := strings.Index(mathml, "<math"); root >= 0 {
		start = root
	}
	start += strings.Index(mathml[start:], ">") + 1
	end := strings.LastIndex(mathml, "</math>")
	if end < start {
		end = len(mathml)
	}
	return mathml[start:end]
}
