package ast

// RowOrSingle is the canonical sequence constructor: no nodes yields Empty,
// one node is returned unwrapped, and two or more form a Row.
func RowOrSingle(nodes []Node) Node {
	switch len(nodes) {
	case 0:
		return &Empty{}
	case 1:
		return nodes[0]
	}
	children := make([]Node, len(nodes))
	copy(children, nodes)
	return &Row{Children: children}
}

// Num returns a number leaf.
func Num(value string) Node { return &Number{Value: value} }

// Ident returns a lowercase Latin identifier.
func Ident(name string) Node {
	return &Identifier{Info: NewIdentifierInfo(name)}
}

// CapitalIdent returns an identifier marked as a capital letter.
func CapitalIdent(name string) Node {
	return &Identifier{Info: NewIdentifierInfo(name).WithCapital()}
}

// Op returns an operator leaf.
func Op(symbol string) Node { return &Operator{Symbol: symbol} }

// Frac returns a fraction.
func Frac(numerator, denominator Node) Node {
	return &Fraction{Numerator: numerator, Denominator: denominator}
}

// Sqrt returns a square root.
func Sqrt(radicand Node) Node { return &Radical{Radicand: radicand} }

// NRoot returns the index-th root of radicand.
func NRoot(index, radicand Node) Node {
	return &Radical{Index: index, Radicand: radicand}
}

// Sup returns base raised to sup.
func Sup(base, sup Node) Node { return &Superscript{Base: base, Sup: sup} }

// Sub returns base with subscript sub.
func Sub(base, sub Node) Node { return &Subscript{Base: base, Sub: sub} }

// SubSup returns base with both a subscript and a superscript.
func SubSup(base, sub, sup Node) Node {
	return &SubSuperscript{Base: base, Sub: sub, Sup: sup}
}

// Group wraps content in the open and close delimiters.
func Group(open, close string, content Node) Node {
	return &Grouped{Open: open, Close: close, Content: content}
}

// Parens, Brackets and Braces are Group with a fixed delimiter pair.
func Parens(content Node) Node   { return Group("(", ")", content) }
func Brackets(content Node) Node { return Group("[", "]", content) }
func Braces(content Node) Node   { return Group("{", "}", content) }

// TextNode returns a text leaf.
func TextNode(value string) Node { return &Text{Value: value} }

// GreekNode returns a Greek letter leaf.
func GreekNode(letter GreekLetter) Node { return &Greek{Letter: letter} }

// IsOperator reports whether n is an Operator.
func IsOperator(n Node) bool {
	_, ok := n.(*Operator)
	return ok
}

// IsNumber reports whether n is a Number.
func IsNumber(n Node) bool {
	_, ok := n.(*Number)
	return ok
}

// IsIdentifier is true for Latin identifiers and Greek letters.
func IsIdentifier(n Node) bool {
	switch n.(type) {
	case *Identifier, *Greek:
		return true
	}
	return false
}

// IsEmpty reports whether n is the Empty node.
func IsEmpty(n Node) bool {
	_, ok := n.(*Empty)
	return ok
}

// Depth returns the nesting depth of the tree. Leaves have depth 1.
func Depth(n Node) int {
	deepest := 0
	for _, c := range Children(n) {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Children returns the direct children of n in rendering order.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Fraction:
		return []Node{v.Numerator, v.Denominator}
	case *Radical:
		if v.Index == nil {
			return []Node{v.Radicand}
		}
		return []Node{v.Radicand, v.Index}
	case *Superscript:
		return []Node{v.Base, v.Sup}
	case *Subscript:
		return []Node{v.Base, v.Sub}
	case *SubSuperscript:
		return []Node{v.Base, v.Sub, v.Sup}
	case *Grouped:
		return []Node{v.Content}
	case *Row:
		return v.Children
	}
	return nil
}
