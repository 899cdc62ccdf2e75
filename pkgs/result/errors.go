// Package result defines the diagnostics and the ParseResult value returned
// by every back-translation operation.
package result

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a back-translation error.
type ErrorKind int

const (
	KindUnrecognizedSymbol ErrorKind = iota
	KindUnclosedFraction
	KindUnclosedRadical
	KindUnbalancedGrouping
	KindInvalidScript
	KindAmbiguousExpression
	KindEmptyInput
	KindUnsupportedCode
	KindParseError
)

var kindNames = [...]string{
	KindUnrecognizedSymbol:  "UnrecognizedSymbol",
	KindUnclosedFraction:    "UnclosedFraction",
	KindUnclosedRadical:     "UnclosedRadical",
	KindUnbalancedGrouping:  "UnbalancedGrouping",
	KindInvalidScript:       "InvalidScript",
	KindAmbiguousExpression: "AmbiguousExpression",
	KindEmptyInput:          "EmptyInput",
	KindUnsupportedCode:     "UnsupportedCode",
	KindParseError:          "ParseError",
}

func (k ErrorKind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is a single back-translation error. Which fields are meaningful
// depends on Kind; use the constructors rather than building values by hand.
type Error struct {
	Kind ErrorKind

	// Position is a rune offset into the input. HasPosition is false only
	// for kinds that carry no position (EmptyInput, UnsupportedCode and a
	// position-less ParseError).
	Position    int
	HasPosition bool

	Cell          string   // UnrecognizedSymbol
	Expected      rune     // UnbalancedGrouping, 0 when absent
	Found         rune     // UnbalancedGrouping, 0 when absent
	Message       string   // InvalidScript, ParseError
	Possibilities []string // AmbiguousExpression
	Code          string   // UnsupportedCode
}

// Error renders the error in its fixed human-readable form.
func (e Error) Error() string {
	switch e.Kind {
	case KindUnrecognizedSymbol:
		return fmt.Sprintf("Unrecognized braille symbol '%s' at position %d", e.Cell, e.Position)
	case KindUnclosedFraction:
		return fmt.Sprintf("Unclosed fraction starting at position %d", e.Position)
	case KindUnclosedRadical:
		return fmt.Sprintf("Unclosed radical starting at position %d", e.Position)
	case KindUnbalancedGrouping:
		switch {
		case e.Expected != 0 && e.Found != 0:
			return fmt.Sprintf("Expected '%c' but found '%c' at position %d", e.Expected, e.Found, e.Position)
		case e.Expected != 0:
			return fmt.Sprintf("Expected '%c' but reached end of input at position %d", e.Expected, e.Position)
		case e.Found != 0:
			return fmt.Sprintf("Unexpected '%c' at position %d", e.Found, e.Position)
		default:
			return fmt.Sprintf("Grouping error at position %d", e.Position)
		}
	case KindInvalidScript:
		return fmt.Sprintf("Invalid script at position %d: %s", e.Position, e.Message)
	case KindAmbiguousExpression:
		return fmt.Sprintf("Ambiguous expression at position %d: could be %s",
			e.Position, strings.Join(e.Possibilities, " or "))
	case KindEmptyInput:
		return "Empty braille input"
	case KindUnsupportedCode:
		return fmt.Sprintf("Braille code '%s' is not yet supported for back-translation", e.Code)
	case KindParseError:
		if e.HasPosition {
			return fmt.Sprintf("Parse error at position %d: %s", e.Position, e.Message)
		}
		return "Parse error: " + e.Message
	}
	return fmt.Sprintf("%s at position %d", e.Kind, e.Position)
}

// UnrecognizedSymbol reports a cell no rule accepts.
func UnrecognizedSymbol(position int, cell string) Error {
	return Error{Kind: KindUnrecognizedSymbol, Position: position, HasPosition: true, Cell: cell}
}

// UnclosedFraction reports a fraction opened at openPosition and never closed.
func UnclosedFraction(openPosition int) Error {
	return Error{Kind: KindUnclosedFraction, Position: openPosition, HasPosition: true}
}

// UnclosedRadical reports a radical opened at openPosition and never closed.
func UnclosedRadical(openPosition int) Error {
	return Error{Kind: KindUnclosedRadical, Position: openPosition, HasPosition: true}
}

// UnbalancedGrouping reports a grouping mismatch. Pass 0 for an absent
// expected or found delimiter.
func UnbalancedGrouping(expected, found rune, position int) Error {
	return Error{
		Kind:        KindUnbalancedGrouping,
		Position:    position,
		HasPosition: true,
		Expected:    expected,
		Found:       found,
	}
}

// InvalidScript reports a malformed superscript or subscript.
func InvalidScript(position int, message string) Error {
	return Error{Kind: KindInvalidScript, Position: position, HasPosition: true, Message: message}
}

// AmbiguousExpression reports input with several valid readings.
func AmbiguousExpression(position int, possibilities ...string) Error {
	return Error{
		Kind:          KindAmbiguousExpression,
		Position:      position,
		HasPosition:   true,
		Possibilities: possibilities,
	}
}

// EmptyInput reports input that is empty after trimming.
func EmptyInput() Error {
	return Error{Kind: KindEmptyInput}
}

// UnsupportedCode reports a code with no registered parser.
func UnsupportedCode(code string) Error {
	return Error{Kind: KindUnsupportedCode, Code: code}
}

// ParseError creates a structural error without a position.
func ParseError(format string, args ...any) Error {
	return Error{Kind: KindParseError, Message: fmt.Sprintf(format, args...)}
}

// ParseErrorAt creates a structural error at a position.
func ParseErrorAt(position int, format string, args ...any) Error {
	return Error{
		Kind:        KindParseError,
		Position:    position,
		HasPosition: true,
		Message:     fmt.Sprintf(format, args...),
	}
}
