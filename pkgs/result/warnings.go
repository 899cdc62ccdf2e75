package result

import "fmt"

// WarningKind classifies a recoverable issue.
type WarningKind int

const (
	WarnMissingIndicator WarningKind = iota
	WarnUnexpectedIndicator
	WarnAutoInserted
)

func (k WarningKind) String() string {
	switch k {
	case WarnMissingIndicator:
		return "MissingIndicator"
	case WarnUnexpectedIndicator:
		return "UnexpectedIndicator"
	case WarnAutoInserted:
		return "AutoInserted"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a local issue that did not stop parsing. Detail is the
// indicator name or, for AutoInserted, the element that was inserted.
type Warning struct {
	Kind     WarningKind
	Detail   string
	Position int
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnMissingIndicator:
		return fmt.Sprintf("Missing %s indicator at position %d", w.Detail, w.Position)
	case WarnUnexpectedIndicator:
		return fmt.Sprintf("Unexpected %s indicator at position %d", w.Detail, w.Position)
	case WarnAutoInserted:
		return fmt.Sprintf("Auto-inserted %s at position %d", w.Detail, w.Position)
	}
	return fmt.Sprintf("%s %s at position %d", w.Kind, w.Detail, w.Position)
}

// MissingIndicator warns that an expected indicator was absent.
func MissingIndicator(indicator string, position int) Warning {
	return Warning{Kind: WarnMissingIndicator, Detail: indicator, Position: position}
}

// UnexpectedIndicator warns about an indicator that had no effect.
func UnexpectedIndicator(indicator string, position int) Warning {
	return Warning{Kind: WarnUnexpectedIndicator, Detail: indicator, Position: position}
}

// AutoInserted warns that element was supplied to complete the input.
func AutoInserted(element string, position int) Warning {
	return Warning{Kind: WarnAutoInserted, Detail: element, Position: position}
}
