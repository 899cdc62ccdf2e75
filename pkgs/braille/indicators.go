package braille

// Code switch indicators (BANA Nemeth-within-UEB).
const (
	NemethOpen  = "⠸⠩" // dots 456, 146
	NemethClose = "⠸⠱" // dots 456, 156
)

// UEB grade 1 indicators.
const (
	Grade1Symbol     = "⠰"   // dots 56
	Grade1Word       = "⠰⠰"  // dots 56, 56
	Grade1Passage    = "⠰⠰⠰" // dots 56, 56, 56
	Grade1Terminator = "⠰⠄"  // dots 56, 3
)

// Enlarged grouping indicators used by spatial layouts.
const (
	EnlargedLeftParen    = "⠹"
	EnlargedRightParen   = "⠼"
	EnlargedLeftBracket  = "⠈⠹"
	EnlargedRightBracket = "⠈⠼"
	EnlargedVertBar      = "⠳"
)

// Cells shared by several codes.
const (
	NumericIndicator = '⠼' // dots 3456
	CapitalIndicator = '⠠' // dot 6
	BlankCell        = '⠀'
)
