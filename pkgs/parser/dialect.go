package parser

import "github.com/NSoiffer/MathCAT-sub003/pkgs/braille"

type scriptStyle int

const (
	// scriptLevel: a script indicator starts a level that runs until the
	// baseline indicator, another level indicator, or the end of the
	// enclosing construct (Nemeth).
	scriptLevel scriptStyle = iota

	// scriptItem: a script indicator applies to the next item only, or to
	// an explicit script group (UEB, CMU).
	scriptItem
)

// dialect captures how the shared structural grammar differs per code.
type dialect struct {
	code    braille.Code
	scripts scriptStyle

	// rejectNonBraille fails before lexing when the input contains
	// anything other than braille cells and whitespace.
	rejectNonBraille bool

	// unknownIsWarning records unrecognized cells as warnings and skips
	// them instead of failing.
	unknownIsWarning bool

	// truncatable lists trailing cells that may be dropped to recover from
	// an incomplete structure at the end of the input.
	truncatable string
}

var dialects = map[braille.Code]*dialect{
	braille.Nemeth: {
		code:    braille.Nemeth,
		scripts: scriptLevel,
	},
	braille.UEB: {
		code:             braille.UEB,
		scripts:          scriptItem,
		rejectNonBraille: true,
		truncatable:      "⠷⠌⠐⠔⠢",
	},
	braille.CMU: {
		code:             braille.CMU,
		scripts:          scriptItem,
		unknownIsWarning: true,
	},
}
