// Package codeswitch detects which braille code a string is written in and
// splits UEB text around embedded Nemeth passages.
package codeswitch

import (
	"strings"

	"github.com/NSoiffer/MathCAT-sub003/internal/invariant"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
)

// Segment is a run of braille written in a single code. Start and End are
// rune offsets into the original input; the switch indicators themselves
// belong to no segment.
type Segment struct {
	Content string
	Code    braille.Code
	Start   int
	End     int
}

// Detection is the result of scanning an input for its codes.
type Detection struct {
	PrimaryCode      braille.Code
	Segments         []Segment
	HasCodeSwitching bool
}

var (
	nemethOpen  = []rune(braille.NemethOpen)
	nemethClose = []rune(braille.NemethClose)
)

// DetectInitialCode guesses the primary code of input from its leading
// indicator, its numbers and its plus signs, in that order. Nemeth is the
// fallback.
func DetectInitialCode(input string) braille.Code {
	if strings.HasPrefix(input, braille.NemethOpen) {
		return braille.UEB
	}

	runes := []rune(input)
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] != braille.NumericIndicator {
			continue
		}
		next := runes[i+1]
		if isNemethDigit(next) {
			return braille.Nemeth
		}
		if isLetterDigit(next) {
			return braille.UEB
		}
	}

	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == '⠬' {
			return braille.Nemeth
		}
		if runes[i] == '⠐' && runes[i+1] == '⠮' {
			return braille.UEB
		}
	}

	return braille.Nemeth
}

func isNemethDigit(r rune) bool {
	return strings.ContainsRune("⠂⠆⠒⠲⠢⠖⠶⠦⠔⠴", r)
}

func isLetterDigit(r rune) bool {
	return strings.ContainsRune("⠁⠃⠉⠙⠑⠋⠛⠓⠊⠚", r)
}

// Detect splits input into code segments. Only UEB can open a Nemeth
// passage and only Nemeth can close one, so a closing indicator in UEB
// text (or an opening one inside Nemeth) stays part of the content.
func Detect(input string) Detection {
	primary := DetectInitialCode(input)
	det := Detection{PrimaryCode: primary}

	runes := []rune(input)
	current := primary
	start := 0
	flush := func(end int) {
		invariant.InRange(end, start, len(runes)+1, "segment end")
		if end > start {
			det.Segments = append(det.Segments, Segment{
				Content: string(runes[start:end]),
				Code:    current,
				Start:   start,
				End:     end,
			})
		}
	}

	for i := 0; i < len(runes); {
		switch {
		case current == braille.UEB && hasPrefix(runes[i:], nemethOpen):
			flush(i)
			det.HasCodeSwitching = true
			current = braille.Nemeth
			i += len(nemethOpen)
			start = i
		case current == braille.Nemeth && hasPrefix(runes[i:], nemethClose):
			flush(i)
			current = braille.UEB
			i += len(nemethClose)
			start = i
		default:
			i++
		}
	}
	flush(len(runes))

	if len(det.Segments) == 0 {
		det.Segments = []Segment{{
			Content: input,
			Code:    primary,
			Start:   0,
			End:     len(runes),
		}}
	}
	return det
}

// StripIndicators removes every Nemeth opening and closing indicator.
func StripIndicators(s string) string {
	s = strings.ReplaceAll(s, braille.NemethOpen, "")
	return strings.ReplaceAll(s, braille.NemethClose, "")
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
