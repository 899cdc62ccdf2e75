package parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
)

// FuzzParseResultShape checks that parsing never panics, is deterministic,
// and that a result carries MathML exactly when it carries no errors.
func FuzzParseResultShape(f *testing.F) {
	seeds := []string{
		"",
		"⠼⠂",
		"⠹⠼⠂⠌⠼⠆⠼",
		"⠷⠷⠷⠭",
		"⠭⠘⠆⠐⠬⠼⠂",
		"⠰⠭⠐⠮⠼⠁⠔",
		"⠐⠣⠰⠭⠐⠜⠜⠜",
		"⠭⠿⠽",
		"⠣⠒⠜",
		"x⠭",
		"\xff\xfe",
		strings.Repeat("⠰⠭⠔", 60),
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		runes := utf8.RuneCountInString(input)
		for _, code := range braille.Codes {
			first := Parse(code, input)
			second := Parse(code, input)

			if first.MathML != second.MathML || len(first.Errors) != len(second.Errors) ||
				len(first.Warnings) != len(second.Warnings) {
				t.Fatalf("%s: nondeterministic result for %q", code, input)
			}
			if (first.MathML == "") == (len(first.Errors) == 0) {
				t.Fatalf("%s: MathML present=%v with %d errors", code, first.MathML != "", len(first.Errors))
			}
			for _, err := range first.Errors {
				if err.HasPosition && (err.Position < 0 || err.Position > runes) {
					t.Fatalf("%s: error position %d outside input of %d runes: %v", code, err.Position, runes, err)
				}
			}
			for _, w := range first.Warnings {
				if w.Position < 0 || w.Position > runes {
					t.Fatalf("%s: warning position %d outside input of %d runes", code, w.Position, runes)
				}
			}
		}
	})
}
