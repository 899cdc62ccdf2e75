package braille

import (
	"strings"
	"unicode"
)

const (
	cellFirst = '⠀'
	cellLast  = '⣿'
)

// IsCell reports whether r is in the Unicode braille patterns block.
func IsCell(r rune) bool {
	return r >= cellFirst && r <= cellLast
}

// IsValid reports whether every rune of s is a braille cell or whitespace.
func IsValid(s string) bool {
	for _, r := range s {
		if !IsCell(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Dots returns the dot numbers (1-8) raised in cell r in ascending order,
// or nil when r is not a braille cell.
func Dots(r rune) []int {
	if !IsCell(r) {
		return nil
	}
	bits := int(r - cellFirst)
	var dots []int
	for i := 0; i < 8; i++ {
		if bits&(1<<i) != 0 {
			dots = append(dots, i+1)
		}
	}
	return dots
}

// FromASCII converts dot notation to Unicode braille. The letters a-h or
// digits 1-8 name dots 1-8 of the current cell; a space or '-' ends the
// cell. A blank cell is emitted only for a separator at the very start.
// Other characters are ignored.
func FromASCII(ascii string) string {
	var out strings.Builder
	current := 0
	for _, ch := range ascii {
		switch {
		case ch >= 'a' && ch <= 'h':
			current |= 1 << (ch - 'a')
		case ch >= '1' && ch <= '8':
			current |= 1 << (ch - '1')
		case ch == ' ' || ch == '-':
			if current > 0 || out.Len() == 0 {
				out.WriteRune(cellFirst + rune(current))
				current = 0
			}
		}
	}
	if current > 0 {
		out.WriteRune(cellFirst + rune(current))
	}
	return out.String()
}
