// Package braille holds the braille mathematics codes, the indicator
// literals shared by the detector and the spatial analyzer, and helpers
// for Unicode braille cells.
package braille

import (
	"fmt"
	"strings"
)

// Code is a braille mathematics code.
type Code int

const (
	Nemeth Code = iota
	UEB
	CMU
)

// Codes lists every supported code in display order.
var Codes = []Code{Nemeth, UEB, CMU}

func (c Code) String() string {
	switch c {
	case Nemeth:
		return "Nemeth"
	case UEB:
		return "UEB"
	case CMU:
		return "CMU"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Description returns the full name of the code.
func (c Code) Description() string {
	switch c {
	case Nemeth:
		return "Nemeth Braille Code for Mathematics"
	case UEB:
		return "Unified English Braille (Technical)"
	case CMU:
		return "CMU - Codigo Matematico Unificado (Spanish)"
	}
	return ""
}

// Language returns the BCP 47 tag of the code's primary language.
func (c Code) Language() string {
	switch c {
	case Nemeth:
		return "en-US"
	case UEB:
		return "en"
	case CMU:
		return "es"
	}
	return ""
}

// UnknownCodeError is returned by ParseCode for an unrecognized name.
type UnknownCodeError struct {
	Name string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("Unknown braille code: '%s'. Supported codes are: Nemeth, UEB, CMU", e.Name)
}

// ParseCode parses a code name case-insensitively.
func ParseCode(name string) (Code, error) {
	switch strings.ToLower(name) {
	case "nemeth":
		return Nemeth, nil
	case "ueb":
		return UEB, nil
	case "cmu":
		return CMU, nil
	}
	return 0, &UnknownCodeError{Name: name}
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
