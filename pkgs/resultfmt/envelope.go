// Package resultfmt serializes translation results as JSON or canonical
// CBOR envelopes.
package resultfmt

import (
	"fmt"
	"strings"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

const (
	// Magic prefixes every CBOR envelope "BRML" (4 bytes)
	Magic = "BRML"

	// Version is the envelope format version. Readers accept any version
	// with the same major number.
	Version = "v1.0.0"
)

// Format selects the envelope encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatCBOR
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses "json" or "cbor", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("unknown envelope format %q (expected json or cbor)", s)
}

// Diagnostic is an error or warning in serialized form.
type Diagnostic struct {
	Kind        string `json:"kind" cbor:"kind"`
	Message     string `json:"message" cbor:"message"`
	Position    int    `json:"position" cbor:"position"`
	HasPosition bool   `json:"has_position" cbor:"has_position"`
}

// Envelope is one translation with its input and diagnostics.
type Envelope struct {
	Version  string       `json:"version" cbor:"version"`
	Code     string       `json:"code" cbor:"code"`
	Input    string       `json:"input" cbor:"input"`
	MathML   string       `json:"mathml,omitempty" cbor:"mathml,omitempty"`
	Success  bool         `json:"success" cbor:"success"`
	Errors   []Diagnostic `json:"errors,omitempty" cbor:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty" cbor:"warnings,omitempty"`
}

// FromResult builds the envelope for res, produced from input in code.
func FromResult(code braille.Code, input string, res result.ParseResult) *Envelope {
	env := &Envelope{
		Version: Version,
		Code:    code.String(),
		Input:   input,
		MathML:  res.MathML,
		Success: res.IsSuccess(),
	}
	for _, err := range res.Errors {
		env.Errors = append(env.Errors, Diagnostic{
			Kind:        err.Kind.String(),
			Message:     err.Error(),
			Position:    err.Position,
			HasPosition: err.HasPosition,
		})
	}
	for _, w := range res.Warnings {
		env.Warnings = append(env.Warnings, Diagnostic{
			Kind:        w.Kind.String(),
			Message:     w.String(),
			Position:    w.Position,
			HasPosition: true,
		})
	}
	return env
}
