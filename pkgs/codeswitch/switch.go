package codeswitch

import (
	"fmt"
	"strings"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/parser"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

// MergeStrategy selects how per-segment results become one MathML tree.
type MergeStrategy int

const (
	// WholeReparse parses each segment for diagnostics only and takes the
	// MathML from one parse of the whole input, indicators removed, in the
	// primary code.
	WholeReparse MergeStrategy = iota
)

func (m MergeStrategy) String() string {
	switch m {
	case WholeReparse:
		return "WholeReparse"
	}
	return fmt.Sprintf("MergeStrategy(%d)", int(m))
}

// SwitchOpt represents a code switching option
type SwitchOpt func(*SwitchConfig)

// SwitchConfig holds code switching configuration
type SwitchConfig struct {
	parsers  parser.Registry
	strategy MergeStrategy
	debug    bool
}

// WithParsers replaces the per-code parsers.
func WithParsers(reg parser.Registry) SwitchOpt {
	return func(c *SwitchConfig) {
		c.parsers = reg
	}
}

// WithMergeStrategy selects the merge strategy. WholeReparse is the default.
func WithMergeStrategy(m MergeStrategy) SwitchOpt {
	return func(c *SwitchConfig) {
		c.strategy = m
	}
}

// WithDebug records detection and segment events on the Trace.
func WithDebug() SwitchOpt {
	return func(c *SwitchConfig) {
		c.debug = true
	}
}

func newConfig(opts []SwitchOpt) *SwitchConfig {
	c := &SwitchConfig{strategy: WholeReparse}
	for _, opt := range opts {
		opt(c)
	}
	if c.parsers == nil {
		c.parsers = parser.DefaultRegistry()
	}
	return c
}

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Event    string // "detect", "segment", "reparse"
	Position int    // rune offset
	Context  string
}

// Trace describes how an input was split and parsed.
type Trace struct {
	Detection Detection
	Events    []DebugEvent // nil unless WithDebug is set
}

func (t *Trace) record(enabled bool, event string, pos int, format string, args ...any) {
	if !enabled {
		return
	}
	t.Events = append(t.Events, DebugEvent{
		Event:    event,
		Position: pos,
		Context:  fmt.Sprintf(format, args...),
	})
}

// Parse detects the code of input, following Nemeth passages inside UEB,
// and translates it.
func Parse(input string, opts ...SwitchOpt) result.ParseResult {
	res, _ := ParseTrace(input, opts...)
	return res
}

// ParseTrace is Parse that also reports the detection and, with WithDebug,
// the events recorded along the way.
func ParseTrace(input string, opts ...SwitchOpt) (result.ParseResult, *Trace) {
	config := newConfig(opts)
	trace := &Trace{}

	if strings.TrimSpace(input) == "" {
		return result.Failure(result.EmptyInput()), trace
	}

	det := Detect(input)
	trace.Detection = det
	trace.record(config.debug, "detect", 0, "primary=%s segments=%d switching=%t",
		det.PrimaryCode, len(det.Segments), det.HasCodeSwitching)

	if !det.HasCodeSwitching {
		return config.parsers.Parse(det.PrimaryCode, input), trace
	}
	return parseSegments(det, config, trace), trace
}

// ParseWithSwitching translates an input that has already been split by
// Detect.
func ParseWithSwitching(det Detection, opts ...SwitchOpt) result.ParseResult {
	return parseSegments(det, newConfig(opts), &Trace{Detection: det})
}

func parseSegments(det Detection, config *SwitchConfig, trace *Trace) result.ParseResult {
	if config.strategy != WholeReparse {
		return result.Failure(result.ParseError("unknown merge strategy %s", config.strategy))
	}

	var errs []result.Error
	var warnings []result.Warning
	var contents strings.Builder

	for _, seg := range det.Segments {
		contents.WriteString(seg.Content)
		if strings.TrimSpace(seg.Content) == "" {
			continue
		}

		res := config.parsers.Parse(seg.Code, seg.Content)
		trace.record(config.debug, "segment", seg.Start, "code=%s end=%d errors=%d",
			seg.Code, seg.End, len(res.Errors))

		errs = append(errs, res.Errors...)
		warnings = append(warnings, res.Warnings...)
		if res.HasMathML() {
			warnings = append(warnings, result.UnexpectedIndicator(
				"Code switch to "+seg.Code.String(), seg.Start))
		}
	}

	whole := config.parsers.Parse(det.PrimaryCode, StripIndicators(contents.String()))
	trace.record(config.debug, "reparse", 0, "code=%s errors=%d", det.PrimaryCode, len(whole.Errors))

	if len(errs) == 0 {
		errs = whole.Errors
	}
	return result.Incomplete(whole.MathML, errs, warnings)
}
