package spatial

import (
	"errors"
	"strings"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/codeswitch"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/generator"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/parser"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

// SpatialOpt represents a spatial parsing option
type SpatialOpt func(*SpatialConfig)

// SpatialConfig holds spatial parsing configuration
type SpatialConfig struct {
	parsers  parser.Registry
	strategy codeswitch.MergeStrategy
	output   generator.Options
}

// WithParsers replaces the per-code parsers used for lines and cells.
func WithParsers(reg parser.Registry) SpatialOpt {
	return func(c *SpatialConfig) {
		c.parsers = reg
	}
}

// WithMergeStrategy selects how line results are merged.
func WithMergeStrategy(m codeswitch.MergeStrategy) SpatialOpt {
	return func(c *SpatialConfig) {
		c.strategy = m
	}
}

// WithOutput sets the root element options for matrix output.
func WithOutput(opts generator.Options) SpatialOpt {
	return func(c *SpatialConfig) {
		c.output = opts
	}
}

func newConfig(opts []SpatialOpt) *SpatialConfig {
	c := &SpatialConfig{
		strategy: codeswitch.WholeReparse,
		output:   generator.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.parsers == nil {
		c.parsers = parser.DefaultRegistry()
	}
	return c
}

// Parse translates input, reading it as a matrix when it has a spatial
// layout. A layout that is not a matrix is read line by line.
func Parse(input string, code braille.Code, opts ...SpatialOpt) result.ParseResult {
	config := newConfig(opts)
	if !HasLayout(input) {
		return config.parsers.Parse(code, input)
	}

	m, err := ParseMatrix(input, code)
	if err != nil {
		return parseMultiline(input, code, config)
	}
	mathml, err := m.render(config)
	if err != nil {
		return result.Failure(asResultError(err))
	}
	return result.Success(mathml)
}

// ParseMultiline parses each line for diagnostics and takes the MathML
// from the lines joined by spaces.
func ParseMultiline(input string, code braille.Code, opts ...SpatialOpt) result.ParseResult {
	return parseMultiline(input, code, newConfig(opts))
}

func parseMultiline(input string, code braille.Code, config *SpatialConfig) result.ParseResult {
	if config.strategy != codeswitch.WholeReparse {
		return result.Failure(result.ParseError("unknown merge strategy %s", config.strategy))
	}

	lines := Lines(input)
	var errs []result.Error
	var warnings []result.Warning

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res := config.parsers.Parse(code, line)
		errs = append(errs, res.Errors...)
		warnings = append(warnings, res.Warnings...)
		if i < len(lines)-1 {
			warnings = append(warnings, result.AutoInserted("line break", i))
		}
	}

	combined := config.parsers.Parse(code, strings.Join(lines, " "))
	if len(errs) == 0 {
		errs = combined.Errors
	}
	return result.Incomplete(combined.MathML, errs, warnings)
}

func asResultError(err error) result.Error {
	var rerr result.Error
	if errors.As(err, &rerr) {
		return rerr
	}
	return result.ParseError("%v", err)
}
