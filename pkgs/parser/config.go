package parser

import "github.com/NSoiffer/MathCAT-sub003/pkgs/generator"

// ParserOpt represents a parser configuration option
type ParserOpt func(*ParserConfig)

// DebugLevel controls debug tracing (development only)
type DebugLevel int

const (
	DebugOff      DebugLevel = iota // No debug info (default)
	DebugPaths                      // Construct enter/exit tracing
	DebugDetailed                   // Also records every consumed token
)

// DefaultMaxDepth bounds structural nesting (groups, fractions, radicals
// and scripts) while parsing.
const DefaultMaxDepth = 100

// ParserConfig holds parser configuration
type ParserConfig struct {
	debug     DebugLevel
	maxDepth  int
	output    generator.Options
	hasOutput bool
}

func newConfig(opts []ParserOpt) *ParserConfig {
	config := &ParserConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(config)
	}
	if !config.hasOutput {
		config.output = generator.DefaultOptions()
	}
	if config.output.MaxDepth == 0 {
		config.output.MaxDepth = generator.DefaultMaxDepth
	}
	return config
}

// WithDebugPaths enables construct tracing on the parse tree.
func WithDebugPaths() ParserOpt {
	return func(c *ParserConfig) {
		c.debug = DebugPaths
	}
}

// WithDebugDetailed enables construct and token tracing.
func WithDebugDetailed() ParserOpt {
	return func(c *ParserConfig) {
		c.debug = DebugDetailed
	}
}

// WithMaxDepth sets the nesting bound. Values below 1 are ignored.
func WithMaxDepth(depth int) ParserOpt {
	return func(c *ParserConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithOutput sets the MathML generator options used by Parse.
func WithOutput(opts generator.Options) ParserOpt {
	return func(c *ParserConfig) {
		c.output = opts
		c.hasOutput = true
	}
}
