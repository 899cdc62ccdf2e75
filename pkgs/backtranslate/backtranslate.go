// Package backtranslate converts mathematical braille (Unicode braille
// patterns, U+2800 to U+28FF) to Presentation MathML.
//
// Nemeth, UEB (technical) and CMU are supported. The Auto functions detect
// the code, follow Nemeth passages embedded in UEB, and read matrices laid
// out one row per line.
//
//	mathml, err := backtranslate.BrailleToMathML("⠼⠂⠬⠼⠆", braille.Nemeth)
package backtranslate

import (
	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/codeswitch"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/generator"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/parser"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/spatial"
)

// TranslateOpt represents a translation option
type TranslateOpt func(*TranslateConfig)

// TranslateConfig holds translation configuration
type TranslateConfig struct {
	output   generator.Options
	maxDepth int
}

// WithOutput sets the MathML document options.
func WithOutput(opts generator.Options) TranslateOpt {
	return func(c *TranslateConfig) {
		c.output = opts
	}
}

// WithMaxDepth bounds structural nesting while parsing.
func WithMaxDepth(depth int) TranslateOpt {
	return func(c *TranslateConfig) {
		c.maxDepth = depth
	}
}

func newConfig(opts []TranslateOpt) *TranslateConfig {
	c := &TranslateConfig{output: generator.DefaultOptions(), maxDepth: parser.DefaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TranslateConfig) parsers() parser.Registry {
	return parser.DefaultRegistry(parser.WithOutput(c.output), parser.WithMaxDepth(c.maxDepth))
}

// Translate parses input written in code.
func Translate(input string, code braille.Code, opts ...TranslateOpt) result.ParseResult {
	return newConfig(opts).parsers().Parse(code, input)
}

// TranslateAuto detects the code of input and parses it. Inputs with a
// spatial layout are read as matrices or line by line in the detected
// primary code; everything else goes through code switch detection.
func TranslateAuto(input string, opts ...TranslateOpt) result.ParseResult {
	config := newConfig(opts)
	reg := config.parsers()
	if spatial.HasLayout(input) {
		code := codeswitch.Detect(input).PrimaryCode
		return spatial.Parse(input, code, spatial.WithParsers(reg), spatial.WithOutput(config.output))
	}
	return codeswitch.Parse(input, codeswitch.WithParsers(reg))
}

// BrailleToMathML translates input written in code. MathML is returned
// whenever the parse produced any, even alongside errors.
func BrailleToMathML(input string, code braille.Code) (string, error) {
	return mathMLOrError(BrailleToMathMLDetailed(input, code))
}

// BrailleToMathMLDetailed translates input written in code and reports
// every error and warning.
func BrailleToMathMLDetailed(input string, code braille.Code) result.ParseResult {
	return Translate(input, code)
}

// BrailleToMathMLAuto translates input in whichever code it is written in.
func BrailleToMathMLAuto(input string) (string, error) {
	return mathMLOrError(BrailleToMathMLAutoDetailed(input))
}

// BrailleToMathMLAutoDetailed is BrailleToMathMLAuto with full diagnostics.
func BrailleToMathMLAutoDetailed(input string) result.ParseResult {
	return TranslateAuto(input)
}

// BrailleToMathMLString translates input in the code named codeName, for
// callers that hold the code as text.
func BrailleToMathMLString(input, codeName string) (string, error) {
	code, err := braille.ParseCode(codeName)
	if err != nil {
		return "", err
	}
	return BrailleToMathML(input, code)
}

func mathMLOrError(res result.ParseResult) (string, error) {
	if res.HasMathML() {
		return res.MathML, nil
	}
	if err := res.FirstError(); err != nil {
		return "", err
	}
	return "", result.ParseError("Failed to parse braille: unknown error")
}

// SupportedCodes returns the names of the supported codes.
func SupportedCodes() []string {
	names := make([]string, len(braille.Codes))
	for i, code := range braille.Codes {
		names[i] = code.String()
	}
	return names
}

// IsValidBraille reports whether s holds only braille cells and whitespace.
func IsValidBraille(s string) bool {
	return braille.IsValid(s)
}

// ASCIIToUnicodeBraille converts dot-number notation ("1-2-3456") to
// braille cells.
func ASCIIToUnicodeBraille(s string) string {
	return braille.FromASCII(s)
}

// DetectCode reports the primary code of input, its code segments and
// whether it switches codes.
func DetectCode(input string) codeswitch.Detection {
	return codeswitch.Detect(input)
}
