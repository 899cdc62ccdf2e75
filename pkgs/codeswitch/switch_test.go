package codeswitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/parser"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

const mathOpen = `<math xmlns="http://www.w3.org/1998/Math/MathML">`

func TestParseSingleCode(t *testing.T) {
	res := Parse("⠭⠬⠽")
	assert.True(t, res.IsSuccess())
	assert.Equal(t, mathOpen+"<mrow><mi>x</mi><mo>+</mo><mi>y</mi></mrow></math>", res.MathML)
	assert.Empty(t, res.Warnings)

	res = Parse("⠼⠁⠐⠮⠼⠃")
	assert.True(t, res.IsSuccess())
	assert.Equal(t, mathOpen+"<mrow><mn>1</mn><mo>+</mo><mn>2</mn></mrow></math>", res.MathML)
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "  ", "\n\t"} {
		res := Parse(input)
		require.Len(t, res.Errors, 1, "input %q", input)
		assert.Equal(t, result.KindEmptyInput, res.Errors[0].Kind)
		assert.Empty(t, res.MathML)
	}
}

func TestParseWithSwitching(t *testing.T) {
	res := Parse("⠼⠁⠐⠮⠸⠩⠭⠸⠱")

	assert.True(t, res.IsSuccess())
	assert.Equal(t, mathOpen+"<mrow><mn>1</mn><mo>+</mo><mi>x</mi></mrow></math>", res.MathML)
	assert.Equal(t, []result.Warning{
		result.UnexpectedIndicator("Code switch to UEB", 0),
		result.UnexpectedIndicator("Code switch to Nemeth", 6),
	}, res.Warnings)
}

func TestSegmentErrorsTakePrecedence(t *testing.T) {
	res := Parse("⠼⠁⠐⠮⠸⠩⠹⠭⠸⠱")

	assert.False(t, res.IsSuccess())
	assert.Equal(t, []result.Error{result.UnclosedFraction(0)}, res.Errors)
	assert.Equal(t, []result.Warning{
		result.UnexpectedIndicator("Code switch to UEB", 0),
	}, res.Warnings)
}

func TestWholeReparseErrors(t *testing.T) {
	// Nemeth digits are not UEB digits, so the UEB reparse fails even
	// though every segment parses cleanly.
	res := Parse("⠼⠁⠐⠮⠸⠩⠼⠂⠸⠱")

	assert.False(t, res.IsSuccess())
	assert.Empty(t, res.MathML)
	require.NotEmpty(t, res.Errors)
	assert.Equal(t, result.KindUnrecognizedSymbol, res.Errors[0].Kind)
	assert.Len(t, res.Warnings, 2)
}

func TestWithParsers(t *testing.T) {
	var calls []string
	stub := func(code braille.Code) parser.Parser {
		return parser.ParserFunc(func(input string) result.ParseResult {
			calls = append(calls, code.String()+":"+input)
			return result.Success("<math/>")
		})
	}
	reg := parser.Registry{
		braille.Nemeth: stub(braille.Nemeth),
		braille.UEB:    stub(braille.UEB),
	}

	res := Parse("⠼⠁⠸⠩⠭⠸⠱", WithParsers(reg))
	assert.Equal(t, "<math/>", res.MathML)
	assert.Equal(t, []string{"UEB:⠼⠁", "Nemeth:⠭", "UEB:⠼⠁⠭"}, calls)
}

func TestUnknownMergeStrategy(t *testing.T) {
	res := Parse("⠼⠁⠸⠩⠭⠸⠱", WithMergeStrategy(MergeStrategy(7)))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Parse error: unknown merge strategy MergeStrategy(7)", res.Errors[0].Error())

	assert.Equal(t, "WholeReparse", WholeReparse.String())
}

func TestParseTrace(t *testing.T) {
	res, trace := ParseTrace("⠼⠁⠐⠮⠸⠩⠭⠸⠱", WithDebug())
	assert.True(t, res.IsSuccess())
	assert.True(t, trace.Detection.HasCodeSwitching)
	assert.Len(t, trace.Detection.Segments, 2)

	var events []string
	for _, e := range trace.Events {
		events = append(events, e.Event)
	}
	assert.Equal(t, []string{"detect", "segment", "segment", "reparse"}, events)
	assert.Equal(t, 6, trace.Events[2].Position)

	_, quiet := ParseTrace("⠭")
	assert.Nil(t, quiet.Events)
	assert.Equal(t, braille.Nemeth, quiet.Detection.PrimaryCode)
}

func TestParseWithSwitchingDirect(t *testing.T) {
	det := Detection{
		PrimaryCode:      braille.UEB,
		HasCodeSwitching: true,
		Segments: []Segment{
			{Content: "⠰⠭", Code: braille.UEB, Start: 0, End: 2},
			{Content: "  ", Code: braille.Nemeth, Start: 4, End: 6},
		},
	}
	res := ParseWithSwitching(det)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, mathOpen+"<mi>x</mi></math>", res.MathML)
	assert.Equal(t, []result.Warning{
		result.UnexpectedIndicator("Code switch to UEB", 0),
	}, res.Warnings)
}
