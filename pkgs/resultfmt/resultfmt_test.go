package resultfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
)

func sampleEnvelope() *Envelope {
	res := result.Incomplete(
		`<math xmlns="http://www.w3.org/1998/Math/MathML"><mn>1</mn></math>`,
		[]result.Error{result.UnclosedFraction(3), result.EmptyInput()},
		[]result.Warning{result.MissingIndicator("numeric", 0)},
	)
	return FromResult(braille.Nemeth, "⠼⠂", res)
}

func TestFromResult(t *testing.T) {
	env := sampleEnvelope()

	expected := &Envelope{
		Version: Version,
		Code:    "Nemeth",
		Input:   "⠼⠂",
		MathML:  `<math xmlns="http://www.w3.org/1998/Math/MathML"><mn>1</mn></math>`,
		Success: false,
		Errors: []Diagnostic{
			{Kind: "UnclosedFraction", Message: "Unclosed fraction starting at position 3", Position: 3, HasPosition: true},
			{Kind: "EmptyInput", Message: "Empty braille input"},
		},
		Warnings: []Diagnostic{
			{Kind: "MissingIndicator", Message: "Missing numeric indicator at position 0", Position: 0, HasPosition: true},
		},
	}
	if diff := cmp.Diff(expected, env); diff != "" {
		t.Errorf("envelope mismatch (-expected +actual):\n%s", diff)
	}

	ok := FromResult(braille.UEB, "⠼⠁", result.Success("<math/>"))
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Errors)
	assert.Nil(t, ok.Warnings)
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatCBOR} {
		t.Run(format.String(), func(t *testing.T) {
			env := sampleEnvelope()
			var buf bytes.Buffer
			written, err := Write(&buf, env, format)
			require.NoError(t, err)

			read, hash, err := Read(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, written, hash)
			if diff := cmp.Diff(env, read); diff != "" {
				t.Errorf("round trip mismatch (-expected +actual):\n%s", diff)
			}
		})
	}
}

func TestHashIsFormatIndependent(t *testing.T) {
	env := sampleEnvelope()

	var jsonBuf, cborBuf bytes.Buffer
	h1, err := Write(&jsonBuf, env, FormatJSON)
	require.NoError(t, err)
	h2, err := Write(&cborBuf, env, FormatCBOR)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	canonical, err := Canonical(env)
	require.NoError(t, err)
	assert.Equal(t, blake2b.Sum256(canonical), h1)
	assert.Equal(t, append([]byte(Magic), canonical...), cborBuf.Bytes())

	again, err := Canonical(sampleEnvelope())
	require.NoError(t, err)
	assert.Equal(t, canonical, again)
}

func TestJSONShape(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, FromResult(braille.CMU, "⠭", result.Success("<math><mi>x</mi></math>")), FormatJSON)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"code": "CMU"`)
	assert.Contains(t, out, `"mathml": "<math><mi>x</mi></math>"`)
	assert.NotContains(t, out, `"errors"`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestReadRejects(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		_, _, err := Read(strings.NewReader("OPAL\xa0"), FormatCBOR)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid magic")
	})

	t.Run("short input", func(t *testing.T) {
		_, _, err := Read(strings.NewReader("BR"), FormatCBOR)
		assert.Error(t, err)
	})

	t.Run("major version mismatch", func(t *testing.T) {
		_, _, err := Read(strings.NewReader(`{"version": "v2.1.0", "code": "UEB"}`), FormatJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported version")
	})

	t.Run("minor version accepted", func(t *testing.T) {
		env, _, err := Read(strings.NewReader(`{"version": "v1.4.0", "code": "UEB"}`), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "UEB", env.Code)
	})

	t.Run("invalid version", func(t *testing.T) {
		_, _, err := Read(strings.NewReader(`{"version": "1.0"}`), FormatJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid envelope version")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := Read(strings.NewReader(`{}`), Format(9))
		assert.Error(t, err)
		_, err = Write(&bytes.Buffer{}, sampleEnvelope(), Format(9))
		assert.Error(t, err)
	})
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CBOR")
	require.NoError(t, err)
	assert.Equal(t, FormatCBOR, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}
