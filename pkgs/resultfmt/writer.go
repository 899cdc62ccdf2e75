package resultfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// Canonical returns the deterministic CBOR encoding of env.
func Canonical(env *Envelope) ([]byte, error) {
	return encMode.Marshal(env)
}

// Hash returns the BLAKE2b-256 hash of the canonical encoding of env. The
// hash does not depend on the format the envelope is written in.
func Hash(env *Envelope) ([32]byte, error) {
	data, err := Canonical(env)
	if err != nil {
		return [32]byte{}, fmt.Errorf("encode envelope: %w", err)
	}
	return blake2b.Sum256(data), nil
}

// Write writes env to w and returns its hash.
// CBOR format: MAGIC(4) | canonical CBOR envelope
func Write(w io.Writer, env *Envelope, format Format) ([32]byte, error) {
	data, err := Canonical(env)
	if err != nil {
		return [32]byte{}, fmt.Errorf("encode envelope: %w", err)
	}
	hash := blake2b.Sum256(data)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(env); err != nil {
			return [32]byte{}, fmt.Errorf("write json envelope: %w", err)
		}
	case FormatCBOR:
		if _, err := io.WriteString(w, Magic); err != nil {
			return [32]byte{}, err
		}
		if _, err := w.Write(data); err != nil {
			return [32]byte{}, err
		}
	default:
		return [32]byte{}, fmt.Errorf("unsupported envelope format %s", format)
	}
	return hash, nil
}
