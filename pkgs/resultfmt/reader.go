package resultfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/mod/semver"
)

// Read reads an envelope written by Write and returns it with its hash.
func Read(r io.Reader, format Format) (*Envelope, [32]byte, error) {
	env := &Envelope{}

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(env); err != nil {
			return nil, [32]byte{}, fmt.Errorf("read json envelope: %w", err)
		}
	case FormatCBOR:
		magic := make([]byte, len(Magic))
		if _, err := io.ReadFull(r, magic); err != nil {
			return nil, [32]byte{}, fmt.Errorf("read magic: %w", err)
		}
		if string(magic) != Magic {
			return nil, [32]byte{}, fmt.Errorf("invalid magic: got %q, expected %q", magic, Magic)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, [32]byte{}, fmt.Errorf("read cbor envelope: %w", err)
		}
		if err := cbor.Unmarshal(data, env); err != nil {
			return nil, [32]byte{}, fmt.Errorf("decode cbor envelope: %w", err)
		}
	default:
		return nil, [32]byte{}, fmt.Errorf("unsupported envelope format %s", format)
	}

	if err := checkVersion(env.Version); err != nil {
		return nil, [32]byte{}, err
	}

	hash, err := Hash(env)
	if err != nil {
		return nil, [32]byte{}, err
	}
	return env, hash, nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid envelope version %q", v)
	}
	if semver.Major(v) != semver.Major(Version) {
		return fmt.Errorf("unsupported version: got %s, expected %s.x", v, semver.Major(Version))
	}
	return nil
}
