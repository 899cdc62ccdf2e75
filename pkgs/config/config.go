// Package config loads translation settings from JSON files validated
// against an embedded JSON Schema.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/generator"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/parser"
)

// Output formats.
const (
	FormatMathML = "mathml"
	FormatJSON   = "json"
	FormatCBOR   = "cbor"
)

// Config holds translation settings.
type Config struct {
	// DefaultCode is used when Auto is false.
	DefaultCode        string `json:"default_code"`
	Auto               bool   `json:"auto"`
	DisplayBlock       bool   `json:"display_block"`
	IncludeDeclaration bool   `json:"include_declaration"`
	MaxDepth           int    `json:"max_depth"`
	Format             string `json:"format"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		DefaultCode: braille.Nemeth.String(),
		Auto:        true,
		MaxDepth:    parser.DefaultMaxDepth,
		Format:      FormatMathML,
	}
}

// Code parses DefaultCode.
func (c *Config) Code() (braille.Code, error) {
	return braille.ParseCode(c.DefaultCode)
}

// GeneratorOptions returns the MathML document options.
func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		IncludeDeclaration: c.IncludeDeclaration,
		DisplayBlock:       c.DisplayBlock,
		MaxDepth:           c.MaxDepth,
	}
}

// Load reads a JSON config from r using the default validation settings.
// Fields missing from the document keep their Default values.
func Load(r io.Reader) (*Config, error) {
	v, err := NewValidator(nil)
	if err != nil {
		return nil, err
	}
	return v.Load(r)
}

// LoadFile reads the JSON config at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load reads and validates a JSON config from r.
func (v *Validator) Load(r io.Reader) (*Config, error) {
	limit := int64(v.config.MaxDocumentSize)
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("config too large: more than %d bytes", limit)
	}

	if err := v.Validate(data); err != nil {
		return nil, err
	}

	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
