package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://config.json"

// ValidationConfig controls config validation.
type ValidationConfig struct {
	MaxDocumentSize int // bytes (default: 64KB)

	AllowRemoteRef bool     // Allow remote $ref (default: false)
	AllowedSchemes []string // Allowed URL schemes (default: ["schema"])

	AssertFormat bool // Enable format assertions (default: true)
}

// DefaultValidationConfig returns secure defaults
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MaxDocumentSize: 64 * 1024,
		AllowRemoteRef:  false,
		AllowedSchemes:  []string{"schema"},
		AssertFormat:    true,
	}
}

// Validator checks config documents against the embedded schema.
type Validator struct {
	config *ValidationConfig
	schema *jsonschema.Schema
}

// NewValidator compiles the config schema. A nil config means
// DefaultValidationConfig.
func NewValidator(config *ValidationConfig) (*Validator, error) {
	if config == nil {
		config = DefaultValidationConfig()
	}
	v := &Validator{config: config}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = config.AssertFormat
	compiler.LoadURL = v.secureLoader()

	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add config schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}
	v.schema = schema
	return v, nil
}

// Validate checks a raw JSON document.
func (v *Validator) Validate(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (v *Validator) secureLoader() func(string) (io.ReadCloser, error) {
	return func(url string) (io.ReadCloser, error) {
		if !v.config.AllowRemoteRef {
			if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
				return nil, fmt.Errorf("remote $ref not allowed: %s", url)
			}
		}

		allowed := false
		for _, scheme := range v.config.AllowedSchemes {
			if strings.HasPrefix(url, scheme+"://") || strings.HasPrefix(url, scheme+":") {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("URL scheme not allowed: %s", url)
		}
		return jsonschema.LoadURL(url)
	}
}
