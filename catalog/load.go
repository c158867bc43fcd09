// SPDX-License-Identifier: MIT
// Package: latex3d/catalog
//
// load.go — YAML/TOML catalog files.
//
// Contract:
//   • The format follows the file extension: .yaml/.yml or .toml.
//   • Unknown keys are rejected in both formats.
//   • Load validates; Parse and Encode do not.

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a catalog file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("FormatOf(%q): %w", path, ErrUnsupportedFormat)
	}
}

// Load reads, parses and validates the catalog at path.
func Load(path string) (Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Catalog{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("Load: %w", err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return Catalog{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	return c, nil
}

// Parse decodes data in the given format. An empty document yields an
// empty catalog.
func Parse(data []byte, format Format) (Catalog, error) {
	var c Catalog
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("Parse(yaml): %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return Catalog{}, fmt.Errorf("Parse(toml): %w", err)
		}
	default:
		return Catalog{}, fmt.Errorf("Parse(%q): %w", format, ErrUnsupportedFormat)
	}
	return c, nil
}

// Encode writes c to w in the given format.
func (c Catalog) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("Encode(yaml): %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return fmt.Errorf("Encode(toml): %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Encode(%q): %w", format, ErrUnsupportedFormat)
	}
}
