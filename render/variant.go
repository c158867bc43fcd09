// SPDX-License-Identifier: MIT
// Package: latex3d/render
//
// variant.go — the closed set of color variants.

package render

import (
	"fmt"
	"strings"
)

// Variant selects a color scheme through an extra container class.
type Variant string

// Known variants. VariantDefault adds no class.
const (
	VariantDefault Variant = ""
	VariantMagenta Variant = "magenta"
	VariantOrange  Variant = "orange"
	VariantTan     Variant = "tan"
	VariantTeal    Variant = "teal"
)

// Variants lists every known variant in a stable order.
var Variants = []Variant{VariantDefault, VariantMagenta, VariantOrange, VariantTan, VariantTeal}

// Valid reports whether v belongs to the vocabulary.
func (v Variant) Valid() bool {
	for _, k := range Variants {
		if v == k {
			return true
		}
	}
	return false
}

// ParseVariant resolves a variant name (case-insensitive; "" and "default"
// mean VariantDefault).
func ParseVariant(name string) (Variant, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "default" {
		return VariantDefault, nil
	}
	if v := Variant(s); v.Valid() {
		return v, nil
	}
	return VariantDefault, fmt.Errorf("ParseVariant(%q): %w", name, ErrUnknownVariant)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(b []byte) error {
	p, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// class returns the container class attribute for v.
func (v Variant) class() string {
	if v == VariantDefault {
		return ContainerClass
	}
	return ContainerClass + " " + string(v)
}
