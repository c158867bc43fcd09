// SPDX-License-Identifier: MIT
// Package: latex3d/render
//
// constants.go — defaults and fixed vocabulary of the markup.

package render

import "fmt"

// ContainerClass is the class every rendered container carries; the viewing
// stylesheet keys its 3D context on it.
const ContainerClass = "latex3d"

// Defaults.
const (
	// DefaultScale is the geometry scale k: CSS units per lattice step.
	DefaultScale = 30.0
	// DefaultFontScale leaves the inherited font size untouched.
	DefaultFontScale = 1.0
	// DefaultUnit is the CSS length unit of every emitted number.
	DefaultUnit = UnitPx
	// DefaultShift is the horizontal offset between composed fragments.
	DefaultShift = 15.0
)

// FlatHeightTrim is subtracted from the height of flat renderings so they
// sit centered against surrounding text.
const FlatHeightTrim = 0.5

// CSS length units accepted by WithUnit.
const (
	UnitPx  = "px"
	UnitEm  = "em"
	UnitRem = "rem"
)

var units = map[string]bool{UnitPx: true, UnitEm: true, UnitRem: true}

// ParseUnit resolves a unit name; the empty string selects DefaultUnit.
func ParseUnit(name string) (string, error) {
	if name == "" {
		return DefaultUnit, nil
	}
	if !units[name] {
		return "", fmt.Errorf("ParseUnit(%q): %w", name, ErrUnknownUnit)
	}
	return name, nil
}
