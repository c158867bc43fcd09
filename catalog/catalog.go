// SPDX-License-Identifier: MIT
// Package: latex3d/catalog
//
// catalog.go — the ordered placeholder table.

package catalog

import (
	"fmt"

	"github.com/katalvlaran/latex3d/geom"
)

// Catalog is an ordered set of items with unique codes.
type Catalog struct {
	Items []Item `yaml:"items" toml:"items"`
}

// Codes returns the item codes in catalog order.
func (c Catalog) Codes() []string {
	out := make([]string, len(c.Items))
	for i, it := range c.Items {
		out[i] = it.Code
	}
	return out
}

// Lookup returns the item with the given code.
func (c Catalog) Lookup(code string) (Item, error) {
	for _, it := range c.Items {
		if it.Code == code {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("Lookup(%q): %w", code, ErrUnknownCode)
}

// Validate checks codes and every item's settings. The first problem found
// is returned.
// Complexity: O(total items including parts).
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Items))
	for i, it := range c.Items {
		if !validCode(it.Code) {
			return fmt.Errorf("items[%d]: code %q: %w", i, it.Code, ErrBadCode)
		}
		if _, dup := seen[it.Code]; dup {
			return fmt.Errorf("items[%d]: code %q: %w", i, it.Code, ErrDuplicateCode)
		}
		seen[it.Code] = struct{}{}
		if err := it.validate(it.Code); err != nil {
			return err
		}
	}
	return nil
}

// Fragments renders every item once and returns code → HTML.
func (c Catalog) Fragments(fr geom.Frame) (map[string]string, error) {
	out := make(map[string]string, len(c.Items))
	for _, it := range c.Items {
		f, err := it.Fragment(fr)
		if err != nil {
			return nil, fmt.Errorf("Fragments: %s: %w", it.Code, err)
		}
		out[it.Code] = f.HTML()
	}
	return out, nil
}

// validCode reports whether code is a non-empty run of ASCII digits.
func validCode(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
