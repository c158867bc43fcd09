// SPDX-License-Identifier: MIT
// Package: latex3d/geom
//
// format.go — deterministic decimal rendering for transform values.

package geom

import (
	"math"
	"strconv"
)

// FormatDigits is the number of decimals kept by Format.
const FormatDigits = 3

// Format renders v with at most FormatDigits decimals, trailing zeros
// trimmed and negative zero normalized, so equal inputs always produce the
// same bytes ("12", "-0.5", "0.333").
func Format(v float64) string {
	p := math.Pow10(FormatDigits)
	r := math.Round(v*p) / p
	if r == 0 {
		r = 0 // drops the sign of −0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
