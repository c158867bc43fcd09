// SPDX-License-Identifier: MIT
// Package: latex3d/render
//
// compose.go — several fragments side by side in one container.
//
// Layout:
//   • Spread: d = (m−1)·|shift|, the distance between the outermost children.
//   • Container: position:relative, the largest child widened by d, so
//     shifted children never overhang the surrounding text.
//   • Child i of m: position:absolute;left:(i − (m−1)/2)·shift + d/2, so
//     three children at shift 15 sit at 0, 15 and 30 in a box 30 wider
//     than the largest child.
//   • Children are cloned; the inputs are never modified.

package render

import (
	"fmt"
	"math"
)

// Compose wraps frags in a relatively positioned container, offsetting each
// horizontally by shift units around the center. The container is widened by
// the total spread so every child stays inside it. All fragments must share
// one unit.
func Compose(shift float64, frags ...Fragment) (Fragment, error) {
	if len(frags) == 0 {
		return Fragment{}, fmt.Errorf("Compose: %w", ErrNoFragments)
	}

	unit := frags[0].Unit
	var w, h float64
	for i, f := range frags {
		if f.Unit != unit {
			return Fragment{}, fmt.Errorf("Compose: fragment %d uses %q, want %q: %w", i, f.Unit, unit, ErrUnitMismatch)
		}
		w = math.Max(w, f.Width)
		h = math.Max(h, f.Height)
	}

	center := float64(len(frags)-1) / 2
	spread := 2 * center * math.Abs(shift)

	out := Fragment{Width: w + spread, Height: h, Unit: unit}
	out.Node = div("", joinStyle(
		"position:relative",
		"width:"+length(out.Width, unit),
		"height:"+length(h, unit),
	))

	for i, f := range frags {
		left := (float64(i)-center)*shift + spread/2
		child := f.WithStyle(joinStyle("position:absolute", "left:"+length(left, unit)))
		if child.Node != nil {
			out.Node.AppendChild(child.Node)
		}
	}
	return out, nil
}
