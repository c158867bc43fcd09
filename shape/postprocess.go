// SPDX-License-Identifier: MIT
// Package: latex3d/shape
//
// postprocess.go — label corrections applied after generation.
//
// Contract:
//   • Works on a copy of the freshly generated sequence; the input slice is
//     left untouched.
//   • Flat shapes: numeric and terminal labels wider than one grapheme move
//     left by labelNudge per extra grapheme so they stay centered on their
//     point. Glyph runs are left alone.
//   • Manual nudges (WithNudge) then shift every entry with a matching label.

package shape

import (
	"github.com/rivo/uniseg"
)

// postProcess returns a corrected copy of entries.
// Complexity: O(len(entries)·(1+len(cfg.nudges))).
func postProcess(entries []Entry, flat bool, cfg shapeConfig) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	if flat && cfg.labelNudge > 0 {
		for i := range out {
			if out[i].Kind == KindGlyph {
				continue
			}
			if g := uniseg.GraphemeClusterCount(out[i].Label); g > 1 {
				out[i].Pos.X -= cfg.labelNudge * float64(g-1)
			}
		}
	}

	for _, n := range cfg.nudges {
		for i := range out {
			if out[i].Label == n.label {
				out[i].Pos.X += n.dx
			}
		}
	}

	return out
}
