// Package render turns generated shapes into HTML fragments positioned with
// CSS 3D transforms, and composes several fragments side by side.
//
// Markup contract (shared with the external viewing stylesheet):
//
//	<div class="latex3d[ variant]" style="width:W;height:H;[font-size:Fem;][style]">
//	  <div style="transform:translate3d(X,Y,Z);"><div>label</div></div>
//	  <div style="transform:translate3d(X,Y,Z) rotateY(θturn);">⋯</div>
//	  ...
//	</div>
//
//   - The stylesheet spins every .latex3d container and counter-rotates the
//     inner wrapper of ordinary entries so digits always face the viewer.
//   - Entries with a custom transform (oriented glyphs) carry no wrapper;
//     their transform is appended after the translation.
//   - X is offset by half the bounding width so the assembly is centered.
//
// Sizing:
//
//   - Width  = g·(1 + 2·max √(x²+z²)).
//   - Height = g·max y, less FlatHeightTrim for flat shapes (floored at 0).
//   - g = scale / fontScale for em lengths and g = scale for px and rem, so
//     font size and spacing stay independent.
//
// Guarantees:
//
//   - Render and Compose are pure: identical inputs ⇒ byte-identical HTML.
//   - Numbers carry at most three decimals (geom.Format).
//   - Fragments are values; WithStyle and Compose never mutate their inputs.
package render
