package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/latex3d/geom"
)

const tol = 1e-9

// requireNear fails unless a and b are within tol Euclidean distance.
func requireNear(t *testing.T, want, got r3.Vec, msgAndArgs ...interface{}) {
	t.Helper()
	require.LessOrEqual(t, r3.Norm(r3.Sub(want, got)), tol, msgAndArgs...)
}

// TestAxisRotations_RightHanded checks quarter turns about each principal axis.
func TestAxisRotations_RightHanded(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rot  geom.Rotation
		in   r3.Vec
		want r3.Vec
	}{
		{"X: y→z", geom.RotateX(math.Pi / 2), r3.Vec{Y: 1}, r3.Vec{Z: 1}},
		{"Y: z→x", geom.RotateY(math.Pi / 2), r3.Vec{Z: 1}, r3.Vec{X: 1}},
		{"Z: x→y", geom.RotateZ(math.Pi / 2), r3.Vec{X: 1}, r3.Vec{Y: 1}},
		{"Y: x→−z", geom.RotateY(math.Pi / 2), r3.Vec{X: 1}, r3.Vec{Z: -1}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			requireNear(t, tc.want, tc.rot.Apply(tc.in))
		})
	}
}

// TestRotation_ZeroValueIsIdentity guards the documented zero-value contract.
func TestRotation_ZeroValueIsIdentity(t *testing.T) {
	t.Parallel()

	var r geom.Rotation
	v := r3.Vec{X: 1, Y: -2, Z: 3}
	requireNear(t, v, r.Apply(v))
	requireNear(t, v, r.Then(geom.Identity()).Apply(v))
	requireNear(t, v, geom.RotateAbout(r3.Vec{}, 1.2).Apply(v))
}

// TestRotation_ThenOrder verifies that Then applies the receiver first.
func TestRotation_ThenOrder(t *testing.T) {
	t.Parallel()

	// x --RotateZ(90°)--> y --RotateX(90°)--> z
	r := geom.RotateZ(math.Pi / 2).Then(geom.RotateX(math.Pi / 2))
	requireNear(t, r3.Vec{Z: 1}, r.Apply(r3.Vec{X: 1}))

	// Inverse undoes the composite.
	v := r3.Vec{X: 0.3, Y: -1.1, Z: 2}
	requireNear(t, v, r.Then(r.Inverse()).Apply(v))
}

// TestTilt_AlignsBodyDiagonal checks that Tilt stands (1,1,1) upright.
func TestTilt_AlignsBodyDiagonal(t *testing.T) {
	t.Parallel()

	d := r3.Scale(1/math.Sqrt(3), r3.Vec{X: 1, Y: 1, Z: 1})
	requireNear(t, r3.Vec{Y: 1}, geom.Tilt().Apply(d))
}

// TestTilt_FirstStageReachesVerticalPlane checks the intermediate (0,1,√2).
func TestTilt_FirstStageReachesVerticalPlane(t *testing.T) {
	t.Parallel()

	got := geom.RotateY(-geom.Tau / 8).Apply(r3.Vec{X: 1, Y: 1, Z: 1})
	requireNear(t, r3.Vec{Y: 1, Z: math.Sqrt2}, got)
}

// TestRotateAbout_PreservesCenter ensures ApplyAbout pivots around the center.
func TestRotateAbout_PreservesCenter(t *testing.T) {
	t.Parallel()

	c := r3.Vec{X: 1, Y: 2, Z: 3}
	r := geom.RotateY(geom.Tau / 3)
	requireNear(t, c, r.ApplyAbout(c, c))

	p := r3.Vec{X: 2, Y: 2, Z: 3}
	got := r.ApplyAbout(c, p)
	require.InDelta(t, 1.0, r3.Norm(r3.Sub(got, c)), tol)
	require.InDelta(t, 2.0, got.Y, tol)
}

func TestTurns(t *testing.T) {
	t.Parallel()
	require.InDelta(t, 0.5, geom.Turns(math.Pi), tol)
	require.InDelta(t, -0.25, geom.Turns(-math.Pi/2), tol)
}
