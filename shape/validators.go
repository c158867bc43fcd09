// Package shape provides validation helpers enforcing parameter contracts
// in the generators.
package shape

// validateLayers ensures that the layer count n is ≥ MinLayers.
// Returns "<Method>: n must be ≥ 1, got <n>: shape: too few layers" otherwise.
//
// Complexity: O(1) time and space.
func validateLayers(method string, n int) error {
	if n < MinLayers {
		return shapeErrorf(method, ErrTooFewLayers, "n must be ≥ %d, got %d", MinLayers, n)
	}

	return nil
}
