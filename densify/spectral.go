package densify

import (
	"fmt"
	"math"

	"github.com/fehmgrid/stormesh/assembly"
	"github.com/fehmgrid/stormesh/matrix/ops"
)

// DominantEigenSign densifies component c of m and returns the eigenvalue of
// largest magnitude (not just its sign, despite the name — callers that only
// care about stability typically write math.Signbit(v) at the call site).
// A symmetric, diagonally-dominant FEM/FV assembly should have a dominant
// eigenvalue that matches the sign convention of its diagonal; a flipped
// sign here usually means an upstream element contribution was assembled
// with the wrong orientation.
//
// tol and maxIter are forwarded to the underlying Jacobi rotation; 1e-9 and
// 100 are reasonable defaults for the matrix sizes this package targets.
func DominantEigenSign(m *assembly.Matrix, component int, tol float64, maxIter int) (float64, error) {
	dense, err := Densify(m, component)
	if err != nil {
		return 0, fmt.Errorf("densify.DominantEigenSign: %w", err)
	}

	eigs, _, err := ops.Eigen(dense, tol, maxIter)
	if err != nil {
		return 0, fmt.Errorf("densify.DominantEigenSign: %w", err)
	}

	dominant := eigs[0]
	for _, v := range eigs[1:] {
		if math.Abs(v) > math.Abs(dominant) {
			dominant = v
		}
	}

	return dominant, nil
}
