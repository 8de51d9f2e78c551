// Package ops provides the spectral diagnostic densify needs: Jacobi
// eigenvalue decomposition of a dense symmetric matrix.
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/fehmgrid/stormesh/matrix"
)

// ErrNotSymmetric is returned when the input matrix is not symmetric within tol.
var ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

// ErrEigenFailed is returned if the algorithm does not converge within maxIter rotations.
var ErrEigenFailed = errors.New("ops: eigen decomposition did not converge")

// Eigen performs Jacobi eigenvalue decomposition on a symmetric matrix m,
// returning its eigenvalues and a matrix Q whose columns are the
// corresponding eigenvectors. tol bounds both the symmetry check and
// convergence; maxIter caps the number of iterations, each of which applies
// one rotation to the largest off-diagonal element.
//
// Complexity: O(n^2) per iteration, O(maxIter*n^2) worst case; memory O(n^2).
func Eigen(m matrix.Matrix, tol float64, maxIter int) ([]float64, matrix.Matrix, error) {
	n, cols := m.Rows(), m.Cols()
	if n != cols {
		return nil, nil, fmt.Errorf("Eigen: non-square %dx%d: %w", n, cols, matrix.ErrDimensionMismatch)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return nil, nil, ErrNotSymmetric
			}
		}
	}

	A := m.Clone()
	Q, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = Q.Set(i, i, 1.0)
	}

	iter := 0
	for ; iter < maxIter; iter++ {
		p, q := 0, 1
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off, _ := A.At(i, j)
				if math.Abs(off) > maxOff {
					maxOff = math.Abs(off)
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		aip, _ := A.At(p, p)
		aiq, _ := A.At(q, q)
		apq, _ := A.At(p, q)
		theta := (aiq - aip) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, _ := A.At(i, p)
			aiq, _ := A.At(i, q)
			_ = A.Set(i, p, c*aip-s*aiq)
			_ = A.Set(p, i, c*aip-s*aiq)
			_ = A.Set(i, q, s*aip+c*aiq)
			_ = A.Set(q, i, s*aip+c*aiq)
		}
		_ = A.Set(p, p, c*c*aip-2*c*s*apq+s*s*aiq)
		_ = A.Set(q, q, s*s*aip+2*c*s*apq+c*c*aiq)
		_ = A.Set(p, q, 0.0)
		_ = A.Set(q, p, 0.0)

		for i := 0; i < n; i++ {
			qip, _ := Q.At(i, p)
			qiq, _ := Q.At(i, q)
			_ = Q.Set(i, p, c*qip-s*qiq)
			_ = Q.Set(i, q, s*qip+c*qiq)
		}
	}
	if iter == maxIter {
		return nil, nil, ErrEigenFailed
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i], _ = A.At(i, i)
	}

	return eigs, Q, nil
}
