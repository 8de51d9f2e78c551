package densify

import (
	"fmt"

	"github.com/fehmgrid/stormesh/assembly"
	"github.com/fehmgrid/stormesh/matrix"
)

// Densify reads back one component of a frozen matrix and renders it as an
// n×n matrix.Dense, n being the number of equations. m must already have had
// GetMatrixSizes called (any of the Frozen-only extraction passes would
// otherwise fail the same way).
//
// The occupied-columns/matrix-pointers pass already records both symmetric
// positions of every off-diagonal entry (each row's own skiplist holds its
// half of every pair it participates in), so the resulting Dense is filled
// directly from that flat traversal with no extra symmetrization step.
//
// Complexity: O(ncon).
func Densify(m *assembly.Matrix, component int) (*matrix.Dense, error) {
	occupied, err := m.GetOccupiedColumns()
	if err != nil {
		return nil, fmt.Errorf("densify.Densify: %w", err)
	}
	defer m.FreeOccupiedColumns() //nolint:errcheck

	pointers, diagonals, err := m.GetMatrixPointers()
	if err != nil {
		return nil, fmt.Errorf("densify.Densify: %w", err)
	}
	defer m.FreeMatrixPointers() //nolint:errcheck

	values, err := m.GetComponentMatrixValues(component)
	if err != nil {
		return nil, fmt.Errorf("densify.Densify: %w", err)
	}
	defer m.FreeComponentMatrixValues(component) //nolint:errcheck

	neq := len(diagonals)
	dense, err := matrix.NewDense(neq, neq)
	if err != nil {
		return nil, fmt.Errorf("densify.Densify: %w", err)
	}

	// Row boundaries in the flat occupied/pointers arrays: by symmetry, row
	// i holds exactly as many entries as column i occurs in the whole
	// occupied list. Counting them here leaves GetEntriesPerRow's
	// destructive prefix transform alone, so Densify can run repeatedly.
	rowLen := make([]int, neq+1)
	for _, col := range occupied {
		rowLen[col]++
	}

	k := 0
	for i := 1; i <= neq; i++ {
		end := k + rowLen[i]
		for ; k < end; k++ {
			col := occupied[k]
			v := values[pointers[k]-1]
			if err := dense.Set(i-1, col-1, v); err != nil {
				return nil, fmt.Errorf("densify.Densify: %w", err)
			}
		}
	}

	return dense, nil
}
