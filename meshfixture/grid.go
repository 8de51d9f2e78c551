package meshfixture

import (
	"fmt"

	"github.com/fehmgrid/stormesh/assembly"
	"github.com/fehmgrid/stormesh/gridgraph"
)

// Fixture bundles the synthetic grid used to derive an assembled Matrix
// alongside the Matrix itself, so callers (tests, examples) can cross-check
// extracted arrays against the grid's own topology.
type Fixture struct {
	Rows, Cols int
	EntrySize  int
	Grid       *gridgraph.GridGraph
	Matrix     *assembly.Matrix
}

// Build assembles a rows×cols orthogonal grid (4-connectivity, one edge per
// east/south neighbor pair so every pair is visited exactly once) into a
// fresh assembly.Matrix with the given entrySize and per-component values
// derived from Build's deterministic permeability field.
//
// Edges are emitted in row-major order, east neighbor before south neighbor
// for each cell, so every pair is visited exactly once. SetDiagonalEntries
// is called once at the end to give every node its placeholder diagonal
// slot.
func Build(rows, cols, entrySize int, compression bool, epsilon float64, opts ...assembly.Option) (*Fixture, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("meshfixture.Build: rows=%d, cols=%d must each be >= 1", rows, cols)
	}

	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = int(cellPermeability(r, c))
		}
	}

	grid, err := gridgraph.NewGridGraph(cells, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	if err != nil {
		return nil, fmt.Errorf("meshfixture.Build: %w", err)
	}

	neq := rows * cols
	m, err := assembly.NewMatrix(neq, entrySize, compression, epsilon, opts...)
	if err != nil {
		return nil, fmt.Errorf("meshfixture.Build: %w", err)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := nodeIndex(r, c, cols)
			permU := cellPermeability(r, c)

			if c+1 < cols {
				v := nodeIndex(r, c+1, cols)
				permV := cellPermeability(r, c+1)
				if err := setEdge(m, u, v, permU, permV, entrySize); err != nil {
					return nil, fmt.Errorf("meshfixture.Build: %w", err)
				}
			}
			if r+1 < rows {
				v := nodeIndex(r+1, c, cols)
				permV := cellPermeability(r+1, c)
				if err := setEdge(m, u, v, permU, permV, entrySize); err != nil {
					return nil, fmt.Errorf("meshfixture.Build: %w", err)
				}
			}
		}
	}

	if err := m.SetDiagonalEntries(); err != nil {
		return nil, fmt.Errorf("meshfixture.Build: %w", err)
	}

	return &Fixture{Rows: rows, Cols: cols, EntrySize: entrySize, Grid: grid, Matrix: m}, nil
}

// setEdge installs the flux coefficient and Voronoi contribution for one
// grid edge, scaling each successive component by (component+1) so a
// multi-component fixture carries distinguishable, still-deterministic
// per-component values.
func setEdge(m *assembly.Matrix, u, v int, permU, permV float64, entrySize int) error {
	coef := fluxCoefficient(permU, permV)
	vol := voronoiContribution(permU, permV)

	values := make([]float64, entrySize)
	for c := 0; c < entrySize; c++ {
		values[c] = coef * float64(c+1)
	}

	return m.SetEntry(u, v, vol, values)
}
