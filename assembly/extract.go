package assembly

import "fmt"

// GetMatrixSizes freezes the matrix (Open->Frozen) and assigns stable
// entry numbers to every distinct value record:
//
//   - If compression is enabled, the shared value index is walked in its
//     iteration order and each record gets entryNum = 1, 2, 3, ....
//   - Otherwise, rows are walked in ascending row order and, within each
//     row, ascending column order; only entries with column >= row (the
//     upper triangle including the diagonal) receive a fresh entryNum —
//     the symmetric lower-triangle position shares the same record and so
//     inherits the same number for free.
//
// No SetEntry call is valid after this returns; see doc.go's state
// machine.
//
// Complexity: O(ncon) (or O(num_written_coefs) under compression).
func (m *Matrix) GetMatrixSizes() (numWrittenCoefs, ncon, nconMax int, err error) {
	if err = m.requireState("GetMatrixSizes", stateOpen); err != nil {
		return 0, 0, 0, err
	}

	m.ncon, m.nconMax = 0, 0
	for i := 1; i <= m.neq; i++ {
		if m.nconRow[i] > m.nconMax {
			m.nconMax = m.nconRow[i]
		}
		m.ncon += m.nconRow[i]
	}

	entryNumber := 1
	if m.compression {
		m.valueStore.forEach(func(rec *valueRecord) {
			rec.entryNum = entryNumber
			entryNumber++
		})
	} else {
		for i := 1; i <= m.neq; i++ {
			row := i
			m.rows[i].forEach(func(e *rowEntry) {
				if e.column >= row {
					e.rec.entryNum = entryNumber
					entryNumber++
				}
			})
		}
	}
	m.numWrittenCoefs = entryNumber - 1
	m.sizesComputed = true
	m.state = stateFrozen

	return m.numWrittenCoefs, m.ncon, m.nconMax, nil
}

// GetVoronoiVolumes returns the per-node accumulated Voronoi volumes,
// volumes[0..neq-1]. The backing array is allocated size neq+1 internally
// (size neq+1, matching the backing array); index neq is never written and is not part
// of the returned view.
//
// Complexity: O(neq).
func (m *Matrix) GetVoronoiVolumes() ([]float64, error) {
	if err := m.requireState("GetVoronoiVolumes", stateOpen, stateFrozen); err != nil {
		return nil, err
	}

	out := make([]float64, m.neq)
	copy(out, m.voronoiV[:m.neq])
	m.voronoiHeld = true

	return out, nil
}

// FreeVoronoiVolumes releases the array returned by GetVoronoiVolumes.
func (m *Matrix) FreeVoronoiVolumes() error {
	if err := m.requireState("FreeVoronoiVolumes", stateOpen, stateFrozen); err != nil {
		return err
	}
	if !m.voronoiHeld {
		return fmt.Errorf("FreeVoronoiVolumes: %w", ErrAlreadyFreed)
	}
	m.voronoiHeld = false

	return nil
}

// GetEntriesPerRow transforms ncon_row in place into the "Funky-George"
// prefix form the downstream .stor writer expects: ncon_row[0] = neq+1,
// then ncon_row[i] = ncon_row[i] + ncon_row[i-1]. The pre-prefix counts are
// destroyed by this transformation, so this call is not safely
// re-entrant — matching the source exactly.
//
// Complexity: O(neq).
func (m *Matrix) GetEntriesPerRow() ([]int, error) {
	if err := m.requireState("GetEntriesPerRow", stateOpen, stateFrozen); err != nil {
		return nil, err
	}
	if m.entriesPerRow != nil {
		return nil, fmt.Errorf("GetEntriesPerRow: %w", ErrAlreadyFreed)
	}

	m.nconRow[0] = m.neq + 1
	for i := 1; i <= m.neq; i++ {
		m.nconRow[i] = m.nconRow[i] + m.nconRow[i-1]
	}

	out := make([]int, m.neq+1)
	copy(out, m.nconRow)
	m.entriesPerRow = out

	return out, nil
}

// FreeEntriesPerRow releases the array returned by GetEntriesPerRow.
func (m *Matrix) FreeEntriesPerRow() error {
	if err := m.requireState("FreeEntriesPerRow", stateOpen, stateFrozen); err != nil {
		return err
	}
	if m.entriesPerRow == nil {
		return fmt.Errorf("FreeEntriesPerRow: %w", ErrAlreadyFreed)
	}
	m.entriesPerRow = nil

	return nil
}

// GetOccupiedColumns walks every row in ascending order and, for each
// occupied column, appends it to a flat row-major list. Whenever the
// column equals the row, the current (0-based) flat index is recorded
// into an internal diagonals vector — returned later by
// GetMatrixPointers, matching the source's two-pass FORTRAN-facing API
// where getoccupiedcolumns_ computes diagonalIndices but only
// getmatrixpointers_ hands it back.
//
// Complexity: O(ncon).
func (m *Matrix) GetOccupiedColumns() ([]int, error) {
	if err := m.requireState("GetOccupiedColumns", stateFrozen); err != nil {
		return nil, err
	}
	if m.occupiedColumns != nil {
		return nil, fmt.Errorf("GetOccupiedColumns: %w", ErrAlreadyFreed)
	}

	columns := make([]int, 0, m.ncon)
	diagonals := make([]int, m.neq)
	for i := 1; i <= m.neq; i++ {
		row := i
		m.rows[i].forEach(func(e *rowEntry) {
			if e.column == row {
				diagonals[row-1] = len(columns)
			}
			columns = append(columns, e.column)
		})
	}

	m.occupiedColumns = columns
	m.diagonals = diagonals

	return columns, nil
}

// FreeOccupiedColumns releases the array returned by GetOccupiedColumns.
// It does not release the diagonals vector, which is owned jointly with
// GetMatrixPointers's output and released by FreeMatrixPointers — see
// the source's freeoccupiedcolumns_/freematrixpointers_ split.
func (m *Matrix) FreeOccupiedColumns() error {
	if err := m.requireState("FreeOccupiedColumns", stateFrozen); err != nil {
		return err
	}
	if m.occupiedColumns == nil {
		return fmt.Errorf("FreeOccupiedColumns: %w", ErrAlreadyFreed)
	}
	m.occupiedColumns = nil

	return nil
}

// GetMatrixPointers returns, in the same row-major/column-ascending
// traversal order as GetOccupiedColumns, the entryNum of each stored
// entry's value record, plus the diagonal-index vector GetOccupiedColumns
// computed. Requires GetOccupiedColumns to have run first (for the
// diagonals vector) — see ErrNotYetComputed.
//
// Complexity: O(ncon).
func (m *Matrix) GetMatrixPointers() (matPointers, diagonals []int, err error) {
	if err = m.requireState("GetMatrixPointers", stateFrozen); err != nil {
		return nil, nil, err
	}
	if m.diagonals == nil {
		return nil, nil, fmt.Errorf("GetMatrixPointers: %w", ErrNotYetComputed)
	}
	if m.matPointers != nil {
		return nil, nil, fmt.Errorf("GetMatrixPointers: %w", ErrAlreadyFreed)
	}

	pointers := make([]int, 0, m.ncon)
	for i := 1; i <= m.neq; i++ {
		m.rows[i].forEach(func(e *rowEntry) {
			pointers = append(pointers, e.rec.entryNum)
		})
	}

	m.matPointers = pointers

	return pointers, m.diagonals, nil
}

// FreeMatrixPointers releases both the matPointers array and the
// diagonals vector produced by GetOccupiedColumns.
func (m *Matrix) FreeMatrixPointers() error {
	if err := m.requireState("FreeMatrixPointers", stateFrozen); err != nil {
		return err
	}
	if m.matPointers == nil {
		return fmt.Errorf("FreeMatrixPointers: %w", ErrAlreadyFreed)
	}
	m.matPointers = nil
	m.diagonals = nil

	return nil
}

// GetComponentMatrixValues returns the flat per-component value array of
// length num_written_coefs, in the same order entryNum was assigned by
// GetMatrixSizes — compressed values in shared-value-index order, or
// uncompressed values in row-major/column-ascending upper-triangle order.
//
// Complexity: O(num_written_coefs).
func (m *Matrix) GetComponentMatrixValues(component int) ([]float64, error) {
	if err := m.requireState("GetComponentMatrixValues", stateFrozen); err != nil {
		return nil, err
	}
	if component < 0 || component >= m.entrySize {
		return nil, fmt.Errorf("GetComponentMatrixValues(%d): %w", component, ErrUnknownComponent)
	}
	if _, held := m.componentValues[component]; held {
		return nil, fmt.Errorf("GetComponentMatrixValues(%d): %w", component, ErrAlreadyFreed)
	}

	values := make([]float64, m.numWrittenCoefs)
	if m.compression {
		m.valueStore.forEach(func(rec *valueRecord) {
			values[rec.entryNum-1] = rec.value[component]
		})
	} else {
		for i := 1; i <= m.neq; i++ {
			row := i
			m.rows[i].forEach(func(e *rowEntry) {
				if e.column >= row {
					values[e.rec.entryNum-1] = e.rec.value[component]
				}
			})
		}
	}
	m.componentValues[component] = values

	return values, nil
}

// FreeComponentMatrixValues releases the array for the given component
// returned by GetComponentMatrixValues.
func (m *Matrix) FreeComponentMatrixValues(component int) error {
	if err := m.requireState("FreeComponentMatrixValues", stateFrozen); err != nil {
		return err
	}
	if _, held := m.componentValues[component]; !held {
		return fmt.Errorf("FreeComponentMatrixValues(%d): %w", component, ErrAlreadyFreed)
	}
	delete(m.componentValues, component)

	return nil
}
