package assembly

import "fmt"

// EntryExists reports whether the symmetric position (i,j) is currently
// occupied. Equivalent to asking whether rows[j] contains column i (which,
// by invariant 1, is the same answer as asking whether rows[i] contains
// column j).
//
// Complexity: O(log n) expected, n = size of row j.
func (m *Matrix) EntryExists(i, j int) (bool, error) {
	if err := m.requireState("EntryExists", stateOpen); err != nil {
		return false, err
	}
	if err := m.validateIndex("EntryExists", i); err != nil {
		return false, err
	}
	if err := m.validateIndex("EntryExists", j); err != nil {
		return false, err
	}

	_, ok := m.rows[j].search(&rowEntry{column: i})

	return ok, nil
}

// SetEntry records a contribution to the symmetric position (i,j).
//
// Effects, in order:
//  1. voronoiVolume[i-1] and voronoiVolume[j-1] each accumulate volContrib,
//     even when i==j (the diagonal double-add is intentional and
//     preserved from the source).
//  2. Each component's running maximum is updated.
//  3. If (i,j) already exists, its shared value record is replaced.
//  4. Otherwise, if i!=j and v is a zero-vector (within tolerance of the
//     running maxima), the call is a no-op beyond steps 1-2.
//  5. Otherwise, a new shared record is created (looked up/inserted via
//     the shared value index when compression is enabled) and installed
//     at both (i,j) and (j,i) (or just (i,i) on the diagonal).
//
// Complexity: O(log n) expected, n = size of the larger of rows i and j.
func (m *Matrix) SetEntry(i, j int, volContrib float64, v []float64) error {
	if err := m.requireState("SetEntry", stateOpen); err != nil {
		return err
	}
	if err := m.validateIndex("SetEntry", i); err != nil {
		return err
	}
	if err := m.validateIndex("SetEntry", j); err != nil {
		return err
	}
	if len(v) != m.entrySize {
		return fmt.Errorf("SetEntry(%d,%d): len(v)=%d, entrySize=%d: %w", i, j, len(v), m.entrySize, ErrValueSizeMismatch)
	}

	// Step 1: Voronoi volumes, indices 0-based. Double-adds on the
	// diagonal by design; preserved from the source.
	m.voronoiV[i-1] += volContrib
	m.voronoiV[j-1] += volContrib

	// Step 2: running per-component maxima.
	for c, x := range v {
		if abs := absFloat(x); abs > m.maxima[c] {
			m.maxima[c] = abs
		}
	}

	existing, found := m.rows[j].search(&rowEntry{column: i})
	if found {
		// Step 3: replace the shared record on both symmetric positions
		// (one position on the diagonal).
		positions := 2
		if i == j {
			positions = 1
		}
		other, _ := m.rows[i].search(&rowEntry{column: j})
		m.releaseRecord(existing.rec, positions)
		newRec := m.acquireRecord(v, positions)
		existing.rec = newRec
		other.rec = newRec

		return nil
	}

	if i != j {
		// Step 4: zero-vector suppression.
		if zeroVector(v, m.maxima, m.epsilon) {
			return nil
		}

		// Step 5: two new entries sharing one record.
		rec := m.acquireRecord(v, 2)
		m.rows[j].insert(&rowEntry{column: i, rec: rec})
		m.rows[i].insert(&rowEntry{column: j, rec: rec})
		m.nconRow[i]++
		m.nconRow[j]++

		return nil
	}

	// Step 6 (diagonal): a single entry.
	rec := m.acquireRecord(v, 1)
	m.rows[i].insert(&rowEntry{column: i, rec: rec})
	m.nconRow[i]++

	return nil
}

// SetDiagonalEntries installs a zero-valued placeholder on every diagonal
// position so extraction always finds a diagonal slot. Mirrors
// setDiagonalEntries in the C source: volContrib is 0 and the value vector
// is always the zero vector (the source's row-sum accumulation was already
// dead code there — commented out — so this preserves observable behavior,
// not the computation that never ran).
//
// Complexity: O(neq) SetEntry calls.
func (m *Matrix) SetDiagonalEntries() error {
	zero := make([]float64, m.entrySize)
	for i := 1; i <= m.neq; i++ {
		if err := m.SetEntry(i, i, 0.0, zero); err != nil {
			return fmt.Errorf("SetDiagonalEntries(row=%d): %w", i, err)
		}
	}

	return nil
}

// acquireRecord returns the shared record for value v, adding positions
// references to it, creating it (and, under compression, inserting it into
// the shared value index) if no equivalent record exists yet.
func (m *Matrix) acquireRecord(v []float64, positions int) *valueRecord {
	if !m.compression {
		return newValueRecord(v, positions)
	}

	probe := &valueRecord{value: v}
	if existing, ok := m.valueStore.search(probe); ok {
		existing.refCount += positions
		return existing
	}

	rec := newValueRecord(v, positions)
	m.valueStore.insert(rec)

	return rec
}

// releaseRecord drops positions references to rec, removing it from the
// shared value index (under compression) once no position references it.
func (m *Matrix) releaseRecord(rec *valueRecord, positions int) {
	if !m.compression {
		return
	}
	if rec.refCount <= positions {
		m.valueStore.delete(rec)
		return
	}
	rec.refCount -= positions
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
