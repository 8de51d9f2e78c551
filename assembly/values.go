package assembly

import "math"

// valueRecord is the Go stand-in for the C module's entryComponent: the
// value vector carried by a matrix position, shared across the symmetric
// (i,j)/(j,i) pair and, under compression, across every equivalent
// position in the matrix.
//
// Invariant: once a valueRecord has been inserted (into a row, or into the
// shared value index), its value field is never mutated in place.
// Replacing a position's value always allocates a new record and releases
// the old one — see SetEntry in entry.go.
type valueRecord struct {
	value    []float64
	entryNum int // assigned during GetMatrixSizes; 0 before Frozen
	refCount int // number of (row,column) positions pointing at this record
}

// rowEntry is one node of a row's ordered-column index: column is the key,
// rec is the shared value handle for that position.
type rowEntry struct {
	column int
	rec    *valueRecord
}

// rowEntryCompare orders rowEntry nodes by column alone, mirroring
// entryKeyCompare in the C source.
func rowEntryCompare(a, b *rowEntry) int {
	switch {
	case a.column < b.column:
		return -1
	case a.column > b.column:
		return 1
	default:
		return 0
	}
}

// zeroVector reports whether every component of v is within tolerance of
// zero relative to the matrix's running per-component maxima. Mirrors
// zeroVector() in the C source exactly, including using maxima observed at
// call time (maxima only grows, so this is safe to evaluate lazily).
func zeroVector(v []float64, maxima []float64, epsilon float64) bool {
	for c, x := range v {
		if math.Abs(x) > maxima[c]*epsilon {
			return false
		}
	}
	return true
}

// valueComparator builds the tolerance-based comparator used for value
// compression. It is NOT a true total order: maxima mutates as SetEntry
// calls come in, so two comparisons at different points in time can
// disagree. The design accepts this because the
// comparator is only ever evaluated against the *current* maxima, and no
// insertion into the shared value index happens after GetMatrixSizes
// freezes entry numbers.
func valueComparator(maxima []float64, epsilon float64) func(a, b *valueRecord) int {
	return func(a, b *valueRecord) int {
		for c := range a.value {
			delta := a.value[c] - b.value[c]
			if math.Abs(delta) > maxima[c]*epsilon {
				if delta < 0 {
					return -1
				}
				return 1
			}
		}
		return 0
	}
}

// newValueRecord allocates a fresh, independent copy of v with the given
// initial refCount. Mirrors entryComponentCreate.
func newValueRecord(v []float64, refCount int) *valueRecord {
	value := make([]float64, len(v))
	copy(value, v)

	return &valueRecord{value: value, refCount: refCount}
}
