// Package assembly implements a symmetric sparse-matrix assembly engine for
// a finite-element / finite-volume grid processor.
//
// What & Why:
//
//	A caller streams element contributions keyed by (row, column) node
//	indices via SetEntry. The engine maintains a per-row ordered-column
//	index (a skiplist, one per row), optionally deduplicates numerically
//	equal value vectors across the whole matrix ("compression"), assigns
//	stable entry numbers once assembly is frozen, and finally projects the
//	internal structure into the flat column-major arrays a downstream
//	FEHM ".stor" writer consumes: the entries-per-row prefix, the occupied
//	column list, the diagonal index vector, the value-pointer permutation,
//	per-component value arrays, per-node Voronoi volumes, and a report of
//	suspect positive off-diagonal ("negative", in this domain's sign
//	convention) coefficients.
//
// Out of scope:
//
//	The .stor file writer, the grid/geometry code that computes element
//	contributions, non-symmetric matrices, concurrent mutation of a single
//	Matrix, persistence, and arithmetic beyond accumulation. This package
//	assembles; it does not solve.
//
// Lifecycle:
//
//	Empty -(NewMatrix)-> Open -(SetEntry/SetDiagonalEntries)-> Open
//	Open -(GetMatrixSizes)-> Frozen -(Get*/Free*)-> Frozen -(Kill)-> Torn-down
//
// Complexity:
//
//	SetEntry/EntryExists are O(log n) expected per row (skiplist search).
//	GetMatrixSizes and the extraction passes are O(ncon) or O(num_written_coefs).
package assembly
