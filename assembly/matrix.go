package assembly

import "fmt"

// matrixState implements the Empty->Open->Frozen->Torn-down machine
// documented in doc.go. The C source never enforced this discipline; this rewrite does,
// rejecting out-of-state calls with ErrWrongState instead of corrupting
// memory.
type matrixState int

const (
	stateOpen matrixState = iota
	stateFrozen
	stateTornDown
)

// Matrix is the symmetric sparse-matrix assembly engine. A Matrix is an
// explicit value: there is no package-level mutable state, unlike the C
// source's file-scope globals. One *Matrix is single-threaded use only;
// distinct *Matrix values are independent and may be used concurrently
// from different goroutines.
//
// Use NewMatrix to construct, SetEntry/SetDiagonalEntries to assemble,
// GetMatrixSizes to freeze and assign entry numbers, the Get*/Free*
// extraction passes to read out the flat arrays, and Kill to tear down.
type Matrix struct {
	neq         int
	entrySize   int
	compression bool
	epsilon     float64
	cfg         *matrixConfig

	maxima []float64 // running per-component maximum of |value[c]|

	rows     []*skiplist[*rowEntry] // index 1..neq; rows[0] unused
	nconRow  []int                  // index 0..neq; ncon_row[0] unused until GetEntriesPerRow
	voronoiV []float64              // index 0..neq; index neq unused (size neq+1)

	valueStore *skiplist[*valueRecord] // nil unless compression

	state matrixState

	// Extraction-pass state. num_written_coefs/ncon/nconMax are valid only
	// once state == stateFrozen (GetMatrixSizes has run).
	numWrittenCoefs int
	ncon            int
	nconMax         int
	sizesComputed   bool

	entriesPerRow   []int // held between GetEntriesPerRow and FreeEntriesPerRow
	voronoiHeld     bool
	occupiedColumns []int // held between GetOccupiedColumns and FreeOccupiedColumns
	diagonals       []int
	matPointers     []int // held between GetMatrixPointers and FreeMatrixPointers
	diagonalsHeld   bool  // diagonals is produced by GetOccupiedColumns but freed
	// alongside matPointers in the original FORTRAN-facing API (FreeMatrixPointers
	// frees both entryNumbers and diagonalIndices); see extract.go.
	componentValues map[int][]float64 // held per component between Get/FreeComponentMatrixValues

	negRows    []int
	negCols    []int
	negValues  []float64
	negHeld    bool
	numNeg     int
	numSuspect int
	numZero    int
}

// NewMatrix creates an empty, Open Matrix.
//
// Preconditions: neq >= 1, entrySize >= 1, epsilon > 0. Violations return
// the matching sentinel (ErrInvalidNEQ / ErrInvalidEntrySize /
// ErrInvalidEpsilon) rather than the C source's "print and limp on"
// behavior for entrySize, or its undefined behavior for the rest.
//
// Complexity: O(neq) time and space.
func NewMatrix(neq, entrySize int, compression bool, epsilon float64, opts ...Option) (*Matrix, error) {
	if neq < 1 {
		return nil, fmt.Errorf("NewMatrix(neq=%d): %w", neq, ErrInvalidNEQ)
	}
	if entrySize < 1 {
		return nil, fmt.Errorf("NewMatrix(entrySize=%d): %w", entrySize, ErrInvalidEntrySize)
	}
	if epsilon <= 0 {
		return nil, fmt.Errorf("NewMatrix(epsilon=%g): %w", epsilon, ErrInvalidEpsilon)
	}

	cfg := newMatrixConfig(opts...)

	m := &Matrix{
		neq:             neq,
		entrySize:       entrySize,
		compression:     compression,
		epsilon:         epsilon,
		cfg:             cfg,
		maxima:          make([]float64, entrySize),
		rows:            make([]*skiplist[*rowEntry], neq+1),
		nconRow:         make([]int, neq+1),
		voronoiV:        make([]float64, neq+1),
		state:           stateOpen,
		componentValues: make(map[int][]float64),
	}

	for c := range m.maxima {
		m.maxima[c] = 1e-30
	}
	for i := 1; i <= neq; i++ {
		m.rows[i] = newSkiplist[*rowEntry](rowEntryCompare)
	}
	if compression {
		m.valueStore = newSkiplist[*valueRecord](valueComparator(m.maxima, m.epsilon))
	}

	cfg.logger.Debug().Float64("epsilon", epsilon).Int("neq", neq).Int("entrySize", entrySize).
		Bool("compression", compression).Msg("assembly: matrix created")

	return m, nil
}

// requireState returns ErrWrongState (wrapped with method context) unless
// m is currently in one of the given states.
func (m *Matrix) requireState(method string, allowed ...matrixState) error {
	for _, s := range allowed {
		if m.state == s {
			return nil
		}
	}
	if m.state == stateTornDown {
		return fmt.Errorf("%s: %w", method, ErrTornDown)
	}
	return fmt.Errorf("%s: %w", method, ErrWrongState)
}

// validateIndex rejects a row/column index outside [1, neq].
func (m *Matrix) validateIndex(method string, idx int) error {
	if idx < 1 || idx > m.neq {
		return fmt.Errorf("%s(%d): %w", method, idx, ErrIndexOutOfRange)
	}
	return nil
}

// Kill releases every row, the shared value index if present, and
// invalidates the Matrix. After Kill, every other method returns
// ErrTornDown.
//
// Unlike the C source — whose killsparsematrix_ nulled its global
// pointers *before* checking whether they were still non-nil, so the
// "not freed" warning could never fire — this rewrite evaluates the leak
// check first (see DESIGN.md "Kill's leak-warning timing"): if any Get* output is still
// held (not yet Free*'d) when Kill is called, that is logged as a
// warning before the state is torn down. Held outputs are still released;
// Kill is unconditional.
func (m *Matrix) Kill() error {
	if err := m.requireState("Kill", stateOpen, stateFrozen); err != nil {
		return err
	}

	if m.anyOutputHeld() {
		m.cfg.logger.Warn().Msg("assembly: killing matrix with unfreed Get* outputs")
	}

	m.rows = nil
	m.valueStore = nil
	m.nconRow = nil
	m.voronoiV = nil
	m.entriesPerRow = nil
	m.occupiedColumns = nil
	m.diagonals = nil
	m.matPointers = nil
	m.componentValues = nil
	m.negRows, m.negCols, m.negValues = nil, nil, nil
	m.state = stateTornDown

	return nil
}

func (m *Matrix) anyOutputHeld() bool {
	return m.voronoiHeld || m.entriesPerRow != nil || m.occupiedColumns != nil ||
		m.matPointers != nil || len(m.componentValues) > 0 || m.negHeld
}
