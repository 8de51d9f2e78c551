package assembly_test

import (
	"fmt"

	"github.com/fehmgrid/stormesh/assembly"
)

// ExampleMatrix demonstrates the full assembly-then-extraction lifecycle: a
// triangle of three nodes, one scalar component per entry, no compression.
func ExampleMatrix() {
	m, err := assembly.NewMatrix(3, 1, false, 1e-6)
	if err != nil {
		panic(err)
	}

	_ = m.SetEntry(1, 1, 0, []float64{1.0})
	_ = m.SetEntry(2, 2, 0, []float64{2.0})
	_ = m.SetEntry(3, 3, 0, []float64{3.0})
	_ = m.SetEntry(1, 2, 0, []float64{5.0})
	_ = m.SetEntry(1, 3, 0, []float64{6.0})

	numWritten, ncon, _, err := m.GetMatrixSizes()
	if err != nil {
		panic(err)
	}

	values, err := m.GetComponentMatrixValues(0)
	if err != nil {
		panic(err)
	}

	fmt.Println("ncon:", ncon)
	fmt.Println("numWrittenCoefs:", numWritten)
	fmt.Println("values:", values)

	_ = m.FreeComponentMatrixValues(0)
	if err := m.Kill(); err != nil {
		panic(err)
	}

	// Output:
	// ncon: 7
	// numWrittenCoefs: 5
	// values: [1 5 6 2 3]
}
