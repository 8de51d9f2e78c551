package meshfixture_test

import (
	"fmt"

	"github.com/fehmgrid/stormesh/meshfixture"
)

func Example() {
	fx, err := meshfixture.Build(2, 3, 1, false, 1e-6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	numWritten, ncon, nconMax, err := fx.Matrix.GetMatrixSizes()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("numWrittenCoefs:", numWritten)
	fmt.Println("ncon:", ncon)
	fmt.Println("nconMax:", nconMax)
	// Output:
	// numWrittenCoefs: 13
	// ncon: 20
	// nconMax: 4
}
