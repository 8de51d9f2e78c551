package densify_test

import (
	"testing"

	"github.com/fehmgrid/stormesh/assembly"
	"github.com/fehmgrid/stormesh/densify"
	"github.com/stretchr/testify/require"
)

func TestDominantEigenSign_DiagonalMatrix(t *testing.T) {
	t.Parallel()

	m, err := assembly.NewMatrix(3, 1, false, 1e-6)
	require.NoError(t, err)
	require.NoError(t, m.SetEntry(1, 1, 0, []float64{-5.0}))
	require.NoError(t, m.SetEntry(2, 2, 0, []float64{-2.0}))
	require.NoError(t, m.SetEntry(3, 3, 0, []float64{-1.0}))
	_, _, _, err = m.GetMatrixSizes()
	require.NoError(t, err)

	dominant, err := densify.DominantEigenSign(m, 0, 1e-9, 100)
	require.NoError(t, err)
	require.InDelta(t, -5.0, dominant, 1e-6)
}
