// Package meshfixture generates small, deterministic structured-grid element
// streams for exercising an assembly.Matrix in tests and examples. It is not
// a mesh generator or finite-element driver: the "permeability" field and
// the two-point flux coefficients derived from it are toy values chosen for
// reproducibility, not physical accuracy.
//
// A Fixture wraps a gridgraph.GridGraph holding its deterministic cell-value
// field and feeds one SetEntry call per grid edge
// into a freshly built assembly.Matrix, in row-major order with the east
// neighbor emitted before the south neighbor for each cell.
package meshfixture
