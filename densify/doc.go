// Package densify renders a frozen assembly.Matrix component into a dense,
// symmetric matrix.Dense for verification and spectral diagnostics.
//
// This package is never on the hot assembly path: a real mesh has far too
// many nodes to densify. It exists for test fixtures, small worked examples,
// and tooling that wants to sanity-check an assembled component against a
// reference dense computation (e.g. "is this stiffness matrix numerically
// symmetric and positive semi-definite").
package densify
