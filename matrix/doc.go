// Package matrix provides the minimal dense-matrix surface densify needs to
// reconstruct and inspect one frozen component of an assembly.Matrix: a
// row-major Dense store behind the Matrix interface ops.Eigen operates on.
//
// This is not a general-purpose linear-algebra package: adjacency/incidence
// conversions, graph builders, LU/QR/inverse and statistics live in the
// wider graph toolkit this module grew out of and are out of scope here —
// assembly never solves or decomposes anything, it only assembles.
package matrix
