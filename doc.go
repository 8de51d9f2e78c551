// Package stormesh assembles symmetric sparse finite-volume/finite-element
// matrices from a stream of per-edge element contributions and extracts the
// flat arrays a FEHM-style .stor file is built from.
//
// What is stormesh?
//
//	A small assembly engine (one Matrix is single-goroutine use only;
//	distinct Matrix values are independent) that brings together:
//
//	  - assembly/  — the Matrix type: Open/Frozen/TornDown lifecycle, SetEntry
//	    accumulation, tolerance-based value compression, and the extraction
//	    pass that yields ncon, entries-per-row, occupied columns, matrix
//	    pointers and per-component values in the layout a .stor writer expects
//	  - densify/   — reconstructs a dense symmetric view of one frozen
//	    component for verification and spectral diagnostics, never on the
//	    hot assembly path
//	  - meshfixture/ — deterministic structured-grid element streams for
//	    exercising assembly.Matrix in tests and examples
//
// Under the hood, assembly and densify are supported by two packages kept
// from the graph toolkit this module grew out of, each trimmed to the
// minimal slice the domain above actually exercises:
//
//	gridgraph/ — wraps a rectangular grid of cell values with precomputed
//	             neighbor offsets; meshfixture builds one to hold its
//	             synthetic cell-value field
//	matrix/    — a minimal dense matrix type and Jacobi eigendecomposition;
//	             densify's spectral diagnostics build on it
//
// See SPEC_FULL.md for the full module specification and DESIGN.md for the
// grounding of each package in the corpus it was adapted from.
package stormesh
