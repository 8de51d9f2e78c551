// Package gridgraph models a rectangular grid of integer cell values as a
// field of addressable nodes, with four- or eight-directional connectivity
// precomputed at construction time.
//
// What:
//
//   - GridGraph wraps an immutable, deep-copied [][]int of cell values.
//   - NeighborOffsets gives the (dx,dy) pairs for the grid's connectivity.
//   - InBounds tests whether a coordinate lies on the grid.
//
// Why: meshfixture lays synthetic FEM/FV meshes out on a grid and keeps a
// GridGraph of their cell values alongside the assembled matrix. Its own
// edge walk enumerates east/south neighbors directly; it does not call
// NeighborOffsets or InBounds.
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
package gridgraph
