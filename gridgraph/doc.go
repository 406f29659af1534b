// SPDX-License-Identifier: MIT
// Package gridgraph turns a 2D grid of integer cells (a heightmap or an
// occupancy map) into a positioned point graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are "land"; everything else is "water".
//   - ToCoreGraph emits one node per land cell at (x·Spacing, y·Spacing,
//     value·HeightScale), carrying its Cell as payload, and links neighbouring
//     land cells under Conn4 or Conn8.
//   - ConnectedComponents finds land "islands" directly on the grid.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbours, 4 or 8).
//   - ToCoreGraph:         O(W×H×d),  Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered land.
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//   - GridOptions.Spacing: cell pitch in world units (0 means 1).
//   - GridOptions.HeightScale: Z per unit of cell value (0 gives a flat mesh).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidSpacing: Spacing or HeightScale is negative or not finite.
//   - ErrInvalidConnectivity: Conn is neither Conn4 nor Conn8.
package gridgraph
