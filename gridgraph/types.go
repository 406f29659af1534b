// SPDX-License-Identifier: MIT

package gridgraph

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is the payload of every node produced by ToCoreGraph.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered land.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Spacing is the distance between adjacent cell centres; 0 means 1.
	Spacing float64
	// HeightScale maps a cell value to its Z coordinate.
	HeightScale float64
}

// DefaultGridOptions returns LandThreshold=1, Conn4, unit spacing and a flat mesh.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
		Spacing:       1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	Spacing         float64
	HeightScale     float64
	neighborOffsets [][2]int
}
