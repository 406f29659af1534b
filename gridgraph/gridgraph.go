// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if !nonNegFinite(opts.Spacing) || !nonNegFinite(opts.HeightScale) {
		return nil, ErrInvalidSpacing
	}
	if opts.Conn != Conn4 && opts.Conn != Conn8 {
		return nil, fmt.Errorf("Conn=%d: %w", opts.Conn, ErrInvalidConnectivity)
	}
	if opts.Spacing == 0 {
		opts.Spacing = 1
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		Spacing:         opts.Spacing,
		HeightScale:     opts.HeightScale,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

func nonNegFinite(f float64) bool {
	return f >= 0 && !math.IsInf(f, 1)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the (dx,dy) steps for gg.Conn.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Position returns the world position of cell (x,y).
func (gg *GridGraph) Position(x, y int) point.Point {
	return point.New(
		float64(x)*gg.Spacing,
		float64(y)*gg.Spacing,
		float64(gg.CellValues[y][x])*gg.HeightScale,
	)
}

// ToCoreGraph builds a point graph of the land cells. Nodes are added in
// row-major order with their Cell as payload; edges join land neighbours.
//
// The returned slice is indexed by row-major cell index and holds the node
// for each land cell and the zero (invalid) Node for water.
// Errors from core.AddEdge are returned wrapped; with a well-formed GridGraph
// there are none.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph[Cell], []core.Node[Cell], error) {
	g := core.NewGraph[Cell]()
	byCell := make([]core.Node[Cell], gg.Width*gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			byCell[gg.index(x, y)] = g.AddNodeWithValue(gg.Position(x, y), Cell{X: x, Y: y, Value: gg.CellValues[y][x]})
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := byCell[gg.index(x, y)]
			if !u.IsValid() {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				// The reverse visit collapses onto the same edge.
				if _, err := g.AddEdge(u, byCell[gg.index(nx, ny)]); err != nil {
					return nil, nil, fmt.Errorf("ToCoreGraph: cell (%d,%d): %w", x, y, err)
				}
			}
		}
	}
	return g, byCell, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
