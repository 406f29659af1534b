// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// impl_grid.go - Grid(nx, ny, nz): a 3D lattice with 6-neighbourhood.
//
// Canonical model:
//   • Node (x,y,z) is added in x-fastest order, i.e. local index x + nx·(y + ny·z),
//     at origin + spacing·(x,y,z).
//   • For each node emit +X, +Y, +Z neighbours where they exist.
//   • Setting nz=1 yields a planar grid, ny=nz=1 a path.
//
// Contract:
//   • nx, ny, nz ≥ 1 (else ErrTooFewNodes).
//
// Complexity:
//   • Time: O(nx·ny·nz) nodes and at most 3·nx·ny·nz edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds an nx×ny×nz lattice.
func Grid[V any](nx, ny, nz int) Constructor[V] {
	return func(g *core.Graph[V], cfg builderConfig) error {
		if nx < minGridDim || ny < minGridDim || nz < minGridDim {
			return fmt.Errorf("%s: nx=%d, ny=%d, nz=%d (each must be ≥ %d): %w",
				methodGrid, nx, ny, nz, minGridDim, ErrTooFewNodes)
		}

		idx := func(x, y, z int) int { return x + nx*(y+ny*z) }

		pts := make([]point.Point, nx*ny*nz)
		for z := 0; z < nz; z++ {
			for y := 0; y < ny; y++ {
				for x := 0; x < nx; x++ {
					pts[idx(x, y, z)] = cfg.at(float64(x), float64(y), float64(z))
				}
			}
		}
		nodes := addNodes(g, pts)

		for z := 0; z < nz; z++ {
			for y := 0; y < ny; y++ {
				for x := 0; x < nx; x++ {
					u := nodes[idx(x, y, z)]
					if x+1 < nx {
						if err := connect(methodGrid, g, u, nodes[idx(x+1, y, z)]); err != nil {
							return err
						}
					}
					if y+1 < ny {
						if err := connect(methodGrid, g, u, nodes[idx(x, y+1, z)]); err != nil {
							return err
						}
					}
					if z+1 < nz {
						if err := connect(methodGrid, g, u, nodes[idx(x, y, z+1)]); err != nil {
							return err
						}
					}
				}
			}
		}

		return nil
	}
}
