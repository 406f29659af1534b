// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// impl_path.go - Path(n): n nodes on the +X axis joined in a chain.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Node k sits at origin + (k·spacing, 0, 0).
//   • Edges {k, k+1} for k = 0..n-2, emitted in ascending k.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path[V any](n int) Constructor[V] {
	return func(g *core.Graph[V], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}

		pts := make([]point.Point, n)
		for k := range pts {
			pts[k] = cfg.at(float64(k), 0, 0)
		}
		nodes := addNodes(g, pts)

		for k := 0; k+1 < n; k++ {
			if err := connect(methodPath, g, nodes[k], nodes[k+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
