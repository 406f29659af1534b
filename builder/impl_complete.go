// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// impl_complete.go - Complete(n): K_n with nodes on a circle.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes).
//   • Edges {i, j} for all i < j, emitted in lexicographic order.
//
// Complexity:
//   • Time: O(n²) edges; each AddEdge is O(n) for the duplicate scan, O(n³) overall.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete[V any](n int) Constructor[V] {
	return func(g *core.Graph[V], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}

		pts := make([]point.Point, n)
		if n == 1 {
			pts[0] = cfg.at(0, 0, 0)
		} else {
			for k := range pts {
				pts[k] = cfg.onCircle(k, n)
			}
		}
		nodes := addNodes(g, pts)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(methodComplete, g, nodes[i], nodes[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
