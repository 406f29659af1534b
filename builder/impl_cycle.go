// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// impl_cycle.go - Cycle(n): n nodes equally spaced on a circle, joined in a ring.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes).
//   • Node k sits at angle 2πk/n on a circle of radius spacing (XY plane).
//   • Edges {k, (k+1) mod n}, emitted in ascending k.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle[V any](n int) Constructor[V] {
	return func(g *core.Graph[V], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}

		pts := make([]point.Point, n)
		for k := range pts {
			pts[k] = cfg.onCircle(k, n)
		}
		nodes := addNodes(g, pts)

		for k := 0; k < n; k++ {
			if err := connect(methodCycle, g, nodes[k], nodes[(k+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
