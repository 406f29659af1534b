// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// impl_random_cloud.go - RandomCloud(n, radius): a random geometric graph.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes); radius > 0 and finite (else ErrInvalidRadius);
//     an RNG is required (else ErrNeedRandSource).
//   • Positions are drawn uniformly from the cube origin + [0, spacing)³, three
//     draws per node in node order.
//   • Every pair with Dist < radius is connected, emitted in lexicographic order.
//
// Complexity:
//   • Time: O(n²) distance checks.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

const (
	methodRandomCloud = "RandomCloud"
	minCloudNodes     = 1
)

// RandomCloud returns a Constructor that scatters n points and connects every
// pair closer than radius.
func RandomCloud[V any](n int, radius float64) Constructor[V] {
	return func(g *core.Graph[V], cfg builderConfig) error {
		if n < minCloudNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomCloud, n, minCloudNodes, ErrTooFewNodes)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomCloud, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomCloud, ErrNeedRandSource)
		}

		pts := make([]point.Point, n)
		for k := range pts {
			pts[k] = cfg.at(cfg.rng.Float64(), cfg.rng.Float64(), cfg.rng.Float64())
		}
		nodes := addNodes(g, pts)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if pts[i].Dist(pts[j]) < radius {
					if err := connect(methodRandomCloud, g, nodes[i], nodes[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
