// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// impl_star.go - Star(n) and Wheel(n): a hub at the origin plus n-1 rim nodes
// on a circle.
//
// Contract:
//   • Star: n ≥ 2; Wheel: n ≥ 4 (else ErrTooFewNodes).
//   • The hub is the first node added; rim node k (1..n-1) sits at angle 2π(k-1)/(n-1).
//   • Star emits spokes {hub, k} in ascending k; Wheel adds the rim ring
//     {k, k+1} and closes it with {n-1, 1}.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star[V any](n int) Constructor[V] {
	return func(g *core.Graph[V], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		_, err := addHubAndRim(methodStar, g, cfg, n)
		return err
	}
}

// Wheel returns a Constructor that builds W_n: a star whose leaves also form a cycle.
func Wheel[V any](n int) Constructor[V] {
	return func(g *core.Graph[V], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewNodes)
		}
		rim, err := addHubAndRim(methodWheel, g, cfg, n)
		if err != nil {
			return err
		}
		for k := range rim {
			if err := connect(methodWheel, g, rim[k], rim[(k+1)%len(rim)]); err != nil {
				return err
			}
		}

		return nil
	}
}

// addHubAndRim adds the hub and rim nodes plus the spokes, returning the rim.
func addHubAndRim[V any](method string, g *core.Graph[V], cfg builderConfig, n int) ([]core.Node[V], error) {
	hub := g.AddNode(cfg.at(0, 0, 0))

	pts := make([]point.Point, n-1)
	for k := range pts {
		pts[k] = cfg.onCircle(k, n-1)
	}
	rim := addNodes(g, pts)

	for _, leaf := range rim {
		if err := connect(method, g, hub, leaf); err != nil {
			return nil, err
		}
	}

	return rim, nil
}
