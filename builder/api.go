// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before adding anything and return sentinel errors (no panics).
//   - Append nodes after those already in g, never touching existing ones.
//   - Preserve determinism for the same config and call order.
type Constructor[V any] func(g *core.Graph[V], cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph[V any](bopts []BuilderOption, cons ...Constructor[V]) (*core.Graph[V], error) {
	g := core.NewGraph[V]()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph, appending to it.
func Apply[V any](g *core.Graph[V], bopts []BuilderOption, cons ...Constructor[V]) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addNodes appends one node per position and returns their handles.
func addNodes[V any](g *core.Graph[V], pts []point.Point) []core.Node[V] {
	nodes := make([]core.Node[V], len(pts))
	for i, p := range pts {
		nodes[i] = g.AddNode(p)
	}

	return nodes
}

// connect adds edge {a,b}, wrapping any core error with the method tag.
func connect[V any](method string, g *core.Graph[V], a, b core.Node[V]) error {
	if _, err := g.AddEdge(a, b); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
