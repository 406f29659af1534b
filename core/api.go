// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries of a Graph.
// Policy:
//   - No mutation and no hidden state here.
//   - Every exported function documents its complexity.

package core

import "github.com/katalvlaran/pointgraph/point"

// GraphStats is a snapshot of a graph's size and shape.
type GraphStats struct {
	NodeCount     int       // number of nodes
	EdgeCount     int       // number of undirected edges
	MaxDegree     int       // largest node degree, 0 for an empty graph
	IsolatedCount int       // nodes with degree 0
	Bounds        point.Box // bounding box of all node positions
}

// Stats produces a snapshot of node/edge counts, degree extremes and the
// bounding box of node positions.
//
// Implementation:
//   - Stage 1: Copy the cached counts.
//   - Stage 2: One pass over the node records and adjacency lists.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph[V]) Stats() *GraphStats {
	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: g.numEdges,
	}

	for i := range g.nodes {
		stats.Bounds = stats.Bounds.Extend(g.nodes[i].pos)
		d := len(g.adj[i])
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if d == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}
