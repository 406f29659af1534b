// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries on top of the adjacency lists.
//
// Policy:
//   - Edges are derived from adjacency; there is no authoritative edge list.
//   - Edge handles carry endpoints only, so adding edges never invalidates them.
//   - Edge(i) numbering follows EdgeBegin order and may shift as edges are added.

package core

import (
	"fmt"
	"slices"
)

// AddEdge connects a and b and returns the edge handle.
//
// Implementation:
//   - Stage 1: Reject handles that are not members of g (ErrForeignNode) and self-loops (ErrLoopNotAllowed).
//   - Stage 2: If {a,b} is already connected, return a handle equal to the existing edge.
//   - Stage 3: Insert b into adj[a] and a into adj[b], then bump the cached edge count.
//
// Behavior highlights:
//   - Re-adding an existing pair, in either order, is not an error and leaves NumEdges unchanged.
//   - The returned edge is the same value for AddEdge(a, b) and AddEdge(b, a); Node1 is the lesser endpoint.
//
// Errors:
//   - ErrForeignNode: a or b is the zero Node, stale, or from another graph.
//   - ErrLoopNotAllowed: a == b.
//
// Complexity:
//   - Time O(min(deg(a), deg(b))) for the duplicate check, O(1) amortized insertion.
func (g *Graph[V]) AddEdge(a, b Node[V]) (Edge[V], error) {
	if !g.HasNode(a) || !g.HasNode(b) {
		return Edge[V]{}, fmt.Errorf("AddEdge(%v, %v): %w", a, b, ErrForeignNode)
	}
	if a.idx == b.idx {
		return Edge[V]{}, fmt.Errorf("AddEdge(%v, %v): %w", a, b, ErrLoopNotAllowed)
	}

	e := newEdge(g, a.idx, b.idx)
	if g.connected(a.idx, b.idx) {
		return e, nil
	}

	// Both directions are written before the count changes; nothing between
	// the two appends can fail short of a fatal allocation error.
	g.adj[a.idx] = append(g.adj[a.idx], b.idx)
	g.adj[b.idx] = append(g.adj[b.idx], a.idx)
	g.numEdges++

	return e, nil
}

// HasEdge reports whether a and b are connected. Handles that are not members
// of g are never connected.
// Complexity: O(min(deg(a), deg(b))).
func (g *Graph[V]) HasEdge(a, b Node[V]) bool {
	if !g.HasNode(a) || !g.HasNode(b) {
		return false
	}

	return g.connected(a.idx, b.idx)
}

// connected scans the shorter of the two adjacency lists; symmetry makes
// either list authoritative.
func (g *Graph[V]) connected(i, j int) bool {
	if len(g.adj[j]) < len(g.adj[i]) {
		i, j = j, i
	}

	return slices.Contains(g.adj[i], j)
}

// NumEdges returns the number of distinct unordered pairs connected by an edge.
// Complexity: O(1).
func (g *Graph[V]) NumEdges() int {
	return g.numEdges
}

// Edge returns the i-th edge in EdgeBegin order.
// Returns the zero Edge and ErrEdgeOutOfRange unless 0 <= i < NumEdges().
// Indices are reproducible while the graph is unchanged; AddEdge may renumber them.
// Complexity: O(V + E) in the worst case.
func (g *Graph[V]) Edge(i int) (Edge[V], error) {
	if i < 0 || i >= g.numEdges {
		return Edge[V]{}, fmt.Errorf("Edge(%d) with %d edges: %w", i, g.numEdges, ErrEdgeOutOfRange)
	}

	it := g.EdgeBegin()
	for ; i > 0; i-- {
		it.Next()
	}

	return it.Edge(), nil
}
