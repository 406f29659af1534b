// SPDX-License-Identifier: MIT
// File: iterators.go
// Role: Forward cursors over nodes, all edges and incident edges, plus the
// range-over-func sequences built on them.
//
// Policy:
//   - Cursors are plain values holding (graph, position); == compares graph and position.
//   - Every *Begin call returns a fresh cursor; copying a cursor forks it.
//   - Cursors read the graph's current state on each step. Growing the graph during
//     iteration never corrupts memory, but whether new elements are visited is unspecified.
//
// Usage:
//
//	for it := g.EdgeBegin(); it != g.EdgeEnd(); it.Next() {
//		e := it.Edge()
//		...
//	}

package core

import "iter"

// NodeIterator walks node identifiers 0..NumNodes()-1 in order.
type NodeIterator[V any] struct {
	g   *Graph[V]
	pos int
}

// NodeBegin returns a cursor on node 0.
func (g *Graph[V]) NodeBegin() NodeIterator[V] {
	return NodeIterator[V]{g: g}
}

// NodeEnd returns the past-the-end node cursor.
func (g *Graph[V]) NodeEnd() NodeIterator[V] {
	return NodeIterator[V]{g: g, pos: len(g.nodes)}
}

// Valid reports whether the cursor points at a node.
func (it NodeIterator[V]) Valid() bool {
	return it.g != nil && it.pos < len(it.g.nodes)
}

// Node dereferences the cursor. Requires Valid().
func (it NodeIterator[V]) Node() Node[V] {
	return Node[V]{g: it.g, idx: it.pos}
}

// Next advances the cursor by one node.
func (it *NodeIterator[V]) Next() {
	it.pos++
}

// Nodes yields every node in identifier order.
func (g *Graph[V]) Nodes() iter.Seq[Node[V]] {
	return func(yield func(Node[V]) bool) {
		for it := g.NodeBegin(); it.Valid(); it.Next() {
			if !yield(it.Node()) {
				return
			}
		}
	}
}

// EdgeIterator visits every undirected edge exactly once.
//
// It walks node identifiers in increasing order and, for each node, its
// adjacency list, stopping only at neighbours with a larger identifier. Every
// pair {lo,hi} is therefore produced once, from lo. The dereferenced Edge has
// Node1().Index() < Node2().Index().
type EdgeIterator[V any] struct {
	g    *Graph[V]
	node int
	pos  int
}

// EdgeBegin returns a cursor on the first edge, or a cursor equal to EdgeEnd
// when the graph has no edges.
// Complexity: O(V + E) in the worst case to find the first edge.
func (g *Graph[V]) EdgeBegin() EdgeIterator[V] {
	it := EdgeIterator[V]{g: g}
	it.settle()
	return it
}

// EdgeEnd returns the past-the-end cursor (node = NumNodes(), pos = 0).
func (g *Graph[V]) EdgeEnd() EdgeIterator[V] {
	return EdgeIterator[V]{g: g, node: len(g.adj)}
}

// Valid reports whether the cursor points at an edge.
func (it EdgeIterator[V]) Valid() bool {
	return it.g != nil && it.node < len(it.g.adj) && it.pos < len(it.g.adj[it.node])
}

// Edge dereferences the cursor. Requires Valid().
func (it EdgeIterator[V]) Edge() Edge[V] {
	return Edge[V]{g: it.g, lo: it.node, hi: it.g.adj[it.node][it.pos]}
}

// Next advances to the next edge. Advancing an exhausted cursor is a no-op.
func (it *EdgeIterator[V]) Next() {
	if !it.Valid() {
		return
	}
	it.pos++
	it.settle()
}

// settle moves the cursor forward until it rests on a neighbour greater than
// the current node, or on the end position.
func (it *EdgeIterator[V]) settle() {
	for it.node < len(it.g.adj) {
		nbrs := it.g.adj[it.node]
		for ; it.pos < len(nbrs); it.pos++ {
			if nbrs[it.pos] > it.node {
				return
			}
		}
		it.node++
		it.pos = 0
	}
}

// Edges yields every edge exactly once, in EdgeBegin order.
func (g *Graph[V]) Edges() iter.Seq[Edge[V]] {
	return func(yield func(Edge[V]) bool) {
		for it := g.EdgeBegin(); it.Valid(); it.Next() {
			if !yield(it.Edge()) {
				return
			}
		}
	}
}

// IncidentIterator walks the adjacency list of one node in storage order.
type IncidentIterator[V any] struct {
	g    *Graph[V]
	node int
	pos  int
}

// Valid reports whether the cursor points at an incident edge.
func (it IncidentIterator[V]) Valid() bool {
	return it.g != nil && it.node < len(it.g.adj) && it.pos < len(it.g.adj[it.node])
}

// Edge dereferences the cursor: the edge joining the fixed node and the current
// neighbour. Requires Valid().
func (it IncidentIterator[V]) Edge() Edge[V] {
	return newEdge(it.g, it.node, it.g.adj[it.node][it.pos])
}

// Neighbor returns the far endpoint of the current edge. Requires Valid().
func (it IncidentIterator[V]) Neighbor() Node[V] {
	return Node[V]{g: it.g, idx: it.g.adj[it.node][it.pos]}
}

// Next advances to the next neighbour.
func (it *IncidentIterator[V]) Next() {
	it.pos++
}
