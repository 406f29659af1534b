// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node storage - creation, lookup, membership and reset.
//
// Determinism:
//   - Identifiers are dense and issued in creation order; they are never reused
//     or renumbered until Clear.

package core

import (
	"fmt"

	"github.com/katalvlaran/pointgraph/point"
)

// AddNode appends a node at position p with the zero payload and returns its handle.
// The returned handle's Index() equals the previous NumNodes().
// Complexity: O(1) amortized.
func (g *Graph[V]) AddNode(p point.Point) Node[V] {
	var zero V
	return g.AddNodeWithValue(p, zero)
}

// AddNodeWithValue appends a node at position p carrying value v.
//
// Implementation:
//   - Stage 1: Append the node record.
//   - Stage 2: Append an empty adjacency entry so adj and nodes stay the same length.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddNodeWithValue(p point.Point, v V) Node[V] {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, nodeRecord[V]{pos: p, value: v})
	g.adj = append(g.adj, nil)

	return Node[V]{g: g, idx: idx}
}

// Node returns the handle for identifier i.
// Returns the zero Node and ErrNodeOutOfRange unless 0 <= i < NumNodes().
// Complexity: O(1).
func (g *Graph[V]) Node(i int) (Node[V], error) {
	if i < 0 || i >= len(g.nodes) {
		return Node[V]{}, fmt.Errorf("Node(%d) with %d nodes: %w", i, len(g.nodes), ErrNodeOutOfRange)
	}

	return Node[V]{g: g, idx: i}, nil
}

// NumNodes returns the number of nodes.
// Complexity: O(1).
func (g *Graph[V]) NumNodes() int {
	return len(g.nodes)
}

// Size is a synonym for NumNodes.
func (g *Graph[V]) Size() int {
	return g.NumNodes()
}

// HasNode reports whether n was produced by this graph and its identifier is
// within the current bounds. The zero Node is never a member.
// Complexity: O(1).
func (g *Graph[V]) HasNode(n Node[V]) bool {
	return n.g == g && n.idx >= 0 && n.idx < len(g.nodes)
}

// Clear removes every node and edge. The Graph stays usable and the next
// AddNode reissues identifier 0. Outstanding handles and iterators become
// meaningless and must not be dereferenced.
// Complexity: O(1); the old storage is released to the garbage collector.
func (g *Graph[V]) Clear() {
	g.nodes = nil
	g.adj = nil
	g.numEdges = 0
}
