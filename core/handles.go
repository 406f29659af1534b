// SPDX-License-Identifier: MIT
// File: handles.go
// Role: Node and Edge handles - (graph, identifier) values that never own storage.
//
// Policy:
//   - Handles are small comparable values; copy them freely.
//   - The zero value of each handle is the invalid sentinel. It is safe to
//     compare, order, print and ask for its degree or incident edges, but
//     Position/Value/Length require a handle whose graph is alive and has not
//     been cleared since.
//   - Edges store their endpoints as (min, max), so == and map keys agree with Equal.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pointgraph/point"
)

// Node is a handle to a node of a Graph.
//
// Two Nodes are equal (==) iff they come from the same Graph and carry the same
// identifier. Reads and writes through any handle go to the graph's storage, so
// every handle to the same node observes the same position and value.
type Node[V any] struct {
	g   *Graph[V]
	idx int
}

// IsValid reports whether n refers to a graph at all. It does not check that the
// identifier is still in range; use Graph.HasNode for that.
func (n Node[V]) IsValid() bool { return n.g != nil }

// Index returns the node identifier, a number in [0, NumNodes()), or InvalidIndex
// for the zero Node.
func (n Node[V]) Index() int {
	if n.g == nil {
		return InvalidIndex
	}
	return n.idx
}

// Position returns the node's current position.
func (n Node[V]) Position() point.Point {
	return n.g.nodes[n.idx].pos
}

// SetPosition moves the node to p.
func (n Node[V]) SetPosition(p point.Point) {
	n.g.nodes[n.idx].pos = p
}

// Value returns the payload stored for the node.
func (n Node[V]) Value() V {
	return n.g.nodes[n.idx].value
}

// SetValue replaces the payload stored for the node. The new value is visible
// through every handle to the same node.
func (n Node[V]) SetValue(v V) {
	n.g.nodes[n.idx].value = v
}

// Degree returns the number of neighbours, 0 for the zero Node.
// Complexity: O(1).
func (n Node[V]) Degree() int {
	if n.g == nil {
		return 0
	}
	return len(n.g.adj[n.idx])
}

// EdgeBegin returns a cursor on the first edge incident to n. For the zero
// Node it equals EdgeEnd.
func (n Node[V]) EdgeBegin() IncidentIterator[V] {
	return IncidentIterator[V]{g: n.g, node: n.idx}
}

// EdgeEnd returns the past-the-end cursor for n's incident edges.
func (n Node[V]) EdgeEnd() IncidentIterator[V] {
	return IncidentIterator[V]{g: n.g, node: n.idx, pos: n.Degree()}
}

// Incident yields every edge incident to n. Use Other(n) or the cursor's
// Neighbor for the far endpoint.
func (n Node[V]) Incident() iter.Seq[Edge[V]] {
	return func(yield func(Edge[V]) bool) {
		for it := n.EdgeBegin(); it.Valid(); it.Next() {
			if !yield(it.Edge()) {
				return
			}
		}
	}
}

// Neighbors yields every node adjacent to n, in adjacency order.
func (n Node[V]) Neighbors() iter.Seq[Node[V]] {
	return func(yield func(Node[V]) bool) {
		for it := n.EdgeBegin(); it.Valid(); it.Next() {
			if !yield(it.Neighbor()) {
				return
			}
		}
	}
}

// Equal reports whether n and m denote the same node of the same graph.
func (n Node[V]) Equal(m Node[V]) bool { return n == m }

// Less orders nodes by owning graph, then by identifier. The order has no
// geometric meaning; it exists so nodes can key ordered containers.
func (n Node[V]) Less(m Node[V]) bool {
	if n.g != m.g {
		return serialOf(n.g) < serialOf(m.g)
	}
	return n.Index() < m.Index()
}

func (n Node[V]) String() string {
	if n.g == nil {
		return "Node(invalid)"
	}
	return fmt.Sprintf("Node(%d)", n.idx)
}

// Edge is a handle to an undirected edge: an unordered pair of node identifiers
// in one Graph. It has no slot of its own, so no later AddEdge can invalidate it.
//
// The endpoints are kept as (min, max): Node1 has the smaller identifier, and
// two handles for the same pair compare equal with == whichever way round they
// were built.
type Edge[V any] struct {
	g      *Graph[V]
	lo, hi int
}

// newEdge builds the handle for {i, j} in g.
func newEdge[V any](g *Graph[V], i, j int) Edge[V] {
	if j < i {
		i, j = j, i
	}
	return Edge[V]{g: g, lo: i, hi: j}
}

// EdgeKey is the order-insensitive identity of an Edge, usable as a map key.
type EdgeKey struct {
	Graph  uint64
	Lo, Hi int
}

// IsValid reports whether e refers to a graph at all.
func (e Edge[V]) IsValid() bool { return e.g != nil }

// Node1 returns the endpoint with the smaller identifier.
func (e Edge[V]) Node1() Node[V] {
	if e.g == nil {
		return Node[V]{}
	}
	return Node[V]{g: e.g, idx: e.lo}
}

// Node2 returns the endpoint with the larger identifier.
func (e Edge[V]) Node2() Node[V] {
	if e.g == nil {
		return Node[V]{}
	}
	return Node[V]{g: e.g, idx: e.hi}
}

// Other returns the endpoint of e that is not n. The result is undefined when
// n is not an endpoint of e.
func (e Edge[V]) Other(n Node[V]) Node[V] {
	if n.idx == e.lo {
		return e.Node2()
	}
	return e.Node1()
}

// Length returns the Euclidean distance between the endpoints' positions.
func (e Edge[V]) Length() float64 {
	return e.Node1().Position().Dist(e.Node2().Position())
}

// Key returns the normalised identity of e.
func (e Edge[V]) Key() EdgeKey {
	return EdgeKey{Graph: serialOf(e.g), Lo: e.lo, Hi: e.hi}
}

// Equal reports whether e and f connect the same unordered pair in the same graph.
func (e Edge[V]) Equal(f Edge[V]) bool { return e == f }

// Less orders edges by owning graph, then by larger endpoint, then by smaller
// endpoint. Edges that are Equal are never Less than each other.
func (e Edge[V]) Less(f Edge[V]) bool {
	if e.g != f.g {
		return serialOf(e.g) < serialOf(f.g)
	}
	if e.hi != f.hi {
		return e.hi < f.hi
	}
	return e.lo < f.lo
}

func (e Edge[V]) String() string {
	if e.g == nil {
		return "Edge(invalid)"
	}
	return fmt.Sprintf("Edge(%d,%d)", e.lo, e.hi)
}

// serialOf returns g's serial, 0 for nil.
func serialOf[V any](g *Graph[V]) uint64 {
	if g == nil {
		return 0
	}
	return g.serial
}
