// SPDX-License-Identifier: MIT

package gonumgraph

import (
	"math"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/pointgraph/core"
)

var (
	_ graph.WeightedUndirected = (*Undirected[struct{}])(nil)
	_ graph.WeightedEdge       = Edge[struct{}]{}
	_ graph.Node               = Node[struct{}]{}
)

// Undirected is a read-only gonum view of a core.Graph.
type Undirected[V any] struct {
	g *core.Graph[V]
}

// New returns a view of g.
func New[V any](g *core.Graph[V]) *Undirected[V] {
	return &Undirected[V]{g: g}
}

// Graph returns the underlying core graph.
func (u *Undirected[V]) Graph() *core.Graph[V] { return u.g }

// Node returns the node with the given ID, or nil if it does not exist.
func (u *Undirected[V]) Node(id int64) graph.Node {
	n, ok := u.node(id)
	if !ok {
		return nil
	}
	return Node[V]{n}
}

func (u *Undirected[V]) node(id int64) (core.Node[V], bool) {
	if id < 0 || id >= int64(u.g.NumNodes()) {
		return core.Node[V]{}, false
	}
	n, err := u.g.Node(int(id))
	return n, err == nil
}

// Nodes returns all nodes in index order.
func (u *Undirected[V]) Nodes() graph.Nodes {
	if u.g.NumNodes() == 0 {
		return graph.Empty
	}
	it := &allNodes[V]{g: u.g}
	it.Reset()
	return it
}

// From returns the neighbours of the node with the given ID, in adjacency order.
func (u *Undirected[V]) From(id int64) graph.Nodes {
	n, ok := u.node(id)
	if !ok || n.Degree() == 0 {
		return graph.Empty
	}
	it := &incidentNodes[V]{n: n}
	it.Reset()
	return it
}

// HasEdgeBetween reports whether x and y are adjacent.
func (u *Undirected[V]) HasEdgeBetween(xid, yid int64) bool {
	x, okx := u.node(xid)
	y, oky := u.node(yid)
	return okx && oky && u.g.HasEdge(x, y)
}

// Edge returns the edge from uid to vid, or nil when they are not adjacent.
func (u *Undirected[V]) Edge(uid, vid int64) graph.Edge {
	return u.WeightedEdge(uid, vid)
}

// EdgeBetween is Edge; orientation carries no meaning in an undirected view.
func (u *Undirected[V]) EdgeBetween(xid, yid int64) graph.Edge {
	return u.WeightedEdge(xid, yid)
}

// WeightedEdge returns the edge from uid to vid weighted by its length, or nil.
func (u *Undirected[V]) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	x, okx := u.node(uid)
	y, oky := u.node(vid)
	if !okx || !oky || !u.g.HasEdge(x, y) {
		return nil
	}
	return Edge[V]{F: Node[V]{x}, T: Node[V]{y}}
}

// WeightedEdgeBetween is WeightedEdge.
func (u *Undirected[V]) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	return u.WeightedEdge(xid, yid)
}

// Weight returns the length of edge {x,y}. A node has weight 0 to itself;
// non-adjacent pairs report +Inf and false.
func (u *Undirected[V]) Weight(xid, yid int64) (w float64, ok bool) {
	x, okx := u.node(xid)
	if okx && xid == yid {
		return 0, true
	}
	y, oky := u.node(yid)
	if !okx || !oky || !u.g.HasEdge(x, y) {
		return math.Inf(1), false
	}
	return x.Position().Dist(y.Position()), true
}

// Node wraps a core.Node as a graph.Node.
type Node[V any] struct {
	core.Node[V]
}

// ID returns the core node index.
func (n Node[V]) ID() int64 { return int64(n.Index()) }

// Edge is an edge of the view, oriented From F To T.
type Edge[V any] struct {
	F, T Node[V]
}

// From returns the from node.
func (e Edge[V]) From() graph.Node { return e.F }

// To returns the to node.
func (e Edge[V]) To() graph.Node { return e.T }

// ReversedEdge returns e with its endpoints swapped.
func (e Edge[V]) ReversedEdge() graph.Edge { return Edge[V]{F: e.T, T: e.F} }

// Weight returns the Euclidean distance between the endpoints.
func (e Edge[V]) Weight() float64 {
	return e.F.Position().Dist(e.T.Position())
}
