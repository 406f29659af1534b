// SPDX-License-Identifier: MIT

package gonumgraph

import (
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/pointgraph/core"
)

// allNodes adapts core.NodeIterator to graph.Nodes.
type allNodes[V any] struct {
	g    *core.Graph[V]
	next core.NodeIterator[V]
	cur  core.Node[V]
	left int
}

func (it *allNodes[V]) Next() bool {
	if !it.next.Valid() {
		it.cur = core.Node[V]{}
		return false
	}
	it.cur = it.next.Node()
	it.next.Next()
	it.left--
	return true
}

func (it *allNodes[V]) Len() int { return it.left }

func (it *allNodes[V]) Node() graph.Node {
	if !it.cur.IsValid() {
		return nil
	}
	return Node[V]{it.cur}
}

func (it *allNodes[V]) Reset() {
	it.next = it.g.NodeBegin()
	it.cur = core.Node[V]{}
	it.left = it.g.NumNodes()
}

// incidentNodes adapts core.IncidentIterator to graph.Nodes, yielding the far
// endpoint of each incident edge.
type incidentNodes[V any] struct {
	n    core.Node[V]
	next core.IncidentIterator[V]
	cur  core.Node[V]
	left int
}

func (it *incidentNodes[V]) Next() bool {
	if !it.next.Valid() {
		it.cur = core.Node[V]{}
		return false
	}
	it.cur = it.next.Neighbor()
	it.next.Next()
	it.left--
	return true
}

func (it *incidentNodes[V]) Len() int { return it.left }

func (it *incidentNodes[V]) Node() graph.Node {
	if !it.cur.IsValid() {
		return nil
	}
	return Node[V]{it.cur}
}

func (it *incidentNodes[V]) Reset() {
	it.next = it.n.EdgeBegin()
	it.cur = core.Node[V]{}
	it.left = it.n.Degree()
}
