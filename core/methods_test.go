// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

// TestGraph_AddNodeIdentifiers checks that the k-th AddNode returns index k-1
// and that NumNodes tracks the call count.
func TestGraph_AddNodeIdentifiers(t *testing.T) {
	g := core.NewGraph[string]()
	require.Equal(t, 0, g.NumNodes())

	for k := 1; k <= 50; k++ {
		n := g.AddNode(point.New(float64(k), 0, 0))
		require.Equal(t, k-1, n.Index())
		require.Equal(t, k, g.NumNodes())
		require.Equal(t, k, g.Size())
		require.True(t, g.HasNode(n))
	}
}

func TestGraph_AddNodeStoresPositionAndValue(t *testing.T) {
	g := core.NewGraph[string]()
	a := g.AddNode(P1)
	b := g.AddNodeWithValue(P2, "payload")

	assert.Equal(t, P1, a.Position())
	assert.Equal(t, "", a.Value(), "default payload is the zero value")
	assert.Equal(t, P2, b.Position())
	assert.Equal(t, "payload", b.Value())
}

func TestGraph_Node(t *testing.T) {
	g, nodes := newLineGraph(t, 3)

	for i, want := range nodes {
		got, err := g.Node(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, i, got.Index())
	}

	for _, i := range []int{-1, 3, 100} {
		n, err := g.Node(i)
		assert.ErrorIs(t, err, core.ErrNodeOutOfRange, "Node(%d)", i)
		assert.False(t, n.IsValid())
		assert.Equal(t, core.InvalidIndex, n.Index())
	}
}

func TestGraph_HasNode(t *testing.T) {
	g, nodes := newLineGraph(t, 2)
	other, otherNodes := newLineGraph(t, 2)

	assert.True(t, g.HasNode(nodes[0]))
	assert.False(t, g.HasNode(core.Node[int]{}), "zero Node is never a member")
	assert.False(t, g.HasNode(otherNodes[0]), "foreign node")
	assert.True(t, other.HasNode(otherNodes[1]))

	g.Clear()
	assert.False(t, g.HasNode(nodes[0]), "stale after Clear")
}

// TestGraph_Scenario walks through the canonical three-node scenario.
func TestGraph_Scenario(t *testing.T) {
	g := core.NewGraph[struct{}]()
	n0 := g.AddNode(P0)
	n1 := g.AddNode(P1)
	n2 := g.AddNode(P2)
	require.Equal(t, 3, g.NumNodes())

	e01 := mustAddEdge(t, g, n0, n1)
	assert.Equal(t, 1, g.NumEdges())
	assert.True(t, g.HasEdge(n0, n1))
	assert.False(t, g.HasEdge(n1, n2))

	rev := mustAddEdge(t, g, n1, n0)
	assert.Equal(t, 1, g.NumEdges(), "reversed duplicate must not grow the graph")
	assert.True(t, rev.Equal(e01))

	mustAddEdge(t, g, n1, n2)
	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, []pair{{0, 1}, {1, 2}}, sortPairs(collectEdges(g)))
}

func TestGraph_AddEdgeSymmetricAndIdempotent(t *testing.T) {
	g, nodes := newLineGraph(t, 6)

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j += 2 {
			a, b := nodes[i], nodes[j]
			before := g.NumEdges()
			first := mustAddEdge(t, g, a, b)
			require.Equal(t, before+1, g.NumEdges())
			require.True(t, g.HasEdge(a, b))
			require.True(t, g.HasEdge(b, a))

			again := mustAddEdge(t, g, a, b)
			swapped := mustAddEdge(t, g, b, a)
			require.Equal(t, before+1, g.NumEdges())
			require.True(t, again.Equal(first))
			require.True(t, swapped.Equal(first))
		}
	}
}

func TestGraph_AddEdgeRejectsLoopsAndForeignNodes(t *testing.T) {
	g, nodes := newLineGraph(t, 2)
	_, foreign := newLineGraph(t, 2)

	e, err := g.AddEdge(nodes[0], nodes[0])
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.False(t, e.IsValid())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 0, nodes[0].Degree())

	cases := []struct {
		name string
		a, b core.Node[int]
	}{
		{"ZeroFirst", core.Node[int]{}, nodes[1]},
		{"ZeroSecond", nodes[0], core.Node[int]{}},
		{"ForeignFirst", foreign[0], nodes[1]},
		{"ForeignSecond", nodes[0], foreign[1]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := g.AddEdge(tc.a, tc.b)
			assert.ErrorIs(t, err, core.ErrForeignNode)
			assert.False(t, e.IsValid())
			assert.Equal(t, 0, g.NumEdges())
			assert.False(t, g.HasEdge(tc.a, tc.b))
		})
	}
}

// TestGraph_AddEdgeKeepsOldHandles checks that edges obtained earlier still
// denote the same pair after many insertions.
func TestGraph_AddEdgeKeepsOldHandles(t *testing.T) {
	g, nodes := newLineGraph(t, 20)
	first := mustAddEdge(t, g, nodes[7], nodes[3])

	for i := 0; i+1 < len(nodes); i++ {
		mustAddEdge(t, g, nodes[i], nodes[i+1])
	}

	assert.Equal(t, nodes[3], first.Node1(), "lesser endpoint first")
	assert.Equal(t, nodes[7], first.Node2())
	assert.True(t, g.HasEdge(first.Node1(), first.Node2()))
}

func TestGraph_Edge(t *testing.T) {
	g, nodes := newLineGraph(t, 4)
	mustAddEdge(t, g, nodes[2], nodes[3])
	mustAddEdge(t, g, nodes[0], nodes[2])
	mustAddEdge(t, g, nodes[1], nodes[0])

	listed := collectEdges(g)
	require.Len(t, listed, g.NumEdges())
	for i := 0; i < g.NumEdges(); i++ {
		e, err := g.Edge(i)
		require.NoError(t, err)
		assert.Equal(t, listed[i], pairOf(e), "Edge(%d) follows EdgeBegin order", i)
	}

	for _, i := range []int{-1, 3} {
		e, err := g.Edge(i)
		assert.ErrorIs(t, err, core.ErrEdgeOutOfRange, "Edge(%d)", i)
		assert.False(t, e.IsValid())
	}
}

func TestGraph_Clear(t *testing.T) {
	g, nodes := newLineGraph(t, 3)
	mustAddEdge(t, g, nodes[0], nodes[1])
	mustAddEdge(t, g, nodes[1], nodes[2])

	g.Clear()
	assert.Equal(t, 0, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
	assert.Empty(t, collectEdges(g))
	assert.Equal(t, g.NodeBegin(), g.NodeEnd())

	n := g.AddNode(P3)
	assert.Equal(t, 0, n.Index(), "identifiers restart at 0")
	assert.Equal(t, P3, n.Position())
	assert.Equal(t, 0, n.Degree())
}

func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph[int]()
	st := g.Stats()
	assert.Equal(t, core.GraphStats{}, *st)

	hub := g.AddNode(P0)
	for _, p := range []point.Point{P1, P2, P3} {
		mustAddEdge(t, g, hub, g.AddNode(p))
	}
	g.AddNode(point.New(-1, -1, -1))

	st = g.Stats()
	assert.Equal(t, 5, st.NodeCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, 3, st.MaxDegree)
	assert.Equal(t, 1, st.IsolatedCount)
	assert.Equal(t, point.New(-1, -1, -1), st.Bounds.Min)
	assert.Equal(t, point.New(1, 1, 1), st.Bounds.Max)
}
