// SPDX-License-Identifier: MIT
package core_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

func TestNodeIterator(t *testing.T) {
	g, nodes := newLineGraph(t, 5)

	var got []core.Node[int]
	for it := g.NodeBegin(); it != g.NodeEnd(); it.Next() {
		require.True(t, it.Valid())
		got = append(got, it.Node())
	}
	assert.Equal(t, nodes, got)

	var ranged []core.Node[int]
	for n := range g.Nodes() {
		ranged = append(ranged, n)
	}
	assert.Equal(t, nodes, ranged)

	// Each Begin call is a fresh cursor; copies advance independently.
	a := g.NodeBegin()
	b := a
	a.Next()
	assert.Equal(t, 0, b.Node().Index())
	assert.Equal(t, 1, a.Node().Index())
	assert.NotEqual(t, a, b)

	// Cursors of different graphs never compare equal.
	other, _ := newLineGraph(t, 5)
	assert.NotEqual(t, g.NodeBegin(), other.NodeBegin())
}

func TestNodeIterator_EmptyGraph(t *testing.T) {
	g := core.NewGraph[int]()
	assert.Equal(t, g.NodeBegin(), g.NodeEnd())
	assert.False(t, g.NodeBegin().Valid())
	for range g.Nodes() {
		t.Fatal("empty graph yielded a node")
	}
}

func TestEdgeIterator_EmptyAndEdgeless(t *testing.T) {
	g := core.NewGraph[int]()
	assert.Equal(t, g.EdgeBegin(), g.EdgeEnd())

	newLineGraphInto(g, 4)
	assert.Equal(t, g.EdgeBegin(), g.EdgeEnd(), "nodes without edges")
	assert.False(t, g.EdgeBegin().Valid())

	end := g.EdgeEnd()
	end.Next()
	assert.Equal(t, g.EdgeEnd(), end, "advancing the end cursor is a no-op")
}

// TestEdgeIterator_VisitsEachEdgeOnce builds random graphs and checks that edge
// enumeration matches HasEdge exactly, without duplicates.
func TestEdgeIterator_VisitsEachEdgeOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		g, nodes := newLineGraph(t, 1+rng.Intn(30))
		attempts := rng.Intn(4 * len(nodes))
		for k := 0; k < attempts; k++ {
			a, b := nodes[rng.Intn(len(nodes))], nodes[rng.Intn(len(nodes))]
			_, _ = g.AddEdge(a, b) // loops are rejected, duplicates collapse
		}

		listed := collectEdges(g)
		require.Len(t, listed, g.NumEdges(), "round %d", round)

		seen := map[pair]bool{}
		for _, p := range listed {
			require.Less(t, p.lo, p.hi)
			require.False(t, seen[p], "pair %v listed twice", p)
			seen[p] = true
		}

		var want []pair
		for i := range nodes {
			for j := i + 1; j < len(nodes); j++ {
				if g.HasEdge(nodes[i], nodes[j]) {
					want = append(want, pair{i, j})
				}
			}
		}
		if diff := cmp.Diff(want, sortPairs(listed), cmp.AllowUnexported(pair{})); diff != "" {
			t.Fatalf("round %d: edge enumeration mismatch (-want +got):\n%s", round, diff)
		}
	}
}

func TestEdgeIterator_LesserEndpointFirst(t *testing.T) {
	g, nodes := newLineGraph(t, 4)
	mustAddEdge(t, g, nodes[3], nodes[0])
	mustAddEdge(t, g, nodes[2], nodes[1])

	for e := range g.Edges() {
		assert.Less(t, e.Node1().Index(), e.Node2().Index())
	}

	// Early exit from a range loop stops the sequence.
	count := 0
	for range g.Edges() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestIncidentIterator(t *testing.T) {
	g, nodes := newLineGraph(t, 5)
	hub := nodes[2]
	for _, n := range []core.Node[int]{nodes[0], nodes[4], nodes[1]} {
		mustAddEdge(t, g, hub, n)
	}
	mustAddEdge(t, g, nodes[0], nodes[4])

	var got []int
	count := 0
	for it := hub.EdgeBegin(); it != hub.EdgeEnd(); it.Next() {
		e := it.Edge()
		require.True(t, e.Node1() == hub || e.Node2() == hub, "incident edges touch the fixed node")
		require.True(t, g.HasEdge(e.Node1(), e.Node2()))
		require.Equal(t, it.Neighbor(), e.Other(hub))
		require.Less(t, e.Node1().Index(), e.Node2().Index())
		got = append(got, it.Neighbor().Index())
		count++
	}
	assert.Equal(t, hub.Degree(), count)
	assert.Equal(t, []int{0, 4, 1}, got, "adjacency storage order")

	var neighbours []int
	for n := range hub.Neighbors() {
		neighbours = append(neighbours, n.Index())
	}
	assert.Equal(t, got, neighbours)

	isolated := nodes[3]
	assert.Equal(t, isolated.EdgeBegin(), isolated.EdgeEnd())
	for range isolated.Incident() {
		t.Fatal("isolated node yielded an edge")
	}
}

func TestIncidentIterator_ZeroNode(t *testing.T) {
	var n core.Node[int]
	assert.Equal(t, 0, n.Degree())
	assert.Equal(t, n.EdgeBegin(), n.EdgeEnd())
	assert.False(t, n.EdgeBegin().Valid())
	for range n.Incident() {
		t.Fatal("zero Node yielded an edge")
	}
	for range n.Neighbors() {
		t.Fatal("zero Node yielded a neighbour")
	}
}

// TestIncidentIterator_DegreeSum checks the handshake lemma over all nodes.
func TestIncidentIterator_DegreeSum(t *testing.T) {
	g, nodes := newLineGraph(t, 8)
	for i := range nodes {
		for j := i + 1; j < len(nodes); j += i + 1 {
			mustAddEdge(t, g, nodes[i], nodes[j])
		}
	}

	sum := 0
	for n := range g.Nodes() {
		k := 0
		for e := range n.Incident() {
			require.Contains(t, []core.Node[int]{e.Node1(), e.Node2()}, n)
			k++
		}
		require.Equal(t, n.Degree(), k)
		sum += k
	}
	assert.Equal(t, 2*g.NumEdges(), sum)
}

func newLineGraphInto(g *core.Graph[int], n int) {
	for i := 0; i < n; i++ {
		g.AddNode(point.New(float64(i), 0, 0))
	}
}
