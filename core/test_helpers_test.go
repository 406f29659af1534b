// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for pointgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep edge comparisons order-insensitive by working with normalised pairs.

package core_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

// Common positions used across core tests.
var (
	P0 = point.New(0, 0, 0)
	P1 = point.New(1, 0, 0)
	P2 = point.New(0, 1, 0)
	P3 = point.New(0, 0, 1)
)

// pair is a normalised unordered pair of node indices.
type pair struct{ lo, hi int }

func pairOf[V any](e core.Edge[V]) pair {
	a, b := e.Node1().Index(), e.Node2().Index()
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// sortPairs sorts in place and returns ps for predictable output.
func sortPairs(ps []pair) []pair {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].lo != ps[j].lo {
			return ps[i].lo < ps[j].lo
		}
		return ps[i].hi < ps[j].hi
	})
	return ps
}

// collectEdges drains EdgeBegin..EdgeEnd using the cursor protocol.
func collectEdges[V any](g *core.Graph[V]) []pair {
	var out []pair
	for it := g.EdgeBegin(); it != g.EdgeEnd(); it.Next() {
		out = append(out, pairOf(it.Edge()))
	}
	return out
}

// newLineGraph returns a graph with n nodes on the X axis and no edges.
func newLineGraph(t *testing.T, n int) (*core.Graph[int], []core.Node[int]) {
	t.Helper()
	g := core.NewGraph[int]()
	nodes := make([]core.Node[int], n)
	for i := range nodes {
		nodes[i] = g.AddNodeWithValue(point.New(float64(i), 0, 0), i*10)
	}
	require.Equal(t, n, g.NumNodes())
	return g, nodes
}

// mustAddEdge fails the test if AddEdge returns an error.
func mustAddEdge[V any](t *testing.T, g *core.Graph[V], a, b core.Node[V]) core.Edge[V] {
	t.Helper()
	e, err := g.AddEdge(a, b)
	require.NoError(t, err, "AddEdge(%v, %v)", a, b)
	return e
}
