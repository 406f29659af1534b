// SPDX-License-Identifier: MIT
// Package core defines the Graph container and its lightweight handle types.
//
// This file declares the sentinel errors, the Graph storage layout and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNodeOutOfRange - Node(i) called with i outside [0, NumNodes()).
//	ErrEdgeOutOfRange - Edge(i) called with i outside [0, NumEdges()).
//	ErrLoopNotAllowed - AddEdge(a, a).
//	ErrForeignNode    - a Node handle that is invalid, stale or owned by another Graph.
package core

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/pointgraph/point"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, NumNodes()).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrEdgeOutOfRange indicates an edge index outside [0, NumEdges()).
	ErrEdgeOutOfRange = errors.New("core: edge index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Graphs are always simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrForeignNode indicates a Node handle that does not belong to this Graph:
	// the zero Node, a handle from another Graph, or a handle made stale by Clear.
	ErrForeignNode = errors.New("core: node does not belong to this graph")
)

// InvalidIndex is the index reported by the zero Node.
const InvalidIndex = -1

// graphSerial hands out a distinct serial number to every Graph. Serials give
// handles from different graphs a deterministic relative order.
var graphSerial atomic.Uint64

// nodeRecord is the per-node storage owned by a Graph.
type nodeRecord[V any] struct {
	pos   point.Point
	value V
}

// Graph is an undirected simple graph of positioned nodes carrying a payload
// of type V.
//
// Node storage is a dense slice indexed by node identifier (0..NumNodes()-1).
// Edges have no storage of their own: adj[i] lists the neighbours of node i and
// every edge {i,j} appears once in adj[i] and once in adj[j]. numEdges caches the
// number of distinct pairs so NumEdges is O(1).
//
// A Graph is not safe for concurrent use. Callers that share one across
// goroutines must guard every call, and every handle or iterator dereference,
// with their own lock.
type Graph[V any] struct {
	serial uint64

	nodes    []nodeRecord[V]
	adj      [][]int
	numEdges int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[V any]() *Graph[V] {
	return &Graph[V]{serial: graphSerial.Add(1)}
}
