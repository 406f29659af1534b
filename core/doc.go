// SPDX-License-Identifier: MIT
// Package core provides an in-memory, undirected, simple graph of 3D points.
//
// A Graph[V] owns two dense structures indexed by node identifier:
//
//   - node records: a position (point.Point) and a payload of type V;
//   - adjacency lists: the identifiers of each node's neighbours.
//
// Everything a caller holds is a handle into that storage:
//
//   - Node[V]  = (graph, identifier)
//   - Edge[V]  = (graph, endpoint, endpoint), with no identity beyond the pair
//   - NodeIterator, EdgeIterator, IncidentIterator = (graph, cursor position)
//
// Handles are comparable values that never own storage. Their zero values are
// explicit "invalid" sentinels: safe to compare, never to dereference.
//
// Invariants:
//
//   - Identifiers are 0..NumNodes()-1 in creation order; only Clear resets them.
//   - No self-loops and no parallel edges; AddEdge(a, b) on an existing pair
//     returns that edge and leaves NumEdges unchanged.
//   - Adjacency is symmetric: j is in adj[i] iff i is in adj[j].
//   - NumEdges() equals the number of distinct unordered neighbour pairs.
//   - Handles from different graphs never compare equal.
//
// Core Methods:
//
//	// Nodes
//	AddNode(p point.Point) Node[V]                    // O(1) amortized
//	AddNodeWithValue(p point.Point, v V) Node[V]      // O(1) amortized
//	Node(i int) (Node[V], error)                      // O(1)
//	NumNodes() int / Size() int                       // O(1)
//	HasNode(n Node[V]) bool                           // O(1)
//
//	// Edges
//	AddEdge(a, b Node[V]) (Edge[V], error)            // O(min deg)
//	HasEdge(a, b Node[V]) bool                        // O(min deg)
//	Edge(i int) (Edge[V], error)                      // O(V+E)
//	NumEdges() int                                    // O(1)
//
//	// Iteration
//	NodeBegin()/NodeEnd(), Nodes()                    // identifier order
//	EdgeBegin()/EdgeEnd(), Edges()                    // each edge exactly once
//	n.EdgeBegin()/n.EdgeEnd(), n.Incident()           // adjacency order
//
//	// Maintenance
//	Clear()                                           // O(1)
//	Stats() *GraphStats                               // O(V)
//
// Errors:
//
//	ErrNodeOutOfRange – Node(i) outside [0, NumNodes())
//	ErrEdgeOutOfRange – Edge(i) outside [0, NumEdges())
//	ErrLoopNotAllowed – AddEdge(a, a)
//	ErrForeignNode    – zero, stale or foreign Node passed to AddEdge
//
// Every precondition violation on an indexed lookup or on AddEdge is reported the
// same way: the zero handle plus a wrapped sentinel. Dereferencing a handle after
// Clear is unchecked.
//
// A Graph is not safe for concurrent use; guard it with an external lock.
package core
