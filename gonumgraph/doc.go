// SPDX-License-Identifier: MIT
// Package gonumgraph exposes a core.Graph as a gonum graph.WeightedUndirected,
// so the algorithms in gonum.org/v1/gonum/graph/... (components, traversals,
// shortest paths) run directly over pointgraph storage without copying it.
//
// The view is live: it reads the underlying graph on every call, so nodes and
// edges added after New are visible. Node IDs are core node indices. Edge
// weights are Euclidean edge lengths.
//
// Like core.Graph itself, a view is not safe for concurrent use.
package gonumgraph
