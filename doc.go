// SPDX-License-Identifier: MIT
// Package pointgraph is an in-memory, undirected, simple graph of 3D points,
// built for meshes and spatial networks.
//
// What is pointgraph?
//
//	A small generic library with one job done carefully:
//		• Core storage: dense node records plus symmetric adjacency lists
//		• Handles: comparable Node / Edge values, no pointers into storage
//		• Iteration: cursors and range-over-func sequences, each edge once
//		• Geometry: positions, edge lengths, bounding boxes
//
// Packages:
//
//	point/      - Point and Box, the vector maths nodes are positioned with
//	core/       - Graph[V], Node[V], Edge[V] and their iterators
//	builder/    - deterministic generators: path, cycle, star, wheel, grid, cloud …
//	gridgraph/  - heightmap / occupancy grid to point graph, grid islands
//	meshio/     - plain-text nodes + elements loader (lines, triangles, tetrahedra)
//	gonumgraph/ - live gonum graph.WeightedUndirected view for gonum's algorithms
//	cmd/pointgraph - CLI report over a loaded or generated mesh
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	a := g.AddNode(point.New(0, 0, 0))
//	b := g.AddNodeWithValue(point.New(3, 4, 0), "tip")
//	e, _ := g.AddEdge(a, b)
//	fmt.Println(g.NumEdges(), e.Length()) // 1 5
//
//	go get github.com/katalvlaran/pointgraph
package pointgraph
