// SPDX-License-Identifier: MIT
// Package meshio loads point meshes into a core.Graph.
//
// Two plain-text formats are read:
//
//	nodes file     one point per line: "x y z"
//	elements file  one element per line: two or more node indices
//
// Blank lines and anything after '#' are ignored. An element contributes an
// edge between every pair of its nodes, so a line file (2 indices), a triangle
// file (3) and a tetrahedron file (4) all load the same way; edges shared by
// neighbouring elements collapse into one.
//
// Errors name the offending line and wrap ErrMalformedLine or
// ErrIndexOutOfRange.
package meshio
