// SPDX-License-Identifier: MIT
// Package point provides the immutable 3D position type attached to every node
// of a core.Graph, together with the small amount of vector arithmetic that
// graph code needs (differences, lengths, bounding boxes).
//
// Point is a plain value: copying it is cheap and two points compare equal with
// == when all three coordinates are equal. None of the operations mutate their
// receiver; each returns a new Point.
//
// Box is an axis-aligned bounding box grown point by point with Extend. The zero
// Box is empty and contains nothing.
package point
