// SPDX-License-Identifier: MIT

package point

import (
	"fmt"
	"math"
)

// Point is a position in 3D space.
type Point struct {
	X, Y, Z float64
}

// Origin is the point (0,0,0).
var Origin = Point{}

// New returns the point (x,y,z).
func New(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p multiplied component-wise by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Dot returns the inner product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p×q.
func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p.
// Complexity: O(1).
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Norm()
}

// IsFinite reports whether no coordinate is NaN or ±Inf.
func (p Point) IsFinite() bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
