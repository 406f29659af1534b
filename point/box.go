// SPDX-License-Identifier: MIT

package point

import "math"

// Box is an axis-aligned bounding box. The zero value is an empty box.
type Box struct {
	Min, Max Point
	nonEmpty bool
}

// BoxOf returns the smallest box containing every point in pts.
// Complexity: O(len(pts)).
func BoxOf(pts ...Point) Box {
	var b Box
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// Empty reports whether b contains no points.
func (b Box) Empty() bool { return !b.nonEmpty }

// Extend returns the smallest box containing both b and p.
func (b Box) Extend(p Point) Box {
	if !b.nonEmpty {
		return Box{Min: p, Max: p, nonEmpty: true}
	}
	b.Min = Point{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)}
	b.Max = Point{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)}
	return b
}

// Contains reports whether p lies inside b (boundary included).
func (b Box) Contains(p Point) bool {
	if !b.nonEmpty {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Center returns the midpoint of b. The center of an empty box is the origin.
func (b Box) Center() Point {
	if !b.nonEmpty {
		return Origin
	}
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of b along each axis.
func (b Box) Size() Point {
	if !b.nonEmpty {
		return Origin
	}
	return b.Max.Sub(b.Min)
}
