// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil          (pure/deterministic unless seeded)
//   • spacing = 1.0
//   • origin  = (0,0,0)

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/pointgraph/point"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Distance unit for layouts.
	spacing float64
	// Translation applied to every position.
	origin point.Point
}

const defaultSpacing = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: defaultSpacing,
		origin:  point.Origin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at maps layout coordinates (in spacing units) to a world position.
func (c builderConfig) at(x, y, z float64) point.Point {
	return c.origin.Add(point.New(x, y, z).Scale(c.spacing))
}

// onCircle returns the position of the i-th of n equally spaced points on a
// circle of radius spacing in the XY plane.
func (c builderConfig) onCircle(i, n int) point.Point {
	theta := 2 * math.Pi * float64(i) / float64(n)
	return c.at(math.Cos(theta), math.Sin(theta), 0)
}
