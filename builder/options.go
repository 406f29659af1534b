// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/pointgraph/point"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpacing sets the distance unit used by every layout: neighbour distance
// on paths and lattices, circle radius for rings, cube side for clouds.
// Panics unless s is positive and finite.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSpacing(s<=0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithOrigin translates every generated position by p.
// Panics if p has a NaN or infinite coordinate.
func WithOrigin(p point.Point) BuilderOption {
	if !p.IsFinite() {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) {
		c.origin = p
	}
}
