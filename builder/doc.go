// SPDX-License-Identifier: MIT
// Package builder generates positioned core.Graph fixtures: paths, rings,
// stars, wheels, complete graphs, 3D lattices and random geometric clouds.
//
// What:
//
//   - BuildGraph creates a fresh core.Graph[V] and applies Constructors in order.
//   - Every Constructor appends its own nodes after the ones already present,
//     so composing several constructors yields a disjoint union.
//   - Nodes get geometric positions (line, circle, lattice, cube) scaled by
//     WithSpacing and shifted by WithOrigin.
//
// Why:
//
//   - Deterministic fixtures for tests, examples and benchmarks.
//   - Geometric inputs for the meshio loader and the pointgraph CLI.
//
// Options:
//
//   - WithSpacing(s): distance unit (default 1).
//   - WithOrigin(p):  translation applied to every generated position.
//   - WithSeed/WithRand: RNG for RandomCloud (required there).
//
// Errors:
//
//   - ErrTooFewNodes:     a size parameter is below the constructor's minimum.
//   - ErrInvalidRadius:   RandomCloud radius is not a positive finite number.
//   - ErrNeedRandSource:  a stochastic constructor ran without WithSeed/WithRand.
//   - ErrConstructFailed: nil constructor or an unexpected core error.
package builder
