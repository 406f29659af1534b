// SPDX-License-Identifier: MIT
// Package: pointgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Constructors never panic; option constructors do (see options.go).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, nx, ny, nz) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidRadius indicates a connection radius that is not a positive,
// finite number.
var ErrInvalidRadius = errors.New("builder: invalid radius")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not finish, e.g. a nil
// Constructor was passed or the core graph rejected an edge.
var ErrConstructFailed = errors.New("builder: construction failed")
