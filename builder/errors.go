// SPDX-License-Identifier: MIT
// Package: actorgraph/builder
//
// errors.go - sentinel errors for catalog constructors.
//
// Error policy:
//   - Constructors return sentinels wrapped with the method tag,
//     e.g. fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, min, ErrTooFewActors).
//   - Callers branch with errors.Is.
//   - Option constructors panic on meaningless input instead.

package builder

import "errors"

// ErrTooFewActors indicates that an actor count or cast size is below the
// minimum a constructor needs.
var ErrTooFewActors = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor, or a failure reported by the
// graph while adding credits or linking them.
var ErrConstructFailed = errors.New("builder: construction failed")
