// SPDX-License-Identifier: MIT
// Package: actorgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: randomness comes only from WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the actor naming strategy: index -> name.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithYearFn sets the release year policy for generated movies.
// Panics on nil.
func WithYearFn(fn YearFn) BuilderOption {
	if fn == nil {
		panic("builder: WithYearFn(nil)")
	}
	return func(c *builderConfig) {
		c.yearFn = fn
	}
}

// WithTitlePrefix sets the prefix of generated movie titles.
// An empty prefix falls back to "m".
func WithTitlePrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.titlePrefix = prefix
	}
}
