// SPDX-License-Identifier: MIT

// Package builder assembles synthetic credit catalogs for tests, benchmarks
// and demos.
//
// A catalog is a *core.Graph filled through AddCredit and then linked with
// Build. Each Constructor adds one family of credits:
//
//   - Chain(n):            actor i and actor i+1 share movie i; a path of n actors.
//   - Star(n):             a hub "Center" shares a separate movie with each of n-1 leaves.
//   - Ensemble(n):         n actors share one movie; a complete co-star clique.
//   - RandomCasts(a,m,k):  m movies, each with k actors drawn from a pool of a.
//   - Shifted(off, c):     runs c with actor indices shifted by off.
//
// Functional options resolve into an immutable builderConfig:
//
//   - WithIDScheme:    index -> actor name (DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, ...).
//   - WithSeed/WithRand: randomness for RandomCasts and random year policies.
//   - WithYearFn:      release year per generated movie (DefaultYearFn, ConstantYearFn, UniformYearFn).
//   - WithTitlePrefix: prefix of generated movie titles ("m0", "m1", ...).
//
// Movie titles are numbered by one counter shared by every constructor of a
// BuildGraph call, so two constructors never merge their movies by accident.
// Actor names, on the other hand, are shared: two constructors that emit the
// same index join their fixtures through that actor. Use Shifted to keep them
// apart.
//
// Determinism: the same constructors, options and seed always produce the same
// catalog.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithYearFn(builder.UniformYearFn(1950, 2019))},
//	    builder.RandomCasts(500, 300, 4),
//	)
package builder
