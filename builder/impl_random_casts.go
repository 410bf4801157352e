// SPDX-License-Identifier: MIT
// Package: actorgraph/builder
//
// impl_random_casts.go - implementation of RandomCasts(actors, movies, cast).
//
// Contract:
//   - actors ≥ 1, movies ≥ 1, 1 ≤ cast ≤ actors (else ErrTooFewActors).
//   - Requires an RNG (else ErrNeedRandSource).
//   - Each movie draws cast distinct actors from the pool cfg.idFn(0..actors-1)
//     by a partial Fisher-Yates shuffle.
//   - Actors never drawn do not appear in the catalog.
//
// Determinism:
//   - Movies are generated in ascending order; for a fixed seed the draws and
//     the years are identical.
//
// Complexity: O(actors + movies*cast) time, O(actors) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

const (
	methodRandomCasts = "RandomCasts"
	minCastSize       = 1
	minRandomActors   = 1
	minRandomMovies   = 1
)

// RandomCasts returns a Constructor that generates movies with random casts.
func RandomCasts(actors, movies, cast int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if actors < minRandomActors {
			return fmt.Errorf("%s: actors=%d < min=%d: %w", methodRandomCasts, actors, minRandomActors, ErrTooFewActors)
		}
		if movies < minRandomMovies {
			return fmt.Errorf("%s: movies=%d < min=%d: %w", methodRandomCasts, movies, minRandomMovies, ErrTooFewActors)
		}
		if cast < minCastSize || cast > actors {
			return fmt.Errorf("%s: cast=%d not in [%d,%d]: %w", methodRandomCasts, cast, minCastSize, actors, ErrTooFewActors)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomCasts, ErrNeedRandSource)
		}

		pool := make([]int, actors)
		for i := range pool {
			pool[i] = i
		}

		for m := 0; m < movies; m++ {
			title, year := cfg.movie()
			for k := 0; k < cast; k++ {
				j := k + cfg.rng.Intn(actors-k)
				pool[k], pool[j] = pool[j], pool[k]
				if err := addCredit(g, methodRandomCasts, cfg.idFn(pool[k]), title, year); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
