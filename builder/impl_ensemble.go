// SPDX-License-Identifier: MIT
// Package: actorgraph/builder
//
// impl_ensemble.go - implementation of Ensemble(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewActors).
//   - Actors cfg.idFn(0..n-1) all appear in a single movie, which links
//     every pair of them after Build.
//
// Complexity: O(n) credits, O(n²) links after Build.

package builder

import (
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

const (
	methodEnsemble   = "Ensemble"
	minEnsembleNodes = 2
)

// Ensemble returns a Constructor that casts n actors in one movie.
func Ensemble(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minEnsembleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEnsemble, n, minEnsembleNodes, ErrTooFewActors)
		}

		title, year := cfg.movie()
		for i := 0; i < n; i++ {
			if err := addCredit(g, methodEnsemble, cfg.idFn(i), title, year); err != nil {
				return err
			}
		}

		return nil
	}
}
