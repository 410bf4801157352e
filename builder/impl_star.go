// SPDX-License-Identifier: MIT
// Package: actorgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewActors).
//   - Hub actor has the fixed name "Center"; leaves are named by cfg.idFn(i)
//     for i = 1..n-1.
//   - Every spoke is its own movie, so leaves never co-star with each other.
//
// Complexity: O(n) credits.

package builder

import (
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star of n actors: one hub
// "Center" and n-1 leaves, each sharing a separate movie with the hub.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewActors)
		}

		for i := 1; i < n; i++ {
			title, year := cfg.movie()
			if err := addCredit(g, methodStar, centerActorID, title, year); err != nil {
				return err
			}
			if err := addCredit(g, methodStar, cfg.idFn(i), title, year); err != nil {
				return err
			}
		}

		return nil
	}
}
