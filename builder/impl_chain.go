// SPDX-License-Identifier: MIT
// Package: actorgraph/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewActors).
//   - Actor i and actor i+1 share movie i, for i = 0..n-2.
//   - One movie per link, drawn in ascending index order, so movie years
//     follow the order the YearFn emits them.
//
// Complexity: O(n) credits.

package builder

import (
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds a path of n actors where every
// consecutive pair shares exactly one movie.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewActors)
		}

		for i := 0; i < n-1; i++ {
			title, year := cfg.movie()
			if err := addCredit(g, methodChain, cfg.idFn(i), title, year); err != nil {
				return err
			}
			if err := addCredit(g, methodChain, cfg.idFn(i+1), title, year); err != nil {
				return err
			}
		}

		return nil
	}
}
