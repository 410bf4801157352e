// SPDX-License-Identifier: MIT
// Package: actorgraph/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg,
//     runs cons in order, then links the adjacency with g.Build().
//   - Constructors are implemented in impl_*.go.
//   - Same inputs, options, seed and constructor order give identical catalogs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

// Constructor adds a family of credits to g using the resolved builderConfig.
// Constructors validate parameters before their first AddCredit and return
// sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, applies every constructor in order
// and builds the adjacency.
//
// Errors:
//   - a nil constructor yields ErrConstructFailed;
//   - constructor errors are wrapped as "BuildGraph: %w";
//   - a Build failure is wrapped together with ErrConstructFailed.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if err := g.Build(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// Shifted runs c with every actor index shifted by offset, so that two
// constructors can produce disjoint casts.
func Shifted(offset int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		base := cfg.idFn
		cfg.idFn = func(idx int) string { return base(idx + offset) }

		return c(g, cfg)
	}
}

// addCredit adds one credit and tags a failure with the method name.
func addCredit(g *core.Graph, method, actor, title string, year int) error {
	if err := g.AddCredit(actor, title, year); err != nil {
		return fmt.Errorf("%s: AddCredit(%s, %s): %w: %w", method, actor, title, ErrConstructFailed, err)
	}

	return nil
}
