// SPDX-License-Identifier: MIT

package predict

import (
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

// scorer fills the queue with scored candidates for actor a and returns the
// handles whose Score it touched.
type scorer func(g *core.Graph, a *core.Actor, self core.Handle, q *TopK, touched []core.Handle) []core.Handle

// Past ranks existing co-stars of each actor by triangle-closing strength.
//
// Returns one Prediction per name, in input order, up to the first unknown
// name; that name is reported as a wrapped core.ErrActorNotFound.
func Past(g *core.Graph, names []string, opts ...Option) ([]Prediction, error) {
	return run(g, names, scorePast, opts)
}

// New ranks co-stars of co-stars that never shared a credit with each actor.
//
// Result and error semantics match Past.
func New(g *core.Graph, names []string, opts ...Option) ([]Prediction, error) {
	return run(g, names, scoreNew, opts)
}

// run validates inputs and applies score to every name of the batch.
func run(g *core.Graph, names []string, score scorer, opts []Option) ([]Prediction, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g.Lock()
	defer g.Unlock()
	if !g.Built() {
		return nil, core.ErrNotBuilt
	}

	out := make([]Prediction, 0, len(names))
	var touched []core.Handle
	for _, name := range names {
		h, ok := g.Lookup(name)
		if !ok {
			return out, fmt.Errorf("%w: %q", core.ErrActorNotFound, name)
		}
		q := NewTopK(o.TopK)
		touched = score(g, g.Actor(h), h, q, touched[:0])
		g.ResetTraversal(touched)
		out = append(out, Prediction{Actor: name, Candidates: q.Drain()})
	}

	return out, nil
}

// scorePast scores every co-star B of a against a's other co-stars.
func scorePast(g *core.Graph, a *core.Actor, _ core.Handle, q *TopK, touched []core.Handle) []core.Handle {
	for b := range a.Neighbors {
		nb := g.Actor(b)
		for c, ac := range a.Neighbors {
			if c == b {
				continue
			}
			if bc, ok := nb.Neighbors[c]; ok {
				nb.Score += int64(ac) * int64(bc)
			}
		}
		touched = append(touched, b)
		q.Offer(nb.Name, nb.Score)
	}

	return touched
}

// scoreNew accumulates, for every second-level actor, the bridged strength
// through each of a's co-stars, then offers them all.
func scoreNew(g *core.Graph, a *core.Actor, self core.Handle, q *TopK, touched []core.Handle) []core.Handle {
	for b, ab := range a.Neighbors {
		for c, bc := range g.Actor(b).Neighbors {
			if c == self {
				continue
			}
			if _, direct := a.Neighbors[c]; direct {
				continue
			}
			nc := g.Actor(c)
			if !nc.Visited {
				nc.Visited = true
				touched = append(touched, c)
			}
			nc.Score += int64(ab) * int64(bc)
		}
	}
	for _, c := range touched {
		nc := g.Actor(c)
		q.Offer(nc.Name, nc.Score)
	}

	return touched
}
