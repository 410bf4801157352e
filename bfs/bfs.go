// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

// walker encapsulates the mutable state of one search.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	target  core.Handle
	queue   []core.Handle
	touched []core.Handle
}

// ShortestPath returns a minimum-hop path from one actor to another.
//
// The path alternates actor names and credit labels, source first. It is
// empty when either actor is unknown, when from == to, or when no
// connection exists within MaxDepth.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, core.ErrNotBuilt.
//   - core.ErrActorNotFound (wrapped with the missing name); the path is empty.
//   - ctx.Err() on cancellation, or a wrapped OnVisit hook error.
//
// Every actor whose Distance was set is reset before returning, on every path.
func ShortestPath(g *core.Graph, from, to string, opts ...Option) (core.Path, error) {
	if g == nil {
		return core.Path{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.Path{}, o.err
	}

	g.Lock()
	defer g.Unlock()

	if !g.Built() {
		return core.Path{}, core.ErrNotBuilt
	}
	src, ok := g.Lookup(from)
	if !ok {
		return core.Path{}, fmt.Errorf("%w: %q", core.ErrActorNotFound, from)
	}
	dst, ok := g.Lookup(to)
	if !ok {
		return core.Path{}, fmt.Errorf("%w: %q", core.ErrActorNotFound, to)
	}
	if src == dst {
		return core.Path{}, nil
	}

	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		target: dst,
	}
	defer func() { g.ResetTraversal(w.touched) }()

	start := g.Actor(src)
	start.Distance = 0
	w.touched = append(w.touched, src)
	w.queue = append(w.queue, src)

	return w.loop()
}

// loop processes the queue until the target is discovered, the queue
// drains, or the search is aborted.
func (w *walker) loop() (core.Path, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return core.Path{}, w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		a := w.graph.Actor(cur)
		depth := int(a.Distance)
		if err := w.opts.OnVisit(a.Name, depth); err != nil {
			return core.Path{}, fmt.Errorf("bfs: OnVisit error at %q: %w", a.Name, err)
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		if w.expand(cur, a) {
			return w.graph.TracePath(w.target), nil
		}
	}

	return core.Path{}, nil
}

// expand discovers every undiscovered co-star of cur, credit by credit.
// It reports true as soon as the target is discovered.
func (w *walker) expand(cur core.Handle, a *core.Actor) bool {
	for _, c := range a.Credits() {
		var label string
		for _, nbr := range a.Edges[c] {
			n := w.graph.Actor(nbr)
			if n.Distance != core.Infinity {
				continue
			}
			if label == "" {
				label = c.Label()
			}
			n.Distance = a.Distance + 1
			n.Predecessor = cur
			n.Connector = label
			w.touched = append(w.touched, nbr)
			w.opts.OnEnqueue(n.Name, int(n.Distance))

			if nbr == w.target {
				return true
			}
			w.queue = append(w.queue, nbr)
		}
	}

	return false
}
