// Package prim_kruskal defines configuration options, sentinel errors and the
// Forest result for minimum spanning forest computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/actorgraph/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates that MSTOptions.Method names no supported algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow trees from roots using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm to run, and for Prim, which actor
// starts the first tree.
//
// Fields:
//
//	Method string – one of MethodPrim or MethodKruskal.
//	Root   string – optional first root for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the first root for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

// ForestEdge is one accepted edge. From is the lexicographically smaller name.
type ForestEdge struct {
	From   string
	To     string
	Weight int64
	Credit core.Credit // cheapest credit shared by From and To
}

// Forest is a minimum spanning forest.
type Forest struct {
	// Edges in the order the algorithm accepted them.
	Edges []ForestEdge

	// TotalWeight is the sum of Edges[i].Weight.
	TotalWeight int64

	// Nodes counts the actors covered by at least one edge.
	Nodes int
}

// Trees reports the number of trees (connected components with at least one edge).
func (f *Forest) Trees() int { return f.Nodes - len(f.Edges) }

// ByNode groups the edges by their From actor, preserving acceptance order
// inside each list.
func (f *Forest) ByNode() map[string][]ForestEdge {
	m := make(map[string][]ForestEdge)
	for _, e := range f.Edges {
		m[e.From] = append(m[e.From], e)
	}

	return m
}

// add appends one accepted edge between u and v, orienting it by name.
func (f *Forest) add(g *core.Graph, u, v core.Handle) {
	a := g.Actor(u)
	e := ForestEdge{
		From:   a.Name,
		To:     g.Name(v),
		Weight: a.NeighborsWeighted[v],
		Credit: a.MovieNeighborsWeighted[v],
	}
	if e.To < e.From {
		e.From, e.To = e.To, e.From
	}
	f.Edges = append(f.Edges, e)
	f.TotalWeight += e.Weight
}

// Compute selects and runs the algorithm named by opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, opts.Root).
//	– otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (*Forest, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
