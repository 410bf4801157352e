// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Actor, Credit, Handle, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"math"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyActorName indicates a credit row carried an empty actor name.
	ErrEmptyActorName = errors.New("core: actor name is empty")

	// ErrActorNotFound indicates an operation referenced an actor that was never ingested.
	ErrActorNotFound = errors.New("core: actor not found")

	// ErrNotBuilt indicates a query ran before Build linked the adjacency.
	ErrNotBuilt = errors.New("core: graph adjacency not built")

	// ErrAlreadyBuilt indicates an attempt to mutate or rebuild a built graph.
	ErrAlreadyBuilt = errors.New("core: graph adjacency already built")

	// ErrBadReferenceYear indicates a non-positive reference year option.
	ErrBadReferenceYear = errors.New("core: reference year must be positive")
)

// DefaultReferenceYear is the "present" used by the travel cost function.
const DefaultReferenceYear = 2019

// Infinity is the sentinel Distance of an actor not reached by the current query.
const Infinity int64 = math.MaxInt64

// Handle is a non-owning reference to an Actor record inside a Graph arena.
type Handle int32

// NoHandle is the sentinel Predecessor of an actor with no predecessor.
const NoHandle Handle = -1

// Label delimiters, e.g. "[Heat#@1995]".
const (
	labelOpen  = "["
	labelSep   = "#@"
	labelClose = "]"
)

// Credit identifies one movie release: a title in a given year.
// Two movies with the same title in different years are distinct credits.
type Credit struct {
	Title string
	Year  int
}

// Label renders the credit as "[title#@year]".
func (c Credit) Label() string {
	return labelOpen + c.Title + labelSep + strconv.Itoa(c.Year) + labelClose
}

// Less orders credits by title, then by year.
func (c Credit) Less(o Credit) bool {
	if c.Title != o.Title {
		return c.Title < o.Title
	}

	return c.Year < o.Year
}

// Actor is one node of the graph.
//
// The adjacency fields are written only by Build. The transient fields are
// owned by whichever query currently holds the graph lock and must be reset
// to their sentinels (Infinity, NoHandle, false, "", 0) when it returns.
type Actor struct {
	// Name is the unique identifier and display key.
	Name string

	// Edges maps every credit of this actor to the co-stars of that credit,
	// in ingestion order. A credit with no co-stars maps to an empty slice.
	Edges map[Credit][]Handle

	// Neighbors counts shared-credit occurrences per adjacent actor.
	Neighbors map[Handle]int

	// NeighborsWeighted keeps the cheapest travel cost per adjacent actor.
	NeighborsWeighted map[Handle]int64

	// MovieNeighborsWeighted keeps the credit that achieved NeighborsWeighted.
	MovieNeighborsWeighted map[Handle]Credit

	// Transient traversal state.
	Distance    int64
	Predecessor Handle
	Visited     bool
	Connector   string
	Score       int64
}

// newActor allocates an Actor with empty adjacency and sentinel traversal state.
func newActor(name string) Actor {
	return Actor{
		Name:                   name,
		Edges:                  make(map[Credit][]Handle),
		Neighbors:              make(map[Handle]int),
		NeighborsWeighted:      make(map[Handle]int64),
		MovieNeighborsWeighted: make(map[Handle]Credit),
		Distance:               Infinity,
		Predecessor:            NoHandle,
	}
}

// clean reports whether every transient field holds its sentinel value.
func (a *Actor) clean() bool {
	return a.Distance == Infinity &&
		a.Predecessor == NoHandle &&
		!a.Visited &&
		a.Connector == "" &&
		a.Score == 0
}

// reset restores the transient fields to their sentinels.
func (a *Actor) reset() {
	a.Distance = Infinity
	a.Predecessor = NoHandle
	a.Visited = false
	a.Connector = ""
	a.Score = 0
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithReferenceYear sets the year considered "present" by Cost.
// Non-positive values are recorded and surfaced by Build as ErrBadReferenceYear.
func WithReferenceYear(year int) GraphOption {
	return func(g *Graph) {
		if year <= 0 {
			g.err = ErrBadReferenceYear
			return
		}
		g.referenceYear = year
	}
}

// Graph is the arena owning every Actor record of one run.
//
// mu serializes ingestion, Build and every query; actors is the arena and
// index maps names to arena slots. movies is the (title -> year -> actors)
// grouping consumed by Build and kept for inspection afterwards.
type Graph struct {
	mu sync.Mutex

	referenceYear int
	err           error // deferred option error

	actors []Actor
	index  map[string]Handle
	movies map[string]map[int][]Handle

	built         bool
	credits       int // ingested credit rows
	futureCredits int // credits newer than referenceYear
	links         int // undirected actor pairs
}

// NewGraph creates an empty Graph using DefaultReferenceYear unless overridden.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		referenceYear: DefaultReferenceYear,
		index:         make(map[string]Handle),
		movies:        make(map[string]map[int][]Handle),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
