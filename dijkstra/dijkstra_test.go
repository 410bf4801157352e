// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/actorgraph/builder"
	"github.com/katalvlaran/actorgraph/core"
	"github.com/katalvlaran/actorgraph/dijkstra"
)

// row is one (actor, title, year) credit.
type row struct {
	actor, title string
	year         int
}

// build ingests rows and links the graph, failing the test on error.
func build(t testing.TB, rows ...row) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, r := range rows {
		require.NoError(t, g.AddCredit(r.actor, r.title, r.year))
	}
	require.NoError(t, g.Build())

	return g
}

// network is the A-B-C-D chain of old movies plus a newer A-E-D detour.
func network(t testing.TB) *core.Graph {
	return build(t,
		row{"A", "M1", 2000}, row{"B", "M1", 2000},
		row{"B", "M2", 2001}, row{"C", "M2", 2001},
		row{"C", "M3", 2002}, row{"D", "M3", 2002},
		row{"A", "M4", 2003}, row{"E", "M4", 2003},
		row{"E", "M5", 2004}, row{"D", "M5", 2004},
		row{"X", "M6", 2005}, row{"Y", "M6", 2005},
	)
}

//------------------------------------------------------------------------------
// 1. Validation
//------------------------------------------------------------------------------

// TestShortestPath_NilGraph verifies that a nil graph returns ErrNilGraph.
func TestShortestPath_NilGraph(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// TestShortestPath_NotBuilt verifies that an unlinked graph is rejected.
func TestShortestPath_NotBuilt(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCredit("A", "M", 2000))
	_, _, err := dijkstra.ShortestPath(g, "A", "A")
	assert.ErrorIs(t, err, core.ErrNotBuilt)
}

// TestShortestPath_UnknownActor reports the missing name and an empty path.
func TestShortestPath_UnknownActor(t *testing.T) {
	g := network(t)
	for _, pair := range [][2]string{{"A", "nobody"}, {"nobody", "A"}} {
		p, cost, err := dijkstra.ShortestPath(g, pair[0], pair[1])
		require.ErrorIs(t, err, core.ErrActorNotFound)
		assert.Contains(t, err.Error(), `"nobody"`)
		assert.Empty(t, p)
		assert.Zero(t, cost)
	}
}

// TestShortestPath_Self returns an empty path at zero cost.
func TestShortestPath_Self(t *testing.T) {
	g := network(t)
	p, cost, err := dijkstra.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.Empty(t, p)
	assert.Zero(t, cost)
}

// TestWithMaxDistance_Negative verifies that a negative cap panics.
func TestWithMaxDistance_Negative(t *testing.T) {
	g := network(t)
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _, _ = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(-1))
	})
}

//------------------------------------------------------------------------------
// 2. Weighted routing
//------------------------------------------------------------------------------

// TestShortestPath_PrefersRecentCredit picks the cheaper of two shared movies.
func TestShortestPath_PrefersRecentCredit(t *testing.T) {
	g := build(t,
		row{"Alice", "MovieA", 2018}, row{"Bob", "MovieA", 2018},
		row{"Alice", "MovieB", 2019}, row{"Bob", "MovieB", 2019},
	)
	p, cost, err := dijkstra.ShortestPath(g, "Alice", "Bob")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"Alice", "[MovieB#@2019]", "Bob"}, p)
	assert.EqualValues(t, 1, cost)
}

// TestShortestPath_CheaperDetour compares the weighted route with the hop count.
func TestShortestPath_CheaperDetour(t *testing.T) {
	g := network(t)
	p, cost, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "[M4#@2003]", "E", "[M5#@2004]", "D"}, p)
	assert.EqualValues(t, 17+16, cost)
	assert.GreaterOrEqual(t, cost, int64(p.Hops()))

	// The chain is three hops of older, costlier movies.
	p, cost, err = dijkstra.ShortestPath(g, "B", "D")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"B", "[M2#@2001]", "C", "[M3#@2002]", "D"}, p)
	assert.EqualValues(t, 19+18, cost)
}

// TestShortestPath_OldMovieBeatsLongRecentChain shows that cost, not hops, is minimized.
func TestShortestPath_OldMovieBeatsLongRecentChain(t *testing.T) {
	g := build(t,
		row{"S", "Old", 2009}, row{"T", "Old", 2009}, // cost 11
		row{"S", "N1", 2019}, row{"P", "N1", 2019}, // cost 1
		row{"P", "N2", 2019}, row{"Q", "N2", 2019}, // cost 1
		row{"Q", "N3", 2019}, row{"T", "N3", 2019}, // cost 1
	)
	p, cost, err := dijkstra.ShortestPath(g, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Hops())
	assert.EqualValues(t, 3, cost)
}

// TestShortestPath_FutureCreditCostsOne floors the cost of post-reference releases.
func TestShortestPath_FutureCreditCostsOne(t *testing.T) {
	g := build(t, row{"A", "Sequel", 2030}, row{"B", "Sequel", 2030})
	_, cost, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.EqualValues(t, 1, cost)
}

// TestShortestPath_TieBreakByName settles equal-distance actors in name order.
func TestShortestPath_TieBreakByName(t *testing.T) {
	g := build(t,
		row{"A", "M1", 2019}, row{"C", "M1", 2019},
		row{"A", "M2", 2019}, row{"B", "M2", 2019},
		row{"B", "M3", 2019}, row{"D", "M3", 2019},
		row{"C", "M4", 2019}, row{"D", "M4", 2019},
	)
	for i := 0; i < 5; i++ {
		p, cost, err := dijkstra.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, core.Path{"A", "[M2#@2019]", "B", "[M3#@2019]", "D"}, p)
		assert.EqualValues(t, 2, cost)
	}
}

//------------------------------------------------------------------------------
// 3. Unreachable targets, caps and state hygiene
//------------------------------------------------------------------------------

// TestShortestPath_Disconnected returns an empty path for another component.
func TestShortestPath_Disconnected(t *testing.T) {
	g := network(t)
	p, cost, err := dijkstra.ShortestPath(g, "A", "Y")
	require.NoError(t, err)
	assert.Empty(t, p)
	assert.Zero(t, cost)
	assert.True(t, g.TraversalClean())
}

// TestShortestPath_MaxDistance cuts off paths above the cap.
func TestShortestPath_MaxDistance(t *testing.T) {
	g := network(t)

	p, _, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(32))
	require.NoError(t, err)
	assert.Empty(t, p)

	p, cost, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(33))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Hops())
	assert.EqualValues(t, 33, cost)
	assert.True(t, g.TraversalClean())
}

// TestShortestPath_NoLeakBetweenQueries repeats queries and checks reset state.
func TestShortestPath_NoLeakBetweenQueries(t *testing.T) {
	g := network(t)
	first, c1, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.True(t, g.TraversalClean())

	_, _, err = dijkstra.ShortestPath(g, "E", "B")
	require.NoError(t, err)

	again, c2, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, c1, c2)
}

// TestShortestPath_CostAtLeastHops checks the bound on a random catalog.
func TestShortestPath_CostAtLeastHops(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(7),
			builder.WithIDScheme(builder.PrefixIDFn("a")),
			builder.WithYearFn(builder.UniformYearFn(1990, 2029)),
		},
		builder.RandomCasts(40, 60, 3),
	)
	require.NoError(t, err)
	names := g.Names()
	for i := 0; i < len(names); i++ {
		from, to := names[i], names[(i*11+5)%len(names)]
		p, cost, err := dijkstra.ShortestPath(g, from, to)
		require.NoError(t, err)
		if len(p) == 0 {
			assert.Zero(t, cost)
			continue
		}
		assert.GreaterOrEqual(t, cost, int64(p.Hops()), "%s -> %s", from, to)
		assert.Equal(t, from, p[0])
		assert.Equal(t, to, p[len(p)-1])
	}
	assert.True(t, g.TraversalClean())
}

// TestShortestPath_Concurrent runs parallel queries on one graph.
func TestShortestPath_Concurrent(t *testing.T) {
	g := network(t)
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, cost, err := dijkstra.ShortestPath(g, "A", "D")
			if err == nil && cost != 33 {
				err = errors.New("unexpected cost")
			}
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-errs)
	}
}
