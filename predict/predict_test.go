// SPDX-License-Identifier: MIT

package predict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/actorgraph/core"
	"github.com/katalvlaran/actorgraph/predict"
)

// cast links every listed actor through one 2019 movie.
type cast struct {
	title  string
	actors []string
}

// build ingests casts and links the graph.
func build(t testing.TB, casts ...cast) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, c := range casts {
		for _, a := range c.actors {
			require.NoError(t, g.AddCredit(a, c.title, 2019))
		}
	}
	require.NoError(t, g.Build())

	return g
}

// neighborhood gives Q the co-stars A (twice), B and D; C and E sit two hops away.
//
//	shared(Q,A)=2 shared(Q,B)=1 shared(Q,D)=1
//	shared(A,B)=1 shared(A,C)=1 shared(B,C)=1 shared(D,E)=1 shared(C,F)=1
func neighborhood(t testing.TB) *core.Graph {
	return build(t,
		cast{"M1", []string{"Q", "A", "B"}},
		cast{"M2", []string{"Q", "A"}},
		cast{"M3", []string{"A", "C"}},
		cast{"M4", []string{"B", "C"}},
		cast{"M5", []string{"Q", "D"}},
		cast{"M6", []string{"D", "E"}},
		cast{"M7", []string{"C", "F"}},
		cast{"Solo", []string{"Lonely"}},
	)
}

func TestPredict_Errors(t *testing.T) {
	_, err := predict.Past(nil, []string{"Q"})
	assert.ErrorIs(t, err, predict.ErrGraphNil)

	g := neighborhood(t)
	_, err = predict.New(g, []string{"Q"}, predict.WithTopK(0))
	assert.ErrorIs(t, err, predict.ErrOptionViolation)

	unbuilt := core.NewGraph()
	require.NoError(t, unbuilt.AddCredit("Q", "M", 2000))
	_, err = predict.Past(unbuilt, []string{"Q"})
	assert.ErrorIs(t, err, core.ErrNotBuilt)
}

func TestPast_TriangleScores(t *testing.T) {
	g := neighborhood(t)
	rows, err := predict.Past(g, []string{"Q"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Q", rows[0].Actor)
	assert.Equal(t, []predict.Candidate{
		{Name: "B", Score: 2}, // via A: shared(Q,A)*shared(B,A) = 2*1
		{Name: "A", Score: 1}, // via B: 1*1
		{Name: "D", Score: 0},
	}, rows[0].Candidates)
	assert.True(t, g.TraversalClean())
}

func TestNew_SecondLevelScores(t *testing.T) {
	g := neighborhood(t)
	rows, err := predict.New(g, []string{"Q"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// C is reached through A (2*1) and B (1*1); E through D (1*1).
	// Direct co-stars and Q itself never appear.
	assert.Equal(t, []predict.Candidate{
		{Name: "C", Score: 3},
		{Name: "E", Score: 1},
	}, rows[0].Candidates)
	assert.True(t, g.TraversalClean())
}

func TestPredict_TopK(t *testing.T) {
	g := neighborhood(t)
	rows, err := predict.Past(g, []string{"Q"}, predict.WithTopK(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, rows[0].Names())
}

func TestPredict_IsolatedActor(t *testing.T) {
	g := neighborhood(t)
	past, err := predict.Past(g, []string{"Lonely"})
	require.NoError(t, err)
	assert.Empty(t, past[0].Candidates)

	fresh, err := predict.New(g, []string{"Lonely"})
	require.NoError(t, err)
	assert.Empty(t, fresh[0].Candidates)
}

func TestPredict_HaltsAtUnknownActor(t *testing.T) {
	g := neighborhood(t)
	for name, fn := range map[string]func(*core.Graph, []string, ...predict.Option) ([]predict.Prediction, error){
		"past": predict.Past,
		"new":  predict.New,
	} {
		rows, err := fn(g, []string{"Q", "nobody", "A"})
		require.ErrorIs(t, err, core.ErrActorNotFound, name)
		assert.Contains(t, err.Error(), `"nobody"`, name)
		require.Len(t, rows, 1, name)
		assert.Equal(t, "Q", rows[0].Actor, name)
		assert.True(t, g.TraversalClean(), name)
	}
}

func TestPredict_BatchIndependence(t *testing.T) {
	g := neighborhood(t)
	batch, err := predict.New(g, []string{"Q", "A", "Q"})
	require.NoError(t, err)
	require.Len(t, batch, 3)
	assert.Equal(t, batch[0], batch[2])

	single, err := predict.New(g, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, single[0], batch[1])
}
