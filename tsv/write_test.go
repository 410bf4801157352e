// SPDX-License-Identifier: MIT

package tsv_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/actorgraph/core"
	"github.com/katalvlaran/actorgraph/predict"
	"github.com/katalvlaran/actorgraph/prim_kruskal"
	"github.com/katalvlaran/actorgraph/tsv"
)

func TestFormatPath(t *testing.T) {
	cases := []struct {
		name string
		path core.Path
		want string
	}{
		{"empty", core.Path{}, ""},
		{"one hop", core.Path{"Alice", "[MovieB#@2019]", "Bob"}, "(Alice)--[MovieB#@2019]-->(Bob)"},
		{
			"two hops",
			core.Path{"A", "[M4#@2003]", "E", "[M5#@2004]", "D"},
			"(A)--[M4#@2003]-->(E)--[M5#@2004]-->(D)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tsv.FormatPath(tc.path))
		})
	}
}

func TestWritePaths(t *testing.T) {
	var buf bytes.Buffer
	err := tsv.WritePaths(&buf, []core.Path{
		{"Alice", "[MovieB#@2019]", "Bob"},
		{},
	})
	require.NoError(t, err)
	assert.Equal(t, tsv.PathHeader+"\n(Alice)--[MovieB#@2019]-->(Bob)\n\n", buf.String())
}

func TestWriteForest(t *testing.T) {
	f := &prim_kruskal.Forest{Edges: []prim_kruskal.ForestEdge{
		{From: "Alice", To: "Bob", Weight: 2, Credit: core.Credit{Title: "MovieA", Year: 2018}},
	}}
	var buf bytes.Buffer
	require.NoError(t, tsv.WriteForest(&buf, f))
	assert.Equal(t, tsv.PathHeader+"\n(Alice)--[MovieA#@2018]-->(Bob)\n", buf.String())
}

func TestWritePredictions(t *testing.T) {
	rows := []predict.Prediction{
		{Actor: "Q", Candidates: []predict.Candidate{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}},
		{Actor: "R", Candidates: []predict.Candidate{{Name: "A"}, {Name: "B"}}},
		{Actor: "S"},
	}
	var buf bytes.Buffer
	require.NoError(t, tsv.WritePredictions(&buf, rows, 4))
	assert.Equal(t,
		"Actor1,Actor2,Actor3,Actor4\n"+
			"A\tB\tC\tD\n"+
			"A\tB\t\n"+
			"\t\n",
		buf.String())

	assert.Equal(t, "Actor1,Actor2", tsv.PredictionHeader(2))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	err := tsv.WriteFile(path, func(w io.Writer) error {
		return tsv.WritePaths(w, nil)
	})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tsv.PathHeader+"\n", string(data))

	assert.Error(t, tsv.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir"), func(io.Writer) error { return nil }))
}
