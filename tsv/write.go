// SPDX-License-Identifier: MIT

package tsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/actorgraph/core"
	"github.com/katalvlaran/actorgraph/predict"
	"github.com/katalvlaran/actorgraph/prim_kruskal"
)

// FormatPath renders a path as (actor)--[title#@year]-->(actor)...
// An empty path renders as "".
func FormatPath(p core.Path) string {
	var b strings.Builder
	for i, s := range p {
		if i%2 == 0 {
			b.WriteByte('(')
			b.WriteString(s)
			b.WriteByte(')')
			continue
		}
		b.WriteString("--")
		b.WriteString(s)
		b.WriteString("-->")
	}

	return b.String()
}

// FormatEdge renders one forest edge as (From)--[title#@year]-->(To).
func FormatEdge(e prim_kruskal.ForestEdge) string {
	return FormatPath(core.Path{e.From, e.Credit.Label(), e.To})
}

// PredictionHeader returns "Actor1,Actor2,...,ActorK".
func PredictionHeader(k int) string {
	cols := make([]string, k)
	for i := range cols {
		cols[i] = "Actor" + strconv.Itoa(i+1)
	}

	return strings.Join(cols, ",")
}

// WritePaths writes PathHeader and one line per path.
func WritePaths(w io.Writer, paths []core.Path) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, PathHeader)
	for _, p := range paths {
		fmt.Fprintln(bw, FormatPath(p))
	}

	return bw.Flush()
}

// WriteForest writes PathHeader and one line per accepted edge.
func WriteForest(w io.Writer, f *prim_kruskal.Forest) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, PathHeader)
	for _, e := range f.Edges {
		fmt.Fprintln(bw, FormatEdge(e))
	}

	return bw.Flush()
}

// WritePredictions writes the header for k columns, then one row per
// prediction. Rows with fewer than k names carry one trailing TAB.
func WritePredictions(w io.Writer, rows []predict.Prediction, k int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, PredictionHeader(k))
	for _, r := range rows {
		names := r.Names()
		line := strings.Join(names, "\t")
		if len(names) < k {
			line += "\t"
		}
		fmt.Fprintln(bw, line)
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and hands it to write.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tsv: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("tsv: close %s: %w", path, cerr)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("tsv: write %s: %w", path, err)
	}

	return nil
}
