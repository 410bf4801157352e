// SPDX-License-Identifier: MIT

package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/actorgraph/core"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// scanRows calls fn with the TAB-separated fields of every line after the
// header. fn reports whether the row was accepted.
func scanRows(r io.Reader, fn func(line int, fields []string) (bool, error)) (LoadStats, error) {
	var st LoadStats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		st.Rows++
		text := strings.TrimSuffix(sc.Text(), "\r")
		ok, err := fn(line, strings.Split(text, "\t"))
		if err != nil {
			return st, err
		}
		if !ok {
			st.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("tsv: read line %d: %w", line+1, err)
	}

	return st, nil
}

// ReadCredits ingests actor/title/year rows into g. g must not be built yet.
//
// Errors:
//   - ErrMalformedYear wrapped with the line number: the load is aborted.
//   - I/O errors from r.
//   - core.ErrAlreadyBuilt when g was built before.
func ReadCredits(r io.Reader, g *core.Graph) (LoadStats, error) {
	return scanRows(r, func(line int, f []string) (bool, error) {
		if len(f) != creditColumns {
			return false, nil
		}
		year, err := strconv.Atoi(strings.TrimSpace(f[2]))
		if err != nil {
			return false, fmt.Errorf("%w: line %d: %q", ErrMalformedYear, line, f[2])
		}
		if err := g.AddCredit(f[0], f[1], year); err != nil {
			if errors.Is(err, core.ErrEmptyActorName) {
				return false, nil
			}
			return false, err
		}

		return true, nil
	})
}

// LoadCredits opens path and ingests it with ReadCredits.
func LoadCredits(path string, g *core.Graph) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("tsv: open credits: %w", err)
	}
	defer f.Close()

	st, err := ReadCredits(f, g)
	if err != nil {
		return st, fmt.Errorf("%s: %w", path, err)
	}

	return st, nil
}

// ReadActors returns the names of a single-column actor list.
func ReadActors(r io.Reader) ([]string, LoadStats, error) {
	var names []string
	st, err := scanRows(r, func(_ int, f []string) (bool, error) {
		if len(f) != actorColumns || f[0] == "" {
			return false, nil
		}
		names = append(names, f[0])

		return true, nil
	})

	return names, st, err
}

// ReadPairs returns the queries of a two-column pair list.
func ReadPairs(r io.Reader) ([]Pair, LoadStats, error) {
	var pairs []Pair
	st, err := scanRows(r, func(_ int, f []string) (bool, error) {
		if len(f) != pairColumns {
			return false, nil
		}
		pairs = append(pairs, Pair{From: f[0], To: f[1]})

		return true, nil
	})

	return pairs, st, err
}

// LoadActors opens path and reads it with ReadActors.
func LoadActors(path string) ([]string, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("tsv: open actors: %w", err)
	}
	defer f.Close()

	return ReadActors(f)
}

// LoadPairs opens path and reads it with ReadPairs.
func LoadPairs(path string) ([]Pair, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("tsv: open pairs: %w", err)
	}
	defer f.Close()

	return ReadPairs(f)
}
