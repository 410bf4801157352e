// SPDX-License-Identifier: MIT

package tsv

import "errors"

var (
	// ErrMalformedYear is returned when the year column of a credit row is not an integer.
	ErrMalformedYear = errors.New("tsv: malformed year")
)

// Column counts of the accepted input shapes.
const (
	creditColumns = 3
	pairColumns   = 2
	actorColumns  = 1
)

// PathHeader is the first line of path and forest outputs.
const PathHeader = "(actor)--[movie#@year]-->(actor)--..."

// LoadStats summarizes one input file.
type LoadStats struct {
	Rows    int // data lines read, header excluded
	Skipped int // data lines rejected for shape
}

// Accepted reports the number of rows that were kept.
func (s LoadStats) Accepted() int { return s.Rows - s.Skipped }

// Pair is one path query.
type Pair struct {
	From string
	To   string
}
