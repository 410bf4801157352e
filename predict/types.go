// SPDX-License-Identifier: MIT

package predict

import (
	"errors"
	"fmt"
)

// DefaultTopK is the number of candidates kept per query actor.
const DefaultTopK = 4

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("predict: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("predict: option violation")
)

// Candidate is one ranked collaborator.
type Candidate struct {
	Name  string
	Score int64
}

// Prediction is the ranked result for one query actor.
type Prediction struct {
	Actor      string
	Candidates []Candidate // best first
}

// Names returns the candidate names in rank order.
func (p Prediction) Names() []string {
	out := make([]string, len(p.Candidates))
	for i, c := range p.Candidates {
		out[i] = c.Name
	}

	return out
}

// Options configures a prediction batch.
type Options struct {
	// TopK bounds the number of candidates per actor. Must be ≥ 1.
	TopK int

	err error
}

// Option is a functional option for a prediction batch.
type Option func(*Options)

// DefaultOptions returns TopK = DefaultTopK.
func DefaultOptions() Options {
	return Options{TopK: DefaultTopK}
}

// WithTopK sets the number of candidates kept per actor.
// A value below 1 makes the batch fail with ErrOptionViolation.
func WithTopK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: TopK must be >= 1, got %d", ErrOptionViolation, k)
			return
		}
		o.TopK = k
	}
}
