// SPDX-License-Identifier: MIT
// Package: actorgraph/builder
//
// config.go - resolved builder configuration shared by all constructors.

package builder

import (
	"math/rand"
	"strconv"
)

// Defaults resolved by newBuilderConfig.
const (
	defaultTitlePrefix = "m"
	centerActorID      = "Center"
)

// builderConfig aggregates the knobs used by constructors.
// It is passed by value; only the title sequence is shared.
type builderConfig struct {
	// Actor name strategy: index -> name.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Release year of each generated movie.
	yearFn YearFn
	// Prefix of generated movie titles.
	titlePrefix string
	// Monotonic movie counter shared across constructors.
	titles *titleSeq
}

// titleSeq hands out movie titles in creation order.
type titleSeq struct {
	next int
}

// newBuilderConfig applies opts over deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		yearFn:      DefaultYearFn,
		titlePrefix: defaultTitlePrefix,
		titles:      &titleSeq{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.titlePrefix == "" {
		cfg.titlePrefix = defaultTitlePrefix
	}

	return cfg
}

// movie reserves the next title and draws its release year.
func (c builderConfig) movie() (string, int) {
	title := c.titlePrefix + strconv.Itoa(c.titles.next)
	c.titles.next++

	return title, c.yearFn(c.rng)
}
