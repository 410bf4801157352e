// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/actorgraph/core"
)

// DefaultMovieYear is the release year used when no YearFn is configured.
// It equals the default reference year, so every default credit costs 1.
const DefaultMovieYear = core.DefaultReferenceYear

// YearFn produces a release year given an optional RNG.
// It must be deterministic for a given seed.
type YearFn func(rng *rand.Rand) int

// DefaultYearFn always returns DefaultMovieYear.
func DefaultYearFn(_ *rand.Rand) int {
	return DefaultMovieYear
}

// ConstantYearFn returns a YearFn that always yields year.
func ConstantYearFn(year int) YearFn {
	return func(_ *rand.Rand) int {
		return year
	}
}

// UniformYearFn returns a YearFn sampling uniformly in [min, max] inclusive.
// Panics if max < min. With a nil rng it yields max.
func UniformYearFn(min, max int) YearFn {
	if max < min {
		panic(fmt.Sprintf("UniformYearFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return max
		}

		return min + rng.Intn(max-min+1)
	}
}

// DescendingYearFn returns a YearFn that yields start, start-1, start-2, ...
// on successive calls, so later movies are older. The RNG is ignored.
func DescendingYearFn(start int) YearFn {
	next := start
	return func(_ *rand.Rand) int {
		y := next
		next--

		return y
	}
}
