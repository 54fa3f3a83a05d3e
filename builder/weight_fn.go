// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured, and by the
// uniform generators when rng is nil.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from rng. It must be deterministic for a
// given seed.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value float64) WeightFn {
	return func(*rand.Rand) float64 { return value }
}

// UniformIntWeightFn returns a WeightFn sampling integers uniformly in
// [min, max]. Panics if max < min.
func UniformIntWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// From1To100WeightFn samples integers in [1,100], the default accepted
// weight range of a session.
func From1To100WeightFn(rng *rand.Rand) float64 {
	return UniformIntWeightFn(1, 100)(rng)
}
