package builder

import (
	"fmt"
	"math/rand"
)

// DefaultWeight is the weight of nodes and hyperedges unless configured.
const DefaultWeight int64 = 1

// WeightFn produces a positive integer weight from an optional random source.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always yields value. Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}
	return func(*rand.Rand) int64 { return value }
}

// UniformWeightFn samples uniformly in [min, max]. Panics unless 1 ≤ min ≤ max.
// Without a random source it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
