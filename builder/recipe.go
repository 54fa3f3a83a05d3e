// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/mstlab/core"
)

// Generator kinds accepted by Recipe.
const (
	KindPath     = "path"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindWheel    = "wheel"
	KindComplete = "complete"
	KindGrid     = "grid"
	KindRandom   = "random"
)

// Recipe names a generator and its parameters. N is used by every kind but
// grid, which uses Rows and Cols; P is the edge probability of random.
type Recipe struct {
	Kind string  `json:"kind"`
	N    int     `json:"n,omitempty"`
	Rows int     `json:"rows,omitempty"`
	Cols int     `json:"cols,omitempty"`
	P    float64 `json:"p,omitempty"`
	Seed int64   `json:"seed,omitempty"`
	// MinWeight and MaxWeight bound the integer weights; zero values mean 1..100.
	MinWeight int `json:"min_weight,omitempty"`
	MaxWeight int `json:"max_weight,omitempty"`
}

// Kinds lists the generator names in sorted order.
func Kinds() []string {
	kinds := []string{KindPath, KindCycle, KindStar, KindWheel, KindComplete, KindGrid, KindRandom}
	sort.Strings(kinds)

	return kinds
}

// Constructor resolves r.Kind (case-insensitive) to its Constructor.
func (r Recipe) Constructor() (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(r.Kind)) {
	case KindPath:
		return Path(r.N), nil
	case KindCycle:
		return Cycle(r.N), nil
	case KindStar:
		return Star(r.N), nil
	case KindWheel:
		return Wheel(r.N), nil
	case KindComplete:
		return Complete(r.N), nil
	case KindGrid:
		return Grid(r.Rows, r.Cols), nil
	case KindRandom:
		return RandomSparse(r.N, r.P), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, r.Kind, strings.Join(Kinds(), ", "))
	}
}

// Build runs the recipe with its seed and weight range. Extra options are
// applied after them.
func (r Recipe) Build(opts ...BuilderOption) (*core.Graph, error) {
	con, err := r.Constructor()
	if err != nil {
		return nil, err
	}
	lo, hi := r.MinWeight, r.MaxWeight
	if lo == 0 && hi == 0 {
		lo, hi = 1, 100
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: max_weight %d below min_weight %d", ErrInvalidWeightRange, hi, lo)
	}

	bopts := append([]BuilderOption{
		WithSeed(r.Seed),
		WithWeightFn(UniformIntWeightFn(lo, hi)),
	}, opts...)

	return BuildGraph(bopts, con)
}
