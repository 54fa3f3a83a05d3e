// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// topology.go - deterministic topology constructors.
//
// Each constructor adds its vertices first (idFn in index order), then its
// edges in a documented order, drawing one weight per edge from cfg.weightFn.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstlab/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// Path builds P_n (n ≥ 2): edges i–(i+1) for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodPath, "n", n, 2); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n (n ≥ 3): the path edges, then (n-1)–0 to close the ring.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodCycle, "n", n, 3); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds S_n (n ≥ 2): vertex 0 is the hub, edges 0–i for i = 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodStar, "n", n, 2); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n (n ≥ 4): a rim cycle over 1..n-1 first, then the spokes
// 0–i for i = 1..n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodWheel, "n", n, 4); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodWheel, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := addEdge(g, cfg, methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1): edges i–j for all i < j in lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodComplete, "n", n, 1); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood lattice (each ≥ 1). Vertex r*cols+c
// sits at (r,c); for each cell in row-major order the right edge is emitted
// before the down edge.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodGrid, "rows", rows, 1); err != nil {
			return err
		}
		if err := checkSize(methodGrid, "cols", cols, 1); err != nil {
			return err
		}
		if err := checkSize(methodGrid, "rows*cols", rows*cols, 1); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, at, at+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, at, at+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n,p) graph (n ≥ 1, 0 ≤ p ≤ 1): each
// pair i < j, in lexicographic order, is linked with probability p. The
// weight is drawn only for kept pairs.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodRandomSparse, "n", n, 1); err != nil {
			return err
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
