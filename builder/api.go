// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
// Topology constructors live in topology.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
)

// MaxVertices bounds every size parameter so a request cannot build an
// arbitrarily large graph.
const MaxVertices = 1000

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors, never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves bopts and applies cons in
// order. A constructor error is wrapped as "BuildGraph: %w" and returned
// immediately without the partial graph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts idFn(0..n-1) in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %v: %w", method, id, err, ErrConstructFailed)
		}
	}

	return nil
}

// addEdge links idFn(i) and idFn(j) with the next generated weight.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}

// checkSize validates min ≤ n ≤ MaxVertices.
func checkSize(method, name string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, n, min, ErrTooFewVertices)
	}
	if n > MaxVertices {
		return fmt.Errorf("%s: %s=%d > max=%d: %w", method, name, n, MaxVertices, ErrTooManyVertices)
	}

	return nil
}
