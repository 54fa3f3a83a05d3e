// SPDX-License-Identifier: MIT

// Package builder generates demo graphs for mstlab: paths, cycles, stars,
// wheels, complete graphs, grids and random sparse graphs with seeded,
// integer weights drawn from the engine's accepted range.
//
// Constructors are composed with BuildGraph:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformIntWeightFn(1, 9))},
//		builder.Cycle(5),
//	)
//
// Output is deterministic: the same options, seed and constructor order
// always yield the same vertices, edges and weights, in the same insertion
// order. Vertex IDs default to spreadsheet column names (A, B, ..., Z, AA).
//
// Recipe resolves a generator by name, which is how the CLI and the HTTP API
// expose the constructors.
package builder
