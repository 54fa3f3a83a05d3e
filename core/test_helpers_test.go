// SPDX-License-Identifier: MIT
// Package core_test shares fixtures and assertion helpers across core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/mstlab/core"
)

// Common vertex IDs used across core tests (avoid magic strings in test bodies).
const (
	VertexEmpty = ""
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
	VertexD     = "D"
	VertexX     = "X"
)

// Common weights used across core tests.
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
	Weight9 = 9.0
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)

// NewTriangle RETURNS the canonical triangle A–B(1), B–C(2), A–C(3).
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	MustNoError(t, addEdge(g, VertexA, VertexB, Weight1), "AddEdge(A,B)")
	MustNoError(t, addEdge(g, VertexB, VertexC, Weight2), "AddEdge(B,C)")
	MustNoError(t, addEdge(g, VertexA, VertexC, Weight3), "AddEdge(A,C)")

	return g
}

func addEdge(g *core.Graph, from, to string, w float64) error {
	_, err := g.AddEdge(from, to, w)
	return err
}

// MustNoError FAILS the test immediately if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustEqualStrings FAILS the test if the two slices differ in length or order.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v (len %d), want %v (len %d)", op, got, len(got), want, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: at %d got %q, want %q (full: %v vs %v)", op, i, got[i], want[i], got, want)
		}
	}
}
